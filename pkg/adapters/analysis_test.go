package adapters

import (
	"testing"

	"github.com/de-tools/sales-analyzer/pkg/models/api"
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/de-tools/sales-analyzer/pkg/services/analytics"
	"github.com/de-tools/sales-analyzer/pkg/services/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(investments, revenues string) *domain.Analysis {
	inv, rev := parser.Parse(investments), parser.Parse(revenues)
	m, f := analytics.Analyze(inv, rev)
	return &domain.Analysis{
		Mode:              domain.RunModePerRun,
		InvestmentSamples: inv.Len(),
		RevenueSamples:    rev.Len(),
		Metrics:           m,
		Forecast:          f,
	}
}

func TestMapAnalysisToAPI_ExampleScenario(t *testing.T) {
	resp := MapAnalysisToAPI(analyze("100,100,100", "150,150,150,150,150"))

	assert.Equal(t, api.MetricsReport{
		TotalInvestment:        "300.00",
		TotalRevenue:           "750.00",
		Profit:                 "450.00",
		ProfitMargin:           "60.00%",
		Sustainability:         "Excellent",
		ROI:                    "150.00%",
		RevenueInvestmentRatio: "2.50",
		ProfitabilityIndex:     "PROFITABLE",
		ProfitabilityMessage:   "With the Revenue to Investment ratio greater than 1, therefore it is PROFITABLE",
	}, resp.Report)

	assert.Equal(t, "available", resp.Forecast.Status)
	assert.Equal(t, 6, resp.Forecast.StartPeriod)
	require.Len(t, resp.Forecast.Values, 20)
	for _, v := range resp.Forecast.Values {
		assert.Equal(t, "150.00", v)
	}
	assert.Equal(t, &api.Totals{TotalInvestment: 300, TotalRevenue: 750}, resp.Totals)
	assert.Equal(t, "per_run", resp.Mode)
	assert.Equal(t, 3, resp.InvestmentSamples)
	assert.Equal(t, 5, resp.RevenueSamples)
}

func TestMapAnalysisToAPI_ZeroInvestment(t *testing.T) {
	resp := MapAnalysisToAPI(analyze("0", "100"))

	assert.Equal(t, "undefined", resp.Report.ROI)
	assert.Equal(t, "undefined", resp.Report.RevenueInvestmentRatio)
	assert.Equal(t, "UNDETERMINED", resp.Report.ProfitabilityIndex)
	assert.Equal(t, "100.00%", resp.Report.ProfitMargin)
	assert.Equal(t, []api.Flag{
		{Field: "roi", Status: "undefined", Reason: "total investment is zero"},
		{Field: "revenue_investment_ratio", Status: "undefined", Reason: "total investment is zero"},
	}, resp.Report.Flags)

	assert.Equal(t, "insufficient_data", resp.Forecast.Status)
	assert.Equal(t, "forecast unavailable: not enough revenue samples", resp.Forecast.Message)
	assert.Empty(t, resp.Forecast.Values)
	assert.NotNil(t, resp.Forecast.Values)
}

func TestMapAnalysisToAPI_MalformedToken(t *testing.T) {
	resp := MapAnalysisToAPI(analyze("100", "100,abc,100,100,100"))

	r := resp.Report
	assert.Equal(t, "100.00", r.TotalInvestment)
	for _, v := range []string{r.TotalRevenue, r.Profit, r.ProfitMargin, r.ROI, r.RevenueInvestmentRatio} {
		assert.Equal(t, "invalid", v)
	}
	assert.Equal(t, "Unknown", r.Sustainability)
	assert.Equal(t, "UNDETERMINED", r.ProfitabilityIndex)
	assert.Len(t, r.Flags, 5)
	assert.Equal(t, "invalid", resp.Forecast.Status)
	assert.Nil(t, resp.Totals)
}

func TestMapAnalysisToAPI_OverflowingTotal(t *testing.T) {
	a := analyze("1e308,1e308", "1")
	resp := MapAnalysisToAPI(a)

	r := resp.Report
	assert.Equal(t, "overflow", r.TotalInvestment)
	assert.Equal(t, "1.00", r.TotalRevenue)
	for _, v := range []string{r.Profit, r.ProfitMargin, r.ROI, r.RevenueInvestmentRatio} {
		assert.Equal(t, "overflow", v)
	}
	assert.Equal(t, "Unknown", r.Sustainability)
	assert.Equal(t, "UNDETERMINED", r.ProfitabilityIndex)
	assert.Equal(t,
		"The Revenue to Investment ratio cannot be represented, therefore profitability cannot be determined",
		r.ProfitabilityMessage)

	require.Len(t, r.Flags, 5)
	for _, f := range r.Flags {
		assert.Equal(t, "overflow", f.Status, f.Field)
		assert.Equal(t, "total exceeds the representable range", f.Reason, f.Field)
	}
	assert.Nil(t, resp.Totals)
}

func TestMapAnalysisToAPI_NotProfitable(t *testing.T) {
	resp := MapAnalysisToAPI(analyze("200", "150"))

	assert.Equal(t, "NOT PROFITABLE", resp.Report.ProfitabilityIndex)
	assert.Equal(t, "With the Revenue to Investment ratio not greater than 1, therefore it is NOT PROFITABLE",
		resp.Report.ProfitabilityMessage)
	assert.Equal(t, "-33.33%", resp.Report.ProfitMargin)
	assert.Equal(t, "-25.00%", resp.Report.ROI)
	assert.Equal(t, "0.75", resp.Report.RevenueInvestmentRatio)
	assert.Equal(t, "Low", resp.Report.Sustainability)
}

func TestMapTotalsToDomain(t *testing.T) {
	assert.Nil(t, MapTotalsToDomain(nil))

	m := MapTotalsToDomain(&api.Totals{TotalInvestment: 10, TotalRevenue: 20})
	require.NotNil(t, m)
	assert.Equal(t, domain.NewMeasure(10), m.TotalInvestment)
	assert.Equal(t, domain.NewMeasure(20), m.TotalRevenue)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1234.57", FormatValue(1234.5678))
	assert.Equal(t, "0.10", FormatValue(0.1))
	assert.Equal(t, "-2.00", FormatValue(-2))
	assert.Equal(t, "undefined", FormatAmount(domain.Undefined()))
	assert.Equal(t, "invalid", FormatPercent(domain.Invalid()))
	assert.Equal(t, "overflow", FormatAmount(domain.Overflow()))
	assert.Equal(t, "12.50%", FormatPercent(domain.NewMeasure(12.5)))
}

func TestMapAnalysisToReport(t *testing.T) {
	report := MapAnalysisToReport(analyze("100,100,100", "150,150,150,150,150"))

	assert.Equal(t, ReportTitle, report.Title)
	require.Len(t, report.Sections, 2)
	assert.Len(t, report.Sections[0].Details, 8)
	assert.Equal(t, "300.00", report.Sections[0].Details[0].Value)
	assert.Equal(t, "3", report.Sections[0].Summary["Investment samples"])
	require.Len(t, report.Sections[1].Details, 20)
	assert.Equal(t, "Period 6", report.Sections[1].Details[0].Name)
	assert.Equal(t, "Period 25", report.Sections[1].Details[19].Name)
	assert.Empty(t, report.Notes)

	report = MapAnalysisToReport(analyze("0", "100"))
	assert.Equal(t, []string{
		"roi is undefined: total investment is zero",
		"revenue_investment_ratio is undefined: total investment is zero",
		"forecast unavailable: not enough revenue samples",
	}, report.Notes)
}

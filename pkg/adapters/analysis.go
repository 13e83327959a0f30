package adapters

import (
	"fmt"
	"strconv"

	"github.com/de-tools/sales-analyzer/pkg/models/api"
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
)

const ForecastUnavailable = "forecast unavailable"

var flagReasons = map[domain.MeasureStatus]string{
	domain.MeasureUndefined: "total investment is zero",
	domain.MeasureInvalid:   "input contains a value that is not a number",
	domain.MeasureOverflow:  "total exceeds the representable range",
}

func MapAnalysisToAPI(a *domain.Analysis) api.AnalysisResponse {
	m := a.Metrics
	resp := api.AnalysisResponse{
		Mode:              string(a.Mode),
		InvestmentSamples: a.InvestmentSamples,
		RevenueSamples:    a.RevenueSamples,
		Report: api.MetricsReport{
			TotalInvestment:        FormatAmount(m.TotalInvestment),
			TotalRevenue:           FormatAmount(m.TotalRevenue),
			Profit:                 FormatAmount(m.Profit),
			ProfitMargin:           FormatPercent(m.ProfitMargin),
			Sustainability:         string(m.Sustainability),
			ROI:                    FormatPercent(m.ROI),
			RevenueInvestmentRatio: FormatAmount(m.RevenueInvestmentRatio),
			ProfitabilityIndex:     string(m.ProfitabilityIndex),
			ProfitabilityMessage:   ProfitabilityMessage(m),
			Flags:                  flags(m),
		},
		Forecast: MapForecastToAPI(a.Forecast),
	}

	if m.TotalInvestment.IsOK() && m.TotalRevenue.IsOK() {
		resp.Totals = &api.Totals{
			TotalInvestment: m.TotalInvestment.Value,
			TotalRevenue:    m.TotalRevenue.Value,
		}
	}
	return resp
}

func MapForecastToAPI(f domain.Forecast) api.Forecast {
	out := api.Forecast{
		Status: string(f.Status),
		Values: make([]string, 0, len(f.Values)),
	}

	switch f.Status {
	case domain.ForecastAvailable:
		out.StartPeriod = f.StartPeriod
		for _, v := range f.Values {
			out.Values = append(out.Values, FormatValue(v))
		}
	case domain.ForecastInsufficientData:
		out.Message = ForecastUnavailable + ": not enough revenue samples"
	case domain.ForecastInvalid:
		out.Message = ForecastUnavailable + ": revenues contain a value that is not a number"
	}
	return out
}

// MapTotalsToDomain rebuilds the previous report a client sent back for accumulation.
func MapTotalsToDomain(t *api.Totals) *domain.Metrics {
	if t == nil {
		return nil
	}
	return &domain.Metrics{
		TotalInvestment: domain.NewMeasure(t.TotalInvestment),
		TotalRevenue:    domain.NewMeasure(t.TotalRevenue),
	}
}

// ProfitabilityMessage is the sentence shown next to the profitability verdict.
func ProfitabilityMessage(m domain.Metrics) string {
	threshold := strconv.FormatFloat(m.ProfitabilityThreshold, 'f', -1, 64)

	switch m.ProfitabilityIndex {
	case domain.VerdictProfitable:
		return fmt.Sprintf("With the Revenue to Investment ratio greater than %s, therefore it is PROFITABLE", threshold)
	case domain.VerdictNotProfitable:
		return fmt.Sprintf("With the Revenue to Investment ratio not greater than %s, therefore it is NOT PROFITABLE", threshold)
	}
	if m.RevenueInvestmentRatio.Status == domain.MeasureOverflow {
		return "The Revenue to Investment ratio cannot be represented, therefore profitability cannot be determined"
	}
	return "The Revenue to Investment ratio is " + string(m.RevenueInvestmentRatio.Status) +
		", therefore profitability cannot be determined"
}

func flags(m domain.Metrics) []api.Flag {
	fields := []struct {
		name    string
		measure domain.Measure
	}{
		{"total_investment", m.TotalInvestment},
		{"total_revenue", m.TotalRevenue},
		{"profit", m.Profit},
		{"profit_margin", m.ProfitMargin},
		{"roi", m.ROI},
		{"revenue_investment_ratio", m.RevenueInvestmentRatio},
	}

	var out []api.Flag
	for _, f := range fields {
		if f.measure.IsOK() {
			continue
		}
		out = append(out, api.Flag{
			Field:  f.name,
			Status: string(f.measure.Status),
			Reason: flagReasons[f.measure.Status],
		})
	}
	return out
}

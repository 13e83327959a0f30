package adapters

import (
	"fmt"

	"github.com/de-tools/sales-analyzer/pkg/models/api"
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
)

const ReportTitle = "Sales Analysis"

func MapAnalysisToReport(a *domain.Analysis) domain.Report {
	resp := MapAnalysisToAPI(a)
	r := resp.Report

	report := domain.Report{
		Title: ReportTitle,
		Mode:  a.Mode,
		Sections: []domain.ReportSection{
			{
				Title: "Metrics",
				Summary: map[string]string{
					"Investment samples": fmt.Sprint(a.InvestmentSamples),
					"Revenue samples":    fmt.Sprint(a.RevenueSamples),
				},
				Details: []domain.ReportDetail{
					{Name: "Total Investment", Value: r.TotalInvestment, Description: "Sum of all investments"},
					{Name: "Total Revenue", Value: r.TotalRevenue, Description: "Sum of all revenues"},
					{Name: "Profit", Value: r.Profit, Description: "Total revenue minus total investment"},
					{Name: "Profit Margin", Value: r.ProfitMargin, Description: "Profit as a share of revenue"},
					{Name: "Sustainability", Value: r.Sustainability, Description: "Bucket of the profit margin"},
					{Name: "ROI", Value: r.ROI, Description: "Return on investment"},
					{Name: "Revenue to Investment Ratio", Value: r.RevenueInvestmentRatio, Description: "Total revenue over total investment"},
					{Name: "Profitability Index", Value: r.ProfitabilityIndex, Description: r.ProfitabilityMessage},
				},
			},
			forecastSection(resp.Forecast),
		},
	}

	for _, f := range r.Flags {
		report.Notes = append(report.Notes, fmt.Sprintf("%s is %s: %s", f.Field, f.Status, f.Reason))
	}
	if resp.Forecast.Message != "" {
		report.Notes = append(report.Notes, resp.Forecast.Message)
	}
	return report
}

func forecastSection(f api.Forecast) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Revenue Forecast",
		Summary: map[string]string{"Status": f.Status},
	}
	for i, v := range f.Values {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Period %d", f.StartPeriod+i),
			Value:       v,
			Description: "Linear trend projection",
		})
	}
	return section
}

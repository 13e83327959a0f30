package api

type AnalysisRequest struct {
	Investments string  `json:"investments"`
	Revenues    string  `json:"revenues"`
	Previous    *Totals `json:"previous,omitempty"` // present only in accumulation mode
}

// Totals are the raw sums a client sends back to accumulate the next submission.
type Totals struct {
	TotalInvestment float64 `json:"total_investment" yaml:"total_investment"`
	TotalRevenue    float64 `json:"total_revenue" yaml:"total_revenue"`
}

type MetricsReport struct {
	TotalInvestment        string `json:"total_investment" yaml:"total_investment"`
	TotalRevenue           string `json:"total_revenue" yaml:"total_revenue"`
	Profit                 string `json:"profit" yaml:"profit"`
	ProfitMargin           string `json:"profit_margin" yaml:"profit_margin"`
	Sustainability         string `json:"sustainability" yaml:"sustainability"`
	ROI                    string `json:"roi" yaml:"roi"`
	RevenueInvestmentRatio string `json:"revenue_investment_ratio" yaml:"revenue_investment_ratio"`
	ProfitabilityIndex     string `json:"profitability_index" yaml:"profitability_index"`
	ProfitabilityMessage   string `json:"profitability_message" yaml:"profitability_message"`
	Flags                  []Flag `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Flag explains a figure that could not be computed.
type Flag struct {
	Field  string `json:"field" yaml:"field"`
	Status string `json:"status" yaml:"status"` // undefined, invalid
	Reason string `json:"reason" yaml:"reason"`
}

type Forecast struct {
	Status      string   `json:"status" yaml:"status"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty"`
	StartPeriod int      `json:"start_period,omitempty" yaml:"start_period,omitempty"`
	Values      []string `json:"values" yaml:"values"`
}

type AnalysisResponse struct {
	Mode              string        `json:"mode" yaml:"mode"`
	InvestmentSamples int           `json:"investment_samples" yaml:"investment_samples"`
	RevenueSamples    int           `json:"revenue_samples" yaml:"revenue_samples"`
	Report            MetricsReport `json:"report" yaml:"report"`
	Forecast          Forecast      `json:"forecast" yaml:"forecast"`
	Totals            *Totals       `json:"totals,omitempty" yaml:"totals,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

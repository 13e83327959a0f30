package domain

type Sustainability string

const (
	SustainabilityLow       Sustainability = "Low"
	SustainabilityModerate  Sustainability = "Moderate"
	SustainabilityFair      Sustainability = "Fair"
	SustainabilityGood      Sustainability = "Good"
	SustainabilityExcellent Sustainability = "Excellent"
	SustainabilityUnknown   Sustainability = "Unknown"
)

type Verdict string

const (
	VerdictProfitable    Verdict = "PROFITABLE"
	VerdictNotProfitable Verdict = "NOT PROFITABLE"
	VerdictUndetermined  Verdict = "UNDETERMINED"
)

// Metrics is the report of one analysis run. It is never mutated after creation;
// a new run produces a new value.
type Metrics struct {
	TotalInvestment        Measure
	TotalRevenue           Measure
	Profit                 Measure
	ProfitMargin           Measure // percent
	Sustainability         Sustainability
	ROI                    Measure // percent
	RevenueInvestmentRatio Measure
	ProfitabilityIndex     Verdict
	ProfitabilityThreshold float64 // ratio the verdict compares against, 1
}

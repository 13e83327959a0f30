package analytics

import (
	"math"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
)

// ProfitableThreshold is the revenue to investment ratio above which a run is profitable.
const ProfitableThreshold = 1.0

// sustainabilityBuckets are checked in order, the first upper bound that holds wins.
var sustainabilityBuckets = []struct {
	upTo  float64
	label domain.Sustainability
}{
	{5, domain.SustainabilityLow},
	{10, domain.SustainabilityModerate},
	{15, domain.SustainabilityFair},
	{20, domain.SustainabilityGood},
}

// Sum adds the samples left to right. A malformed sample makes the sum NaN.
func Sum(seq domain.SampleSequence) float64 {
	sum := 0.0
	for _, v := range seq.Values {
		sum += v
	}
	return sum
}

// ComputeMetrics derives the whole report from one snapshot of the two totals.
// A NaN total makes every derived figure invalid. Otherwise an infinite total, a sum
// that left the float64 range, makes every derived figure an overflow.
func ComputeMetrics(totalInvestment, totalRevenue float64) domain.Metrics {
	invalid := math.IsNaN(totalInvestment) || math.IsNaN(totalRevenue)
	if !invalid && (math.IsInf(totalInvestment, 0) || math.IsInf(totalRevenue, 0)) {
		return overflowMetrics(totalInvestment, totalRevenue)
	}

	m := domain.Metrics{
		TotalInvestment:        domain.NewMeasure(totalInvestment),
		TotalRevenue:           domain.NewMeasure(totalRevenue),
		Profit:                 domain.NewMeasure(totalRevenue - totalInvestment),
		ProfitMargin:           profitMargin(totalInvestment, totalRevenue, invalid),
		ROI:                    roi(totalInvestment, totalRevenue, invalid),
		RevenueInvestmentRatio: ratio(totalInvestment, totalRevenue, invalid),
		ProfitabilityThreshold: ProfitableThreshold,
	}
	m.Sustainability = sustainabilityOf(m.ProfitMargin)
	m.ProfitabilityIndex = VerdictOf(m.RevenueInvestmentRatio)
	return m
}

// Classify maps a profit margin in percent to its sustainability bucket.
func Classify(margin float64) domain.Sustainability {
	if math.IsNaN(margin) {
		return domain.SustainabilityUnknown
	}
	for _, b := range sustainabilityBuckets {
		if margin <= b.upTo {
			return b.label
		}
	}
	return domain.SustainabilityExcellent
}

// VerdictOf compares the revenue to investment ratio against ProfitableThreshold.
func VerdictOf(ratio domain.Measure) domain.Verdict {
	if !ratio.IsOK() {
		return domain.VerdictUndetermined
	}
	if ratio.Value > ProfitableThreshold {
		return domain.VerdictProfitable
	}
	return domain.VerdictNotProfitable
}

func overflowMetrics(totalInvestment, totalRevenue float64) domain.Metrics {
	return domain.Metrics{
		TotalInvestment:        domain.NewMeasure(totalInvestment),
		TotalRevenue:           domain.NewMeasure(totalRevenue),
		Profit:                 domain.Overflow(),
		ProfitMargin:           domain.Overflow(),
		Sustainability:         domain.SustainabilityUnknown,
		ROI:                    domain.Overflow(),
		RevenueInvestmentRatio: domain.Overflow(),
		ProfitabilityIndex:     domain.VerdictUndetermined,
		ProfitabilityThreshold: ProfitableThreshold,
	}
}

func sustainabilityOf(margin domain.Measure) domain.Sustainability {
	if !margin.IsOK() {
		return domain.SustainabilityUnknown
	}
	return Classify(margin.Value)
}

func profitMargin(totalInvestment, totalRevenue float64, invalid bool) domain.Measure {
	if invalid {
		return domain.Invalid()
	}
	if totalRevenue <= 0 {
		return domain.NewMeasure(0)
	}
	return domain.NewMeasure((totalRevenue - totalInvestment) / totalRevenue * 100)
}

func roi(totalInvestment, totalRevenue float64, invalid bool) domain.Measure {
	switch {
	case invalid:
		return domain.Invalid()
	case totalInvestment == 0:
		return domain.Undefined()
	}
	return domain.NewMeasure((totalRevenue - totalInvestment) / totalInvestment * 100)
}

func ratio(totalInvestment, totalRevenue float64, invalid bool) domain.Measure {
	switch {
	case invalid:
		return domain.Invalid()
	case totalInvestment == 0:
		return domain.Undefined()
	}
	return domain.NewMeasure(totalRevenue / totalInvestment)
}

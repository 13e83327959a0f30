package analytics

import (
	"math"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultHorizon    = 20
	DefaultMinSamples = 5
)

// FitLine fits y = slope*x + intercept by ordinary least squares over x = 1..len(ys).
// ok is false when the normal equations are singular.
func FitLine(ys []float64) (slope, intercept float64, ok bool) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range ys {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	den := n*sumX2 - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}

// predict evaluates the fitted line at the horizon periods following the last sample.
func predict(revenues domain.SampleSequence, horizon, minSamples int) domain.Forecast {
	n := revenues.Len()
	if n < minSamples {
		return domain.Forecast{Status: domain.ForecastInsufficientData}
	}
	if !revenues.Valid() {
		return domain.Forecast{Status: domain.ForecastInvalid}
	}

	slope, intercept, ok := FitLine(revenues.Values)
	if !ok {
		return domain.Forecast{Status: domain.ForecastInsufficientData}
	}
	if !finite(slope) || !finite(intercept) {
		return domain.Forecast{Status: domain.ForecastInvalid}
	}

	f := domain.Forecast{
		Status:      domain.ForecastAvailable,
		Slope:       slope,
		Intercept:   intercept,
		StartPeriod: n + 1,
		Values:      make([]float64, 0, horizon),
	}
	for x := n + 1; x <= n+horizon; x++ {
		v := slope*float64(x) + intercept
		if !finite(v) {
			return domain.Forecast{Status: domain.ForecastInvalid}
		}
		f.Values = append(f.Values, round2(v))
	}
	return f
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

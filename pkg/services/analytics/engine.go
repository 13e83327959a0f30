package analytics

import "github.com/de-tools/sales-analyzer/pkg/models/domain"

// Options tune the forecast. Zero values fall back to the defaults.
type Options struct {
	Horizon    int // number of predicted periods, 20
	MinSamples int // revenue samples required before forecasting, 5
}

// Engine computes metrics and forecasts. It holds no state besides its options
// and is safe for concurrent use.
type Engine struct {
	horizon    int
	minSamples int
}

func NewEngine(opts Options) *Engine {
	e := &Engine{horizon: opts.Horizon, minSamples: opts.MinSamples}
	if e.horizon <= 0 {
		e.horizon = DefaultHorizon
	}
	if e.minSamples <= 0 {
		e.minSamples = DefaultMinSamples
	}
	return e
}

var defaultEngine = NewEngine(Options{})

// Analyze runs the per-run analysis with default options.
func Analyze(investments, revenues domain.SampleSequence) (domain.Metrics, domain.Forecast) {
	return defaultEngine.Analyze(investments, revenues)
}

// PredictFuture forecasts the next 20 periods, or nothing below 5 samples.
func PredictFuture(revenues domain.SampleSequence) domain.Forecast {
	return defaultEngine.PredictFuture(revenues)
}

// Accumulate runs the cumulative analysis with default options.
func Accumulate(prev *domain.Metrics, investments, revenues domain.SampleSequence) (domain.Metrics, domain.Forecast) {
	return defaultEngine.Accumulate(prev, investments, revenues)
}

func (e *Engine) Analyze(investments, revenues domain.SampleSequence) (domain.Metrics, domain.Forecast) {
	return ComputeMetrics(Sum(investments), Sum(revenues)), e.PredictFuture(revenues)
}

func (e *Engine) PredictFuture(revenues domain.SampleSequence) domain.Forecast {
	return predict(revenues, e.horizon, e.minSamples)
}

// Accumulate adds the sums of the new sequences onto the totals of prev and
// recomputes every derived figure from the combined totals. A nil prev is the same
// as Analyze. The forecast only ever covers the new revenues.
func (e *Engine) Accumulate(
	prev *domain.Metrics,
	investments, revenues domain.SampleSequence,
) (domain.Metrics, domain.Forecast) {
	totalInvestment, totalRevenue := Sum(investments), Sum(revenues)
	if prev != nil {
		totalInvestment += prev.TotalInvestment.Value
		totalRevenue += prev.TotalRevenue.Value
	}
	return ComputeMetrics(totalInvestment, totalRevenue), e.PredictFuture(revenues)
}

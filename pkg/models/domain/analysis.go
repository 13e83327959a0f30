package domain

type RunMode string

const (
	RunModePerRun      RunMode = "per_run"
	RunModeAccumulated RunMode = "accumulated"
)

// Analysis bundles everything a single submission produces.
type Analysis struct {
	Mode              RunMode
	InvestmentSamples int
	RevenueSamples    int
	InvalidTokens     int
	Metrics           Metrics
	Forecast          Forecast
}

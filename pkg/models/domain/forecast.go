package domain

type ForecastStatus string

const (
	ForecastAvailable        ForecastStatus = "available"
	ForecastInsufficientData ForecastStatus = "insufficient_data"
	ForecastInvalid          ForecastStatus = "invalid"
)

// Forecast is the revenue projection for the periods following the last sample.
type Forecast struct {
	Status      ForecastStatus
	Slope       float64
	Intercept   float64
	StartPeriod int       // 1-based index of the first predicted period, n+1
	Values      []float64 // rounded to 2 decimals, ascending period order
}

func (f Forecast) Available() bool {
	return f.Status == ForecastAvailable
}

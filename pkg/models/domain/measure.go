package domain

import "math"

type MeasureStatus string

const (
	MeasureOK        MeasureStatus = "ok"
	MeasureUndefined MeasureStatus = "undefined" // division by zero
	MeasureInvalid   MeasureStatus = "invalid"   // built from a malformed sample
	MeasureOverflow  MeasureStatus = "overflow"  // beyond the float64 range
)

// Measure is a numeric figure of a report together with the state it was computed in.
// Value is only meaningful when Status is MeasureOK.
type Measure struct {
	Value  float64
	Status MeasureStatus
}

// NewMeasure classifies v: NaN is invalid, an infinity is an overflow.
func NewMeasure(v float64) Measure {
	switch {
	case math.IsNaN(v):
		return Measure{Value: v, Status: MeasureInvalid}
	case math.IsInf(v, 0):
		return Measure{Value: v, Status: MeasureOverflow}
	}
	return Measure{Value: v, Status: MeasureOK}
}

func Undefined() Measure {
	return Measure{Value: math.Inf(1), Status: MeasureUndefined}
}

func Invalid() Measure {
	return Measure{Value: math.NaN(), Status: MeasureInvalid}
}

func Overflow() Measure {
	return Measure{Value: math.Inf(1), Status: MeasureOverflow}
}

func (m Measure) IsOK() bool {
	return m.Status == MeasureOK
}

package domain

// SampleSequence is an ordered list of observations, one per reporting period.
// Index 0 is the earliest period.
type SampleSequence struct {
	Values  []float64 // 100, 150, NaN
	Invalid []int     // positions of tokens that did not parse, e.g. [2]
}

func (s SampleSequence) Len() int {
	return len(s.Values)
}

// Valid reports whether every token of the sequence parsed as a number.
func (s SampleSequence) Valid() bool {
	return len(s.Invalid) == 0
}

package adapters

import (
	"github.com/de-tools/sales-analyzer/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// FormatValue renders v with exactly two decimals.
func FormatValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatAmount renders a magnitude, or the measure status when it has no value.
func FormatAmount(m domain.Measure) string {
	if !m.IsOK() {
		return string(m.Status)
	}
	return FormatValue(m.Value)
}

func FormatPercent(m domain.Measure) string {
	if !m.IsOK() {
		return string(m.Status)
	}
	return FormatValue(m.Value) + "%"
}

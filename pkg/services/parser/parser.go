package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/sales-analyzer/pkg/models/domain"
)

// TokenError is returned by ParseStrict for the first token that is not a number.
type TokenError struct {
	Token    string
	Position int // 0-based
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid number %q at position %d", e.Token, e.Position+1)
}

// Parse splits raw on commas and newlines and converts every token to a number.
// A token that is not a finite decimal number becomes NaN at its position and is
// recorded in SampleSequence.Invalid. Empty tokens are kept.
func Parse(raw string) domain.SampleSequence {
	tokens := split(raw)
	seq := domain.SampleSequence{Values: make([]float64, 0, len(tokens))}

	for i, tok := range tokens {
		v, ok := parseToken(tok)
		if !ok {
			seq.Invalid = append(seq.Invalid, i)
		}
		seq.Values = append(seq.Values, v)
	}
	return seq
}

// ParseStrict behaves like Parse but rejects the whole input on the first malformed token.
func ParseStrict(raw string) (domain.SampleSequence, error) {
	seq := Parse(raw)
	if !seq.Valid() {
		pos := seq.Invalid[0]
		return domain.SampleSequence{}, &TokenError{
			Token:    strings.TrimSpace(split(raw)[pos]),
			Position: pos,
		}
	}
	return seq, nil
}

// split treats every comma and every newline as a separator, so both may be mixed.
func split(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\n", ","), ",")
}

func parseToken(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	// only plain decimal notation, no hex floats
	if tok == "" || strings.ContainsAny(tok, "xX") {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), false
	}
	return v, true
}

package model

import (
	"math"
	"strconv"
	"strings"
)

// Number is a float that may be absent, the way a spreadsheet cell may be
// empty or hold text where a number was expected.
type Number struct {
	Value float64
	Valid bool
}

// Valid wraps v as a defined Number.
func Valid(v float64) Number { return Number{Value: v, Valid: true} }

// ParseNumber coerces a raw cell into a Number. Anything that is not a
// finite decimal becomes undefined instead of failing.
func ParseNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Valid(v)
}

// String renders the value, or an empty string when undefined.
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

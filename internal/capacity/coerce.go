package capacity

import (
	"math"
	"strconv"
	"strings"
)

// CoerceHours converts raw cell input to an hour value. Blank input, input
// that does not parse as a number, and non-finite numbers all become 0.
func CoerceHours(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatHours renders hours without trailing zeros, e.g. 40, 7.5.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

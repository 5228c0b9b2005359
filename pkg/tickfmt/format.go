// Package tickfmt formats the text shown around the plots: axis values,
// the brush readout and fixed-width titles.
//
// Values are printed compactly: plain decimals in the everyday range,
// scientific notation for very large or very small magnitudes.
package tickfmt

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders v with at most four significant digits.
// Examples: "0", "0.25", "125.7", "1.2e+05", "3.1e-04"
func Format(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case v == 0:
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e4 || a < 1e-3 {
		return fmt.Sprintf("%.1e", v)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// Range renders a closed interval, e.g. "[-1, 1]".
func Range(lo, hi float64) string {
	return "[" + Format(lo) + ", " + Format(hi) + "]"
}

// Fraction renders a brush fraction exactly as stored, e.g. "0.05".
func Fraction(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Truncate cuts s to maxLen runes and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Package money is the single rounding boundary for monetary values.
// Callers keep full float64 precision and round only when a value is
// displayed or handed out of a package.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds v half away from zero to two decimal places. NaN and
// infinities are returned unchanged.
func Round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round1 rounds v half away from zero to one decimal place.
func Round1(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// Fixed formats v with exactly two decimals ("115.00"). Non-finite values
// print as "NaN", "∞" or "-∞".
func Fixed(v float64) string {
	if !finite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Format formats v as a dollar amount ("$115.00", "-$3.50").
func Format(v float64) string {
	s := Fixed(v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Percent formats v with one decimal place and a trailing percent sign.
func Percent(v float64) string {
	if !finite(v) {
		return nonFinite(v) + "%"
	}
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return "NaN"
}

// Parse coerces user input into a number. Empty or unparsable input is 0,
// and a leading "$" or surrounding spaces are ignored.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

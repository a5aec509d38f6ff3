package money

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"float noise below", 114.99999999999999, 115},
		{"half up", 535.025, 535.03},
		{"already rounded", 12.5, 12.5},
		{"zero", 0, 0},
		{"negative", -1.005, -1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); got != tt.want {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{115, "$115.00"},
		{1.5, "$1.50"},
		{0, "$0.00"},
		{-3.5, "-$3.50"},
		{535.0250278, "$535.03"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(75); got != "75.0%" {
		t.Errorf("Percent(75) = %q, want %q", got, "75.0%")
	}
	if got := Percent(66.66); got != "66.7%" {
		t.Errorf("Percent(66.66) = %q, want %q", got, "66.7%")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"100", 100},
		{" 250.75 ", 250.75},
		{"$40", 40},
		{"abc", 0},
		{"1.2.3", 0},
	}

	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNonFiniteValues(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()

	if got := Round2(inf); !math.IsInf(got, 1) {
		t.Errorf("Round2(+Inf) = %v, want +Inf", got)
	}
	if got := Round1(nan); !math.IsNaN(got) {
		t.Errorf("Round1(NaN) = %v, want NaN", got)
	}

	tests := []struct {
		in   float64
		want string
	}{
		{inf, "$∞"},
		{math.Inf(-1), "-$∞"},
		{nan, "$NaN"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Percent(nan); got != "NaN%" {
		t.Errorf("Percent(NaN) = %q, want NaN%%", got)
	}
}

package humanfmt

import (
	"math"
	"testing"
	"time"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{1, "$1.00"},
		{12.5, "$12.50"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{1234.56, "$1,234.56"},
		{1234567.89, "$1,234,567.89"},
		{-12, "-$12.00"},
		{-1234.5, "-$1,234.50"},
		{math.NaN(), "$0.00"},
	}

	for _, tt := range tests {
		got := Money(tt.input)
		if got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{1000000, "1.0M"},
		{2300000, "2.3M"},
		{1000000000, "1.0B"},
		{-42, "-42"},
		{-1500, "-1.5K"},
	}

	for _, tt := range tests {
		got := Count(tt.input)
		if got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0%"},
		{0.15, "15%"},
		{0.05, "5%"},
		{1, "100%"},
	}

	for _, tt := range tests {
		got := Percent(tt.input)
		if got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{1 * time.Second, "1.00s"},
		{45600 * time.Microsecond, "45.6ms"},
		{90 * time.Second, "1m30s"},
		{60 * time.Second, "1m"},
		{3600 * time.Second, "1h"},
		{8100 * time.Second, "2h15m"},
	}

	for _, tt := range tests {
		got := Duration(tt.input)
		if got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

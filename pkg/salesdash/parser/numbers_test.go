package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"1,234", "1234", true},
		{"12%", "12", true},
		{"1,234.50", "1234.5", true},
		{"-100", "-100", true},
		{" 42 ", "42", true},
		{"0.12", "0.12", true},
		{"1,00,000", "100000", true},
		{"-", "", false},
		{"", "", false},
		{"   ", "", false},
		{"nan", "", false},
		{"N/A", "", false},
		{"%", "", false},
	}

	for _, tt := range tests {
		got := ParseNumber(tt.input)
		if got.Valid != tt.valid {
			t.Errorf("ParseNumber(%q).Valid = %v, expected %v", tt.input, got.Valid, tt.valid)
			continue
		}
		if !tt.valid {
			continue
		}
		want := decimal.RequireFromString(tt.expected)
		if !got.Decimal.Equal(want) {
			t.Errorf("ParseNumber(%q) = %s, expected %s", tt.input, got.Decimal, want)
		}
	}
}

package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

var numberCleaner = strings.NewReplacer(",", "", "%", "")

// ParseNumber coerces a cell to a decimal after dropping thousands separators
// and percent signs. Text that is not a number ("", "-", "n/a") yields an
// invalid NullDecimal, the missing marker.
func ParseNumber(s string) decimal.NullDecimal {
	cleaned := strings.TrimSpace(numberCleaner.Replace(s))
	if cleaned == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency prefixes formatted amounts.
const DefaultCurrency = "₹"

// Formatter renders amounts for insight text.
type Formatter struct {
	Currency string
}

// Amount renders d rounded to whole units with thousands separators, e.g. "₹ 1,234".
func (f Formatter) Amount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	n := p.Sprintf("%d", d.RoundBank(0).IntPart())
	if f.Currency == "" {
		return n
	}
	return f.Currency + " " + n
}

package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount formats v in the given currency.
//
// The currency is for display only, no conversion happens. An empty or unknown
// currency code formats v with two decimals.
func FormatAmount(v float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return decimal.NewFromFloat(v).StringFixed(2)
	}
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPercent formats a fraction as a percentage: 0.1 is "10.00%".
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}

// FormatRatio formats a ratio between two amounts.
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.4f", r)
}

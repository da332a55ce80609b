package views

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatMoney renders an amount in the Indian business notation used across
// the dashboards: crores above ₹1,00,00,000, lakhs above ₹1,00,000, grouped
// digits below that.
func FormatMoney(n int64) string {
	switch {
	case n >= 1e7:
		return fmt.Sprintf("%.1f Cr", float64(n)/1e7)
	case n >= 1e5:
		return fmt.Sprintf("%.1f L", float64(n)/1e5)
	default:
		return moneyPrinter.Sprintf("%d", n)
	}
}

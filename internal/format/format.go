// Package format renders backend-supplied numbers for display.
// Metrics the backend could not compute arrive as nil pointers and
// render as "N/A"; they are never coerced to zero.
package format

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency formats an optional USD amount, e.g. "$1,234.56".
func Currency(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return CurrencyValue(*v)
}

// CurrencyValue formats a USD amount.
func CurrencyValue(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// Percent formats an optional percentage with two decimals, e.g. "20.00%".
func Percent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// Quantity formats a holding quantity with four decimals.
func Quantity(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// GainClass returns the CSS class for a gain/loss value. An unknown
// value counts as non-negative, matching how the summary renders.
func GainClass(v *float64) string {
	if v != nil && *v < 0 {
		return "loss"
	}
	return "gain"
}

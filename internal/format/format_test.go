package format_test

import (
	"testing"

	"github.com/alphadash/dashboard/internal/format"
)

func TestCurrency(t *testing.T) {
	// WHY: a nil metric means "the backend could not price this".
	// Rendering $0.00 instead would claim a worthless position.
	if got := format.Currency(nil); got != "N/A" {
		t.Errorf("Expected N/A for nil, got %q", got)
	}

	v := 1234.56
	if got := format.Currency(&v); got != "$1,234.56" {
		t.Errorf("Expected $1,234.56, got %q", got)
	}

	neg := -42.5
	if got := format.Currency(&neg); got != "-$42.50" {
		t.Errorf("Expected -$42.50, got %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := format.Percent(nil); got != "N/A" {
		t.Errorf("Expected N/A for nil, got %q", got)
	}
	v := 20.0
	if got := format.Percent(&v); got != "20.00%" {
		t.Errorf("Expected 20.00%%, got %q", got)
	}
}

func TestQuantity(t *testing.T) {
	if got := format.Quantity(8); got != "8.0000" {
		t.Errorf("Expected 8.0000, got %q", got)
	}
	if got := format.Quantity(0.12345); got != "0.1235" {
		t.Errorf("Expected 0.1235, got %q", got)
	}
}

func TestGainClass(t *testing.T) {
	if got := format.GainClass(nil); got != "gain" {
		t.Errorf("Expected gain for nil, got %q", got)
	}
	pos := 10.0
	if got := format.GainClass(&pos); got != "gain" {
		t.Errorf("Expected gain, got %q", got)
	}
	zero := 0.0
	if got := format.GainClass(&zero); got != "gain" {
		t.Errorf("Expected gain for zero, got %q", got)
	}
	neg := -10.0
	if got := format.GainClass(&neg); got != "loss" {
		t.Errorf("Expected loss, got %q", got)
	}
}

// Package validation checks form input before any request reaches the
// backend. The backend re-validates authoritatively; these checks only
// exist so violations are reported inline without a network round trip.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alphadash/dashboard/internal/apperrors"
)

// ParseQuantity parses a form quantity. Quantities must be strictly
// positive.
func ParseQuantity(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuantity, s)
	}
	if d.Sign() <= 0 {
		return 0, apperrors.ErrInvalidQuantity
	}
	return d.InexactFloat64(), nil
}

// ParsePrice parses a form purchase price. Prices must be non-negative;
// zero is allowed for grants and airdrops.
func ParsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidPrice, s)
	}
	if d.Sign() < 0 {
		return 0, apperrors.ErrInvalidPrice
	}
	return d.InexactFloat64(), nil
}

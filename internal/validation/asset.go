package validation

import (
	"strings"

	"github.com/alphadash/dashboard/internal/apperrors"
	"github.com/alphadash/dashboard/internal/model"
)

// ValidateAssetForm checks the create-asset form fields. Symbol
// uniqueness is deliberately not checked here; the backend owns that
// constraint and its rejection is surfaced as a failure.
func ValidateAssetForm(symbol, name string, assetType model.AssetType) error {
	if strings.TrimSpace(symbol) == "" {
		return apperrors.ErrSymbolRequired
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrNameRequired
	}
	if !assetType.Valid() {
		return apperrors.ErrInvalidAssetType
	}
	return nil
}

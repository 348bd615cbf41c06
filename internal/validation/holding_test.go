package validation_test

import (
	"errors"
	"testing"

	"github.com/alphadash/dashboard/internal/apperrors"
	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/validation"
)

func TestParseQuantity(t *testing.T) {
	t.Run("accepts positive quantities", func(t *testing.T) {
		for input, expected := range map[string]float64{
			"10":     10,
			"0.0001": 0.0001,
			" 2.5 ":  2.5,
		} {
			got, err := validation.ParseQuantity(input)
			if err != nil {
				t.Errorf("ParseQuantity(%q) failed: %v", input, err)
				continue
			}
			if got != expected {
				t.Errorf("ParseQuantity(%q) = %v, expected %v", input, got, expected)
			}
		}
	})

	t.Run("rejects zero, negative and unparsable quantities", func(t *testing.T) {
		for _, input := range []string{"0", "-1", "", "abc", "1.2.3"} {
			_, err := validation.ParseQuantity(input)
			if !errors.Is(err, apperrors.ErrInvalidQuantity) {
				t.Errorf("Expected ErrInvalidQuantity for %q, got %v", input, err)
			}
		}
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("accepts non-negative prices including zero", func(t *testing.T) {
		for input, expected := range map[string]float64{
			"100":    100,
			"0":      0,
			"150.25": 150.25,
		} {
			got, err := validation.ParsePrice(input)
			if err != nil {
				t.Errorf("ParsePrice(%q) failed: %v", input, err)
				continue
			}
			if got != expected {
				t.Errorf("ParsePrice(%q) = %v, expected %v", input, got, expected)
			}
		}
	})

	t.Run("rejects negative and unparsable prices", func(t *testing.T) {
		for _, input := range []string{"-0.01", "", "free"} {
			_, err := validation.ParsePrice(input)
			if !errors.Is(err, apperrors.ErrInvalidPrice) {
				t.Errorf("Expected ErrInvalidPrice for %q, got %v", input, err)
			}
		}
	})
}

func TestValidateAssetForm(t *testing.T) {
	if err := validation.ValidateAssetForm("AAPL", "Apple Inc.", model.AssetTypeStock); err != nil {
		t.Errorf("Expected valid form, got %v", err)
	}
	if err := validation.ValidateAssetForm("BTC", "Bitcoin", model.AssetTypeCrypto); err != nil {
		t.Errorf("Expected valid form, got %v", err)
	}

	cases := []struct {
		name      string
		symbol    string
		assetName string
		assetType model.AssetType
		expected  error
	}{
		{"empty symbol", "", "Apple Inc.", model.AssetTypeStock, apperrors.ErrSymbolRequired},
		{"blank symbol", "   ", "Apple Inc.", model.AssetTypeStock, apperrors.ErrSymbolRequired},
		{"empty name", "AAPL", "", model.AssetTypeStock, apperrors.ErrNameRequired},
		{"unknown type", "AAPL", "Apple Inc.", model.AssetType("bond"), apperrors.ErrInvalidAssetType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateAssetForm(tc.symbol, tc.assetName, tc.assetType)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

package apperrors

import "errors"

// Form validation errors. These block submission client-side; no
// request reaches the backend while one of them is raised.
var (
	// ErrSymbolRequired indicates an empty asset symbol on a form that needs one.
	ErrSymbolRequired = errors.New("asset symbol is required")

	// ErrNameRequired indicates an empty asset name on the create-asset form.
	ErrNameRequired = errors.New("asset name is required")

	// ErrInvalidAssetType indicates a type outside the stock/crypto enumeration.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidQuantity indicates a quantity that is missing, unparsable or not > 0.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidPrice indicates a purchase price that is missing, unparsable or negative.
	ErrInvalidPrice = errors.New("purchase price cannot be negative")

	// ErrInvalidDate indicates a purchase date not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid purchase date")
)

// Domain errors surfaced by the remote API or the session store.
var (
	// ErrAssetNotFound indicates a symbol lookup returned no matches.
	// Treated as a benign empty result, not a failure.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrHoldingNotFound indicates the holding being edited or deleted
	// no longer exists in the fetched portfolio.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSessionNotFound indicates no session row matches the cookie.
	ErrSessionNotFound = errors.New("session not found")
)

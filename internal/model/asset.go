package model

// AssetType classifies a tradable instrument.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	return t == AssetTypeStock || t == AssetTypeCrypto
}

// Asset is a tradable instrument as returned by the portfolio API.
// The ID is assigned by the backend and treated as opaque.
type Asset struct {
	ID        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      *string   `json:"name,omitempty"`
	AssetType AssetType `json:"asset_type"`
	CreatedAt string    `json:"created_at"`
}

// DisplayName returns the asset name, or "N/A" when the backend has none.
func (a Asset) DisplayName() string {
	if a.Name == nil || *a.Name == "" {
		return "N/A"
	}
	return *a.Name
}

// CreateAssetRequest is the body for POST /assets/.
type CreateAssetRequest struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	AssetType AssetType `json:"asset_type"`
}

package model

// Holding is a single purchase lot of an asset owned by a user.
//
// The backend computes all valuation metrics; the pointer fields are nil
// when the backend could not price the asset, which the UI must render
// as "N/A" rather than zero. Date fields are carried as the ISO strings
// the backend sent, never reinterpreted locally.
type Holding struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	AssetID       int64   `json:"asset_id"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	CreatedAt     string  `json:"created_at"`
	AssetInfo     *Asset  `json:"asset_info,omitempty"`

	CurrentPrice    *float64 `json:"current_price,omitempty"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
	GainLoss        *float64 `json:"gain_loss,omitempty"`
	GainLossPercent *float64 `json:"gain_loss_percent,omitempty"`
}

// PurchaseDateOnly returns the calendar-date part of the purchase
// instant, suitable for prefilling a date input.
func (h Holding) PurchaseDateOnly() string {
	if len(h.PurchaseDate) >= 10 {
		return h.PurchaseDate[:10]
	}
	return h.PurchaseDate
}

// Symbol returns the embedded asset symbol, or "" when no snapshot is present.
func (h Holding) Symbol() string {
	if h.AssetInfo == nil {
		return ""
	}
	return h.AssetInfo.Symbol
}

// PortfolioSummary is the backend-computed aggregate over all holdings.
type PortfolioSummary struct {
	TotalPurchaseValue   float64   `json:"total_purchase_value"`
	TotalCurrentValue    float64   `json:"total_current_value"`
	TotalGainLoss        float64   `json:"total_gain_loss"`
	TotalGainLossPercent *float64  `json:"total_gain_loss_percent,omitempty"`
	Holdings             []Holding `json:"holdings"`
}

// UserAssetSummaryItem is a per-asset rollup of all holdings of that
// asset, computed server-side.
type UserAssetSummaryItem struct {
	AssetID                      int64     `json:"asset_id"`
	Symbol                       string    `json:"symbol"`
	Name                         *string   `json:"name,omitempty"`
	AssetType                    AssetType `json:"asset_type"`
	TotalQuantity                float64   `json:"total_quantity"`
	WeightedAveragePurchasePrice float64   `json:"weighted_average_purchase_price"`
}

// CreateHoldingRequest is the body for POST /portfolio/holdings/.
// PurchaseDate must be a UTC-midnight ISO-8601 instant.
type CreateHoldingRequest struct {
	AssetID       int64   `json:"asset_id"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

// UpdateHoldingRequest is the body for PUT /portfolio/holdings/{id}.
// The asset binding of an existing holding is immutable, so there is
// deliberately no asset_id field.
type UpdateHoldingRequest struct {
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

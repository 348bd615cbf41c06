package model

// OutputSize selects how much price history the backend returns.
type OutputSize string

const (
	// OutputSizeCompact is the fixed recent window (about 100 days).
	OutputSizeCompact OutputSize = "compact"
	// OutputSizeFull is the entire available history.
	OutputSizeFull OutputSize = "full"
)

// Valid reports whether s is a known range selector.
func (s OutputSize) Valid() bool {
	return s == OutputSizeCompact || s == OutputSizeFull
}

// HistoricalPricePoint is one day of price data for an asset.
// SMA20/SMA50 are nil when the backend had insufficient data to
// compute the moving average at that point.
type HistoricalPricePoint struct {
	Date   string   `json:"date"`
	Open   float64  `json:"open"`
	High   float64  `json:"high"`
	Low    float64  `json:"low"`
	Close  float64  `json:"close"`
	Volume int64    `json:"volume"`
	SMA20  *float64 `json:"sma20,omitempty"`
	SMA50  *float64 `json:"sma50,omitempty"`
}

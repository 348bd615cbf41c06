package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/format"
	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// PortfolioHandler renders the authenticated portfolio overview.
type PortfolioHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *templates.Renderer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(client *backend.Client, sessions *session.Manager, renderer *templates.Renderer) *PortfolioHandler {
	return &PortfolioHandler{backend: client, sessions: sessions, renderer: renderer}
}

// portfolioData is the view model for the portfolio page. All numbers
// are pre-formatted strings; unknown metrics arrive as "N/A".
type portfolioData struct {
	templates.BaseData
	ErrorMessage string

	TotalInvested        string
	TotalCurrentValue    string
	TotalGainLoss        string
	TotalGainLossPercent string
	GainClass            string

	Positions []positionRow
	Holdings  []holdingRow
}

type positionRow struct {
	Symbol           string
	Name             string
	AssetType        string
	TotalQuantity    string
	WeightedAvgPrice string
	ChartURL         string
}

type holdingRow struct {
	ID              int64
	AssetName       string
	Symbol          string
	Quantity        string
	PurchasePrice   string
	PurchaseValue   string
	CurrentPrice    string
	CurrentValue    string
	GainLoss        string
	GainLossPercent string
	GainClass       string
	ChartURL        string
	EditURL         string
	DeleteURL       string
}

// Portfolio handles GET /portfolio.
//
// Without a credential it short-circuits to an unauthorized message
// and issues no backend request. Otherwise it fetches the summary and
// the per-asset rollup concurrently and renders only once both have
// resolved, so the page never shows one aggregate without the other.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	data := portfolioData{BaseData: baseData(h.sessions, w, r, "My Portfolio")}

	token := h.sessions.Token(r)
	if token == "" {
		data.ErrorMessage = "You must be logged in to view your portfolio."
		h.renderer.Render(w, http.StatusUnauthorized, "portfolio", data)
		return
	}

	var summary model.PortfolioSummary
	var rollup []model.UserAssetSummaryItem

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		summary, err = h.backend.GetPortfolioSummary(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		rollup, err = h.backend.GetUserAssetSummary(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		if backend.IsUnauthorized(err) {
			// Stale credential: the backend is the authority, so drop
			// the user back at the login entry point.
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		data.ErrorMessage = backend.ErrorMessage(err, "Failed to fetch portfolio data.")
		h.renderer.Render(w, http.StatusOK, "portfolio", data)
		return
	}

	data.TotalInvested = format.CurrencyValue(summary.TotalPurchaseValue)
	data.TotalCurrentValue = format.CurrencyValue(summary.TotalCurrentValue)
	data.TotalGainLoss = format.CurrencyValue(summary.TotalGainLoss)
	data.TotalGainLossPercent = format.Percent(summary.TotalGainLossPercent)
	totalGainLoss := summary.TotalGainLoss
	data.GainClass = format.GainClass(&totalGainLoss)

	for _, item := range rollup {
		data.Positions = append(data.Positions, newPositionRow(item))
	}
	for _, holding := range summary.Holdings {
		data.Holdings = append(data.Holdings, newHoldingRow(holding))
	}

	h.renderer.Render(w, http.StatusOK, "portfolio", data)
}

func newPositionRow(item model.UserAssetSummaryItem) positionRow {
	name := "N/A"
	if item.Name != nil && *item.Name != "" {
		name = *item.Name
	}
	return positionRow{
		Symbol:           item.Symbol,
		Name:             name,
		AssetType:        string(item.AssetType),
		TotalQuantity:    format.Quantity(item.TotalQuantity),
		WeightedAvgPrice: format.CurrencyValue(item.WeightedAveragePurchasePrice),
		ChartURL:         chartURL(item.Symbol),
	}
}

func newHoldingRow(h model.Holding) holdingRow {
	row := holdingRow{
		ID:              h.ID,
		AssetName:       "N/A",
		Symbol:          h.Symbol(),
		Quantity:        format.Quantity(h.Quantity),
		PurchasePrice:   format.CurrencyValue(h.PurchasePrice),
		PurchaseValue:   format.CurrencyValue(h.Quantity * h.PurchasePrice),
		CurrentPrice:    format.Currency(h.CurrentPrice),
		CurrentValue:    format.Currency(h.CurrentValue),
		GainLoss:        format.Currency(h.GainLoss),
		GainLossPercent: format.Percent(h.GainLossPercent),
		GainClass:       format.GainClass(h.GainLoss),
		EditURL:         fmt.Sprintf("/portfolio/holdings/%d/edit", h.ID),
		DeleteURL:       fmt.Sprintf("/portfolio/holdings/%d/delete", h.ID),
	}
	if h.AssetInfo != nil {
		row.AssetName = h.AssetInfo.DisplayName()
		row.ChartURL = chartURL(h.AssetInfo.Symbol)
	}
	return row
}

func chartURL(symbol string) string {
	return fmt.Sprintf("/assets/%s/chart", url.PathEscape(symbol))
}

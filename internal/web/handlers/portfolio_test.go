package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/web/handlers"
)

func TestPortfolio_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)
	handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "You must be logged in to view your portfolio.") {
		t.Error("Expected unauthorized message in body")
	}

	// WHY: without a credential there is nothing the backend could
	// answer, so the page must short-circuit before any fetch.
	if env.backend.TotalCalls() != 0 {
		t.Errorf("Expected zero backend calls, got %d", env.backend.TotalCalls())
	}
}

func TestPortfolio_RendersSummaryAndRollup(t *testing.T) {
	env := newTestEnv(t)

	name := "Apple Inc."
	price := 150.0
	value := 1200.0
	gain := 200.0
	gainPct := 20.0
	env.backend.Summary = model.PortfolioSummary{
		TotalPurchaseValue:   1000,
		TotalCurrentValue:    1200,
		TotalGainLoss:        200,
		TotalGainLossPercent: &gainPct,
		Holdings: []model.Holding{
			{
				ID:            7,
				AssetID:       1,
				Quantity:      8,
				PurchasePrice: 125,
				PurchaseDate:  "2023-01-01T00:00:00",
				AssetInfo: &model.Asset{
					ID: 1, Symbol: "AAPL", Name: &name, AssetType: model.AssetTypeStock,
				},
				CurrentPrice:    &price,
				CurrentValue:    &value,
				GainLoss:        &gain,
				GainLossPercent: &gainPct,
			},
		},
	}
	env.backend.AssetSummary = []model.UserAssetSummaryItem{
		{AssetID: 1, Symbol: "AAPL", Name: &name, AssetType: model.AssetTypeStock, TotalQuantity: 8, WeightedAveragePurchasePrice: 125},
	}

	handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	env.login(t, req, "secret-token")
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"My Portfolio",
		"Summary",
		"Aggregated Asset Positions",
		"Detailed Holdings",
		"$1,000.00", // total invested
		"$1,200.00", // total current value
		"$200.00",   // total gain/loss
		"20.00%",
		"Apple Inc.",
		"AAPL",
		"/assets/AAPL/chart",
		"/portfolio/holdings/7/edit",
		"/portfolio/holdings/7/delete",
		"Add New Holding",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}

	// Both aggregates come from one fetch each.
	if got := env.backend.Calls("GET /portfolio/holdings/"); got != 1 {
		t.Errorf("Expected 1 summary call, got %d", got)
	}
	if got := env.backend.Calls("GET /users/me/asset-summary"); got != 1 {
		t.Errorf("Expected 1 rollup call, got %d", got)
	}
	if got := env.backend.Authorization("GET /portfolio/holdings/"); got != "Bearer secret-token" {
		t.Errorf("Expected bearer header on summary call, got %q", got)
	}
}

// TestPortfolio_UnpricedHoldingShowsNA pins the nil-metric contract:
// a holding the backend could not price renders "N/A", never $0.00,
// because a zero reads as a real valuation.
func TestPortfolio_UnpricedHoldingShowsNA(t *testing.T) {
	env := newTestEnv(t)
	env.backend.Summary = model.PortfolioSummary{
		TotalPurchaseValue: 500,
		Holdings: []model.Holding{
			{ID: 3, AssetID: 2, Quantity: 5, PurchasePrice: 100, PurchaseDate: "2023-06-01T00:00:00"},
		},
	}

	handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	env.login(t, req, "secret-token")
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	if !strings.Contains(rec.Body.String(), "N/A") {
		t.Error("Expected N/A for unpriced holding metrics")
	}
}

func TestPortfolio_BackendErrors(t *testing.T) {
	t.Run("401 redirects to login", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.SummaryStatus = http.StatusUnauthorized
		env.backend.SummaryDetail = "Not authenticated"
		handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

		req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
		env.login(t, req, "stale-token")
		rec := httptest.NewRecorder()
		handler.Portfolio(rec, req)

		if rec.Code != http.StatusFound {
			t.Errorf("Expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("Expected redirect to /login, got %q", loc)
		}
	})

	t.Run("other errors render the backend detail inline", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.SummaryStatus = http.StatusInternalServerError
		env.backend.SummaryDetail = "Database is on fire"
		handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

		req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.Portfolio(rec, req)

		if !strings.Contains(rec.Body.String(), "Database is on fire") {
			t.Error("Expected backend detail in body")
		}
	})
}

func TestPortfolio_EmptyStates(t *testing.T) {
	env := newTestEnv(t)
	handler := handlers.NewPortfolioHandler(env.backend.Client(), env.sessions, env.renderer)

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	env.login(t, req, "secret-token")
	rec := httptest.NewRecorder()
	handler.Portfolio(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "No aggregated positions yet.") {
		t.Error("Expected aggregated empty state")
	}
	if !strings.Contains(body, "You have no holdings in your portfolio yet.") {
		t.Error("Expected holdings empty state")
	}
}

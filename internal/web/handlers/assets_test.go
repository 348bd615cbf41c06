package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/testutil"
	"github.com/alphadash/dashboard/internal/web/handlers"
)

func TestManageAssetsForm(t *testing.T) {
	env := newTestEnv(t)
	handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

	req := httptest.NewRequest(http.MethodGet, "/manage-assets", nil)
	env.login(t, req, "secret-token")
	rec := httptest.NewRecorder()
	handler.ManageAssetsForm(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Manage Assets - Create New Asset") {
		t.Error("Expected page heading")
	}
	if !strings.Contains(body, "Create Asset") {
		t.Error("Expected submit button")
	}
	if !strings.Contains(body, `<option value="stock" selected>`) {
		t.Error("Expected stock preselected as the default type")
	}
}

func TestCreateAsset(t *testing.T) {
	t.Run("missing fields are rejected without backend calls", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewFormRequest("/manage-assets", map[string]string{
			"symbol": "", "name": "Apple Inc.", "asset_type": "stock",
		}, nil)
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.CreateAsset(rec, req)

		if !strings.Contains(rec.Body.String(), "Symbol and Name are required.") {
			t.Error("Expected required-fields message")
		}
		if env.backend.TotalCalls() != 0 {
			t.Errorf("Expected zero backend calls, got %d", env.backend.TotalCalls())
		}
	})

	t.Run("unknown asset type is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewFormRequest("/manage-assets", map[string]string{
			"symbol": "AAPL", "name": "Apple Inc.", "asset_type": "bond",
		}, nil)
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.CreateAsset(rec, req)

		if !strings.Contains(rec.Body.String(), "Asset type must be stock or crypto.") {
			t.Error("Expected asset-type message")
		}
		if env.backend.TotalCalls() != 0 {
			t.Errorf("Expected zero backend calls, got %d", env.backend.TotalCalls())
		}
	})

	t.Run("success confirms and resets the form", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewFormRequest("/manage-assets", map[string]string{
			"symbol": "AAPL", "name": "Apple Inc.", "asset_type": "stock",
		}, nil)
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.CreateAsset(rec, req)

		body := rec.Body.String()
		if !strings.Contains(body, "Apple Inc. (AAPL)") || !strings.Contains(body, "created successfully!") {
			t.Error("Expected creation confirmation in body")
		}
		// Reset: the symbol input no longer carries the submitted value.
		if strings.Contains(body, `name="symbol" value="AAPL"`) {
			t.Error("Expected symbol input to be cleared after success")
		}

		created := env.backend.CreatedAsset
		if created == nil {
			t.Fatal("Expected a create call to reach the backend")
		}
		if created.Symbol != "AAPL" || created.Name != "Apple Inc." || created.AssetType != model.AssetTypeStock {
			t.Errorf("Unexpected payload %+v", created)
		}
	})

	t.Run("backend rejection surfaces its detail", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.MutateStatus = http.StatusBadRequest
		env.backend.MutateDetail = "Asset with this symbol already exists"
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewFormRequest("/manage-assets", map[string]string{
			"symbol": "AAPL", "name": "Apple Inc.", "asset_type": "stock",
		}, nil)
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.CreateAsset(rec, req)

		if !strings.Contains(rec.Body.String(), "Asset with this symbol already exists") {
			t.Error("Expected backend detail in body")
		}
	})
}

func TestAssetDetail(t *testing.T) {
	t.Run("renders the chart when history exists", func(t *testing.T) {
		env := newTestEnv(t)
		sma := 101.5
		env.backend.History["AAPL"] = []model.HistoricalPricePoint{
			{Date: "2023-01-01", Close: 100, SMA20: &sma},
			{Date: "2023-01-02", Close: 102},
		}
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/assets/AAPL/chart", map[string]string{"symbol": "AAPL"})
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.AssetDetail(rec, req)

		body := rec.Body.String()
		if !strings.Contains(body, "Historical Prices for AAPL") {
			t.Error("Expected page heading")
		}
		if !strings.Contains(body, "asset-chart") {
			t.Error("Expected chart canvas")
		}
		if !strings.Contains(body, "AAPL Closing Price") {
			t.Error("Expected closing price dataset label in chart data")
		}
		if !strings.Contains(body, "SMA 20") {
			t.Error("Expected SMA 20 overlay in chart data")
		}
		if strings.Contains(body, "SMA 50") {
			t.Error("Expected no SMA 50 overlay when the series is absent")
		}
	})

	t.Run("lower-case route symbol is canonicalized", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.History["AAPL"] = []model.HistoricalPricePoint{{Date: "2023-01-01", Close: 100}}
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/assets/aapl/chart", map[string]string{"symbol": "aapl"})
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.AssetDetail(rec, req)

		if !strings.Contains(rec.Body.String(), "Historical Prices for AAPL") {
			t.Error("Expected upper-cased symbol in heading")
		}
	})

	t.Run("empty history renders the empty state", func(t *testing.T) {
		env := newTestEnv(t)
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/assets/MSFT/chart", map[string]string{"symbol": "MSFT"})
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.AssetDetail(rec, req)

		body := rec.Body.String()
		if !strings.Contains(body, "No historical data found for MSFT.") {
			t.Error("Expected empty-state message")
		}
		if strings.Contains(body, "asset-chart") {
			t.Error("Expected no chart canvas without data")
		}
	})

	t.Run("invalid range falls back to compact", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.History["AAPL"] = []model.HistoricalPricePoint{{Date: "2023-01-01", Close: 100}}
		handler := handlers.NewAssetHandler(env.backend.Client(), env.sessions, env.renderer)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/assets/AAPL/chart?range=bogus", map[string]string{"symbol": "AAPL"})
		env.login(t, req, "secret-token")
		rec := httptest.NewRecorder()
		handler.AssetDetail(rec, req)

		if !strings.Contains(rec.Body.String(), `<option value="compact" selected>`) {
			t.Error("Expected compact selected for invalid range")
		}
	})
}

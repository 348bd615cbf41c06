package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/model"
)

// FakeBackend is an httptest stand-in for the remote portfolio API.
// Configure the exported fields with canned data before exercising a
// handler; captured payloads and per-endpoint call counts are available
// afterwards for assertions.
type FakeBackend struct {
	t      *testing.T
	Server *httptest.Server

	mu    sync.Mutex
	calls map[string]int

	// Canned responses
	Summary      model.PortfolioSummary
	AssetSummary []model.UserAssetSummaryItem
	Assets       map[string]model.Asset // keyed by symbol
	History      map[string][]model.HistoricalPricePoint

	// Forced error responses; zero means success
	SummaryStatus int
	SummaryDetail string
	MutateStatus  int
	MutateDetail  string

	// Captured request payloads
	CreatedAsset     *model.CreateAssetRequest
	CreatedHolding   *model.CreateHoldingRequest
	UpdatedHolding   *model.UpdateHoldingRequest
	UpdatedHoldingID int64
	DeletedHoldingID int64

	// Authorization header of the most recent request, per endpoint key
	auth map[string]string
}

// NewFakeBackend starts a fake portfolio API serving the configured
// canned data. It is shut down automatically when the test completes.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	f := &FakeBackend{
		t:       t,
		calls:   make(map[string]int),
		auth:    make(map[string]string),
		Assets:  make(map[string]model.Asset),
		History: make(map[string][]model.HistoricalPricePoint),
	}

	r := chi.NewRouter()
	r.Get("/portfolio/holdings/", f.getSummary)
	r.Get("/users/me/asset-summary", f.getAssetSummary)
	r.Get("/assets/", f.getAssets)
	r.Post("/assets/", f.createAsset)
	r.Post("/portfolio/holdings/", f.createHolding)
	r.Put("/portfolio/holdings/{id}", f.updateHolding)
	r.Delete("/portfolio/holdings/{id}", f.deleteHolding)
	r.Get("/market-data/{symbol}/history", f.getHistory)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)

	return f
}

// Client returns an API client pointed at the fake server.
func (f *FakeBackend) Client() *backend.Client {
	return backend.NewClient(f.Server.URL)
}

// Calls returns how many times the given endpoint key was hit, e.g.
// "GET /portfolio/holdings/".
func (f *FakeBackend) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

// TotalCalls returns the number of requests across all endpoints.
func (f *FakeBackend) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// Authorization returns the Authorization header seen on the most
// recent request to the given endpoint key.
func (f *FakeBackend) Authorization(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[key]
}

func (f *FakeBackend) record(key string, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	f.auth[key] = r.Header.Get("Authorization")
}

func (f *FakeBackend) getSummary(w http.ResponseWriter, r *http.Request) {
	f.record("GET /portfolio/holdings/", r)
	if f.SummaryStatus != 0 {
		respondDetail(w, f.SummaryStatus, f.SummaryDetail)
		return
	}
	respondJSON(w, http.StatusOK, f.Summary)
}

func (f *FakeBackend) getAssetSummary(w http.ResponseWriter, r *http.Request) {
	f.record("GET /users/me/asset-summary", r)
	if f.SummaryStatus != 0 {
		respondDetail(w, f.SummaryStatus, f.SummaryDetail)
		return
	}
	items := f.AssetSummary
	if items == nil {
		items = []model.UserAssetSummaryItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (f *FakeBackend) getAssets(w http.ResponseWriter, r *http.Request) {
	f.record("GET /assets/", r)
	symbol := r.URL.Query().Get("symbol")
	asset, ok := f.Assets[symbol]
	if !ok {
		respondDetail(w, http.StatusNotFound, "Asset not found")
		return
	}
	respondJSON(w, http.StatusOK, []model.Asset{asset})
}

func (f *FakeBackend) createAsset(w http.ResponseWriter, r *http.Request) {
	f.record("POST /assets/", r)
	if f.MutateStatus != 0 {
		respondDetail(w, f.MutateStatus, f.MutateDetail)
		return
	}

	var req model.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	f.mu.Lock()
	f.CreatedAsset = &req
	f.mu.Unlock()

	name := req.Name
	respondJSON(w, http.StatusCreated, model.Asset{
		ID:        1,
		Symbol:    req.Symbol,
		Name:      &name,
		AssetType: req.AssetType,
		CreatedAt: "2023-01-01T00:00:00Z",
	})
}

func (f *FakeBackend) createHolding(w http.ResponseWriter, r *http.Request) {
	f.record("POST /portfolio/holdings/", r)
	if f.MutateStatus != 0 {
		respondDetail(w, f.MutateStatus, f.MutateDetail)
		return
	}

	var req model.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	f.mu.Lock()
	f.CreatedHolding = &req
	f.mu.Unlock()

	respondJSON(w, http.StatusCreated, model.Holding{
		ID:            1,
		AssetID:       req.AssetID,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
	})
}

func (f *FakeBackend) updateHolding(w http.ResponseWriter, r *http.Request) {
	f.record("PUT /portfolio/holdings/{id}", r)
	if f.MutateStatus != 0 {
		respondDetail(w, f.MutateStatus, f.MutateDetail)
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req model.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	f.mu.Lock()
	f.UpdatedHolding = &req
	f.UpdatedHoldingID = id
	f.mu.Unlock()

	respondJSON(w, http.StatusOK, model.Holding{
		ID:            id,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
	})
}

func (f *FakeBackend) deleteHolding(w http.ResponseWriter, r *http.Request) {
	f.record("DELETE /portfolio/holdings/{id}", r)
	if f.MutateStatus != 0 {
		respondDetail(w, f.MutateStatus, f.MutateDetail)
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	f.mu.Lock()
	f.DeletedHoldingID = id
	f.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeBackend) getHistory(w http.ResponseWriter, r *http.Request) {
	f.record("GET /market-data/{symbol}/history", r)
	symbol := chi.URLParam(r, "symbol")
	points := f.History[symbol]
	if points == nil {
		points = []model.HistoricalPricePoint{}
	}
	respondJSON(w, http.StatusOK, points)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alphadash/dashboard/internal/apperrors"
	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/validation"
	"github.com/alphadash/dashboard/internal/web/chartdata"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// AssetHandler serves asset creation and the historical price chart.
type AssetHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *templates.Renderer
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(client *backend.Client, sessions *session.Manager, renderer *templates.Renderer) *AssetHandler {
	return &AssetHandler{backend: client, sessions: sessions, renderer: renderer}
}

// manageAssetsData is the view model for the create-asset page.
type manageAssetsData struct {
	templates.BaseData
	Symbol         string
	Name           string
	AssetType      string
	ErrorMessage   string
	SuccessMessage string
}

// assetDetailData is the view model for the historical price page.
type assetDetailData struct {
	templates.BaseData
	Symbol       string
	Range        string
	ErrorMessage string
	HasData      bool
	ChartJSON    template.JS
	ChartTitle   string
}

// ManageAssetsForm handles GET /manage-assets.
func (h *AssetHandler) ManageAssetsForm(w http.ResponseWriter, r *http.Request) {
	data := manageAssetsData{
		BaseData:  baseData(h.sessions, w, r, "Manage Assets"),
		AssetType: string(model.AssetTypeStock),
	}
	h.renderer.Render(w, http.StatusOK, "manage_assets", data)
}

// CreateAsset handles POST /manage-assets. Symbol uniqueness is not
// checked here; a backend rejection is surfaced as the failure message.
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	data := manageAssetsData{
		BaseData:  baseData(h.sessions, w, r, "Manage Assets"),
		Symbol:    strings.TrimSpace(r.FormValue("symbol")),
		Name:      strings.TrimSpace(r.FormValue("name")),
		AssetType: r.FormValue("asset_type"),
	}

	if err := validation.ValidateAssetForm(data.Symbol, data.Name, model.AssetType(data.AssetType)); err != nil {
		if errors.Is(err, apperrors.ErrInvalidAssetType) {
			data.ErrorMessage = "Asset type must be stock or crypto."
		} else {
			data.ErrorMessage = "Symbol and Name are required."
		}
		h.renderer.Render(w, http.StatusOK, "manage_assets", data)
		return
	}

	token := h.sessions.Token(r)
	asset, err := h.backend.CreateAsset(r.Context(), token, model.CreateAssetRequest{
		Symbol:    data.Symbol,
		Name:      data.Name,
		AssetType: model.AssetType(data.AssetType),
	})
	if err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		data.ErrorMessage = backend.ErrorMessage(err, "Failed to create asset.")
		h.renderer.Render(w, http.StatusOK, "manage_assets", data)
		return
	}

	// Success resets the form and confirms what was created.
	data = manageAssetsData{
		BaseData:       data.BaseData,
		AssetType:      string(model.AssetTypeStock),
		SuccessMessage: fmt.Sprintf("Asset \"%s (%s)\" created successfully!", asset.DisplayName(), asset.Symbol),
	}
	h.renderer.Render(w, http.StatusOK, "manage_assets", data)
}

// AssetDetail handles GET /assets/{symbol}/chart. The range selector
// re-submits the page as a GET, so every selection is a fresh fetch.
func (h *AssetHandler) AssetDetail(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

	size := model.OutputSize(r.URL.Query().Get("range"))
	if !size.Valid() {
		size = model.OutputSizeCompact
	}

	data := assetDetailData{
		BaseData: baseData(h.sessions, w, r, symbol+" Chart"),
		Symbol:   symbol,
		Range:    string(size),
	}

	points, err := h.backend.GetAssetHistory(r.Context(), symbol, size)
	if err != nil {
		data.ErrorMessage = backend.ErrorMessage(err, fmt.Sprintf("Failed to fetch historical data for %s.", symbol))
		h.renderer.Render(w, http.StatusOK, "asset_detail", data)
		return
	}

	if len(points) == 0 {
		h.renderer.Render(w, http.StatusOK, "asset_detail", data)
		return
	}

	cfg := chartdata.Build(symbol, points)
	encoded, err := json.Marshal(cfg)
	if err != nil {
		log.Printf("assets: failed to encode chart data for %s: %v", symbol, err)
		data.ErrorMessage = fmt.Sprintf("Failed to render chart for %s.", symbol)
		h.renderer.Render(w, http.StatusOK, "asset_detail", data)
		return
	}

	data.HasData = true
	data.ChartJSON = template.JS(encoded)
	data.ChartTitle = symbol + " Historical Price"
	h.renderer.Render(w, http.StatusOK, "asset_detail", data)
}

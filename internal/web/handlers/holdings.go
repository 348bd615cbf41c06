package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alphadash/dashboard/internal/apperrors"
	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/model"
	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/validation"
	"github.com/alphadash/dashboard/internal/web/flash"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// HoldingHandler serves the add/edit/delete holding flows.
//
// Validation runs before any backend call: a rejected form re-renders
// with an inline message and issues zero requests. In add mode the
// symbol is resolved to a backend asset id on submit; in edit mode the
// asset binding is immutable and the symbol is display-only.
type HoldingHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *templates.Renderer
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(client *backend.Client, sessions *session.Manager, renderer *templates.Renderer) *HoldingHandler {
	return &HoldingHandler{backend: client, sessions: sessions, renderer: renderer}
}

// holdingFormData is the view model for the holding form in both modes.
type holdingFormData struct {
	templates.BaseData
	Mode         string // "add" or "edit"
	Heading      string
	SubmitLabel  string
	Action       string
	Symbol       string
	Quantity     string
	Price        string
	Date         string
	ErrorMessage string
}

// holdingDeleteData is the view model for the delete confirmation page.
type holdingDeleteData struct {
	templates.BaseData
	Symbol string
	Action string
}

// NewForm handles GET /portfolio/holdings/new.
func (h *HoldingHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := h.addFormData(w, r)
	data.Date = time.Now().UTC().Format("2006-01-02")
	h.renderer.Render(w, http.StatusOK, "holding_form", data)
}

// Create handles POST /portfolio/holdings/new.
func (h *HoldingHandler) Create(w http.ResponseWriter, r *http.Request) {
	data := h.addFormData(w, r)
	data.Symbol = strings.TrimSpace(r.FormValue("symbol"))
	data.Quantity = r.FormValue("quantity")
	data.Price = r.FormValue("purchase_price")
	data.Date = r.FormValue("purchase_date")

	if data.Symbol == "" {
		data.ErrorMessage = "Asset Symbol is required for adding a new holding."
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	quantity, price, purchaseDate, errMsg := parseHoldingFields(data.Quantity, data.Price, data.Date)
	if errMsg != "" {
		data.ErrorMessage = errMsg
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	token := h.sessions.Token(r)

	asset, err := h.backend.GetAssetBySymbol(r.Context(), token, data.Symbol)
	if err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		data.ErrorMessage = backend.ErrorMessage(err, "Failed to add holding.")
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}
	if asset == nil {
		data.ErrorMessage = fmt.Sprintf("Asset with symbol %q not found.", data.Symbol)
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	req := model.CreateHoldingRequest{
		AssetID:       asset.ID,
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  validation.FormatInstant(purchaseDate),
	}
	if _, err := h.backend.CreateHolding(r.Context(), token, req); err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		data.ErrorMessage = backend.ErrorMessage(err, "Failed to add holding.")
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	flash.Success(w, "Holding added successfully!")
	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// EditForm handles GET /portfolio/holdings/{holdingID}/edit.
// The holding is loaded from the portfolio summary; its symbol is
// rendered read-only and never re-resolved.
func (h *HoldingHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.holdingID(w, r)
	if !ok {
		return
	}

	token := h.sessions.Token(r)
	holding, err := h.findHolding(r.Context(), token, id)
	if err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		flash.Error(w, backend.ErrorMessage(err, "Failed to load holding."))
		http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
		return
	}

	data := h.editFormData(w, r, holding.ID, holding.Symbol())
	data.Quantity = strconv.FormatFloat(holding.Quantity, 'f', -1, 64)
	data.Price = strconv.FormatFloat(holding.PurchasePrice, 'f', -1, 64)
	data.Date = holding.PurchaseDateOnly()
	h.renderer.Render(w, http.StatusOK, "holding_form", data)
}

// Update handles POST /portfolio/holdings/{holdingID}/edit.
// The payload carries no asset id: only quantity, price and date are
// mutable.
func (h *HoldingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.holdingID(w, r)
	if !ok {
		return
	}

	// The symbol travels as a hidden display-context field so a
	// validation failure can re-render without a backend round trip.
	data := h.editFormData(w, r, id, r.FormValue("symbol"))
	data.Quantity = r.FormValue("quantity")
	data.Price = r.FormValue("purchase_price")
	data.Date = r.FormValue("purchase_date")

	quantity, price, purchaseDate, errMsg := parseHoldingFields(data.Quantity, data.Price, data.Date)
	if errMsg != "" {
		data.ErrorMessage = errMsg
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	token := h.sessions.Token(r)
	req := model.UpdateHoldingRequest{
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  validation.FormatInstant(purchaseDate),
	}
	if _, err := h.backend.UpdateHolding(r.Context(), token, id, req); err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		data.ErrorMessage = backend.ErrorMessage(err, "Failed to update holding.")
		h.renderer.Render(w, http.StatusOK, "holding_form", data)
		return
	}

	flash.Success(w, "Holding updated successfully!")
	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// ConfirmDelete handles GET /portfolio/holdings/{holdingID}/delete,
// the explicit confirmation step before anything is removed.
func (h *HoldingHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.holdingID(w, r)
	if !ok {
		return
	}

	token := h.sessions.Token(r)
	holding, err := h.findHolding(r.Context(), token, id)
	if err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		flash.Error(w, backend.ErrorMessage(err, "Failed to load holding."))
		http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
		return
	}

	data := holdingDeleteData{
		BaseData: baseData(h.sessions, w, r, "Delete Holding"),
		Symbol:   holding.Symbol(),
		Action:   fmt.Sprintf("/portfolio/holdings/%d/delete", id),
	}
	h.renderer.Render(w, http.StatusOK, "holding_delete", data)
}

// Delete handles POST /portfolio/holdings/{holdingID}/delete.
func (h *HoldingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.holdingID(w, r)
	if !ok {
		return
	}

	token := h.sessions.Token(r)
	if err := h.backend.DeleteHolding(r.Context(), token, id); err != nil {
		if backend.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		flash.Error(w, backend.ErrorMessage(err, "Failed to delete holding."))
		http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
		return
	}

	flash.Success(w, "Holding deleted successfully!")
	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

func (h *HoldingHandler) addFormData(w http.ResponseWriter, r *http.Request) holdingFormData {
	return holdingFormData{
		BaseData:    baseData(h.sessions, w, r, "Add Holding"),
		Mode:        "add",
		Heading:     "Add New Holding",
		SubmitLabel: "Add Holding",
		Action:      "/portfolio/holdings/new",
	}
}

func (h *HoldingHandler) editFormData(w http.ResponseWriter, r *http.Request, id int64, symbol string) holdingFormData {
	return holdingFormData{
		BaseData:    baseData(h.sessions, w, r, "Edit Holding"),
		Mode:        "edit",
		Heading:     fmt.Sprintf("Edit Holding (%s)", symbol),
		SubmitLabel: "Update Holding",
		Action:      fmt.Sprintf("/portfolio/holdings/%d/edit", id),
		Symbol:      symbol,
	}
}

// holdingID extracts and parses the holding id route parameter.
func (h *HoldingHandler) holdingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "holdingID"), 10, 64)
	if err != nil {
		log.Printf("holdings: invalid holding id %q", chi.URLParam(r, "holdingID"))
		flash.Error(w, "Invalid holding.")
		http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
		return 0, false
	}
	return id, true
}

// findHolding locates one holding within the fetched portfolio summary.
func (h *HoldingHandler) findHolding(ctx context.Context, token string, id int64) (model.Holding, error) {
	summary, err := h.backend.GetPortfolioSummary(ctx, token)
	if err != nil {
		return model.Holding{}, err
	}
	for _, holding := range summary.Holdings {
		if holding.ID == id {
			return holding, nil
		}
	}
	return model.Holding{}, apperrors.ErrHoldingNotFound
}

// parseHoldingFields validates the shared mutable fields of both form
// modes. The message mirrors the inline text users see.
func parseHoldingFields(quantityStr, priceStr, dateStr string) (quantity, price float64, purchaseDate time.Time, errMsg string) {
	quantity, err := validation.ParseQuantity(quantityStr)
	if err != nil {
		return 0, 0, time.Time{}, "Quantity must be > 0 and Purchase Price must be >= 0."
	}
	price, err = validation.ParsePrice(priceStr)
	if err != nil {
		return 0, 0, time.Time{}, "Quantity must be > 0 and Purchase Price must be >= 0."
	}
	purchaseDate, err = validation.ParsePurchaseDate(dateStr)
	if err != nil {
		return 0, 0, time.Time{}, "Purchase Date must be a valid date."
	}
	return quantity, price, purchaseDate, ""
}

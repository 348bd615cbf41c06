package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// placeholderToken is stored when the simulated login form submits no
// token of its own. Real credentials arrive once a login flow exists.
const placeholderToken = "fake-test-token"

// PageHandler serves the public shell pages and the session lifecycle.
type PageHandler struct {
	sessions *session.Manager
	renderer *templates.Renderer
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sessions *session.Manager, renderer *templates.Renderer) *PageHandler {
	return &PageHandler{sessions: sessions, renderer: renderer}
}

// Home renders the public landing page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "home", baseData(h.sessions, w, r, "Home"))
}

// LoginForm renders the login placeholder.
func (h *PageHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login", baseData(h.sessions, w, r, "Login"))
}

// Login simulates a login: it stores the submitted bearer token (or a
// placeholder) in a fresh session and sends the user to the portfolio.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.FormValue("token"))
	if token == "" {
		token = placeholderToken
	}

	if err := h.sessions.Create(w, token); err != nil {
		log.Printf("login: failed to create session: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// Logout destroys the session and returns to the landing page, so all
// per-page state is rebuilt from scratch on the next request.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		log.Printf("logout: failed to destroy session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

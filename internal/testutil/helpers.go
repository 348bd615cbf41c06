package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// NewTestSessionManager creates a session manager over a test store
// with a freshly generated encryption key and a short TTL.
func NewTestSessionManager(t *testing.T, db *sql.DB) *session.Manager {
	t.Helper()

	key, err := session.LoadKey("")
	if err != nil {
		t.Fatalf("Failed to generate session key: %v", err)
	}

	return session.NewManager(db, key, time.Hour)
}

// NewTestRenderer parses the embedded templates for handler tests.
func NewTestRenderer(t *testing.T) *templates.Renderer {
	t.Helper()

	renderer, err := templates.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return renderer
}

// Authenticate creates a session holding token and attaches its cookie
// to the request.
func Authenticate(t *testing.T, m *session.Manager, req *http.Request, token string) {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := m.Create(rec, token); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
}

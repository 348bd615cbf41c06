// Package session centralizes every read and write of the user's
// bearer credential. The browser only ever sees an opaque session-id
// cookie; the credential itself lives fernet-encrypted in the SQLite
// session store and is decrypted on each authenticated request.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/alphadash/dashboard/internal/apperrors"
)

// CookieName is the session-id cookie set on login.
const CookieName = "alphadash_session"

// Manager stores and retrieves session credentials.
type Manager struct {
	db   *sql.DB
	keys []*fernet.Key
	ttl  time.Duration
}

// NewManager creates a session manager over the given store.
// ttl bounds both the session row and the fernet token lifetime.
func NewManager(db *sql.DB, key *fernet.Key, ttl time.Duration) *Manager {
	return &Manager{
		db:   db,
		keys: []*fernet.Key{key},
		ttl:  ttl,
	}
}

// LoadKey decodes a base64 fernet key, or generates an ephemeral one
// when encoded is empty. An ephemeral key invalidates all sessions on
// restart, which is acceptable for development setups.
func LoadKey(encoded string) (*fernet.Key, error) {
	if encoded == "" {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		log.Println("SESSION_KEY not set, generated ephemeral key; sessions will not survive restarts")
		return &key, nil
	}

	keys, err := fernet.DecodeKeys(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session key: %w", err)
	}
	return keys[0], nil
}

// Create stores the bearer token under a fresh session id and sets the
// session cookie on the response.
func (m *Manager) Create(w http.ResponseWriter, token string) error {
	encrypted, err := fernet.EncryptAndSign([]byte(token), m.keys[0])
	if err != nil {
		return fmt.Errorf("failed to encrypt session token: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = m.db.Exec(
		"INSERT INTO session (id, token, created_at, expires_at) VALUES (?, ?, ?, ?)",
		id,
		string(encrypted),
		now.Format(time.RFC3339),
		now.Add(m.ttl).Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Token returns the bearer credential for the request, or "" when the
// request carries no valid session. It reads through to the store on
// every call so a logout is visible to the very next render.
func (m *Manager) Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	token, err := m.lookup(cookie.Value)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSessionNotFound) {
			log.Printf("session: lookup failed: %v", err)
		}
		return ""
	}
	return token
}

// IsAuthenticated reports whether the request carries a valid session.
// Presence of a credential is the only check; an expired-but-present
// backend token stays authenticated until the backend answers 401.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Token(r) != ""
}

// Destroy removes the request's session row and expires the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		if _, err := m.db.Exec("DELETE FROM session WHERE id = ?", cookie.Value); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// PurgeExpired deletes all sessions past their expiry and returns how
// many were removed. Run periodically from the scheduler.
func (m *Manager) PurgeExpired() (int64, error) {
	result, err := m.db.Exec(
		"DELETE FROM session WHERE expires_at < ?",
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return result.RowsAffected()
}

// lookup loads and decrypts one session row.
func (m *Manager) lookup(id string) (string, error) {
	var encrypted string
	var expiresAt string

	err := m.db.QueryRow(
		"SELECT token, expires_at FROM session WHERE id = ?", id,
	).Scan(&encrypted, &expiresAt)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	expiry, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || time.Now().UTC().After(expiry) {
		return "", apperrors.ErrSessionNotFound
	}

	token := fernet.VerifyAndDecrypt([]byte(encrypted), m.ttl, m.keys)
	if token == nil {
		return "", apperrors.ErrSessionNotFound
	}
	return string(token), nil
}

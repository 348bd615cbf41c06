package middleware

import (
	"net/http"

	"github.com/alphadash/dashboard/internal/session"
)

// RequireAuth guards protected routes. Unauthenticated requests are
// redirected to the login entry point instead of reaching the page.
//
// Authentication here means only "a session credential is present";
// token validity is the backend's call, surfaced later as a 401.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated(r) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

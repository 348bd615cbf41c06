package handlers

import (
	"net/http"

	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web/flash"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// baseData assembles the fields every page shares. Authentication is
// re-derived from the session store on each call so the navigation
// reflects a login or logout immediately.
func baseData(sessions *session.Manager, w http.ResponseWriter, r *http.Request, title string) templates.BaseData {
	return templates.BaseData{
		Title:         title,
		Authenticated: sessions.IsAuthenticated(r),
		Flash:         flash.Pop(w, r),
	}
}

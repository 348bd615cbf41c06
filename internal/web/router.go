// Package web wires the HTTP surface of the dashboard: routing,
// middleware and the page handlers.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/config"
	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web/handlers"
	custommiddleware "github.com/alphadash/dashboard/internal/web/middleware"
	"github.com/alphadash/dashboard/internal/web/templates"
)

// NewRouter creates and configures the HTTP router
func NewRouter(client *backend.Client, sessions *session.Manager, renderer *templates.Renderer, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	pageHandler := handlers.NewPageHandler(sessions, renderer)
	portfolioHandler := handlers.NewPortfolioHandler(client, sessions, renderer)
	holdingHandler := handlers.NewHoldingHandler(client, sessions, renderer)
	assetHandler := handlers.NewAssetHandler(client, sessions, renderer)

	// Public routes
	r.Get("/", pageHandler.Home)
	r.Get("/login", pageHandler.LoginForm)
	r.Post("/login", pageHandler.Login)
	r.Post("/logout", pageHandler.Logout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(custommiddleware.RequireAuth(sessions))

		r.Get("/portfolio", portfolioHandler.Portfolio)

		r.Route("/portfolio/holdings", func(r chi.Router) {
			r.Get("/new", holdingHandler.NewForm)
			r.Post("/new", holdingHandler.Create)
			r.Get("/{holdingID}/edit", holdingHandler.EditForm)
			r.Post("/{holdingID}/edit", holdingHandler.Update)
			r.Get("/{holdingID}/delete", holdingHandler.ConfirmDelete)
			r.Post("/{holdingID}/delete", holdingHandler.Delete)
		})

		r.Get("/assets/{symbol}/chart", assetHandler.AssetDetail)

		r.Get("/manage-assets", assetHandler.ManageAssetsForm)
		r.Post("/manage-assets", assetHandler.CreateAsset)
	})

	return r
}

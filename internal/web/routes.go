package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the portal's route tree.
func (ui *UI) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ui.WithSession)

	// Public pages
	r.Get("/", ui.HandleHome)
	r.Get("/about", ui.HandleAbout)
	r.Get("/catalog", ui.HandleCatalog)
	r.Get("/auth/telegram/callback", ui.HandleTelegramCallback)

	// Auth form endpoints
	r.Post("/auth/login", ui.HandleLoginPost)
	r.Post("/auth/register", ui.HandleRegisterPost)
	r.Post("/auth/logout", ui.HandleLogoutPost)

	// Member pages
	r.Group(func(r chi.Router) {
		r.Use(ui.RequireAuth)
		r.Get("/account", ui.HandleAccount)
		r.Post("/account", ui.HandleAccountUpdate)
		r.Get("/apply-role", ui.HandleApplyRole)
		r.Post("/apply-role", ui.HandleApplyRolePost)
	})

	r.NotFound(ui.HandleNotFound)
	return r
}

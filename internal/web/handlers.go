package web

import (
	"net/http"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/logger"
)

// HandleHome renders the landing page. The auth modal opens when the "auth"
// query parameter names a mode, carrying over any error from a failed
// submission.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	authMode := q.Get("auth")
	if authMode != "login" && authMode != "register" {
		authMode = ""
	}

	ui.render(w, r, http.StatusOK, "home", map[string]any{
		"AuthMode":   authMode,
		"AuthError":  q.Get("error"),
		"Registered": q.Get("registered") == "1",
	})
}

// HandleAbout renders the about page.
func (ui *UI) HandleAbout(w http.ResponseWriter, r *http.Request) {
	ui.render(w, r, http.StatusOK, "about", nil)
}

// HandleCatalog renders the event catalog, filtered by the "q" query.
// A fetch failure degrades to the empty state, as the catalog has nothing
// better to show.
func (ui *UI) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	events, err := ui.catalog.List(r.Context())
	if err != nil {
		logger.Warnf("fetch events: %v", err)
		events = nil
	}

	query := r.URL.Query().Get("q")
	filtered := api.FilterEvents(events, query)

	ui.render(w, r, http.StatusOK, "catalog", map[string]any{
		"Events": filtered,
		"Query":  query,
	})
}

// HandleNotFound renders the catch-all page.
func (ui *UI) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	ui.render(w, r, http.StatusNotFound, "not_found", nil)
}

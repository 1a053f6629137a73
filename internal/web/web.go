// Package web serves the portal pages. Every handler reads the one session
// store, talks to at most a couple of remote functions, and renders; no
// business logic lives here.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/core"
	"github.com/sparcom/portal/internal/i18n"
	"github.com/sparcom/portal/internal/logger"
	"github.com/sparcom/portal/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

// UI handles the web user interface.
type UI struct {
	auth     *core.AuthService
	telegram *core.TelegramService
	catalog  *api.CatalogClient
	roles    *api.RoleClient
	sessions *session.Manager
}

// New creates the UI over its collaborators.
func New(auth *core.AuthService, telegram *core.TelegramService, catalog *api.CatalogClient, roles *api.RoleClient, sessions *session.Manager) *UI {
	return &UI{
		auth:     auth,
		telegram: telegram,
		catalog:  catalog,
		roles:    roles,
		sessions: sessions,
	}
}

// render composes the layout with one page template and writes the result.
// Translation functions are bound per request so each visitor sees the
// language of their Accept-Language header (Russian by default).
func (ui *UI) render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	loc := i18n.Localizer(r.Header.Get("Accept-Language"))

	funcs := template.FuncMap{
		"t": func(id string) string {
			return i18n.T(loc, id)
		},
		"roleLabel": func(role string) string {
			return i18n.T(loc, "role_"+role)
		},
		"statusLabel": func(status string) string {
			return i18n.T(loc, "event_status_"+status)
		},
		"eventDate": func(e api.Event) string {
			if t, ok := e.Date(); ok {
				return t.Format("02.01.2006 15:04")
			}
			return e.EventDate
		},
		"price": func(p float64) string {
			return strconv.FormatFloat(p, 'f', -1, 64)
		},
		"seconds": func(d time.Duration) string {
			return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
		},
	}

	tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
		"templates/layout.html", "templates/"+page+".html")
	if err != nil {
		logger.Errorf("parse template %s: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	data["BotLink"] = ui.telegram.BotLink()
	if _, ok := data["Session"]; !ok {
		data["Session"] = SessionFromContext(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Errorf("render %s: %v", page, err)
	}
}

package web

import (
	"net/http"
	"strings"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/i18n"
	"github.com/sparcom/portal/internal/logger"
)

// HandleApplyRole renders the role-application form.
func (ui *UI) HandleApplyRole(w http.ResponseWriter, r *http.Request) {
	ui.render(w, r, http.StatusOK, "apply_role", map[string]any{
		"Role":       api.RoleOrganizer,
		"Motivation": "",
		"Portfolio":  "",
		"Error":      "",
	})
}

// HandleApplyRolePost validates and submits the application. A short
// motivation or an unknown role is rejected before any network call; remote
// failures re-render the form with the filled values intact.
func (ui *UI) HandleApplyRolePost(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	loc := i18n.Localizer(r.Header.Get("Accept-Language"))

	if err := r.ParseForm(); err != nil {
		ui.render(w, r, http.StatusBadRequest, "apply_role", map[string]any{
			"Role":       api.RoleOrganizer,
			"Motivation": "",
			"Portfolio":  "",
			"Error":      i18n.T(loc, "error_generic"),
		})
		return
	}

	app := api.RoleApplication{
		RequestedRole: r.FormValue("requested_role"),
		Motivation:    strings.TrimSpace(r.FormValue("motivation")),
		PortfolioURL:  strings.TrimSpace(r.FormValue("portfolio_url")),
	}

	rerender := func(status int, errMsg string) {
		ui.render(w, r, status, "apply_role", map[string]any{
			"Role":       app.RequestedRole,
			"Motivation": app.Motivation,
			"Portfolio":  app.PortfolioURL,
			"Error":      errMsg,
		})
	}

	if !api.ValidApplicationRole(app.RequestedRole) {
		rerender(http.StatusBadRequest, i18n.T(loc, "auth_invalid_role"))
		return
	}
	if len([]rune(app.Motivation)) < api.MinMotivationLen {
		rerender(http.StatusBadRequest, i18n.T(loc, "apply_motivation_too_short"))
		return
	}

	if err := ui.roles.Apply(r.Context(), sess.Token, app); err != nil {
		logger.ForSession(sess.ID).Warnf("role application failed: %v", err)
		rerender(http.StatusOK, api.ErrorMessage(err, i18n.T(loc, "error_network")))
		return
	}

	logger.ForSession(sess.ID).Infof("role application submitted: %s", app.RequestedRole)
	http.Redirect(w, r, "/account?applied=1", http.StatusSeeOther)
}

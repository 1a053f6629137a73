package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/i18n"
	"github.com/sparcom/portal/internal/logger"
)

// HandleAccount renders the member page with a fresh profile. A rejected
// token means the remote side no longer knows this session, so it is dropped
// and the visitor lands back on the home page. Transient fetch errors fall
// back to the cached profile.
func (ui *UI) HandleAccount(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lg := logger.ForSession(sess.ID)

	user, err := ui.auth.CurrentUser(r.Context(), sess)
	if err != nil {
		if api.IsAuthError(err) {
			lg.Infof("session rejected by auth API, clearing")
			ui.sessions.Delete(sess.ID)
			ui.sessions.ClearCookie(w)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		lg.Warnf("fetch current user: %v", err)
		user = sess.User // cached copy, may be nil
	}

	q := r.URL.Query()
	ui.render(w, r, http.StatusOK, "account", map[string]any{
		"User":    user,
		"Updated": q.Get("updated") == "1",
		"Applied": q.Get("applied") == "1",
		"Error":   q.Get("error"),
	})
}

// HandleAccountUpdate stores the editable profile fields.
func (ui *UI) HandleAccountUpdate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	loc := i18n.Localizer(r.Header.Get("Accept-Language"))

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/account?error="+url.QueryEscape(i18n.T(loc, "error_generic")), http.StatusSeeOther)
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone"))
	bio := strings.TrimSpace(r.FormValue("bio"))

	if _, err := ui.auth.UpdateProfile(r.Context(), sess, phone, bio); err != nil {
		logger.ForSession(sess.ID).Warnf("profile update failed: %v", err)
		msg := api.ErrorMessage(err, i18n.T(loc, "error_network"))
		http.Redirect(w, r, "/account?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/account?updated=1", http.StatusSeeOther)
}

package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/i18n"
	"github.com/sparcom/portal/internal/logger"
)

// MinPasswordLen is enforced by the registration form before any network
// call; the server applies its own rules on top.
const MinPasswordLen = 8

// HandleLoginPost processes the login form. Success redirects back to the
// page that opened the modal, which re-renders with the fresh session;
// failure reopens the modal with the server's message.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Localizer(r.Header.Get("Accept-Language"))

	if err := r.ParseForm(); err != nil {
		ui.redirectAuth(w, r, "login", i18n.T(loc, "error_generic"))
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		ui.redirectAuth(w, r, "login", i18n.T(loc, "auth_fields_required"))
		return
	}

	sess, err := ui.auth.Login(r.Context(), email, password)
	if err != nil {
		logger.Warnf("login failed for %s: %v", email, err)
		ui.redirectAuth(w, r, "login", api.ErrorMessage(err, i18n.T(loc, "error_network")))
		return
	}

	ui.sessions.SetCookie(w, sess)
	logger.ForSession(sess.ID).Infof("user logged in")
	http.Redirect(w, r, safeNext(r.FormValue("next")), http.StatusSeeOther)
}

// HandleRegisterPost processes the registration form. The form blocks short
// passwords and unknown roles before any network call. Success switches the
// modal to login mode; the new account still has to sign in.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Localizer(r.Header.Get("Accept-Language"))

	if err := r.ParseForm(); err != nil {
		ui.redirectAuth(w, r, "register", i18n.T(loc, "error_generic"))
		return
	}

	req := api.RegisterRequest{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		ui.redirectAuth(w, r, "register", i18n.T(loc, "auth_fields_required"))
		return
	}
	if len(req.Password) < MinPasswordLen {
		ui.redirectAuth(w, r, "register", i18n.T(loc, "auth_password_too_short"))
		return
	}
	if req.Role == "" {
		req.Role = api.RoleGuest
	}
	if !api.ValidRegistrationRole(req.Role) {
		ui.redirectAuth(w, r, "register", i18n.T(loc, "auth_invalid_role"))
		return
	}

	if _, err := ui.auth.Register(r.Context(), req); err != nil {
		logger.Warnf("registration failed for %s: %v", req.Email, err)
		ui.redirectAuth(w, r, "register", api.ErrorMessage(err, i18n.T(loc, "error_network")))
		return
	}

	http.Redirect(w, r, "/?auth=login&registered=1", http.StatusSeeOther)
}

// HandleLogoutPost ends the session. The cookie is cleared even when there
// was no live session behind it.
func (ui *UI) HandleLogoutPost(w http.ResponseWriter, r *http.Request) {
	if sess := ui.sessions.FromRequest(r); sess != nil {
		ui.auth.Logout(r.Context(), sess)
		logger.ForSession(sess.ID).Infof("user logged out")
	}
	ui.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// redirectAuth reopens the auth modal in the given mode with an error.
func (ui *UI) redirectAuth(w http.ResponseWriter, r *http.Request, mode, message string) {
	http.Redirect(w, r, "/?auth="+mode+"&error="+url.QueryEscape(message), http.StatusSeeOther)
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

package web

import (
	"context"
	"net/http"

	"github.com/sparcom/portal/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext retrieves the session from the request context.
// Returns nil for anonymous visitors.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// WithSession attaches the visitor's session to the request context when one
// exists. Pages render for anonymous visitors too.
func (ui *UI) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := ui.sessions.FromRequest(r); sess != nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous visitors to the home page.
// Must be used after WithSession.
func (ui *UI) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

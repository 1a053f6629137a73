package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sparcom/portal/internal/api"
)

// CookieName is the name of the session cookie.
const CookieName = "sparcom_session"

// Manager ties sessions to browsers through the session cookie.
type Manager struct {
	store  Store
	secure bool
}

// NewManager creates a session manager over the given store.
// secure must be true when the portal is served over HTTPS.
func NewManager(store Store, secure bool) *Manager {
	return &Manager{store: store, secure: secure}
}

// Create builds a session with a fresh ID, persists it, and returns it.
// A zero ttl falls back to DefaultTTL.
func (m *Manager) Create(provider Provider, token, refreshToken string, user *api.User, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	sess := &Session{
		ID:           uuid.NewString(),
		Provider:     provider,
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
		ExpiresAt:    time.Now().Add(ttl),
	}
	m.store.Put(sess)
	return sess
}

// FromRequest resolves the request's cookie to a live session.
// Returns nil when there is no cookie or the session is gone/expired.
func (m *Manager) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	sess, ok := m.store.Get(cookie.Value)
	if !ok {
		return nil
	}
	return sess
}

// SetUser updates the cached profile of the given session.
func (m *Manager) SetUser(id string, user *api.User) {
	m.store.SetUser(id, user)
}

// Delete removes the session from the store.
func (m *Manager) Delete(id string) {
	m.store.Delete(id)
}

// SetCookie sets the session cookie on the response.
func (m *Manager) SetCookie(w http.ResponseWriter, sess *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearCookie removes the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/core"
	"github.com/sparcom/portal/internal/session"
)

// testBackends holds one handler per remote function. A nil handler answers
// every request with an empty JSON object.
type testBackends struct {
	auth     http.HandlerFunc
	events   http.HandlerFunc
	roles    http.HandlerFunc
	telegram http.HandlerFunc
}

func newTestUI(t *testing.T, b testBackends) (*UI, *session.Manager) {
	t.Helper()

	mk := func(h http.HandlerFunc) string {
		if h == nil {
			h = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			}
		}
		srv := httptest.NewServer(h)
		t.Cleanup(srv.Close)
		return srv.URL
	}

	sessions := session.NewManager(session.NewMemoryStore(), false)
	authSvc := core.NewAuthService(api.NewAuthClient(mk(b.auth), time.Second), sessions)
	telegramSvc := core.NewTelegramService(api.NewTelegramClient(mk(b.telegram), "SparcomAuth_bot", time.Second), sessions)
	catalog := api.NewCatalogClient(mk(b.events), time.Second)
	roles := api.NewRoleClient(mk(b.roles), time.Second)

	return New(authSvc, telegramSvc, catalog, roles, sessions), sessions
}

// memberRequest builds a request carrying a fresh logged-in session.
func memberRequest(t *testing.T, sessions *session.Manager, method, target string, form url.Values) (*http.Request, *session.Session) {
	t.Helper()

	sess := sessions.Create(session.ProviderPassword, "tok", "", &api.User{
		ID: 1, Username: "vasya", Email: "vasya@example.com", Role: api.RoleGuest,
	}, time.Hour)

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	r := httptest.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	return r, sess
}

func postForm(method, target string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

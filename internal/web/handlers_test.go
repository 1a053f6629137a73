package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeOpensAuthModal(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?auth=login", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/auth/login"`)
}

func TestHomeWithoutAuthParamHasNoModal(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `action="/auth/login"`)
}

func TestHomeUnknownAuthModeIgnored(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?auth=bogus", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `action="/auth/login"`)
}

func TestCatalogRendersEvents(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{
		events: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"events": [
				{"id": 1, "title": "Банный вечер", "description": "Парная и чай", "status": "published", "max_participants": 10, "current_participants": 3, "price_per_person": 2500, "event_date": "2026-10-01T18:00:00", "duration_hours": 3},
				{"id": 2, "title": "Закрытая встреча", "description": "Только свои", "status": "full", "max_participants": 8, "current_participants": 8, "price_per_person": 5000, "event_date": "2026-11-05T19:00:00", "duration_hours": 2}
			]}`))
		},
	})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Банный вечер")
	assert.Contains(t, body, "Закрытая встреча")
	assert.Contains(t, body, "01.10.2026 18:00")
	assert.Contains(t, body, "2500")
}

func TestCatalogSearchFiltersEvents(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{
		events: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"events": [
				{"id": 1, "title": "Банный вечер", "status": "published"},
				{"id": 2, "title": "Закрытая встреча", "status": "published"}
			]}`))
		},
	})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog?q=банный", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Банный вечер")
	assert.NotContains(t, body, "Закрытая встреча")
}

func TestCatalogBackendFailureDegradesToEmptyState(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{
		events: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, w.Code, "catalog degrades instead of failing")
}

func TestNotFound(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{})

	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	ui, _ := newTestUI(t, testBackends{})

	for _, target := range []string{"/account", "/apply-role"} {
		w := httptest.NewRecorder()
		ui.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/", w.Header().Get("Location"), target)
	}
}

func TestNavShowsAccountLinkForMembers(t *testing.T) {
	ui, sessions := newTestUI(t, testBackends{})

	r, _ := memberRequest(t, sessions, http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	ui.Router().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/account"`)
}

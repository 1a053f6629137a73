package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparcom/portal/internal/api"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	store.Put(&Session{
		ID:           "s1",
		Provider:     ProviderTelegram,
		Token:        "acc",
		RefreshToken: "ref",
		User:         &api.User{ID: 9, Username: "Вася", Role: api.RoleGuest},
		ExpiresAt:    expires,
	})

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, ProviderTelegram, got.Provider)
	assert.Equal(t, "acc", got.Token)
	assert.Equal(t, "ref", got.RefreshToken)
	assert.Equal(t, expires.Unix(), got.ExpiresAt.Unix())
	require.NotNil(t, got.User)
	assert.Equal(t, "Вася", got.User.Username)
}

func TestSQLiteStorePutOverwrites(t *testing.T) {
	store := openTestStore(t)

	store.Put(&Session{ID: "s1", Token: "old", ExpiresAt: time.Now().Add(time.Hour)})
	store.Put(&Session{ID: "s1", Token: "new", ExpiresAt: time.Now().Add(time.Hour)})

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "new", got.Token)
}

func TestSQLiteStoreExpiredIsDropped(t *testing.T) {
	store := openTestStore(t)

	store.Put(&Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)})
	_, ok := store.Get("old")
	assert.False(t, ok)

	// the expired row is gone, not just filtered
	var n int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE id = 'old'`).Scan(&n))
	assert.Zero(t, n)
}

func TestSQLiteStoreSetUser(t *testing.T) {
	store := openTestStore(t)

	store.Put(&Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)})
	store.SetUser("s1", &api.User{ID: 3, Role: api.RoleMaster})

	got, ok := store.Get("s1")
	require.True(t, ok)
	require.NotNil(t, got.User)
	assert.Equal(t, api.RoleMaster, got.User.Role)
}

func TestSQLiteStoreNilUser(t *testing.T) {
	store := openTestStore(t)

	store.Put(&Session{ID: "s1", User: nil, ExpiresAt: time.Now().Add(time.Hour)})
	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Nil(t, got.User)
}

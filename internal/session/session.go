// Package session holds the portal's authentication state.
//
// One session carries the credentials of exactly one auth flow, tagged with
// its provider. Both flows (password and Telegram) write to the same store,
// so a visitor signed in through either one is visible everywhere.
package session

import (
	"sync"
	"time"

	"github.com/sparcom/portal/internal/api"
)

// Provider identifies which auth flow issued the session's credentials.
type Provider string

const (
	ProviderPassword Provider = "password"
	ProviderTelegram Provider = "telegram"
)

// DefaultTTL applies to password sessions; the auth function's tokens carry
// no client-visible expiry, so the session itself bounds their lifetime.
const DefaultTTL = 7 * 24 * time.Hour

// Session stores a visitor's authentication state.
type Session struct {
	ID           string
	Provider     Provider
	Token        string
	RefreshToken string
	User         *api.User
	ExpiresAt    time.Time
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store defines the interface for session storage backends.
type Store interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	SetUser(id string, user *api.User)
	Delete(id string)
	Close() error
}

// MemoryStore provides thread-safe in-memory session storage.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Put stores a session.
func (s *MemoryStore) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get retrieves a valid session.
func (s *MemoryStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || session.IsExpired() {
		return nil, false
	}
	return session, true
}

// SetUser updates the cached profile of an existing session.
func (s *MemoryStore) SetUser(id string, user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.User = user
	}
}

// Delete removes a session.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Close is a no-op for the in-memory store (implements Store).
func (s *MemoryStore) Close() error {
	return nil
}

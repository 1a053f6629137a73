// Package core mediates between the remote functions and the session store.
package core

import (
	"context"
	"fmt"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/logger"
	"github.com/sparcom/portal/internal/session"
)

// AuthService drives the password auth flow.
type AuthService struct {
	api      *api.AuthClient
	sessions *session.Manager
}

// NewAuthService creates a new auth service.
func NewAuthService(apiClient *api.AuthClient, sessions *session.Manager) *AuthService {
	return &AuthService{api: apiClient, sessions: sessions}
}

// Register creates a remote account. No session is created: the visitor is
// expected to log in afterwards.
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return s.api.Register(ctx, req)
}

// Login exchanges credentials for a token and persists the session before
// returning, so the caller reads back exactly what was stored. A failed
// login never touches the store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response has no token")
	}

	sess := s.sessions.Create(session.ProviderPassword, resp.Token, "", resp.User, session.DefaultTTL)
	return sess, nil
}

// Logout ends the session. Remote invalidation only exists for password
// tokens and is best-effort: the local session is cleared regardless of the
// remote response.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) {
	if sess == nil {
		return
	}

	if sess.Provider == session.ProviderPassword {
		if err := s.api.Logout(ctx, sess.Token); err != nil {
			logger.ForSession(sess.ID).Warnf("remote logout failed: %v", err)
		}
	}
	s.sessions.Delete(sess.ID)
}

// CurrentUser fetches the fresh profile of the session's owner and refreshes
// the cached copy. With a nil session the request is still sent without a
// token; the server's rejection comes back as an API error.
func (s *AuthService) CurrentUser(ctx context.Context, sess *session.Session) (*api.User, error) {
	var token string
	if sess != nil {
		token = sess.Token
	}

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		s.sessions.SetUser(sess.ID, user)
	}
	return user, nil
}

// UpdateProfile stores the editable profile fields and refreshes the cached
// profile on success.
func (s *AuthService) UpdateProfile(ctx context.Context, sess *session.Session, phone, bio string) (*api.User, error) {
	if sess == nil {
		return nil, fmt.Errorf("no session")
	}

	user, err := s.api.UpdateProfile(ctx, sess.Token, phone, bio)
	if err != nil {
		return nil, err
	}
	s.sessions.SetUser(sess.ID, user)
	return user, nil
}

package core

import (
	"context"
	"time"

	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/logger"
	"github.com/sparcom/portal/internal/session"
)

// TelegramService completes the out-of-band Telegram login handshake.
type TelegramService struct {
	api      *api.TelegramClient
	sessions *session.Manager
}

// NewTelegramService creates a new Telegram auth service.
func NewTelegramService(apiClient *api.TelegramClient, sessions *session.Manager) *TelegramService {
	return &TelegramService{api: apiClient, sessions: sessions}
}

// BotLink returns the deep link that opens the auth bot.
func (s *TelegramService) BotLink() string {
	return s.api.BotLink()
}

// Exchange trades a one-time callback token for a session. On failure the
// store stays untouched; a consumed token surfaces the server's error rather
// than crashing the flow.
func (s *TelegramService) Exchange(ctx context.Context, oneTimeToken string) (*session.Session, error) {
	ts, err := s.api.Exchange(ctx, oneTimeToken)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(ts.ExpiresIn) * time.Second
	sess := s.sessions.Create(session.ProviderTelegram, ts.AccessToken, ts.RefreshToken, ts.User, ttl)

	logger.ForSession(sess.ID).Infof("telegram login completed")
	return sess, nil
}

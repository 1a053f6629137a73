package api

import (
	"context"
	"time"
)

// TelegramSession is the credential set issued for a consumed one-time token.
type TelegramSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds
	User         *User
}

// TelegramClient wraps the Telegram auth callback function.
type TelegramClient struct {
	*Client
	botUsername string
}

// NewTelegramClient creates a client for the Telegram auth function.
func NewTelegramClient(baseURL, botUsername string, timeout time.Duration) *TelegramClient {
	return &TelegramClient{
		Client:      NewClient(baseURL, timeout),
		botUsername: botUsername,
	}
}

// BotLink returns the t.me deep link that starts the login handshake.
// Opening it is pure navigation; no network I/O happens here.
func (c *TelegramClient) BotLink() string {
	return "https://t.me/" + c.botUsername + "?start=web_auth"
}

// telegramUser is the profile shape the Telegram function returns.
// Email is null for accounts created through the bot.
type telegramUser struct {
	ID         int64   `json:"id"`
	Email      *string `json:"email"`
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatar_url"`
	TelegramID string  `json:"telegram_id"`
}

type exchangeResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         telegramUser `json:"user"`
}

// Exchange trades a one-time callback token for session credentials.
// A consumed or unknown token surfaces as *Error with the server's message.
func (c *TelegramClient) Exchange(ctx context.Context, oneTimeToken string) (*TelegramSession, error) {
	body := map[string]string{"token": oneTimeToken}
	var resp exchangeResponse
	if err := c.Post(ctx, ActionCallback, body, "", &resp); err != nil {
		return nil, err
	}

	return &TelegramSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User:         resp.User.toUser(),
	}, nil
}

func (u telegramUser) toUser() *User {
	user := &User{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Role:       RoleGuest,
	}
	if u.Name != nil {
		user.Username = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.AvatarURL != nil {
		user.AvatarURL = *u.AvatarURL
	}
	return user
}

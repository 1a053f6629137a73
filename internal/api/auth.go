package api

import (
	"context"
	"net/http"
	"time"
)

// User represents a SPARCOM account. One shape serves both auth providers:
// password accounts carry email and username, Telegram accounts may have no
// email and identify through TelegramID.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	TelegramID string `json:"telegram_id,omitempty"`
	IsVerified bool   `json:"is_verified,omitempty"`
}

// RegisterRequest contains the fields of the registration form.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse is the auth function's success envelope.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// AuthClient wraps the remote auth function.
type AuthClient struct {
	*Client
}

// NewAuthClient creates a client for the auth function at baseURL.
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{Client: NewClient(baseURL, timeout)}
}

// Register creates a new account. Validation problems (taken email, weak
// password) come back as *Error with the server's message.
func (c *AuthClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.Post(ctx, ActionRegister, req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.Post(ctx, ActionLogin, body, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the token on the remote side.
func (c *AuthClient) Logout(ctx context.Context, token string) error {
	return c.Post(ctx, ActionLogout, nil, token, nil)
}

// CurrentUser fetches the profile of the token's owner. When token is empty
// the request is still sent without an Authorization header; rejecting it is
// the server's job, not ours.
func (c *AuthClient) CurrentUser(ctx context.Context, token string) (*User, error) {
	var resp AuthResponse
	if err := c.Get(ctx, ActionMe, token, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Status: http.StatusBadGateway, Message: "empty user in response"}
	}
	return resp.User, nil
}

// UpdateProfile stores the editable profile fields and returns the
// refreshed user.
func (c *AuthClient) UpdateProfile(ctx context.Context, token, phone, bio string) (*User, error) {
	body := map[string]string{"phone": phone, "bio": bio}
	var resp AuthResponse
	if err := c.Post(ctx, ActionUpdate, body, token, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Status: http.StatusBadGateway, Message: "empty user in response"}
	}
	return resp.User, nil
}

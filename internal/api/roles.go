package api

import (
	"context"
	"time"
)

// MinMotivationLen is the minimum motivation length the roles function
// accepts. Enforced here as well so the form can reject short texts before
// any network call.
const MinMotivationLen = 50

// RoleApplication is a request to be granted a new role.
// Status is assigned server-side and never read back by the portal.
type RoleApplication struct {
	RequestedRole string `json:"requested_role"`
	Motivation    string `json:"motivation"`
	PortfolioURL  string `json:"portfolio_url,omitempty"`
}

// RoleClient wraps the remote roles function.
type RoleClient struct {
	*Client
}

// NewRoleClient creates a client for the roles function at baseURL.
func NewRoleClient(baseURL string, timeout time.Duration) *RoleClient {
	return &RoleClient{Client: NewClient(baseURL, timeout)}
}

// Apply submits a role application on behalf of the token's owner.
func (c *RoleClient) Apply(ctx context.Context, token string, app RoleApplication) error {
	return c.Post(ctx, ActionApply, app, token, nil)
}

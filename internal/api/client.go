package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client handles HTTP requests to one remote serverless function.
// The function multiplexes its operations on an "action" query parameter.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a new API client for the given function URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Error represents an API error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// errorBody is the failure envelope every remote function uses.
type errorBody struct {
	Error string `json:"error"`
}

// --- Request Helpers ---

// doRequest performs a single HTTP request and decodes the response into out.
// A non-2xx status is converted into *Error carrying the server-provided
// message, or the status text when the body holds none. No retries.
func (c *Client) doRequest(ctx context.Context, method, action string, body any, token string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.actionURL(action), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		_ = json.Unmarshal(data, &e)
		msg := e.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) actionURL(action string) string {
	return c.baseURL + "?action=" + url.QueryEscape(action)
}

// Get performs a GET request for the given action.
func (c *Client) Get(ctx context.Context, action, token string, out any) error {
	return c.doRequest(ctx, http.MethodGet, action, nil, token, out)
}

// Post performs a POST request for the given action.
func (c *Client) Post(ctx context.Context, action string, body any, token string, out any) error {
	return c.doRequest(ctx, http.MethodPost, action, body, token, out)
}

// IsAuthError returns true if err is an API error with an auth-related status.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// ErrorMessage extracts the server-provided message from err,
// or returns fallback for transport-level failures.
func ErrorMessage(err error, fallback string) string {
	if apiErr, ok := err.(*Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

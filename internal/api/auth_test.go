package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsTokenAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "login", r.URL.Query().Get("action"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "vasya@example.com", body["email"])

		json.NewEncoder(w).Encode(AuthResponse{
			Token: "tok-abc",
			User:  &User{ID: 7, Username: "vasya", Email: "vasya@example.com", Role: RoleGuest},
		})
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	resp, err := c.Login(context.Background(), "vasya@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Неверный email или пароль"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "vasya@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, "Неверный email или пароль", ErrorMessage(err, ""))
}

func TestRegisterSendsRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, RoleOrganizer, req.Role)

		json.NewEncoder(w).Encode(AuthResponse{Message: "ok"})
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	resp, err := c.Register(context.Background(), RegisterRequest{
		Username: "vasya",
		Email:    "vasya@example.com",
		Password: "secret123",
		Role:     RoleOrganizer,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

func TestCurrentUserSendsRequestWithEmptyToken(t *testing.T) {
	var sawAuth bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "no token"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.CurrentUser(context.Background(), "")
	require.Error(t, err)
	assert.False(t, sawAuth, "empty token must not produce an Authorization header")
}

func TestCurrentUserRejectsEmptyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.CurrentUser(context.Background(), "tok")
	require.Error(t, err)
}

func TestValidRegistrationRole(t *testing.T) {
	assert.True(t, ValidRegistrationRole(RoleGuest))
	assert.True(t, ValidRegistrationRole(RoleOrganizer))
	assert.True(t, ValidRegistrationRole(RoleMaster))
	assert.False(t, ValidRegistrationRole(RoleBathowner))
	assert.False(t, ValidRegistrationRole("admin"))
}

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/reviewdeck/adminctl/internal/session"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	Token string `json:"token"`
}

// Login authenticates against the auth service and returns the identity and
// token on success. The username is trimmed before sending; the password is
// passed through untouched.
func (c *Client) Login(ctx context.Context, username, password string) (session.User, string, error) {
	return c.authenticate(ctx, "/auth/login", username, password)
}

// Register creates a new account. Request and response shapes match Login.
func (c *Client) Register(ctx context.Context, username, password string) (session.User, string, error) {
	return c.authenticate(ctx, "/auth/register", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (session.User, string, error) {
	req := credentialsRequest{Username: strings.TrimSpace(username), Password: password}

	var resp authResponse
	if _, err := c.do(ctx, http.MethodPost, c.authURL+path, "", req, &resp); err != nil {
		return session.User{}, "", err
	}
	return session.User{ID: resp.User.ID, Username: resp.User.Username}, resp.Token, nil
}

package api

import (
	"context"
	"errors"
	"net/http"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, senha string) (string, error) {
	body := map[string]string{"email": email, "senha": senha}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, "login", http.MethodPost, c.loginPath, nil, body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &Error{Op: "login", Status: http.StatusOK, Err: errors.New("response has no token")}
	}
	return out.Token, nil
}

// Register creates an account through the public registration endpoint.
func (c *Client) Register(ctx context.Context, nomeUsuario, email, senha string) error {
	body := map[string]string{"nomeUsuario": nomeUsuario, "email": email, "senha": senha}
	return c.doJSON(ctx, "register", http.MethodPost, "/auth/register", nil, body, nil)
}

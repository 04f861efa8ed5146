package api

import (
	"context"
	"net/url"
)

// TokenResponse is the backend's token issuance payload. The backend never
// returns the user object here; callers recover id and role from the token
// claims.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the backend's acknowledgment
// message.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var out messageResponse
	if err := c.postJSON(ctx, "/auth/register", registerRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Login exchanges credentials for a bearer token. The backend follows the
// OAuth2 password-form convention: credentials go form-encoded, with the
// email in the username field.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out TokenResponse
	if err := c.postForm(ctx, "/auth/login", form, &out); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}

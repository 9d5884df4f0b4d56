package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/moneywise/client-go/internal/model"
)

// ErrPasswordMismatch is returned by Register before any request is made
// when the confirmation does not match the password.
var ErrPasswordMismatch = errors.New("passwords do not match")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterParams struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Currency        string `json:"currency,omitempty"`
	VerificationURL string `json:"verificationUrl"`
}

type ProfileParams struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Currency  string `json:"currency,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Login exchanges credentials for a session payload. It performs no
// persistence; the session store is the sole writer of persisted state.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthPayload, error) {
	var payload model.AuthPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account. The password confirmation is checked
// client-side before the call is attempted; the account is unusable for
// login until the email is verified.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*model.AuthPayload, error) {
	if params.Password != params.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	var payload model.AuthPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// VerifyEmail redeems a one-shot verification token. Replay handling is a
// server concern.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return c.do(ctx, http.MethodPost, "/api/auth/verify-email", nil, body, nil)
}

// UpdateProfile writes profile fields and returns the server's view of the
// user.
func (c *Client) UpdateProfile(ctx context.Context, params ProfileParams) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", nil, params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerificationTokenFromURL extracts the verification token from an emailed
// link, preferring the "token" query parameter over "code".
func VerificationTokenFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse verification url: %w", err)
	}

	q := u.Query()
	if token := q.Get("token"); token != "" {
		return token, nil
	}
	if code := q.Get("code"); code != "" {
		return code, nil
	}
	return "", errors.New("verification url carries no token")
}

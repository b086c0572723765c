package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

// Login authenticates with email and password. The returned envelope
// carries the user and a fresh token pair.
func (c *APIClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. Depending on backend configuration
// the response carries either a token pair (auto-login) or only a
// message asking the user to verify their email.
func (c *APIClient) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile behind the stored access token.
func (c *APIClient) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// VerifyEmail confirms an email address with the token from the
// verification mail. The backend reads the token from the query string,
// not the body.
func (c *APIClient) VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error) {
	query := url.Values{"token": []string{token}}
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendVerification re-sends the verification mail for the current user.
func (c *APIClient) SendVerification(ctx context.Context) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/send-verification", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts the password-reset flow.
func (c *APIClient) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	body := map[string]string{"email": email}
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword completes the password-reset flow with the mailed token.
func (c *APIClient) ResetPassword(ctx context.Context, token, newPassword string) (*models.MessageResponse, error) {
	body := map[string]string{"token": token, "new_password": newPassword}
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the password of the authenticated user.
func (c *APIClient) ChangePassword(ctx context.Context, current, updated string) (*models.MessageResponse, error) {
	body := map[string]string{"current_password": current, "new_password": updated}
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/change-password", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleLoginURL fetches the Google authorization URL the user must be
// sent to. state is echoed back on the callback for CSRF checking.
func (c *APIClient) GoogleLoginURL(ctx context.Context, state string) (*models.GoogleLoginURL, error) {
	query := url.Values{}
	if state != "" {
		query.Set("state", state)
	}
	var out models.GoogleLoginURL
	if err := c.do(ctx, http.MethodGet, "/auth/google/login", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeGoogleCode exchanges a one-time authorization code for a
// session. The code is consumed by the backend on first use; this must
// be called at most once per code.
func (c *APIClient) ExchangeGoogleCode(ctx context.Context, code, state string) (*models.AuthResponse, error) {
	query := url.Values{"code": []string{code}}
	if state != "" {
		query.Set("state", state)
	}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodGet, "/auth/google/callback", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// LoginResponse carries the bearer token issued on successful login or OTP
// verification.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req models.AuthRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account pending approval.
func (c *Client) Register(ctx context.Context, req models.ProfileRequest) error {
	return c.post(ctx, "/register", nil, req, nil)
}

// SendOTP requests an email-verification code.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	return c.post(ctx, "/send-otp", nil, email, nil)
}

// VerifyOTP confirms an email-verification code.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.post(ctx, "/verify-otp", nil, map[string]string{"email": email, "otp": otp}, nil)
}

// RegisterOTP completes a registration with the emailed code.
func (c *Client) RegisterOTP(ctx context.Context, email, otp string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/register-otp", nil, map[string]string{"email": email, "otp": otp}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendResetOTP requests a password-reset code for the given email.
func (c *Client) SendResetOTP(ctx context.Context, email string) error {
	q := url.Values{"email": {email}}
	return c.post(ctx, "/send-reset-otp", q, nil, nil)
}

// ResetPassword sets a new password using the reset code.
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.post(ctx, "/reset-password", nil, req, nil)
}

// Profile fetches the profile of the given account.
func (c *Client) Profile(ctx context.Context, email string) (*models.ProfileResponse, error) {
	var out models.ProfileResponse
	q := url.Values{"email": {email}}
	if err := c.get(ctx, "/profile", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsAuthenticated asks the backend whether the account has a live session.
func (c *Client) IsAuthenticated(ctx context.Context, email string) (bool, error) {
	var out bool
	q := url.Values{"email": {email}}
	if err := c.get(ctx, "/is-authenticated", q, &out); err != nil {
		return false, err
	}
	return out, nil
}

// apiPath is a helper for id-parameterized paths.
func apiPath(format string, args ...any) string { return fmt.Sprintf(format, args...) }

package api

import (
	"context"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// AllUsers lists every account for the user administration screen.
func (c *Client) AllUsers(ctx context.Context) ([]models.ProfileResponse, error) {
	var out []models.ProfileResponse
	if err := c.get(ctx, "/admin/all-users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingUsers lists accounts awaiting approval.
func (c *Client) PendingUsers(ctx context.Context) ([]models.ProfileResponse, error) {
	var out []models.ProfileResponse
	if err := c.get(ctx, "/admin/pending-users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveUser approves a pending account.
func (c *Client) ApproveUser(ctx context.Context, userID string) error {
	return c.post(ctx, "/admin/approve-user/"+userID, nil, nil, nil)
}

// RejectUser rejects a pending account.
func (c *Client) RejectUser(ctx context.Context, userID string) error {
	return c.post(ctx, "/admin/reject-user/"+userID, nil, nil, nil)
}

// EcommerceStats returns storefront-wide figures for the admin dashboard.
func (c *Client) EcommerceStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/ecommerce/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

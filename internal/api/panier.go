package api

import (
	"context"
	"net/url"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// panierLigne is the add/update payload for one cart line.
type panierLigne struct {
	ArticleID int `json:"articleId"`
	Quantite  int `json:"quantite"`
}

// Panier fetches the server-held cart for the given user.
func (c *Client) Panier(ctx context.Context, userEmail string) (*models.Panier, error) {
	var out models.Panier
	q := url.Values{"userEmail": {userEmail}}
	if err := c.get(ctx, "/panier", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AjouterAuPanier adds a line to the user's cart.
func (c *Client) AjouterAuPanier(ctx context.Context, userEmail string, articleID, quantite int) (*models.Panier, error) {
	var out models.Panier
	body := map[string]any{"userEmail": userEmail, "request": panierLigne{ArticleID: articleID, Quantite: quantite}}
	if err := c.post(ctx, "/panier/ajouter", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModifierQuantite sets the quantity of an existing cart line.
func (c *Client) ModifierQuantite(ctx context.Context, userEmail string, articleID, quantite int) (*models.Panier, error) {
	var out models.Panier
	body := map[string]any{"userEmail": userEmail, "request": panierLigne{ArticleID: articleID, Quantite: quantite}}
	if err := c.put(ctx, "/panier/modifier", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupprimerDuPanier removes one article's line from the cart.
func (c *Client) SupprimerDuPanier(ctx context.Context, userEmail string, articleID int) error {
	return c.delete(ctx, apiPath("/panier/supprimer/%d", articleID), userEmail)
}

// ViderPanier removes every line from the cart.
func (c *Client) ViderPanier(ctx context.Context, userEmail string) error {
	return c.delete(ctx, "/panier/vider", userEmail)
}

package api

import (
	"context"
	"net/url"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// ── Fournisseurs ────────────────────────────────────────────────────────────

func (c *Client) Fournisseurs(ctx context.Context) ([]models.Fournisseur, error) {
	var out []models.Fournisseur
	if err := c.get(ctx, "/fournisseurs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Fournisseur(ctx context.Context, id int) (*models.Fournisseur, error) {
	var out models.Fournisseur
	if err := c.get(ctx, apiPath("/fournisseurs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFournisseur(ctx context.Context, f models.Fournisseur) (*models.Fournisseur, error) {
	var out models.Fournisseur
	if err := c.post(ctx, "/fournisseurs", nil, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFournisseur(ctx context.Context, id int, f models.Fournisseur) (*models.Fournisseur, error) {
	var out models.Fournisseur
	if err := c.put(ctx, apiPath("/fournisseurs/%d", id), f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFournisseur(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/fournisseurs/%d", id), nil)
}

func (c *Client) SearchFournisseurs(ctx context.Context, nom string) ([]models.Fournisseur, error) {
	q := url.Values{"nom": {nom}}
	var out []models.Fournisseur
	if err := c.get(ctx, "/fournisseurs/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ActiveFournisseurs(ctx context.Context) ([]models.Fournisseur, error) {
	var out []models.Fournisseur
	if err := c.get(ctx, "/fournisseurs/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Entreprises ─────────────────────────────────────────────────────────────

func (c *Client) Entreprises(ctx context.Context) ([]models.Entreprise, error) {
	var out []models.Entreprise
	if err := c.get(ctx, "/entreprises", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Entreprise(ctx context.Context, id int) (*models.Entreprise, error) {
	var out models.Entreprise
	if err := c.get(ctx, apiPath("/entreprises/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEntreprise(ctx context.Context, e models.Entreprise) (*models.Entreprise, error) {
	var out models.Entreprise
	if err := c.post(ctx, "/entreprises", nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEntreprise(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/entreprises/%d", id), nil)
}

// ── Clients ─────────────────────────────────────────────────────────────────

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.get(ctx, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClientByID(ctx context.Context, id int) (*models.Client, error) {
	var out models.Client
	if err := c.get(ctx, apiPath("/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, cl models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.post(ctx, "/clients", nil, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/clients/%d", id), nil)
}

// ── Commandes client ────────────────────────────────────────────────────────

func (c *Client) CommandesClient(ctx context.Context) ([]models.CommandeClient, error) {
	var out []models.CommandeClient
	if err := c.get(ctx, "/commandes-client", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CommandeClient(ctx context.Context, id int) (*models.CommandeClient, error) {
	var out models.CommandeClient
	if err := c.get(ctx, apiPath("/commandes-client/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CommandeClientByCode(ctx context.Context, code string) (*models.CommandeClient, error) {
	var out models.CommandeClient
	if err := c.get(ctx, "/commandes-client/code/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LignesCommandeClient fetches an order's line items; detail views load them
// independently of the parent order.
func (c *Client) LignesCommandeClient(ctx context.Context, id int) ([]models.LigneCommandeClient, error) {
	var out []models.LigneCommandeClient
	if err := c.get(ctx, apiPath("/commandes-client/%d/lignes", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCommandeClient(ctx context.Context, cmd models.CommandeClient) (*models.CommandeClient, error) {
	var out models.CommandeClient
	if err := c.post(ctx, "/commandes-client", nil, cmd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCommandeClient(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/commandes-client/%d", id), nil)
}

// ── Commandes fournisseur ───────────────────────────────────────────────────

func (c *Client) CommandesFournisseur(ctx context.Context) ([]models.CommandeFournisseur, error) {
	var out []models.CommandeFournisseur
	if err := c.get(ctx, "/commandes-fournisseur", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CommandeFournisseur(ctx context.Context, id int) (*models.CommandeFournisseur, error) {
	var out models.CommandeFournisseur
	if err := c.get(ctx, apiPath("/commandes-fournisseur/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CommandeFournisseurByCode(ctx context.Context, code string) (*models.CommandeFournisseur, error) {
	var out models.CommandeFournisseur
	if err := c.get(ctx, "/commandes-fournisseur/code/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LignesCommandeFournisseur(ctx context.Context, id int) ([]models.LigneCommandeFournisseur, error) {
	var out []models.LigneCommandeFournisseur
	if err := c.get(ctx, apiPath("/commandes-fournisseur/%d/lignes", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCommandeFournisseur(ctx context.Context, cmd models.CommandeFournisseur) (*models.CommandeFournisseur, error) {
	var out models.CommandeFournisseur
	if err := c.post(ctx, "/commandes-fournisseur", nil, cmd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCommandeFournisseur(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/commandes-fournisseur/%d", id), nil)
}

// ── Ventes ──────────────────────────────────────────────────────────────────

func (c *Client) Ventes(ctx context.Context) ([]models.Vente, error) {
	var out []models.Vente
	if err := c.get(ctx, "/ventes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Vente(ctx context.Context, id int) (*models.Vente, error) {
	var out models.Vente
	if err := c.get(ctx, apiPath("/ventes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VenteByCode(ctx context.Context, code string) (*models.Vente, error) {
	var out models.Vente
	if err := c.get(ctx, "/ventes/code/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVente(ctx context.Context, v models.Vente) (*models.Vente, error) {
	var out models.Vente
	if err := c.post(ctx, "/ventes", nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVente(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/ventes/%d", id), nil)
}

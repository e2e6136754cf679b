package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// ── Articles (back office) ──────────────────────────────────────────────────

func (c *Client) Articles(ctx context.Context) ([]models.ArticleDto, error) {
	var out []models.ArticleDto
	if err := c.get(ctx, "/stock/articles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Article(ctx context.Context, id int) (*models.ArticleDto, error) {
	var out models.ArticleDto
	if err := c.get(ctx, apiPath("/stock/articles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateArticle(ctx context.Context, a models.ArticleDto) (*models.ArticleDto, error) {
	var out models.ArticleDto
	if err := c.post(ctx, "/stock/articles", nil, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id int, a models.ArticleDto) (*models.ArticleDto, error) {
	var out models.ArticleDto
	if err := c.put(ctx, apiPath("/stock/articles/%d", id), a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteArticle(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/stock/articles/%d", id), nil)
}

func (c *Client) ArticlesByCategorie(ctx context.Context, categorieID int) ([]models.ArticleDto, error) {
	var out []models.ArticleDto
	if err := c.get(ctx, apiPath("/stock/articles/categorie/%d", categorieID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ArticlesStockFaible(ctx context.Context) ([]models.ArticleDto, error) {
	var out []models.ArticleDto
	if err := c.get(ctx, "/stock/articles/stock-faible", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AjusterStock posts a manual stock correction for one article.
func (c *Client) AjusterStock(ctx context.Context, id int, req models.StockAdjustmentRequest, utilisateur string) (*models.APIResponse, error) {
	var out models.APIResponse
	body := map[string]any{"request": req, "utilisateur": utilisateur}
	if err := c.post(ctx, apiPath("/stock/articles/%d/ajuster-stock", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Categories ──────────────────────────────────────────────────────────────

func (c *Client) Categories(ctx context.Context) ([]models.CategorieDto, error) {
	var out []models.CategorieDto
	if err := c.get(ctx, "/stock/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categorie(ctx context.Context, id int) (*models.CategorieDto, error) {
	var out models.CategorieDto
	if err := c.get(ctx, apiPath("/stock/categories/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategorie(ctx context.Context, cat models.CategorieDto) (*models.CategorieDto, error) {
	var out models.CategorieDto
	if err := c.post(ctx, "/stock/categories", nil, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategorie(ctx context.Context, id int, cat models.CategorieDto) (*models.CategorieDto, error) {
	var out models.CategorieDto
	if err := c.put(ctx, apiPath("/stock/categories/%d", id), cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategorie(ctx context.Context, id int) error {
	return c.delete(ctx, apiPath("/stock/categories/%d", id), nil)
}

// ── Mouvements & statistics ─────────────────────────────────────────────────

func (c *Client) Mouvements(ctx context.Context) ([]models.MouvementStock, error) {
	var out []models.MouvementStock
	if err := c.get(ctx, "/stock/mouvements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MouvementsByPeriode(ctx context.Context, dateDebut, dateFin string) ([]models.MouvementStock, error) {
	q := url.Values{"dateDebut": {dateDebut}, "dateFin": {dateFin}}
	var out []models.MouvementStock
	if err := c.get(ctx, "/stock/mouvements/periode", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MouvementsByArticle(ctx context.Context, articleID int) ([]models.MouvementStock, error) {
	var out []models.MouvementStock
	if err := c.get(ctx, apiPath("/stock/mouvements/article/%d", articleID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StockStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/stock/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/stock/inventory/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ── Alerts & inventory operations ───────────────────────────────────────────

func (c *Client) UnreadAlerts(ctx context.Context) ([]models.AlerteStock, error) {
	var out []models.AlerteStock
	if err := c.get(ctx, "/stock/inventory/alerts/unread", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LowStockArticles(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	if err := c.get(ctx, "/stock/inventory/alerts/low-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OutOfStockArticles(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	if err := c.get(ctx, "/stock/inventory/alerts/out-of-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReserveStock(ctx context.Context, articleID, quantity int) (*models.APIResponse, error) {
	q := url.Values{"articleId": {strconv.Itoa(articleID)}, "quantity": {strconv.Itoa(quantity)}}
	var out models.APIResponse
	if err := c.post(ctx, "/stock/inventory/reserve-stock", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReleaseStock(ctx context.Context, articleID, quantity int) (*models.APIResponse, error) {
	q := url.Values{"articleId": {strconv.Itoa(articleID)}, "quantity": {strconv.Itoa(quantity)}}
	var out models.APIResponse
	if err := c.post(ctx, "/stock/inventory/release-stock", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdjustStock(ctx context.Context, articleID, quantity int, reason string, userID int) (*models.APIResponse, error) {
	q := url.Values{
		"articleId": {strconv.Itoa(articleID)},
		"quantity":  {strconv.Itoa(quantity)},
		"reason":    {reason},
		"userId":    {strconv.Itoa(userID)},
	}
	var out models.APIResponse
	if err := c.post(ctx, "/stock/inventory/adjust-stock", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

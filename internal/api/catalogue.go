package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// CatalogueArticles lists storefront articles; every filter is optional and
// passed through to the backend untouched.
func (c *Client) CatalogueArticles(ctx context.Context, f models.ArticleFilters) ([]models.ArticleDto, error) {
	q := url.Values{}
	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Size != nil {
		q.Set("size", strconv.Itoa(*f.Size))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.SortDir != "" {
		q.Set("sortDir", f.SortDir)
	}
	if f.CategorieID != nil {
		q.Set("categorieId", strconv.Itoa(*f.CategorieID))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	var out []models.ArticleDto
	if err := c.get(ctx, "/catalogue/articles", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogueArticle fetches one article for the storefront detail page.
func (c *Client) CatalogueArticle(ctx context.Context, id int) (*models.ArticleDto, error) {
	var out models.ArticleDto
	if err := c.get(ctx, apiPath("/catalogue/articles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogueCategories lists storefront categories.
func (c *Client) CatalogueCategories(ctx context.Context) ([]models.CategorieDto, error) {
	var out []models.CategorieDto
	if err := c.get(ctx, "/catalogue/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PopularArticles lists best sellers for the home page.
func (c *Client) PopularArticles(ctx context.Context) ([]models.ArticleDto, error) {
	var out []models.ArticleDto
	if err := c.get(ctx, "/catalogue/articles/populaires", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewArticles lists recent additions for the home page.
func (c *Client) NewArticles(ctx context.Context) ([]models.ArticleDto, error) {
	var out []models.ArticleDto
	if err := c.get(ctx, "/catalogue/articles/nouveautes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

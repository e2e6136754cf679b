package handlers

import (
	"net/http"
	"strconv"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
)

// CatalogueHandler serves the public storefront: home page, article listing
// with category filter, and article detail.
type CatalogueHandler struct {
	*Base
}

func NewCatalogueHandler(b *Base) *CatalogueHandler { return &CatalogueHandler{Base: b} }

// Accueil is the home page: best sellers and new arrivals.
func (h *CatalogueHandler) Accueil(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	popular, err := cache.Get(ctx, h.Cache, "catalogue/populaires", h.API.PopularArticles)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	nouveautes, err := cache.Get(ctx, h.Cache, "catalogue/nouveautes", h.API.NewArticles)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "accueil.html", map[string]any{
		"Populaires": popular,
		"Nouveautes": nouveautes,
	})
}

// List is the catalogue browser. Search and category narrowing go to the
// server; the category list itself is cached.
func (h *CatalogueHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filters := models.ArticleFilters{
		Search:  q.Get("search"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}
	if id, err := strconv.Atoi(q.Get("categorie")); err == nil && id > 0 {
		filters.CategorieID = &id
	}

	articles, err := h.API.CatalogueArticles(ctx, filters)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categories, err := cache.Get(ctx, h.Cache, "catalogue/categories", h.API.CatalogueCategories)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "catalogue.html", map[string]any{
		"Articles":   articles,
		"Categories": categories,
		"Search":     filters.Search,
		"Categorie":  q.Get("categorie"),
	})
}

// Detail shows one article with its add-to-cart form.
func (h *CatalogueHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	article, err := h.API.CatalogueArticle(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "article.html", map[string]any{"Article": article})
}

package handlers

import (
	"fmt"
	"net/http"
	"strings"

	authpkg "github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/i18n"
	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
	"github.com/tjtrack/tjtrack-web/validation"
)

// ArticlesHandler is the back-office article screen: searchable listing,
// create/edit form and manual stock adjustment.
type ArticlesHandler struct {
	*Base
}

func NewArticlesHandler(b *Base) *ArticlesHandler { return &ArticlesHandler{Base: b} }

func articleColumns(lng string) []table.Column[models.ArticleDto] {
	return []table.Column[models.ArticleDto]{
		{Key: "codeArticle", Header: "Code"},
		{Key: "designation", Header: "Désignation"},
		{Header: "Prix HT", Render: func(a models.ArticleDto) string {
			return fmt.Sprintf("%.2f", a.PrixUnitaireHT)
		}},
		{Key: "quantiteStock", Header: "Stock"},
		{Header: "Catégorie", Render: func(a models.ArticleDto) string {
			if a.CategorieDesignation == nil || *a.CategorieDesignation == "" {
				return i18n.T(lng, "uncategorized")
			}
			return *a.CategorieDesignation
		}},
	}
}

func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		articles []models.ArticleDto
		err      error
	)
	if r.URL.Query().Get("filtre") == "stock-faible" {
		articles, err = cache.Get(authCtx(r), h.Cache, "articles/stock-faible", h.API.ArticlesStockFaible)
	} else {
		articles, err = cache.Get(authCtx(r), h.Cache, "articles", h.API.Articles)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(articleColumns(lang(r)))
	t.HasActions = true
	t.SetRecords(articles)
	tableParams(t, r)

	h.render(w, r, "stock/articles.html", map[string]any{
		"Table":  t.View(),
		"Filtre": r.URL.Query().Get("filtre"),
	})
}

func (h *ArticlesHandler) New(w http.ResponseWriter, r *http.Request) {
	categories, err := cache.Get(authCtx(r), h.Cache, "categories", h.API.Categories)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "stock/article_form.html", map[string]any{
		"Article": models.ArticleDto{}, "Categories": categories,
	})
}

func (h *ArticlesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	article, err := h.API.Article(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categories, err := cache.Get(authCtx(r), h.Cache, "categories", h.API.Categories)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "stock/article_form.html", map[string]any{
		"Article": article, "Categories": categories,
	})
}

// Save dispatches to create or update depending on whether the submitted
// draft carries a server id.
func (h *ArticlesHandler) Save(w http.ResponseWriter, r *http.Request) {
	draft := models.ArticleDto{
		CodeArticle:    strings.TrimSpace(r.FormValue("codeArticle")),
		Designation:    strings.TrimSpace(r.FormValue("designation")),
		Description:    optString(r, "description"),
		PrixUnitaireHT: formFloat(r, "prixUnitaireHt"),
	}
	if id := formInt(r, "id"); id > 0 {
		draft.ID = &id
	}
	if tva := formFloat(r, "tauxTva"); tva > 0 {
		draft.TauxTVA = &tva
	}
	if qs := formInt(r, "quantiteStock"); qs >= 0 && r.FormValue("quantiteStock") != "" {
		draft.QuantiteStock = &qs
	}
	if seuil := formInt(r, "seuilAlerte"); seuil > 0 {
		draft.SeuilAlerte = &seuil
	}
	if max := formInt(r, "stockMax"); max > 0 {
		draft.StockMax = &max
	}
	if catID := formInt(r, "categorieId"); catID > 0 {
		draft.CategorieID = &catID
	}

	v := make(validation.Violations)
	validation.Required("codeArticle", draft.CodeArticle, v)
	validation.Required("designation", draft.Designation, v)
	validation.PositiveFloat("prixUnitaireHt", draft.PrixUnitaireHT, v)
	if draft.TauxTVA != nil {
		validation.RangeFloat("tauxTva", *draft.TauxTVA, 0, 100, v)
	}
	if !v.Empty() {
		categories, _ := cache.Get(authCtx(r), h.Cache, "categories", h.API.Categories)
		h.render(w, r, "stock/article_form.html", map[string]any{
			"Article": draft, "Categories": categories, "Errors": v,
		})
		return
	}

	var err error
	if draft.IsNew() {
		_, err = h.API.CreateArticle(authCtx(r), draft)
	} else {
		_, err = h.API.UpdateArticle(authCtx(r), *draft.ID, draft)
	}
	if err != nil {
		h.failAction(w, r, err, "/stock/articles")
		return
	}

	h.Cache.Invalidate("articles")
	h.Cache.Invalidate("catalogue")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/stock/articles", http.StatusSeeOther)
}

func (h *ArticlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.API.DeleteArticle(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/stock/articles")
		return
	}
	h.Cache.Invalidate("articles")
	h.Cache.Invalidate("catalogue")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/stock/articles", http.StatusSeeOther)
}

// Ajuster posts a manual stock correction and records who did it.
func (h *ArticlesHandler) Ajuster(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	req := models.StockAdjustmentRequest{
		Quantite: formInt(r, "quantite"),
		Motif:    strings.TrimSpace(r.FormValue("motif")),
	}

	v := make(validation.Violations)
	validation.Required("motif", req.Motif, v)
	if req.Quantite < 0 {
		v["quantite"] = "must_be_positive"
	}
	if !v.Empty() {
		setFlash(w, "error", "must_be_positive")
		http.Redirect(w, r, fmt.Sprintf("/stock/articles/%d/edit", id), http.StatusSeeOther)
		return
	}

	sess := authpkg.SessionFromContext(r.Context())
	if _, err := h.API.AjusterStock(authCtx(r), id, req, sess.User.Email); err != nil {
		h.failAction(w, r, err, fmt.Sprintf("/stock/articles/%d/edit", id))
		return
	}
	h.Cache.Invalidate("articles")
	h.Cache.Invalidate("mouvements")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/stock/articles", http.StatusSeeOther)
}

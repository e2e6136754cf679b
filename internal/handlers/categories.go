package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
	"github.com/tjtrack/tjtrack-web/validation"
)

// CategoriesHandler is the back-office category screen.
type CategoriesHandler struct {
	*Base
}

func NewCategoriesHandler(b *Base) *CategoriesHandler { return &CategoriesHandler{Base: b} }

func categorieColumns() []table.Column[models.CategorieDto] {
	return []table.Column[models.CategorieDto]{
		{Key: "code", Header: "Code"},
		{Key: "designation", Header: "Désignation"},
		{Key: "description", Header: "Description"},
		{Header: "Articles", Render: func(c models.CategorieDto) string {
			if c.NombreArticles == nil {
				return "0"
			}
			return strconv.Itoa(*c.NombreArticles)
		}},
	}
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := cache.Get(authCtx(r), h.Cache, "categories", h.API.Categories)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(categorieColumns())
	t.HasActions = true
	t.SetRecords(categories)
	tableParams(t, r)

	h.render(w, r, "stock/categories.html", map[string]any{"Table": t.View()})
}

func (h *CategoriesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "stock/categorie_form.html", map[string]any{"Categorie": models.CategorieDto{}})
}

func (h *CategoriesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	categorie, err := h.API.Categorie(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "stock/categorie_form.html", map[string]any{"Categorie": categorie})
}

func (h *CategoriesHandler) Save(w http.ResponseWriter, r *http.Request) {
	draft := models.CategorieDto{
		Code:        optString(r, "code"),
		Designation: optString(r, "designation"),
		Description: optString(r, "description"),
	}
	if id := formInt(r, "id"); id > 0 {
		draft.ID = &id
	}

	v := make(validation.Violations)
	validation.Required("designation", strings.TrimSpace(r.FormValue("designation")), v)
	if !v.Empty() {
		h.render(w, r, "stock/categorie_form.html", map[string]any{"Categorie": draft, "Errors": v})
		return
	}

	var err error
	if draft.IsNew() {
		_, err = h.API.CreateCategorie(authCtx(r), draft)
	} else {
		_, err = h.API.UpdateCategorie(authCtx(r), *draft.ID, draft)
	}
	if err != nil {
		h.failAction(w, r, err, "/stock/categories")
		return
	}

	h.Cache.Invalidate("categories")
	h.Cache.Invalidate("catalogue")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/stock/categories", http.StatusSeeOther)
}

// Delete refuses locally when the category still carries articles; the
// server would reject it anyway.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	categorie, err := h.API.Categorie(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !categorie.CanDelete() {
		setFlash(w, "error", "server_error")
		http.Redirect(w, r, "/stock/categories", http.StatusSeeOther)
		return
	}
	if err := h.API.DeleteCategorie(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/stock/categories")
		return
	}
	h.Cache.Invalidate("categories")
	h.Cache.Invalidate("catalogue")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/stock/categories", http.StatusSeeOther)
}

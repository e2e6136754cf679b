package handlers

import (
	"net/http"
	"strings"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
	"github.com/tjtrack/tjtrack-web/validation"
)

// FournisseursHandler is the back-office supplier screen.
type FournisseursHandler struct {
	*Base
}

func NewFournisseursHandler(b *Base) *FournisseursHandler { return &FournisseursHandler{Base: b} }

func fournisseurColumns() []table.Column[models.Fournisseur] {
	return []table.Column[models.Fournisseur]{
		{Key: "nom", Header: "Nom"},
		{Key: "email", Header: "Email"},
		{Key: "telephone", Header: "Téléphone"},
		{Key: "contact", Header: "Contact"},
		{Key: "statut", Header: "Statut"},
	}
}

func (h *FournisseursHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		fournisseurs []models.Fournisseur
		err          error
	)
	if r.URL.Query().Get("filtre") == "actifs" {
		fournisseurs, err = cache.Get(authCtx(r), h.Cache, "fournisseurs/actifs", h.API.ActiveFournisseurs)
	} else {
		fournisseurs, err = cache.Get(authCtx(r), h.Cache, "fournisseurs", h.API.Fournisseurs)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(fournisseurColumns())
	t.HasActions = true
	t.SetRecords(fournisseurs)
	tableParams(t, r)

	h.render(w, r, "entities/fournisseurs.html", map[string]any{
		"Table":  t.View(),
		"Filtre": r.URL.Query().Get("filtre"),
	})
}

func (h *FournisseursHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "entities/fournisseur_form.html", map[string]any{"Fournisseur": models.Fournisseur{}})
}

func (h *FournisseursHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := h.API.Fournisseur(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "entities/fournisseur_form.html", map[string]any{"Fournisseur": f})
}

func (h *FournisseursHandler) Save(w http.ResponseWriter, r *http.Request) {
	draft := models.Fournisseur{
		Nom:       optString(r, "nom"),
		Email:     optString(r, "email"),
		Telephone: optString(r, "telephone"),
		Contact:   optString(r, "contact"),
		Statut:    optString(r, "statut"),
	}
	if id := formInt(r, "id"); id > 0 {
		draft.ID = &id
	}
	if ville := optString(r, "ville"); ville != nil || optString(r, "adresse1") != nil {
		draft.Adresse = &models.Adresse{
			Adresse1:   optString(r, "adresse1"),
			Ville:      ville,
			CodePostal: optString(r, "codePostal"),
			Pays:       optString(r, "pays"),
		}
	}

	v := make(validation.Violations)
	validation.Required("nom", strings.TrimSpace(r.FormValue("nom")), v)
	validation.Email("email", strings.TrimSpace(r.FormValue("email")), v)
	validation.Phone("telephone", strings.TrimSpace(r.FormValue("telephone")), v)
	if !v.Empty() {
		h.render(w, r, "entities/fournisseur_form.html", map[string]any{"Fournisseur": draft, "Errors": v})
		return
	}

	var err error
	if draft.IsNew() {
		_, err = h.API.CreateFournisseur(authCtx(r), draft)
	} else {
		_, err = h.API.UpdateFournisseur(authCtx(r), *draft.ID, draft)
	}
	if err != nil {
		h.failAction(w, r, err, "/fournisseurs")
		return
	}

	h.Cache.Invalidate("fournisseurs")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/fournisseurs", http.StatusSeeOther)
}

func (h *FournisseursHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.API.DeleteFournisseur(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/fournisseurs")
		return
	}
	h.Cache.Invalidate("fournisseurs")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/fournisseurs", http.StatusSeeOther)
}

// EntreprisesHandler is the back-office company screen.
type EntreprisesHandler struct {
	*Base
}

func NewEntreprisesHandler(b *Base) *EntreprisesHandler { return &EntreprisesHandler{Base: b} }

func entrepriseColumns() []table.Column[models.Entreprise] {
	return []table.Column[models.Entreprise]{
		{Key: "nom", Header: "Nom"},
		{Key: "codeFiscal", Header: "Code fiscal"},
		{Key: "email", Header: "Email"},
		{Key: "telephone", Header: "Téléphone"},
		{Key: "siteWeb", Header: "Site web"},
	}
}

func (h *EntreprisesHandler) List(w http.ResponseWriter, r *http.Request) {
	entreprises, err := cache.Get(authCtx(r), h.Cache, "entreprises", h.API.Entreprises)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(entrepriseColumns())
	t.HasActions = true
	t.SetRecords(entreprises)
	tableParams(t, r)

	h.render(w, r, "entities/entreprises.html", map[string]any{"Table": t.View()})
}

func (h *EntreprisesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "entities/entreprise_form.html", map[string]any{"Entreprise": models.Entreprise{}})
}

// Edit seeds the form from the selected record. Submitting goes through
// Create; the API keeps companies append-only.
func (h *EntreprisesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	e, err := h.API.Entreprise(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "entities/entreprise_form.html", map[string]any{"Entreprise": e})
}

func (h *EntreprisesHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft := models.Entreprise{
		Nom:         optString(r, "nom"),
		Description: optString(r, "description"),
		CodeFiscal:  optString(r, "codeFiscal"),
		Email:       optString(r, "email"),
		Telephone:   optString(r, "telephone"),
		SiteWeb:     optString(r, "siteWeb"),
	}

	v := make(validation.Violations)
	validation.Required("nom", strings.TrimSpace(r.FormValue("nom")), v)
	validation.Email("email", strings.TrimSpace(r.FormValue("email")), v)
	validation.Phone("telephone", strings.TrimSpace(r.FormValue("telephone")), v)
	if !v.Empty() {
		h.render(w, r, "entities/entreprise_form.html", map[string]any{"Entreprise": draft, "Errors": v})
		return
	}

	if _, err := h.API.CreateEntreprise(authCtx(r), draft); err != nil {
		h.failAction(w, r, err, "/entreprises")
		return
	}
	h.Cache.Invalidate("entreprises")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/entreprises", http.StatusSeeOther)
}

func (h *EntreprisesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.API.DeleteEntreprise(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/entreprises")
		return
	}
	h.Cache.Invalidate("entreprises")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/entreprises", http.StatusSeeOther)
}

// ClientsHandler is the back-office customer screen.
type ClientsHandler struct {
	*Base
}

func NewClientsHandler(b *Base) *ClientsHandler { return &ClientsHandler{Base: b} }

func clientColumns() []table.Column[models.Client] {
	return []table.Column[models.Client]{
		{Key: "nom", Header: "Nom"},
		{Key: "prenom", Header: "Prénom"},
		{Key: "email", Header: "Email"},
		{Key: "telephone", Header: "Téléphone"},
	}
}

func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := cache.Get(authCtx(r), h.Cache, "clients", h.API.Clients)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(clientColumns())
	t.HasActions = true
	t.SetRecords(clients)
	tableParams(t, r)

	h.render(w, r, "entities/clients.html", map[string]any{"Table": t.View()})
}

func (h *ClientsHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "entities/client_form.html", map[string]any{"Client": models.Client{}})
}

// Edit seeds the form from the selected record. Submitting goes through
// Create; the API keeps customers append-only.
func (h *ClientsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	c, err := h.API.ClientByID(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "entities/client_form.html", map[string]any{"Client": c})
}

func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft := models.Client{
		Nom:       optString(r, "nom"),
		Prenom:    optString(r, "prenom"),
		Email:     optString(r, "email"),
		Telephone: optString(r, "telephone"),
	}

	v := make(validation.Violations)
	validation.Required("nom", strings.TrimSpace(r.FormValue("nom")), v)
	validation.Email("email", strings.TrimSpace(r.FormValue("email")), v)
	validation.Phone("telephone", strings.TrimSpace(r.FormValue("telephone")), v)
	if !v.Empty() {
		h.render(w, r, "entities/client_form.html", map[string]any{"Client": draft, "Errors": v})
		return
	}

	if _, err := h.API.CreateClient(authCtx(r), draft); err != nil {
		h.failAction(w, r, err, "/clients")
		return
	}
	h.Cache.Invalidate("clients")
	setFlash(w, "success", "saved")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.API.DeleteClient(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/clients")
		return
	}
	h.Cache.Invalidate("clients")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/clients", http.StatusSeeOther)
}

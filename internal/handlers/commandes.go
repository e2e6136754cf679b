package handlers

import (
	"net/http"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
)

// CommandesClientHandler lists and inspects customer orders. Deletion is
// only offered while an order is still open; the status rules live on the
// model so templates and handlers agree.
type CommandesClientHandler struct {
	*Base
}

func NewCommandesClientHandler(b *Base) *CommandesClientHandler {
	return &CommandesClientHandler{Base: b}
}

func commandeClientColumns() []table.Column[models.CommandeClient] {
	return []table.Column[models.CommandeClient]{
		{Key: "code", Header: "Code"},
		{Header: "Client", Render: func(c models.CommandeClient) string {
			if c.Client == nil || c.Client.Nom == nil {
				return table.Placeholder
			}
			return *c.Client.Nom
		}},
		{Key: "dateCommande", Header: "Date"},
		{Key: "statut", Header: "Statut"},
		{Header: "Total TTC", Render: func(c models.CommandeClient) string {
			return money(c.TotalTTC)
		}},
	}
}

func (h *CommandesClientHandler) List(w http.ResponseWriter, r *http.Request) {
	commandes, err := cache.Get(authCtx(r), h.Cache, "commandes-client", h.API.CommandesClient)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(commandeClientColumns())
	t.HasActions = true
	t.SetRecords(commandes)
	tableParams(t, r)

	h.render(w, r, "commandes/client.html", map[string]any{"Table": t.View()})
}

func (h *CommandesClientHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	commande, err := h.API.CommandeClient(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lignes, err := h.API.LignesCommandeClient(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "commandes/client_detail.html", map[string]any{
		"Commande": commande,
		"Lignes":   lignes,
	})
}

func (h *CommandesClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	commande, err := h.API.CommandeClient(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !commande.CanDelete() {
		setFlash(w, "error", "forbidden")
		http.Redirect(w, r, "/commandes-client", http.StatusSeeOther)
		return
	}
	if err := h.API.DeleteCommandeClient(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/commandes-client")
		return
	}
	h.Cache.Invalidate("commandes-client")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/commandes-client", http.StatusSeeOther)
}

// CommandesFournisseurHandler is the supplier order counterpart.
type CommandesFournisseurHandler struct {
	*Base
}

func NewCommandesFournisseurHandler(b *Base) *CommandesFournisseurHandler {
	return &CommandesFournisseurHandler{Base: b}
}

func commandeFournisseurColumns() []table.Column[models.CommandeFournisseur] {
	return []table.Column[models.CommandeFournisseur]{
		{Key: "code", Header: "Code"},
		{Header: "Fournisseur", Render: func(c models.CommandeFournisseur) string {
			if c.Fournisseur == nil || c.Fournisseur.Nom == nil {
				return table.Placeholder
			}
			return *c.Fournisseur.Nom
		}},
		{Key: "dateCommande", Header: "Date"},
		{Key: "dateLivraisonPrevue", Header: "Livraison prévue"},
		{Key: "statut", Header: "Statut"},
		{Header: "Total TTC", Render: func(c models.CommandeFournisseur) string {
			return money(c.TotalTTC)
		}},
	}
}

func (h *CommandesFournisseurHandler) List(w http.ResponseWriter, r *http.Request) {
	commandes, err := cache.Get(authCtx(r), h.Cache, "commandes-fournisseur", h.API.CommandesFournisseur)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(commandeFournisseurColumns())
	t.HasActions = true
	t.SetRecords(commandes)
	tableParams(t, r)

	h.render(w, r, "commandes/fournisseur.html", map[string]any{"Table": t.View()})
}

func (h *CommandesFournisseurHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	commande, err := h.API.CommandeFournisseur(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lignes, err := h.API.LignesCommandeFournisseur(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "commandes/fournisseur_detail.html", map[string]any{
		"Commande": commande,
		"Lignes":   lignes,
	})
}

func (h *CommandesFournisseurHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	commande, err := h.API.CommandeFournisseur(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !commande.CanDelete() {
		setFlash(w, "error", "forbidden")
		http.Redirect(w, r, "/commandes-fournisseur", http.StatusSeeOther)
		return
	}
	if err := h.API.DeleteCommandeFournisseur(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/commandes-fournisseur")
		return
	}
	h.Cache.Invalidate("commandes-fournisseur")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/commandes-fournisseur", http.StatusSeeOther)
}

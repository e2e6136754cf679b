package handlers

import (
	"net/http"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
)

// VentesHandler lists and inspects completed sales.
type VentesHandler struct {
	*Base
}

func NewVentesHandler(b *Base) *VentesHandler { return &VentesHandler{Base: b} }

func venteColumns() []table.Column[models.Vente] {
	return []table.Column[models.Vente]{
		{Key: "code", Header: "Code"},
		{Header: "Client", Render: func(v models.Vente) string {
			if v.Client == nil || v.Client.Nom == nil {
				return table.Placeholder
			}
			return *v.Client.Nom
		}},
		{Key: "dateVente", Header: "Date"},
		{Header: "Total HT", Render: func(v models.Vente) string { return money(v.TotalHT) }},
		{Header: "Total TTC", Render: func(v models.Vente) string { return money(v.TotalTTC) }},
	}
}

func (h *VentesHandler) List(w http.ResponseWriter, r *http.Request) {
	ventes, err := cache.Get(authCtx(r), h.Cache, "ventes", h.API.Ventes)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(venteColumns())
	t.HasActions = true
	t.SetRecords(ventes)
	tableParams(t, r)

	h.render(w, r, "ventes/index.html", map[string]any{"Table": t.View()})
}

func (h *VentesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	vente, err := h.API.Vente(authCtx(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "ventes/detail.html", map[string]any{"Vente": vente})
}

func (h *VentesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.API.DeleteVente(authCtx(r), id); err != nil {
		h.failAction(w, r, err, "/ventes")
		return
	}
	h.Cache.Invalidate("ventes")
	setFlash(w, "success", "deleted")
	http.Redirect(w, r, "/ventes", http.StatusSeeOther)
}

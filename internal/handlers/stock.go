package handlers

import (
	"net/http"
	"strconv"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
)

// MouvementsHandler shows the stock movement ledger, optionally narrowed to
// a period or a single article.
type MouvementsHandler struct {
	*Base
}

func NewMouvementsHandler(b *Base) *MouvementsHandler { return &MouvementsHandler{Base: b} }

func mouvementColumns() []table.Column[models.MouvementStock] {
	return []table.Column[models.MouvementStock]{
		{Key: "dateMouvement", Header: "Date"},
		{Key: "articleDesignation", Header: "Article"},
		{Key: "typeMouvement", Header: "Type"},
		{Key: "quantite", Header: "Quantité"},
		{Key: "motif", Header: "Motif"},
		{Key: "createdBy", Header: "Par"},
	}
}

func (h *MouvementsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		mouvements []models.MouvementStock
		err        error
	)
	switch {
	case q.Get("dateDebut") != "" && q.Get("dateFin") != "":
		mouvements, err = h.API.MouvementsByPeriode(authCtx(r), q.Get("dateDebut"), q.Get("dateFin"))
	case q.Get("article") != "":
		if id, convErr := strconv.Atoi(q.Get("article")); convErr == nil {
			mouvements, err = h.API.MouvementsByArticle(authCtx(r), id)
		}
	default:
		mouvements, err = cache.Get(authCtx(r), h.Cache, "mouvements", h.API.Mouvements)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(mouvementColumns())
	t.SetRecords(mouvements)
	tableParams(t, r)

	h.render(w, r, "stock/mouvements.html", map[string]any{
		"Table":     t.View(),
		"DateDebut": q.Get("dateDebut"),
		"DateFin":   q.Get("dateFin"),
	})
}

// AlertesHandler shows unread stock alerts with low/out-of-stock summaries.
type AlertesHandler struct {
	*Base
}

func NewAlertesHandler(b *Base) *AlertesHandler { return &AlertesHandler{Base: b} }

func (h *AlertesHandler) List(w http.ResponseWriter, r *http.Request) {
	alertes, err := cache.Get(authCtx(r), h.Cache, "alertes", h.API.UnreadAlerts)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lowStock, err := cache.Get(authCtx(r), h.Cache, "alertes/low-stock", h.API.LowStockArticles)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	outOfStock, err := cache.Get(authCtx(r), h.Cache, "alertes/out-of-stock", h.API.OutOfStockArticles)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "stock/alertes.html", map[string]any{
		"Alertes":    alertes,
		"LowStock":   lowStock,
		"OutOfStock": outOfStock,
	})
}

// DashboardHandler aggregates the stock and storefront statistics.
type DashboardHandler struct {
	*Base
}

func NewDashboardHandler(b *Base) *DashboardHandler { return &DashboardHandler{Base: b} }

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := cache.Get(authCtx(r), h.Cache, "dashboard", h.API.DashboardStats)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	// storefront figures are admin-only on the API; tolerate a refusal
	ecommerce, err := cache.Get(authCtx(r), h.Cache, "dashboard/ecommerce", h.API.EcommerceStats)
	if err != nil {
		ecommerce = nil
	}
	alertes, err := cache.Get(authCtx(r), h.Cache, "alertes", h.API.UnreadAlerts)
	if err != nil {
		alertes = nil
	}

	h.render(w, r, "dashboard.html", map[string]any{
		"Stats":     stats,
		"Ecommerce": ecommerce,
		"Alertes":   alertes,
	})
}

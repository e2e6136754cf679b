package handlers

import (
	"errors"
	"net/http"

	authpkg "github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/internal/cart"
)

// PanierHandler serves the cart page and its mutation endpoints. All cart
// state lives on the server; the handler only triggers synchronizer calls
// and redirects back.
type PanierHandler struct {
	*Base
}

func NewPanierHandler(b *Base) *PanierHandler { return &PanierHandler{Base: b} }

func (h *PanierHandler) View(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	panier, err := h.Cart.Get(r.Context(), sess)
	if err != nil {
		if errors.Is(err, cart.ErrNotAuthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "panier.html", map[string]any{"Panier": panier})
}

func (h *PanierHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	articleID := formInt(r, "articleId")
	quantite := formInt(r, "quantite")
	if quantite == 0 {
		quantite = 1
	}

	back := r.FormValue("back")
	if back == "" {
		back = "/catalogue"
	}

	if err := h.Cart.AddToCart(r.Context(), sess, articleID, quantite); err != nil {
		h.cartError(w, r, err, back)
		return
	}
	setFlash(w, "success", "cart_added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *PanierHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	if err := h.Cart.UpdateQuantity(r.Context(), sess, formInt(r, "articleId"), formInt(r, "quantite")); err != nil {
		h.cartError(w, r, err, "/panier")
		return
	}
	setFlash(w, "success", "cart_updated")
	http.Redirect(w, r, "/panier", http.StatusSeeOther)
}

func (h *PanierHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	if err := h.Cart.RemoveFromCart(r.Context(), sess, formInt(r, "articleId")); err != nil {
		h.cartError(w, r, err, "/panier")
		return
	}
	setFlash(w, "success", "cart_removed")
	http.Redirect(w, r, "/panier", http.StatusSeeOther)
}

func (h *PanierHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	if err := h.Cart.ClearCart(r.Context(), sess); err != nil {
		h.cartError(w, r, err, "/panier")
		return
	}
	setFlash(w, "success", "cart_cleared")
	http.Redirect(w, r, "/panier", http.StatusSeeOther)
}

func (h *PanierHandler) cartError(w http.ResponseWriter, r *http.Request, err error, back string) {
	switch {
	case errors.Is(err, cart.ErrNotAuthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, cart.ErrQuantiteInvalide):
		setFlash(w, "error", "out_of_stock")
		http.Redirect(w, r, back, http.StatusSeeOther)
	default:
		h.failAction(w, r, err, back)
	}
}

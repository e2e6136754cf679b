// Package cart synchronizes the server-held panier with the UI. The server
// is the single source of truth: every mutation goes out as one call and, on
// success, invalidates the cached snapshot so the next read refetches.
// Totals are never recomputed locally.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/tjtrack/tjtrack-web/internal/api"
	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/session"
)

// ErrNotAuthenticated is returned when a cart operation runs without an
// authenticated session.
var ErrNotAuthenticated = errors.New("cart: not authenticated")

// ErrQuantiteInvalide is returned when a quantity update is rejected locally,
// before any network call.
var ErrQuantiteInvalide = errors.New("cart: quantité invalide")

const cacheClass = "panier"

// Synchronizer exposes the cart operations for one API client and cache.
type Synchronizer struct {
	api   *api.Client
	cache *cache.Store
}

// New wires a synchronizer over the shared API client and snapshot cache.
func New(client *api.Client, store *cache.Store) *Synchronizer {
	return &Synchronizer{api: client, cache: store}
}

func key(email string) string { return cacheClass + "/" + email }

// Get returns the cart for the session's user, fetching lazily on first use.
func (s *Synchronizer) Get(ctx context.Context, sess *session.Session) (*models.Panier, error) {
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	email := sess.User.Email
	return cache.Get(ctx, s.cache, key(email), func(ctx context.Context) (*models.Panier, error) {
		return s.api.Panier(api.WithToken(ctx, sess.Token), email)
	})
}

// ItemCount is the last-fetched cart's item count; zero when nothing is
// loaded or the fetch fails.
func (s *Synchronizer) ItemCount(ctx context.Context, sess *session.Session) int {
	p, err := s.Get(ctx, sess)
	if err != nil || p == nil || p.TotalItems == nil {
		return 0
	}
	return *p.TotalItems
}

// AddToCart adds quantite units of an article. The snapshot is only
// invalidated on success; a failure leaves the displayed cart untouched.
func (s *Synchronizer) AddToCart(ctx context.Context, sess *session.Session, articleID, quantite int) error {
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if quantite < 1 {
		return fmt.Errorf("%w: %d", ErrQuantiteInvalide, quantite)
	}
	_, err := s.api.AjouterAuPanier(api.WithToken(ctx, sess.Token), sess.User.Email, articleID, quantite)
	if err != nil {
		return err
	}
	s.cache.Invalidate(cacheClass)
	return nil
}

// UpdateQuantity sets a line's quantity. Requests outside
// [1, last-known available stock] are rejected here, without a round trip.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, sess *session.Session, articleID, quantite int) error {
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if quantite < 1 {
		return fmt.Errorf("%w: %d", ErrQuantiteInvalide, quantite)
	}
	if p, err := s.Get(ctx, sess); err == nil {
		if line := p.Line(articleID); line != nil && line.StockDisponible != nil && quantite > *line.StockDisponible {
			return fmt.Errorf("%w: %d > stock disponible %d", ErrQuantiteInvalide, quantite, *line.StockDisponible)
		}
	}
	_, err := s.api.ModifierQuantite(api.WithToken(ctx, sess.Token), sess.User.Email, articleID, quantite)
	if err != nil {
		return err
	}
	s.cache.Invalidate(cacheClass)
	return nil
}

// RemoveFromCart deletes one line.
func (s *Synchronizer) RemoveFromCart(ctx context.Context, sess *session.Session, articleID int) error {
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := s.api.SupprimerDuPanier(api.WithToken(ctx, sess.Token), sess.User.Email, articleID); err != nil {
		return err
	}
	s.cache.Invalidate(cacheClass)
	return nil
}

// ClearCart empties the cart.
func (s *Synchronizer) ClearCart(ctx context.Context, sess *session.Session) error {
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if err := s.api.ViderPanier(api.WithToken(ctx, sess.Token), sess.User.Email); err != nil {
		return err
	}
	s.cache.Invalidate(cacheClass)
	return nil
}

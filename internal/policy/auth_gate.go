package policy

import (
	"context"
	"net/http"

	"github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/gate"
)

// AuthGate is the central authorization point. Subjects are role names taken
// from the session profile; a user with several roles is allowed as soon as
// one of them permits the action.
type AuthGate struct {
	Gate     *gate.Gate[string]
	resolver RoleResolver
}

// resources every policy-managed screen belongs to.
var resourceTypes = []string{
	"article", "categorie", "fournisseur", "entreprise", "client",
	"commande_client", "commande_fournisseur", "vente",
	"mouvement", "alerte", "stock", "dashboard", "user",
}

// NewAuthGate builds the gate with one permission policy per resource type,
// backed directly by the static role profiles. Role profiles live in a
// package-level map, so there is nothing to cache between checks.
func NewAuthGate() *AuthGate {
	resolver := RoleResolver{}
	g := gate.NewGate[string]()
	for _, rt := range resourceTypes {
		g.Register(rt, gate.NewPermissionPolicy[string](rt, resolver))
	}
	return &AuthGate{Gate: g, resolver: resolver}
}

// Can reports whether the session user may perform action on resourceType.
func (ag *AuthGate) Can(ctx context.Context, action gate.Action, resourceType string) bool {
	sess := auth.SessionFromContext(ctx)
	if !sess.IsAuthenticated() {
		return false
	}
	for _, role := range sess.User.Roles {
		if ag.Gate.Can(ctx, role, action, resourceType, nil) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether any of the user's roles carries the superadmin
// permission.
func (ag *AuthGate) IsAdmin(ctx context.Context) bool {
	sess := auth.SessionFromContext(ctx)
	if !sess.IsAuthenticated() {
		return false
	}
	for _, role := range sess.User.Roles {
		profile, err := ag.resolver.Resolve(ctx, role)
		if err == nil && profile != nil && profile.HasPermission(gate.PermissionAll) {
			return true
		}
	}
	return false
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.SessionFromContext(r.Context()).IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePermission returns middleware that checks a profile permission.
func (ag *AuthGate) RequirePermission(resourceType string, action gate.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.SessionFromContext(r.Context()).IsAuthenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !ag.Can(r.Context(), action, resourceType) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin returns middleware that only lets superadmin users through.
func (ag *AuthGate) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.SessionFromContext(r.Context()).IsAuthenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !ag.IsAdmin(r.Context()) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

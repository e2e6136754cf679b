package policy

import (
	"context"

	"github.com/tjtrack/tjtrack-web/gate"
	"github.com/tjtrack/tjtrack-web/internal/models"
)

// roleProfiles maps each platform role to its back-office permissions. The
// storefront (catalogue, panier, profile) is open to any authenticated user
// and is not gated here; the API enforces its own rules on top.
var roleProfiles = map[string]*gate.RoleProfile{
	models.RoleAdmin: gate.NewRoleProfile(models.RoleAdmin, gate.PermissionAll),

	// Managers run the whole back office except account approval.
	models.RoleManager: gate.NewRoleProfile(models.RoleManager,
		"article:*", "categorie:*", "fournisseur:*", "entreprise:*",
		"client:*", "commande_client:*", "commande_fournisseur:*",
		"vente:*", "mouvement:*", "alerte:*", "stock:*", "dashboard:view",
	),

	// Merchants manage their catalogue and sales.
	models.RoleCommercant: gate.NewRoleProfile(models.RoleCommercant,
		"article:*", "categorie:view", "categorie:list",
		"client:*", "commande_client:*", "vente:*",
		"mouvement:view", "mouvement:list", "alerte:view", "alerte:list",
		"stock:view", "stock:adjust", "dashboard:view",
	),

	// Suppliers see the purchase orders addressed to them.
	models.RoleFournisseur: gate.NewRoleProfile(models.RoleFournisseur,
		"commande_fournisseur:view", "commande_fournisseur:list",
		"commande_fournisseur:update",
		"article:view", "article:list",
	),

	// Delivery agents follow customer orders through to delivery.
	models.RoleLivreur: gate.NewRoleProfile(models.RoleLivreur,
		"commande_client:view", "commande_client:list",
		"commande_client:update",
	),

	models.RoleClient: gate.NewRoleProfile(models.RoleClient),
}

// RoleResolver resolves a role name to its permission profile.
type RoleResolver struct{}

// Resolve returns the profile for a role, or nil for an unknown role.
func (RoleResolver) Resolve(_ context.Context, role string) (gate.Profile, error) {
	if p, ok := roleProfiles[role]; ok {
		return p, nil
	}
	return nil, nil
}

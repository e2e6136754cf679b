package policy

import (
	"github.com/tjtrack/tjtrack-web/internal/handlers"
)

// RouterConfig bundles the authorization gate with every configured screen
// handler, ready to be mounted by the server.
type RouterConfig struct {
	AuthGate *AuthGate

	Auth      *handlers.AuthHandler
	Catalogue *handlers.CatalogueHandler
	Panier    *handlers.PanierHandler

	Articles             *handlers.ArticlesHandler
	Categories           *handlers.CategoriesHandler
	Fournisseurs         *handlers.FournisseursHandler
	Entreprises          *handlers.EntreprisesHandler
	Clients              *handlers.ClientsHandler
	CommandesClient      *handlers.CommandesClientHandler
	CommandesFournisseur *handlers.CommandesFournisseurHandler
	Ventes               *handlers.VentesHandler
	Mouvements           *handlers.MouvementsHandler
	Alertes              *handlers.AlertesHandler
	Dashboard            *handlers.DashboardHandler
	Users                *handlers.UsersHandler
}

// NewRouterConfig wires the gate and handlers over the shared Base.
func NewRouterConfig(base *handlers.Base) *RouterConfig {
	return &RouterConfig{
		AuthGate: NewAuthGate(),

		Auth:      handlers.NewAuthHandler(base),
		Catalogue: handlers.NewCatalogueHandler(base),
		Panier:    handlers.NewPanierHandler(base),

		Articles:             handlers.NewArticlesHandler(base),
		Categories:           handlers.NewCategoriesHandler(base),
		Fournisseurs:         handlers.NewFournisseursHandler(base),
		Entreprises:          handlers.NewEntreprisesHandler(base),
		Clients:              handlers.NewClientsHandler(base),
		CommandesClient:      handlers.NewCommandesClientHandler(base),
		CommandesFournisseur: handlers.NewCommandesFournisseurHandler(base),
		Ventes:               handlers.NewVentesHandler(base),
		Mouvements:           handlers.NewMouvementsHandler(base),
		Alertes:              handlers.NewAlertesHandler(base),
		Dashboard:            handlers.NewDashboardHandler(base),
		Users:                handlers.NewUsersHandler(base),
	}
}

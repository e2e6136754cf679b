package main

import (
	"net/http"

	"github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/gate"
	"github.com/tjtrack/tjtrack-web/httpx"
	"github.com/tjtrack/tjtrack-web/i18n"
	"github.com/tjtrack/tjtrack-web/internal/policy"
	"github.com/tjtrack/tjtrack-web/view"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	cookies   *auth.Cookies
	routerCfg *policy.RouterConfig
}

// NewApp creates the application with every route configured.
func NewApp(cookies *auth.Cookies, routerCfg *policy.RouterConfig) *App {
	app := &App{
		mux:       http.NewServeMux(),
		cookies:   cookies,
		routerCfg: routerCfg,
	}
	// Expose permission resolvers to the view layer so templates can
	// show/hide affordances without importing the policy package.
	view.SetCanResolver(func(r *http.Request, resource, action string) bool {
		return routerCfg.AuthGate.Can(r.Context(), gate.Action(action), resource)
	})
	view.SetIsAdminResolver(func(r *http.Request) bool {
		return routerCfg.AuthGate.IsAdmin(r.Context())
	})
	view.SetLangResolver(func(r *http.Request) string {
		return i18n.LangFromContext(r.Context())
	})
	view.SetThemeResolver(func(r *http.Request) string {
		if c, err := r.Cookie("tj_theme"); err == nil && c.Value != "" {
			return c.Value
		}
		return "system"
	})
	app.setupRoutes()
	return app
}

// ServeHTTP applies the global middleware chain: session hydration then
// language/theme preferences.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler := a.cookies.Middleware(withPreferences(a.mux))
	handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	cfg := a.routerCfg
	ah := cfg.Auth

	// ── Public storefront and auth ──────────────────────────────────────────
	a.mux.HandleFunc("GET /{$}", cfg.Catalogue.Accueil)
	a.mux.HandleFunc("GET /catalogue", cfg.Catalogue.List)
	a.mux.HandleFunc("GET /catalogue/{id}", cfg.Catalogue.Detail)

	a.mux.HandleFunc("GET /login", ah.LoginForm)
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("GET /register", ah.RegisterForm)
	a.mux.HandleFunc("POST /register", ah.Register)
	a.mux.HandleFunc("GET /verify", ah.VerifyForm)
	a.mux.HandleFunc("POST /verify", ah.VerifyOTP)
	a.mux.HandleFunc("GET /forgot-password", ah.ForgotForm)
	a.mux.HandleFunc("POST /forgot-password", ah.SendResetOTP)
	a.mux.HandleFunc("GET /reset-password", ah.ResetForm)
	a.mux.HandleFunc("POST /reset-password", ah.ResetPassword)
	a.mux.HandleFunc("POST /logout", ah.Logout)

	// ── Authenticated storefront ────────────────────────────────────────────
	a.mux.Handle("GET /profile", policy.RequireAuth(http.HandlerFunc(ah.ProfilePage)))
	a.mux.Handle("GET /panier", policy.RequireAuth(http.HandlerFunc(cfg.Panier.View)))
	a.mux.Handle("POST /panier/ajouter", policy.RequireAuth(http.HandlerFunc(cfg.Panier.Add)))
	a.mux.Handle("POST /panier/modifier", policy.RequireAuth(http.HandlerFunc(cfg.Panier.Update)))
	a.mux.Handle("POST /panier/supprimer", policy.RequireAuth(http.HandlerFunc(cfg.Panier.Remove)))
	a.mux.Handle("POST /panier/vider", policy.RequireAuth(http.HandlerFunc(cfg.Panier.Clear)))

	// ── Back office ─────────────────────────────────────────────────────────
	a.mux.Handle("GET /dashboard",
		a.require("dashboard", gate.ActionView)(http.HandlerFunc(cfg.Dashboard.Show)))

	a.mux.Handle("GET /stock/articles",
		a.require("article", gate.ActionList)(http.HandlerFunc(cfg.Articles.List)))
	a.mux.Handle("GET /stock/articles/new",
		a.require("article", gate.ActionCreate)(http.HandlerFunc(cfg.Articles.New)))
	a.mux.Handle("GET /stock/articles/{id}/edit",
		a.require("article", gate.ActionUpdate)(http.HandlerFunc(cfg.Articles.Edit)))
	a.mux.Handle("POST /stock/articles",
		a.require("article", gate.ActionCreate)(http.HandlerFunc(cfg.Articles.Save)))
	a.mux.Handle("POST /stock/articles/{id}/delete",
		a.require("article", gate.ActionDelete)(http.HandlerFunc(cfg.Articles.Delete)))
	a.mux.Handle("POST /stock/articles/{id}/ajuster",
		a.require("stock", gate.ActionAdjust)(http.HandlerFunc(cfg.Articles.Ajuster)))

	a.mux.Handle("GET /stock/categories",
		a.require("categorie", gate.ActionList)(http.HandlerFunc(cfg.Categories.List)))
	a.mux.Handle("GET /stock/categories/new",
		a.require("categorie", gate.ActionCreate)(http.HandlerFunc(cfg.Categories.New)))
	a.mux.Handle("GET /stock/categories/{id}/edit",
		a.require("categorie", gate.ActionUpdate)(http.HandlerFunc(cfg.Categories.Edit)))
	a.mux.Handle("POST /stock/categories",
		a.require("categorie", gate.ActionCreate)(http.HandlerFunc(cfg.Categories.Save)))
	a.mux.Handle("POST /stock/categories/{id}/delete",
		a.require("categorie", gate.ActionDelete)(http.HandlerFunc(cfg.Categories.Delete)))

	a.mux.Handle("GET /stock/mouvements",
		a.require("mouvement", gate.ActionList)(http.HandlerFunc(cfg.Mouvements.List)))
	a.mux.Handle("GET /stock/alertes",
		a.require("alerte", gate.ActionList)(http.HandlerFunc(cfg.Alertes.List)))

	a.mux.Handle("GET /fournisseurs",
		a.require("fournisseur", gate.ActionList)(http.HandlerFunc(cfg.Fournisseurs.List)))
	a.mux.Handle("GET /fournisseurs/new",
		a.require("fournisseur", gate.ActionCreate)(http.HandlerFunc(cfg.Fournisseurs.New)))
	a.mux.Handle("GET /fournisseurs/{id}/edit",
		a.require("fournisseur", gate.ActionUpdate)(http.HandlerFunc(cfg.Fournisseurs.Edit)))
	a.mux.Handle("POST /fournisseurs",
		a.require("fournisseur", gate.ActionCreate)(http.HandlerFunc(cfg.Fournisseurs.Save)))
	a.mux.Handle("POST /fournisseurs/{id}/delete",
		a.require("fournisseur", gate.ActionDelete)(http.HandlerFunc(cfg.Fournisseurs.Delete)))

	a.mux.Handle("GET /entreprises",
		a.require("entreprise", gate.ActionList)(http.HandlerFunc(cfg.Entreprises.List)))
	a.mux.Handle("GET /entreprises/new",
		a.require("entreprise", gate.ActionCreate)(http.HandlerFunc(cfg.Entreprises.New)))
	a.mux.Handle("GET /entreprises/{id}/edit",
		a.require("entreprise", gate.ActionUpdate)(http.HandlerFunc(cfg.Entreprises.Edit)))
	a.mux.Handle("POST /entreprises",
		a.require("entreprise", gate.ActionCreate)(http.HandlerFunc(cfg.Entreprises.Create)))
	a.mux.Handle("POST /entreprises/{id}/delete",
		a.require("entreprise", gate.ActionDelete)(http.HandlerFunc(cfg.Entreprises.Delete)))

	a.mux.Handle("GET /clients",
		a.require("client", gate.ActionList)(http.HandlerFunc(cfg.Clients.List)))
	a.mux.Handle("GET /clients/new",
		a.require("client", gate.ActionCreate)(http.HandlerFunc(cfg.Clients.New)))
	a.mux.Handle("GET /clients/{id}/edit",
		a.require("client", gate.ActionUpdate)(http.HandlerFunc(cfg.Clients.Edit)))
	a.mux.Handle("POST /clients",
		a.require("client", gate.ActionCreate)(http.HandlerFunc(cfg.Clients.Create)))
	a.mux.Handle("POST /clients/{id}/delete",
		a.require("client", gate.ActionDelete)(http.HandlerFunc(cfg.Clients.Delete)))

	a.mux.Handle("GET /commandes-client",
		a.require("commande_client", gate.ActionList)(http.HandlerFunc(cfg.CommandesClient.List)))
	a.mux.Handle("GET /commandes-client/{id}",
		a.require("commande_client", gate.ActionView)(http.HandlerFunc(cfg.CommandesClient.Detail)))
	a.mux.Handle("POST /commandes-client/{id}/delete",
		a.require("commande_client", gate.ActionDelete)(http.HandlerFunc(cfg.CommandesClient.Delete)))

	a.mux.Handle("GET /commandes-fournisseur",
		a.require("commande_fournisseur", gate.ActionList)(http.HandlerFunc(cfg.CommandesFournisseur.List)))
	a.mux.Handle("GET /commandes-fournisseur/{id}",
		a.require("commande_fournisseur", gate.ActionView)(http.HandlerFunc(cfg.CommandesFournisseur.Detail)))
	a.mux.Handle("POST /commandes-fournisseur/{id}/delete",
		a.require("commande_fournisseur", gate.ActionDelete)(http.HandlerFunc(cfg.CommandesFournisseur.Delete)))

	a.mux.Handle("GET /ventes",
		a.require("vente", gate.ActionList)(http.HandlerFunc(cfg.Ventes.List)))
	a.mux.Handle("GET /ventes/{id}",
		a.require("vente", gate.ActionView)(http.HandlerFunc(cfg.Ventes.Detail)))
	a.mux.Handle("POST /ventes/{id}/delete",
		a.require("vente", gate.ActionDelete)(http.HandlerFunc(cfg.Ventes.Delete)))

	// ── Admin ───────────────────────────────────────────────────────────────
	a.mux.Handle("GET /admin/users",
		a.requireAdmin(http.HandlerFunc(cfg.Users.List)))
	a.mux.Handle("GET /admin/users/pending",
		a.requireAdmin(http.HandlerFunc(cfg.Users.Pending)))
	a.mux.Handle("POST /admin/users/{id}/approve",
		a.requireAdmin(http.HandlerFunc(cfg.Users.Approve)))
	a.mux.Handle("POST /admin/users/{id}/reject",
		a.requireAdmin(http.HandlerFunc(cfg.Users.Reject)))

	// ── Health & static files ───────────────────────────────────────────────
	a.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}

func (a *App) require(resourceType string, action gate.Action) func(http.Handler) http.Handler {
	return a.routerCfg.AuthGate.RequirePermission(resourceType, action)
}

func (a *App) requireAdmin(next http.Handler) http.Handler {
	return a.routerCfg.AuthGate.RequireAdmin()(next)
}

// withPreferences resolves the language from the lang cookie or query
// parameter, falling back to Accept-Language.
func withPreferences(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			lang = c.Value
		}
		if q := r.URL.Query().Get("lang"); q != "" {
			lang = q
			http.SetCookie(w, &http.Cookie{
				Name:     "lang",
				Value:    lang,
				Path:     "/",
				MaxAge:   86400 * 365,
				HttpOnly: true,
			})
		}
		if lang == "" {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		ctx := i18n.WithLang(r.Context(), lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

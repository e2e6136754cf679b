// Package i18n provides the message catalogue for the web UI. French is the
// reference language; English is a partial overlay and anything missing in a
// table falls back to French, then to the raw code.
package i18n

import (
	"context"
	"strings"
)

// DefaultLang is used when language detection yields nothing usable.
const DefaultLang = "fr"

type ctxKey string

const langCtxKey = ctxKey("lang")

// WithLang stores the resolved language in the context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langCtxKey, lang)
}

// LangFromContext returns the resolved language, or the default.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langCtxKey).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// DetectLanguage picks a supported language from an Accept-Language header.
// Only the primary subtag matters; q-values are ignored because we support
// exactly two languages.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if idx := strings.IndexAny(tag, "-;"); idx >= 0 {
			tag = tag[:idx]
		}
		switch tag {
		case "fr":
			return "fr"
		case "en":
			return "en"
		}
	}
	return DefaultLang
}

// T translates a message code. Unknown languages use the French table and an
// unknown code comes back verbatim so missing entries stay visible.
func T(lang, code string) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[code]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLang][code]; ok {
		return msg
	}
	return code
}

var messages = map[string]map[string]string{
	"fr": {
		// validation
		"required":         "Requis",
		"must_be_positive": "Doit être positif",
		"out_of_range":     "Hors limites",
		"invalid_email":    "Email invalide",
		"invalid_phone":    "Numéro de téléphone invalide",
		"too_short":        "Trop court",
		"fields_mismatch":  "Les champs ne correspondent pas",

		// flashes
		"login_failed":    "Email ou mot de passe incorrect",
		"logged_out":      "Vous êtes déconnecté",
		"session_expired": "Session expirée, veuillez vous reconnecter",
		"saved":           "Enregistré avec succès",
		"deleted":         "Supprimé avec succès",
		"cart_added":      "Article ajouté au panier",
		"cart_updated":    "Panier mis à jour",
		"cart_removed":    "Article retiré du panier",
		"cart_cleared":    "Panier vidé",
		"otp_sent":        "Code de vérification envoyé",
		"otp_invalid":     "Code de vérification invalide",
		"reset_done":      "Mot de passe réinitialisé",
		"pending_account": "Compte en attente d'approbation",
		"user_approved":   "Utilisateur approuvé",
		"user_rejected":   "Utilisateur rejeté",

		// errors surfaced to the page
		"not_found":     "Ressource introuvable",
		"forbidden":     "Accès refusé",
		"server_error":  "Erreur du serveur, réessayez plus tard",
		"network_error": "Serveur injoignable, vérifiez votre connexion",

		// table + shared UI
		"no_data":       "Aucune donnée trouvée",
		"loading":       "Chargement...",
		"search":        "Rechercher...",
		"actions":       "Actions",
		"previous":      "Précédent",
		"next":          "Suivant",
		"per_page":      "par page",
		"uncategorized": "Non classé",
		"out_of_stock":  "Rupture de stock",
		"low_stock":     "Stock faible",
		"in_stock":      "En stock",
	},
	"en": {
		"required":         "Required",
		"must_be_positive": "Must be positive",
		"out_of_range":     "Out of range",
		"invalid_email":    "Invalid email",
		"invalid_phone":    "Invalid phone number",
		"too_short":        "Too short",
		"fields_mismatch":  "Fields do not match",

		"login_failed":    "Incorrect email or password",
		"logged_out":      "You have been signed out",
		"session_expired": "Session expired, please sign in again",
		"saved":           "Saved successfully",
		"deleted":         "Deleted successfully",
		"cart_added":      "Item added to cart",
		"cart_updated":    "Cart updated",
		"cart_removed":    "Item removed from cart",
		"cart_cleared":    "Cart cleared",
		"otp_sent":        "Verification code sent",
		"otp_invalid":     "Invalid verification code",
		"reset_done":      "Password reset",
		"pending_account": "Account pending approval",
		"user_approved":   "User approved",
		"user_rejected":   "User rejected",

		"not_found":     "Resource not found",
		"forbidden":     "Access denied",
		"server_error":  "Server error, try again later",
		"network_error": "Server unreachable, check your connection",

		"no_data":       "No data found",
		"loading":       "Loading...",
		"search":        "Search...",
		"actions":       "Actions",
		"previous":      "Previous",
		"next":          "Next",
		"per_page":      "per page",
		"uncategorized": "Uncategorized",
		"out_of_stock":  "Out of stock",
		"low_stock":     "Low stock",
		"in_stock":      "In stock",
	},
}

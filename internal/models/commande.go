package models

// Client order lifecycle statuses.
const (
	CommandeEnAttente = "EN_ATTENTE"
	CommandeConfirmee = "CONFIRMEE"
	CommandeExpediee  = "EXPEDIEE"
	CommandeLivree    = "LIVREE"
	CommandeRecue     = "RECUE"
	CommandeAnnulee   = "ANNULEE"
)

// CommandeClient is a client-side order aggregate.
type CommandeClient struct {
	ID            *int                  `json:"id,omitempty"`
	Code          *string               `json:"code,omitempty"`
	Client        *Client               `json:"client,omitempty"`
	Lignes        []LigneCommandeClient `json:"ligneCommandeClients,omitempty"`
	DateCommande  *string               `json:"dateCommande,omitempty"`
	DateLivraison *string               `json:"dateLivraison,omitempty"`
	Statut        *string               `json:"statut,omitempty"`
	TotalHT       *float64              `json:"totalHt,omitempty"`
	TotalTTC      *float64              `json:"totalTtc,omitempty"`
	Entreprise    *Entreprise           `json:"entreprise,omitempty"`
}

// CanDelete reports whether the order may still be deleted from the UI.
// Delivered and cancelled orders are terminal.
func (c CommandeClient) CanDelete() bool {
	if c.Statut == nil {
		return true
	}
	return *c.Statut != CommandeLivree && *c.Statut != CommandeAnnulee
}

// LigneCommandeClient is a child line item of a client order.
type LigneCommandeClient struct {
	ID           *int     `json:"id,omitempty"`
	Article      *Article `json:"article,omitempty"`
	Quantite     *int     `json:"quantite,omitempty"`
	PrixUnitaire *float64 `json:"prixUnitaire,omitempty"`
	PrixTotal    *float64 `json:"prixTotal,omitempty"`
	EntrepriseID *int     `json:"entrepriseId,omitempty"`
}

// CommandeFournisseur is a supplier-side order aggregate.
type CommandeFournisseur struct {
	ID                  *int                       `json:"id,omitempty"`
	Code                *string                    `json:"code,omitempty"`
	Fournisseur         *Fournisseur               `json:"fournisseur,omitempty"`
	Lignes              []LigneCommandeFournisseur `json:"ligneCommandeFournisseurs,omitempty"`
	DateCommande        *string                    `json:"dateCommande,omitempty"`
	DateLivraisonPrevue *string                    `json:"dateLivraisonPrevue,omitempty"`
	DateLivraisonReelle *string                    `json:"dateLivraisonReelle,omitempty"`
	Statut              *string                    `json:"statut,omitempty"`
	TotalHT             *float64                   `json:"totalHt,omitempty"`
	TotalTTC            *float64                   `json:"totalTtc,omitempty"`
	Entreprise          *Entreprise                `json:"entreprise,omitempty"`
}

// CanDelete mirrors CommandeClient.CanDelete; received supplier orders are
// terminal as well.
func (c CommandeFournisseur) CanDelete() bool {
	if c.Statut == nil {
		return true
	}
	return *c.Statut != CommandeRecue && *c.Statut != CommandeAnnulee
}

// LigneCommandeFournisseur is a child line item of a supplier order.
type LigneCommandeFournisseur struct {
	ID               *int     `json:"id,omitempty"`
	Article          *Article `json:"article,omitempty"`
	QuantiteCommandee *int    `json:"quantiteCommandee,omitempty"`
	QuantiteRecue    *int     `json:"quantiteRecue,omitempty"`
	PrixUnitaire     *float64 `json:"prixUnitaire,omitempty"`
	PrixTotal        *float64 `json:"prixTotal,omitempty"`
}

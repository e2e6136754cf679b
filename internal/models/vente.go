package models

// Vente is a completed sale aggregate.
type Vente struct {
	ID             *int            `json:"id,omitempty"`
	Code           *string         `json:"code,omitempty"`
	Client         *Client         `json:"client,omitempty"`
	Lignes         []LigneVente    `json:"ligneVentes,omitempty"`
	CommandeClient *CommandeClient `json:"commandeClient,omitempty"`
	Commentaire    *string         `json:"commentaire,omitempty"`
	DateVente      *string         `json:"dateVente,omitempty"`
	TotalHT        *float64        `json:"totalHt,omitempty"`
	TotalTVA       *float64        `json:"totalTva,omitempty"`
	TotalTTC       *float64        `json:"totalTtc,omitempty"`
	Entreprise     *Entreprise     `json:"entreprise,omitempty"`
	EntrepriseID   *int            `json:"entrepriseId,omitempty"`
}

// LigneVente is a child line item of a sale.
type LigneVente struct {
	ID           *int     `json:"id,omitempty"`
	Article      *Article `json:"article,omitempty"`
	Quantite     *int     `json:"quantite,omitempty"`
	PrixUnitaire *float64 `json:"prixUnitaire,omitempty"`
	PrixTotal    *float64 `json:"prixTotal,omitempty"`
	EntrepriseID *int     `json:"entrepriseId,omitempty"`
}

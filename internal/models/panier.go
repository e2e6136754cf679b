package models

// Panier is the server-held cart for one user. Totals are computed by the
// server and never recomputed locally.
type Panier struct {
	ID           *int         `json:"id,omitempty"`
	UserID       *string      `json:"userId,omitempty"`
	Items        []PanierItem `json:"items,omitempty"`
	TotalItems   *int         `json:"totalItems,omitempty"`
	MontantTotal *float64     `json:"montantTotal,omitempty"`
	MontantHT    *float64     `json:"montantHT,omitempty"`
	MontantTVA   *float64     `json:"montantTVA,omitempty"`
}

// Line returns the cart line for the given article, or nil.
func (p *Panier) Line(articleID int) *PanierItem {
	if p == nil {
		return nil
	}
	for i := range p.Items {
		if p.Items[i].ArticleID != nil && *p.Items[i].ArticleID == articleID {
			return &p.Items[i]
		}
	}
	return nil
}

// PanierItem is one cart line, carrying a price snapshot and the stock known
// at last sync.
type PanierItem struct {
	ID              *int     `json:"id,omitempty"`
	ArticleID       *int     `json:"articleId,omitempty"`
	ArticleCode     *string  `json:"articleCode,omitempty"`
	ArticleNom      *string  `json:"articleNom,omitempty"`
	ArticlePhoto    *string  `json:"articlePhoto,omitempty"`
	Quantite        *int     `json:"quantite,omitempty"`
	PrixUnitaire    *float64 `json:"prixUnitaire,omitempty"`
	SousTotal       *float64 `json:"sousTotal,omitempty"`
	StockDisponible *int     `json:"stockDisponible,omitempty"`
	Disponible      *bool    `json:"disponible,omitempty"`
}

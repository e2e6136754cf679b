package models

// Stock movement types.
const (
	MouvementEntree             = "ENTREE"
	MouvementSortie             = "SORTIE"
	MouvementCorrectionPositive = "CORRECTION_POSITIVE"
	MouvementCorrectionNegative = "CORRECTION_NEGATIVE"
)

// MouvementStock is a stock ledger entry.
type MouvementStock struct {
	ID                 *int     `json:"id,omitempty"`
	ArticleID          *int     `json:"articleId,omitempty"`
	ArticleDesignation *string  `json:"articleDesignation,omitempty"`
	TypeMouvement      *string  `json:"typeMouvement,omitempty"`
	Quantite           *int     `json:"quantite,omitempty"`
	PrixUnitaire       *float64 `json:"prixUnitaire,omitempty"`
	Motif              *string  `json:"motif,omitempty"`
	DateMouvement      *string  `json:"dateMouvement,omitempty"`
	CreatedBy          *string  `json:"createdBy,omitempty"`
}

// Stock alert types.
const (
	AlerteStockFaible  = "STOCK_FAIBLE"
	AlerteRuptureStock = "RUPTURE_STOCK"
	AlerteSurstock     = "SURSTOCK"
)

// AlerteStock is a server-raised stock threshold notification.
type AlerteStock struct {
	ID          *int     `json:"id,omitempty"`
	Article     *Article `json:"article,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Seuil       *int     `json:"seuil,omitempty"`
	StockActuel *int     `json:"stockActuel,omitempty"`
	Message     *string  `json:"message,omitempty"`
	Lu          *bool    `json:"lu,omitempty"`
	CreatedAt   *string  `json:"createdAt,omitempty"`
}

// StockAdjustmentRequest is the payload for a manual stock correction.
type StockAdjustmentRequest struct {
	Quantite int    `json:"quantite"`
	Motif    string `json:"motif"`
}

// APIResponse is the generic envelope returned by stock inventory operations.
type APIResponse struct {
	Success *bool          `json:"success,omitempty"`
	Message *string        `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *string        `json:"error,omitempty"`
}

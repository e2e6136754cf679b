package models

// Article statuses as exposed by the TJ-Track API.
const (
	ArticleActif       = "ACTIF"
	ArticleInactif     = "INACTIF"
	ArticleDiscontinue = "DISCONTINUE"
)

// Article is the full article resource with relations.
type Article struct {
	ID              *int         `json:"id,omitempty"`
	CodeArticle     *string      `json:"codeArticle,omitempty"`
	Designation     *string      `json:"designation,omitempty"`
	Description     *string      `json:"description,omitempty"`
	PrixUnitaireHT  *float64     `json:"prixUnitaireHt,omitempty"`
	TauxTVA         *float64     `json:"tauxTva,omitempty"`
	PrixUnitaireTTC *float64     `json:"prixUnitaireTtc,omitempty"`
	Photo           *string      `json:"photo,omitempty"`
	Categorie       *Categorie   `json:"categorie,omitempty"`
	Fournisseur     *Fournisseur `json:"fournisseur,omitempty"`
	Entreprise      *Entreprise  `json:"entreprise,omitempty"`
	QuantiteStock   *int         `json:"quantiteStock,omitempty"`
	StockReserve    *int         `json:"stockReserve,omitempty"`
	SeuilAlerte     *int         `json:"seuilAlerte,omitempty"`
	StockMax        *int         `json:"stockMax,omitempty"`
	Unite           *string      `json:"unite,omitempty"`
	CodeBarres      *string      `json:"codeBarres,omitempty"`
	Statut          *string      `json:"statut,omitempty"`
	CreatedAt       *string      `json:"createdAt,omitempty"`
	UpdatedAt       *string      `json:"updatedAt,omitempty"`
	StockDisponible *int         `json:"stockDisponible,omitempty"`
	RuptureStock    *bool        `json:"ruptureStock,omitempty"`
	StockFaible     *bool        `json:"stockFaible,omitempty"`
}

// ArticleDto is the flat article representation used by the stock and
// catalogue endpoints.
type ArticleDto struct {
	ID                    *int     `json:"id,omitempty"`
	CodeArticle           string   `json:"codeArticle"`
	Designation           string   `json:"designation"`
	Description           *string  `json:"description,omitempty"`
	PrixUnitaireHT        float64  `json:"prixUnitaireHt"`
	TauxTVA               *float64 `json:"tauxTva,omitempty"`
	PrixUnitaireTTC       *float64 `json:"prixUnitaireTtc,omitempty"`
	Photo                 *string  `json:"photo,omitempty"`
	QuantiteStock         *int     `json:"quantiteStock,omitempty"`
	SeuilAlerte           *int     `json:"seuilAlerte,omitempty"`
	StockMax              *int     `json:"stockMax,omitempty"`
	StockReserve          *int     `json:"stockReserve,omitempty"`
	CategorieID           *int     `json:"categorieId,omitempty"`
	CategorieDesignation  *string  `json:"categorieDesignation,omitempty"`
	StockFaible           *bool    `json:"stockFaible,omitempty"`
	CreatedAt             *string  `json:"createdAt,omitempty"`
	UpdatedAt             *string  `json:"updatedAt,omitempty"`
}

// IsNew reports whether the draft has no server identifier yet, which decides
// create vs update dispatch on submission.
func (a ArticleDto) IsNew() bool { return a.ID == nil }

// ArticleFilters are the catalogue listing parameters, passed through to the
// API as query parameters.
type ArticleFilters struct {
	Page        *int
	Size        *int
	SortBy      string
	SortDir     string
	CategorieID *int
	Search      string
}

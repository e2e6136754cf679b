package models

// Adresse is a nested postal address, optional on every owning entity.
type Adresse struct {
	ID         *int    `json:"id,omitempty"`
	Adresse1   *string `json:"adresse1,omitempty"`
	Adresse2   *string `json:"adresse2,omitempty"`
	Ville      *string `json:"ville,omitempty"`
	CodePostal *string `json:"codePostal,omitempty"`
	Pays       *string `json:"pays,omitempty"`
}

// Entreprise is a company resource.
type Entreprise struct {
	ID          *int     `json:"id,omitempty"`
	Nom         *string  `json:"nom,omitempty"`
	Description *string  `json:"description,omitempty"`
	CodeFiscal  *string  `json:"codeFiscal,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Telephone   *string  `json:"telephone,omitempty"`
	SiteWeb     *string  `json:"siteWeb,omitempty"`
	Adresse     *Adresse `json:"adresse,omitempty"`
	CreatedAt   *string  `json:"createdAt,omitempty"`
}

func (e Entreprise) IsNew() bool { return e.ID == nil }

// Fournisseur statuses.
const (
	FournisseurActif   = "ACTIF"
	FournisseurInactif = "INACTIF"
)

// Fournisseur is a supplier resource.
type Fournisseur struct {
	ID         *int        `json:"id,omitempty"`
	Nom        *string     `json:"nom,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Telephone  *string     `json:"telephone,omitempty"`
	Contact    *string     `json:"contact,omitempty"`
	Adresse    *Adresse    `json:"adresse,omitempty"`
	Entreprise *Entreprise `json:"entreprise,omitempty"`
	Statut     *string     `json:"statut,omitempty"`
	CreatedAt  *string     `json:"createdAt,omitempty"`
}

func (f Fournisseur) IsNew() bool { return f.ID == nil }

// Client is a customer resource.
type Client struct {
	ID            *int        `json:"id,omitempty"`
	Nom           *string     `json:"nom,omitempty"`
	Prenom        *string     `json:"prenom,omitempty"`
	Email         *string     `json:"email,omitempty"`
	Telephone     *string     `json:"telephone,omitempty"`
	DateNaissance *string     `json:"dateNaissance,omitempty"`
	Adresse       *Adresse    `json:"adresse,omitempty"`
	Entreprise    *Entreprise `json:"entreprise,omitempty"`
	CreatedAt     *string     `json:"createdAt,omitempty"`
}

func (c Client) IsNew() bool { return c.ID == nil }

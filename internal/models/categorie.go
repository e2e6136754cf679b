package models

// Categorie is the full category resource.
type Categorie struct {
	ID          *int      `json:"id,omitempty"`
	Code        *string   `json:"code,omitempty"`
	Designation *string   `json:"designation,omitempty"`
	Description *string   `json:"description,omitempty"`
	Articles    []Article `json:"articles,omitempty"`
	CreatedAt   *string   `json:"createdAt,omitempty"`
	UpdatedAt   *string   `json:"updatedAt,omitempty"`
}

// CategorieDto is the flat category representation with its dependent count.
type CategorieDto struct {
	ID             *int    `json:"id,omitempty"`
	Code           *string `json:"code,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Description    *string `json:"description,omitempty"`
	NombreArticles *int    `json:"nombreArticles,omitempty"`
}

func (c CategorieDto) IsNew() bool { return c.ID == nil }

// CanDelete reports whether deletion may be offered in the UI. A category
// with linked articles keeps its delete affordance disabled; the server
// remains the authority.
func (c CategorieDto) CanDelete() bool {
	return c.NombreArticles == nil || *c.NombreArticles == 0
}

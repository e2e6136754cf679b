package table

import (
	"strings"
	"testing"
)

type produit struct {
	ID          *int    `json:"id,omitempty"`
	Code        string  `json:"code"`
	Designation string  `json:"designation"`
	Prix        float64 `json:"prix"`
	Categorie   *string `json:"categorie,omitempty"`
}

func produits(n int) []produit {
	out := make([]produit, 0, n)
	for i := 0; i < n; i++ {
		id := i + 1
		out = append(out, produit{
			ID:          &id,
			Code:        "ART-" + strings.Repeat("0", 2) + string(rune('A'+i%26)),
			Designation: "Produit " + string(rune('A'+i%26)),
			Prix:        float64(i) * 1.5,
		})
	}
	return out
}

func produitColumns() []Column[produit] {
	return []Column[produit]{
		{Key: "code", Header: "Code"},
		{Key: "designation", Header: "Désignation"},
		{Key: "categorie", Header: "Catégorie"},
	}
}

func TestViewEmpty(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords(nil)
	v := tab.View()
	if v.Mode != ModeEmpty {
		t.Fatalf("mode = %q, want empty", v.Mode)
	}
	if v.ColSpan != 3 {
		t.Errorf("colspan = %d, want 3", v.ColSpan)
	}
	if v.TotalPages != 1 {
		t.Errorf("total pages = %d, want 1 even when empty", v.TotalPages)
	}
}

func TestViewLoading(t *testing.T) {
	tab := New(produitColumns())
	tab.SetLoading(true)
	if v := tab.View(); v.Mode != ModeLoading {
		t.Fatalf("mode = %q, want loading", v.Mode)
	}
	tab.SetRecords(produits(3))
	if v := tab.View(); v.Mode != ModeData {
		t.Fatalf("mode after SetRecords = %q, want data", v.Mode)
	}
}

func TestActionsWidenColSpan(t *testing.T) {
	tab := New(produitColumns())
	tab.HasActions = true
	tab.SetRecords(nil)
	if v := tab.View(); v.ColSpan != 4 {
		t.Errorf("colspan = %d, want 4 with actions column", v.ColSpan)
	}
}

func TestQueryResetsPage(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords(produits(30))
	tab.SetPage(3)
	if tab.Page() != 3 {
		t.Fatalf("page = %d, want 3", tab.Page())
	}
	tab.SetQuery("produit")
	if tab.Page() != 1 {
		t.Errorf("page after query change = %d, want 1", tab.Page())
	}
}

func TestPageSizeResetsPage(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords(produits(30))
	tab.SetPage(2)
	tab.SetPageSize(25)
	if tab.Page() != 1 {
		t.Errorf("page after size change = %d, want 1", tab.Page())
	}
	if tab.PageSize() != 25 {
		t.Errorf("page size = %d, want 25", tab.PageSize())
	}
}

func TestUnknownPageSizeIgnored(t *testing.T) {
	tab := New(produitColumns())
	tab.SetPageSize(7)
	if tab.PageSize() != DefaultPageSize {
		t.Errorf("page size = %d, want default %d", tab.PageSize(), DefaultPageSize)
	}
}

func TestPageClamping(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords(produits(12)) // 2 pages of 10
	tab.SetPage(99)
	if tab.Page() != 2 {
		t.Errorf("page = %d, want clamp to 2", tab.Page())
	}
	tab.SetPage(-4)
	if tab.Page() != 1 {
		t.Errorf("page = %d, want clamp to 1", tab.Page())
	}
}

func TestStalePageAfterFilter(t *testing.T) {
	// a page number valid for the full collection must clamp once the
	// filter shrinks it
	tab := New(produitColumns())
	records := produits(30)
	records[0].Designation = "unique"
	tab.SetRecords(records)
	tab.SetPage(3)
	tab.SetQuery("unique")
	page := tab.PageRecords()
	if len(page) != 1 {
		t.Fatalf("got %d records, want 1", len(page))
	}
	if page[0].Designation != "unique" {
		t.Errorf("record = %+v, want the filtered one", page[0])
	}
}

func TestFilteredPreservesOrder(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords([]produit{
		{Code: "C-1", Designation: "pomme rouge"},
		{Code: "C-2", Designation: "poire"},
		{Code: "C-3", Designation: "pomme verte"},
	})
	tab.SetQuery("pomme")
	got := tab.Filtered()
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Code != "C-1" || got[1].Code != "C-3" {
		t.Errorf("order = %s, %s; want C-1 then C-3", got[0].Code, got[1].Code)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords([]produit{{Code: "C-1", Designation: "Pomme"}})
	tab.SetQuery("POMME")
	if len(tab.Filtered()) != 1 {
		t.Error("uppercase query should match lowercase field")
	}
}

func TestCustomSearch(t *testing.T) {
	tab := New(produitColumns())
	tab.Search = func(p produit, q string) bool { return p.Code == q }
	tab.SetRecords([]produit{
		{Code: "C-1", Designation: "pomme"},
		{Code: "C-2", Designation: "pomme"},
	})
	tab.SetQuery("C-2")
	got := tab.Filtered()
	if len(got) != 1 || got[0].Code != "C-2" {
		t.Errorf("custom search got %+v, want only C-2", got)
	}
}

func TestNilFieldRendersPlaceholder(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords([]produit{{Code: "C-1", Designation: "pomme"}})
	v := tab.View()
	if len(v.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(v.Rows))
	}
	if cell := v.Rows[0].Cells[2]; cell != Placeholder {
		t.Errorf("nil categorie cell = %q, want %q", cell, Placeholder)
	}
}

func TestColumnRenderer(t *testing.T) {
	cols := []Column[produit]{
		{Header: "Prix", Render: func(p produit) string { return "!" }},
	}
	tab := New(cols)
	tab.SetRecords(produits(1))
	v := tab.View()
	if v.Rows[0].Cells[0] != "!" {
		t.Errorf("cell = %q, want renderer output", v.Rows[0].Cells[0])
	}
}

func TestViewRange(t *testing.T) {
	tab := New(produitColumns())
	tab.SetRecords(produits(23))
	tab.SetPage(3)
	v := tab.View()
	if v.Start != 21 || v.End != 23 || v.Total != 23 {
		t.Errorf("range = %d–%d / %d, want 21–23 / 23", v.Start, v.End, v.Total)
	}
	if v.HasNext {
		t.Error("last page should not have next")
	}
	if !v.HasPrev {
		t.Error("page 3 should have prev")
	}
}

func TestKeyFallsBackToFieldName(t *testing.T) {
	cols := []Column[produit]{{Key: "Prix", Header: "Prix"}}
	tab := New(cols)
	tab.SetRecords([]produit{{Prix: 4}})
	v := tab.View()
	if v.Rows[0].Cells[0] != "4" {
		t.Errorf("cell = %q, want field-name lookup to find 4", v.Rows[0].Cells[0])
	}
}

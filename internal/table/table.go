// Package table is a generic tabular view over an in-memory record
// collection: free-text filtering, page-size selection and 1-based
// pagination, independent of the record shape. It assumes the collection is
// fully loaded; server-side pagination belongs to the API layer.
package table

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PageSizes is the fixed set of selectable page sizes.
var PageSizes = []int{5, 10, 25, 50}

// DefaultPageSize is used until the user picks another size.
const DefaultPageSize = 10

// Placeholder is rendered for absent cell values.
const Placeholder = "-"

// Column describes one column: the record field it reads (by json tag or
// field name) and an optional renderer. Without a renderer the raw field
// value is coerced to a display string, or a dash when absent.
type Column[T any] struct {
	Key    string
	Header string
	Render func(T) string
}

// Table holds the view state for one record collection.
type Table[T any] struct {
	// Search optionally replaces the default any-field substring filter.
	Search     func(item T, query string) bool
	HasActions bool

	columns  []Column[T]
	records  []T
	loading  bool
	query    string
	page     int
	pageSize int
}

// New creates a table on page 1 with the default page size.
func New[T any](columns []Column[T]) *Table[T] {
	return &Table[T]{columns: columns, page: 1, pageSize: DefaultPageSize}
}

// SetRecords replaces the collection and clears the loading state.
func (t *Table[T]) SetRecords(records []T) {
	t.records = records
	t.loading = false
}

// SetLoading switches the table into its loading display mode.
func (t *Table[T]) SetLoading(loading bool) { t.loading = loading }

// SetQuery updates the filter text. Any query change resets to page 1.
func (t *Table[T]) SetQuery(q string) {
	t.query = q
	t.page = 1
}

// SetPageSize selects a page size from PageSizes; unknown values are
// ignored. A size change resets to page 1.
func (t *Table[T]) SetPageSize(size int) {
	for _, s := range PageSizes {
		if s == size {
			t.pageSize = size
			t.page = 1
			return
		}
	}
}

// SetPage moves to page p, clamped into [1, TotalPages].
func (t *Table[T]) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	if max := t.TotalPages(); p > max {
		p = max
	}
	t.page = p
}

func (t *Table[T]) Query() string { return t.query }
func (t *Table[T]) Page() int     { return t.page }
func (t *Table[T]) PageSize() int { return t.pageSize }

// Filtered returns the records matching the current query, in input order.
func (t *Table[T]) Filtered() []T {
	if t.query == "" {
		return t.records
	}
	var out []T
	for _, item := range t.records {
		if t.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (t *Table[T]) matches(item T) bool {
	if t.Search != nil {
		return t.Search(item, t.query)
	}
	q := strings.ToLower(t.query)
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return strings.Contains(strings.ToLower(displayValue(v)), q)
	}
	for i := 0; i < v.NumField(); i++ {
		if !v.Type().Field(i).IsExported() {
			continue
		}
		s := displayValue(v.Field(i))
		if s == "" {
			continue
		}
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// TotalPages is at least 1, even for an empty filtered result.
func (t *Table[T]) TotalPages() int {
	n := len(t.Filtered())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

// PageRecords returns the records of the current page; the last page may be
// short. The page is clamped first, so a stale page number never yields an
// out-of-range slice.
func (t *Table[T]) PageRecords() []T {
	filtered := t.Filtered()
	t.SetPage(t.page)
	start := (t.page - 1) * t.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + t.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Mode is the table's display mode; loading and empty are mutually
// exclusive layers over the same column structure.
type Mode string

const (
	ModeLoading Mode = "loading"
	ModeEmpty   Mode = "empty"
	ModeData    Mode = "data"
)

// Row is one rendered record: its display cells plus the record itself for
// action affordances.
type Row[T any] struct {
	Item  T
	Cells []string
}

// View is the template-ready projection of the table state.
type View[T any] struct {
	Mode       Mode
	Headers    []string
	Rows       []Row[T]
	ColSpan    int
	Query      string
	Page       int
	TotalPages int
	PageSize   int
	PageSizes  []int
	Start      int // 1-based index of the first displayed record
	End        int // index of the last displayed record
	Total      int // filtered record count
	HasPrev    bool
	HasNext    bool
}

// View renders the current state. The placeholder and loading modes each
// occupy a single row spanning every column (plus the actions column when
// present).
func (t *Table[T]) View() View[T] {
	v := View[T]{
		Headers:    make([]string, 0, len(t.columns)),
		ColSpan:    len(t.columns),
		Query:      t.query,
		PageSize:   t.pageSize,
		PageSizes:  PageSizes,
		TotalPages: t.TotalPages(),
	}
	if t.HasActions {
		v.ColSpan++
	}
	for _, col := range t.columns {
		v.Headers = append(v.Headers, col.Header)
	}
	if t.loading {
		v.Mode = ModeLoading
		v.Page = t.page
		return v
	}
	records := t.PageRecords()
	v.Page = t.page
	v.HasPrev = t.page > 1
	v.HasNext = t.page < v.TotalPages
	filtered := t.Filtered()
	v.Total = len(filtered)
	if len(records) == 0 {
		v.Mode = ModeEmpty
		return v
	}
	v.Mode = ModeData
	v.Start = (t.page-1)*t.pageSize + 1
	v.End = v.Start + len(records) - 1
	for _, item := range records {
		row := Row[T]{Item: item, Cells: make([]string, 0, len(t.columns))}
		for _, col := range t.columns {
			if col.Render != nil {
				row.Cells = append(row.Cells, col.Render(item))
				continue
			}
			row.Cells = append(row.Cells, fieldValue(item, col.Key))
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

// fieldValue resolves a column key against the record by json tag first,
// then by case-insensitive field name.
func fieldValue[T any](item T, key string) string {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Placeholder
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Placeholder
	}
	rt := v.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if idx := strings.IndexByte(tag, ','); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == key || strings.EqualFold(f.Name, key) {
			s := displayValue(v.Field(i))
			if s == "" {
				return Placeholder
			}
			return s
		}
	}
	return Placeholder
}

// displayValue coerces a field to its display string. Nil pointers and nil
// slices come back empty so callers can substitute the placeholder.
func displayValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return displayValue(v.Elem())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Slice, reflect.Map:
		if v.IsNil() || v.Len() == 0 {
			return ""
		}
		return fmt.Sprint(v.Interface())
	case reflect.Struct:
		return fmt.Sprint(v.Interface())
	default:
		if !v.IsValid() {
			return ""
		}
		return fmt.Sprint(v.Interface())
	}
}

// Package table implements the reusable tabular view used by every list page:
// a column schema over an arbitrary row collection with client-side sorting
// and pagination.
//
// The model is a pure function of (columns, rows, interaction state); it
// performs no I/O, never mutates the input rows, and is total over empty,
// singleton, and arbitrarily large collections.
package table

import (
	"fmt"
	"sort"
)

// Direction of the active sort.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// DefaultPageSizeOptions is used when a view does not configure its own set.
var DefaultPageSizeOptions = []int{5, 10, 20, 50}

// Column describes one column of a schema.
//
// Cell maps a row to its displayable value. SortValue, when present, makes
// the column sortable and supplies the comparison key; a column without a
// SortValue accessor cannot be sorted.
type Column[T any] struct {
	ID        string
	Title     string
	Cell      func(T) string
	SortValue func(T) any
}

func (c Column[T]) sortable() bool { return c.SortValue != nil }

// SortSpec is the at-most-one active sort column.
type SortSpec struct {
	ColumnID  string
	Direction Direction
}

// Model owns the interaction state of one table instance: the active sort,
// the page index, and the page size.
type Model[T any] struct {
	columns         []Column[T]
	rows            []T
	order           []int // presentation order, indexes into rows
	sortSpec        SortSpec
	pageIndex       int
	pageSize        int
	pageSizeOptions []int
}

// NewModel builds a table model over the given schema. Column ids must be
// unique within the schema. The default page size is added to the option set
// when absent so it is always selectable.
func NewModel[T any](columns []Column[T], defaultPageSize int, pageSizeOptions []int) (*Model[T], error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table: schema has no columns")
	}
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if col.ID == "" {
			return nil, fmt.Errorf("table: column with empty id")
		}
		if _, dup := seen[col.ID]; dup {
			return nil, fmt.Errorf("table: duplicate column id %q", col.ID)
		}
		seen[col.ID] = struct{}{}
	}

	if len(pageSizeOptions) == 0 {
		pageSizeOptions = DefaultPageSizeOptions
	}
	options := append([]int(nil), pageSizeOptions...)
	if defaultPageSize <= 0 {
		defaultPageSize = options[0]
	}
	if !containsInt(options, defaultPageSize) {
		options = append(options, defaultPageSize)
	}
	sort.Ints(options)

	return &Model[T]{
		columns:         columns,
		pageSize:        defaultPageSize,
		pageSizeOptions: options,
	}, nil
}

// Columns returns the schema.
func (m *Model[T]) Columns() []Column[T] { return m.columns }

// SortState returns the active sort spec (Direction None when inactive).
func (m *Model[T]) SortState() SortSpec { return m.sortSpec }

// PageSizeOptions returns the selectable page sizes, ascending.
func (m *Model[T]) PageSizeOptions() []int { return m.pageSizeOptions }

// PageSize returns the current page size.
func (m *Model[T]) PageSize() int { return m.pageSize }

// PageIndex returns the current zero-based page index.
func (m *Model[T]) PageIndex() int { return m.pageIndex }

// Len returns the total number of rows.
func (m *Model[T]) Len() int { return len(m.rows) }

// SetRows replaces the row collection. The active sort is re-applied over
// the new rows and the page index re-clamped. The input slice is not copied;
// it must not be mutated by the caller afterwards, and it is never mutated
// here: sorting happens on an index permutation.
func (m *Model[T]) SetRows(rows []T) {
	m.rows = rows
	m.applySort()
	m.clampPageIndex()
}

// ToggleSort advances the sort cycle for the given column:
// ascending, then descending, then none (original order). Activating a
// different column clears the previous one and starts at ascending.
// Unknown or unsortable column ids are no-ops.
func (m *Model[T]) ToggleSort(columnID string) {
	col, ok := m.column(columnID)
	if !ok || !col.sortable() {
		return
	}

	if m.sortSpec.ColumnID != columnID || m.sortSpec.Direction == None {
		m.sortSpec = SortSpec{ColumnID: columnID, Direction: Ascending}
	} else if m.sortSpec.Direction == Ascending {
		m.sortSpec = SortSpec{ColumnID: columnID, Direction: Descending}
	} else {
		m.sortSpec = SortSpec{}
	}

	m.applySort()
}

// SetPageSize switches to one of the configured page sizes and resets the
// page index to the first page.
func (m *Model[T]) SetPageSize(n int) error {
	if !containsInt(m.pageSizeOptions, n) {
		return fmt.Errorf("table: page size %d not in %v", n, m.pageSizeOptions)
	}
	m.pageSize = n
	m.pageIndex = 0
	return nil
}

// TotalPages is max(1, ceil(len(rows)/pageSize)).
func (m *Model[T]) TotalPages() int {
	pages := (len(m.rows) + m.pageSize - 1) / m.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// NextPage advances one page; at the last page it is a no-op.
func (m *Model[T]) NextPage() {
	if m.pageIndex < m.TotalPages()-1 {
		m.pageIndex++
	}
}

// PrevPage goes back one page; at the first page it is a no-op.
func (m *Model[T]) PrevPage() {
	if m.pageIndex > 0 {
		m.pageIndex--
	}
}

// CanNextPage reports whether NextPage would move.
func (m *Model[T]) CanNextPage() bool { return m.pageIndex < m.TotalPages()-1 }

// CanPrevPage reports whether PrevPage would move.
func (m *Model[T]) CanPrevPage() bool { return m.pageIndex > 0 }

// Page returns the rows of the current page, in presentation order.
func (m *Model[T]) Page() []T {
	start := m.pageIndex * m.pageSize
	if start >= len(m.order) {
		return nil
	}
	end := start + m.pageSize
	if end > len(m.order) {
		end = len(m.order)
	}
	page := make([]T, 0, end-start)
	for _, idx := range m.order[start:end] {
		page = append(page, m.rows[idx])
	}
	return page
}

// Footer returns the "Showing {start}–{end} of {total}" line with 1-based
// inclusive bounds, or "" when there are no rows (the pagination footer is
// suppressed entirely for an empty table).
func (m *Model[T]) Footer() string {
	total := len(m.rows)
	if total == 0 {
		return ""
	}
	start := m.pageIndex*m.pageSize + 1
	end := (m.pageIndex + 1) * m.pageSize
	if end > total {
		end = total
	}
	return fmt.Sprintf("Showing %d–%d of %d", start, end, total)
}

func (m *Model[T]) column(id string) (Column[T], bool) {
	for _, col := range m.columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column[T]{}, false
}

// clampPageIndex keeps pageIndex inside [0, TotalPages()-1]. Called whenever
// the row count or page size changes.
func (m *Model[T]) clampPageIndex() {
	last := m.TotalPages() - 1
	if m.pageIndex > last {
		m.pageIndex = last
	}
	if m.pageIndex < 0 {
		m.pageIndex = 0
	}
}

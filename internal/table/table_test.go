package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string
	Name  string
	Count int
}

func testColumns() []Column[row] {
	return []Column[row]{
		{ID: "name", Title: "Name", Cell: func(r row) string { return r.Name }, SortValue: func(r row) any { return r.Name }},
		{ID: "count", Title: "Count", Cell: func(r row) string { return fmt.Sprint(r.Count) }, SortValue: func(r row) any { return r.Count }},
		{ID: "id", Title: "ID", Cell: func(r row) string { return r.ID }},
	}
}

func newTestModel(t *testing.T, rows []row) *Model[row] {
	t.Helper()
	m, err := NewModel(testColumns(), 10, nil)
	require.NoError(t, err)
	m.SetRows(rows)
	return m
}

func namesOf(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{ID: fmt.Sprintf("r%02d", i), Name: fmt.Sprintf("name%02d", i), Count: i})
	}
	return rows
}

func TestNewModel_RejectsDuplicateColumnIDs(t *testing.T) {
	cols := testColumns()
	cols = append(cols, Column[row]{ID: "name", Title: "Again", Cell: func(r row) string { return r.Name }})
	_, err := NewModel(cols, 10, nil)
	assert.Error(t, err)
}

func TestNewModel_DefaultPageSizeAddedToOptions(t *testing.T) {
	m, err := NewModel(testColumns(), 7, []int{5, 10})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7, 10}, m.PageSizeOptions())
	assert.Equal(t, 7, m.PageSize())
}

func TestToggleSort_CycleAscDescNone(t *testing.T) {
	rows := []row{{Name: "carol"}, {Name: "alice"}, {Name: "bob"}}
	m := newTestModel(t, rows)

	m.ToggleSort("name")
	assert.Equal(t, SortSpec{ColumnID: "name", Direction: Ascending}, m.SortState())
	assert.Equal(t, []string{"alice", "bob", "carol"}, namesOf(m.Page()))

	m.ToggleSort("name")
	assert.Equal(t, Descending, m.SortState().Direction)
	assert.Equal(t, []string{"carol", "bob", "alice"}, namesOf(m.Page()))

	m.ToggleSort("name")
	assert.Equal(t, SortSpec{}, m.SortState())
	// None restores the original row order.
	assert.Equal(t, []string{"carol", "alice", "bob"}, namesOf(m.Page()))

	m.ToggleSort("name")
	assert.Equal(t, Ascending, m.SortState().Direction)
}

func TestToggleSort_NewColumnClearsPrior(t *testing.T) {
	rows := []row{{Name: "b", Count: 1}, {Name: "a", Count: 2}}
	m := newTestModel(t, rows)

	m.ToggleSort("name")
	m.ToggleSort("name") // name desc
	m.ToggleSort("count")

	spec := m.SortState()
	assert.Equal(t, "count", spec.ColumnID)
	assert.Equal(t, Ascending, spec.Direction)
	assert.Equal(t, []string{"b", "a"}, namesOf(m.Page()))
}

func TestToggleSort_UnsortableAndUnknownAreNoOps(t *testing.T) {
	rows := []row{{Name: "b"}, {Name: "a"}}
	m := newTestModel(t, rows)

	m.ToggleSort("id") // no SortValue accessor
	assert.Equal(t, SortSpec{}, m.SortState())

	m.ToggleSort("nope")
	assert.Equal(t, SortSpec{}, m.SortState())
	assert.Equal(t, []string{"b", "a"}, namesOf(m.Page()))
}

func TestSort_Idempotent(t *testing.T) {
	rows := []row{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	m := newTestModel(t, rows)

	m.ToggleSort("name")
	once := namesOf(m.Page())

	// Re-applying the same sort over the same rows changes nothing.
	m.SetRows(rows)
	assert.Equal(t, once, namesOf(m.Page()))
}

func TestSort_ReversibleWithoutTies(t *testing.T) {
	rows := []row{{Count: 3}, {Count: 1}, {Count: 4}, {Count: 2}}
	m := newTestModel(t, rows)

	m.ToggleSort("count")
	asc := m.Page()
	m.ToggleSort("count")
	desc := m.Page()

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSort_TiesKeepOriginalOrderBothDirections(t *testing.T) {
	rows := []row{
		{ID: "r0", Count: 1},
		{ID: "r1", Count: 2},
		{ID: "r2", Count: 1},
		{ID: "r3", Count: 2},
	}
	m := newTestModel(t, rows)

	m.ToggleSort("count")
	asc := m.Page()
	assert.Equal(t, []string{"r0", "r2", "r1", "r3"}, []string{asc[0].ID, asc[1].ID, asc[2].ID, asc[3].ID})

	m.ToggleSort("count")
	desc := m.Page()
	assert.Equal(t, []string{"r1", "r3", "r0", "r2"}, []string{desc[0].ID, desc[1].ID, desc[2].ID, desc[3].ID})
}

func TestSort_DoesNotMutateInputRows(t *testing.T) {
	rows := []row{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	m := newTestModel(t, rows)
	m.ToggleSort("name")

	assert.Equal(t, []string{"c", "a", "b"}, namesOf(rows))
}

func TestSort_OverFullCollectionNotJustPage(t *testing.T) {
	// 15 rows seeded in reverse order with page size 5: after an ascending
	// sort, the first page must hold the globally smallest keys.
	rows := make([]row, 0, 15)
	for i := 14; i >= 0; i-- {
		rows = append(rows, row{Count: i})
	}
	m, err := NewModel(testColumns(), 5, nil)
	require.NoError(t, err)
	m.SetRows(rows)

	m.ToggleSort("count")
	page := m.Page()
	require.Len(t, page, 5)
	for i, r := range page {
		assert.Equal(t, i, r.Count)
	}
}

func TestPagination_CoverageExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 23, 50} {
		for _, size := range []int{5, 10, 20} {
			m, err := NewModel(testColumns(), size, nil)
			require.NoError(t, err)
			m.SetRows(makeRows(n))
			m.ToggleSort("count")

			var all []row
			for {
				all = append(all, m.Page()...)
				if !m.CanNextPage() {
					break
				}
				m.NextPage()
			}

			require.Len(t, all, n, "n=%d size=%d", n, size)
			for i, r := range all {
				assert.Equal(t, i, r.Count, "n=%d size=%d", n, size)
			}
		}
	}
}

func TestPagination_Scenario23Rows(t *testing.T) {
	m, err := NewModel(testColumns(), 10, nil)
	require.NoError(t, err)
	m.SetRows(makeRows(23))

	assert.Equal(t, 3, m.TotalPages())
	assert.Len(t, m.Page(), 10)

	m.NextPage()
	assert.Len(t, m.Page(), 10)
	assert.Equal(t, "Showing 11–20 of 23", m.Footer())

	m.NextPage()
	assert.Len(t, m.Page(), 3)
	assert.Equal(t, "Showing 21–23 of 23", m.Footer())

	// Past the last page is a no-op.
	m.NextPage()
	assert.Equal(t, 2, m.PageIndex())
	assert.False(t, m.CanNextPage())
}

func TestPagination_PrevAtFirstPageIsNoOp(t *testing.T) {
	m := newTestModel(t, makeRows(3))
	assert.False(t, m.CanPrevPage())
	m.PrevPage()
	assert.Equal(t, 0, m.PageIndex())
}

func TestSetPageSize_ResetsPageIndex(t *testing.T) {
	m := newTestModel(t, makeRows(50))
	m.NextPage()
	m.NextPage()
	require.Equal(t, 2, m.PageIndex())

	require.NoError(t, m.SetPageSize(20))
	assert.Equal(t, 0, m.PageIndex())
	assert.Len(t, m.Page(), 20)
}

func TestSetPageSize_RejectsUnknownSize(t *testing.T) {
	m := newTestModel(t, makeRows(10))
	assert.Error(t, m.SetPageSize(7))
	assert.Equal(t, 10, m.PageSize())
}

func TestClamp_RowCountShrinks(t *testing.T) {
	m := newTestModel(t, makeRows(50))
	for m.CanNextPage() {
		m.NextPage()
	}
	require.Equal(t, 4, m.PageIndex())

	m.SetRows(makeRows(11))
	assert.Equal(t, 1, m.PageIndex())

	m.SetRows(makeRows(0))
	assert.Equal(t, 0, m.PageIndex())
	assert.Equal(t, 1, m.TotalPages())
}

func TestFooter_EmptyRowsSuppressed(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, "", m.Footer())
}

func TestFooter_SingleRow(t *testing.T) {
	m := newTestModel(t, makeRows(1))
	assert.Equal(t, "Showing 1–1 of 1", m.Footer())
}

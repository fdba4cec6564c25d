package table

import (
	"fmt"
	"sort"
	"time"
)

// applySort recomputes the presentation order over the full row collection.
// With no active sort the original order is restored. Ties keep their
// original relative order in both directions, which makes repeated sorts
// idempotent and the output deterministic.
func (m *Model[T]) applySort() {
	m.order = make([]int, len(m.rows))
	for i := range m.order {
		m.order[i] = i
	}

	if m.sortSpec.Direction == None {
		return
	}
	col, ok := m.column(m.sortSpec.ColumnID)
	if !ok || !col.sortable() {
		return
	}

	desc := m.sortSpec.Direction == Descending
	sort.Slice(m.order, func(i, j int) bool {
		a, b := m.order[i], m.order[j]
		c := compareValues(col.SortValue(m.rows[a]), col.SortValue(m.rows[b]))
		if desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		// Original index breaks ties, in both directions.
		return a < b
	})
}

// compareValues imposes a total order over sort keys: numeric kinds compare
// numerically, time.Time chronologically, booleans false-before-true, and
// everything else by its string form.
func compareValues(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := stringify(a), stringify(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func containsInt(s []int, n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

// Package listview holds the in-memory collection backing one table view:
// items, authoritative total, loading flag, and last error.
//
// Each view owns one View instance and is its single writer; the generation
// token returned by Begin makes the outcome explicit when requests overlap:
// only the resolution carrying the latest generation may touch state, so a
// stale response can never overwrite the result of a newer request, no matter
// in which order the two responses arrive.
package listview

import "sync"

// View is the list state of one entity. The zero value is ready to use.
type View[T any] struct {
	mu         sync.Mutex
	items      []T
	total      int
	loading    bool
	err        error
	generation uint64
}

// Snapshot is a consistent copy of the view state.
type Snapshot[T any] struct {
	Items   []T
	Total   int
	Loading bool
	Err     error
}

// Begin marks the view loading, clears any previous error, and returns the
// generation token the eventual Resolve call must present. Calling Begin
// again before the previous request resolves supersedes that request.
func (v *View[T]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.loading = true
	v.err = nil
	return v.generation
}

// Resolve applies the outcome of the request started with gen. A stale
// generation is dropped without touching state and reported as false.
// On error the collection is emptied and the error recorded.
func (v *View[T]) Resolve(gen uint64, items []T, total int, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return false
	}
	v.loading = false
	if err != nil {
		v.items = nil
		v.total = 0
		v.err = err
		return true
	}
	v.items = items
	v.total = total
	v.err = nil
	return true
}

// Reset returns the view to its zero state. Any outstanding request becomes
// stale: its later Resolve will carry an old generation and be dropped.
func (v *View[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.items = nil
	v.total = 0
	v.loading = false
	v.err = nil
}

// Snapshot returns a consistent copy of (items, total, loading, err).
// The items slice is shared, not copied; callers must not mutate it.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{Items: v.items, Total: v.total, Loading: v.loading, Err: v.err}
}

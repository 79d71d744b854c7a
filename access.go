package guarded

// MutAccess is the handle for one mutable-access scope on a Cell. It is
// created by Mut, grants exclusive mutable access to the wrapped value
// through Value, and triggers the cell's guard exactly once when the
// scope ends via Finish.
//
// A MutAccess is either active or finished. The transition happens once;
// a finished handle cannot be reactivated.
type MutAccess[T any] struct {
	cell *Cell[T]
	done bool
}

// Value returns the wrapped value for in-place mutation. It may be called
// any number of times while the access is active. Calling Value on a
// finished access panics.
func (a *MutAccess[T]) Value() *T {
	if a.done {
		panic("guarded: Value on finished MutAccess")
	}
	return &a.cell.value
}

// Finish ends the mutable-access scope: the guard fires with the mutated
// value, then the cell accepts reads and new mutable accesses again.
// Finish is idempotent; repeated calls are no-ops and the guard still
// fires exactly once.
//
// The cell stays borrowed while the guard runs, so the guard cannot
// re-enter the cell. If the guard panics, the cell is released before the
// panic propagates.
func (a *MutAccess[T]) Finish() {
	if a.done {
		return
	}
	a.done = true
	c := a.cell
	defer func() { c.mutLive = false }()
	c.guard(&c.value)
}

// Active reports whether the scope has not ended yet.
func (a *MutAccess[T]) Active() bool {
	return !a.done
}

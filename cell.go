package guarded

// GuardFunc is called with the wrapped value at the end of every
// mutable-access scope, after all mutations performed in that scope and
// before the cell accepts a new read or mutable access.
type GuardFunc[T any] func(value *T)

// Cell owns a value of type T and a guard callback. All mutable access to
// the value goes through a MutAccess obtained from Mut, or through the
// closure-scoped With and WithE helpers; the guard fires once when each
// such scope ends.
//
// A Cell is single-threaded: it is the caller's job to synchronize use
// from multiple goroutines.
type Cell[T any] struct {
	value    T
	guard    GuardFunc[T]
	mutLive  bool
	readers  int
	consumed bool
}

// New creates a cell holding initial whose guard fires at the end of
// every mutable-access scope. A nil guard behaves like a no-op.
func New[T any](initial T, guard GuardFunc[T]) *Cell[T] {
	c := &Cell[T]{value: initial}
	c.setGuard(guard)
	return c
}

// NewDefault creates a cell with a no-op guard. A real guard can be
// installed later with Attach.
func NewDefault[T any](initial T) *Cell[T] {
	return New[T](initial, nil)
}

// Attach replaces the cell's guard. The previous guard is discarded, not
// composed with; use guards.Chain to stack behaviors deliberately.
// Attach fails with a ConcurrentAccessError while a mutable access is
// live, since the guard for the in-flight scope would be ambiguous.
func (c *Cell[T]) Attach(guard GuardFunc[T]) error {
	c.checkConsumed()
	if c.mutLive {
		return newAccessError("attach", stateMutBorrowed)
	}
	c.setGuard(guard)
	return nil
}

// Read runs fn with the current value for the duration of the call.
// Overlapping reads are allowed; Read fails with a ConcurrentAccessError
// while a mutable access is live.
func (c *Cell[T]) Read(fn func(value T)) error {
	c.checkConsumed()
	if c.mutLive {
		return newAccessError("read", stateMutBorrowed)
	}
	c.readers++
	defer func() { c.readers-- }()
	fn(c.value)
	return nil
}

// Get returns a copy of the current value. Same precondition as Read.
func (c *Cell[T]) Get() (T, error) {
	c.checkConsumed()
	if c.mutLive {
		var zero T
		return zero, newAccessError("get", stateMutBorrowed)
	}
	return c.value, nil
}

// Mut begins a mutable-access scope and returns the handle bound to it.
// The caller ends the scope with Finish, typically deferred; the guard
// fires at that point. Mut fails with a ConcurrentAccessError while
// another mutable access is live or a Read is in progress.
func (c *Cell[T]) Mut() (*MutAccess[T], error) {
	c.checkConsumed()
	if c.mutLive {
		return nil, newAccessError("mut", stateMutBorrowed)
	}
	if c.readers > 0 {
		return nil, newAccessError("mut", stateBeingRead)
	}
	c.mutLive = true
	return &MutAccess[T]{cell: c}, nil
}

// With runs fn inside a mutable-access scope. The guard fires after fn
// returns, including when fn panics.
func (c *Cell[T]) With(fn func(value *T)) error {
	return c.WithE(func(v *T) error {
		fn(v)
		return nil
	})
}

// WithE is With for mutations that can fail. The guard fires after fn
// returns regardless of fn's error, which is then returned unchanged.
func (c *Cell[T]) WithE(fn func(value *T) error) error {
	acc, err := c.Mut()
	if err != nil {
		return err
	}
	defer acc.Finish()
	return fn(acc.Value())
}

// IntoInner returns the wrapped value and consumes the cell. It fails
// with a ConcurrentAccessError while a mutable access is live or a Read
// is in progress. Any use of the cell after IntoInner panics.
func (c *Cell[T]) IntoInner() (T, error) {
	c.checkConsumed()
	if c.mutLive {
		var zero T
		return zero, newAccessError("into-inner", stateMutBorrowed)
	}
	if c.readers > 0 {
		var zero T
		return zero, newAccessError("into-inner", stateBeingRead)
	}
	c.consumed = true
	return c.value, nil
}

func (c *Cell[T]) setGuard(guard GuardFunc[T]) {
	if guard == nil {
		guard = func(*T) {}
	}
	c.guard = guard
}

func (c *Cell[T]) checkConsumed() {
	if c.consumed {
		panic("guarded: use of consumed Cell")
	}
}

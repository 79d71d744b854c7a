package guarded

// Guard is implemented by values that check or flush themselves after
// each mutable-access scope. It is the interface-based alternative to
// passing a GuardFunc closure.
type Guard interface {
	Finish()
}

// For creates a cell whose guard calls the value's own Finish method at
// the end of every mutable-access scope:
//
//	cell := guarded.For[LessThan20](LessThan20{N: 0})
//
// The pointer type *T must implement Guard.
func For[T any, PT interface {
	*T
	Guard
}](initial T) *Cell[T] {
	return New(initial, func(v *T) {
		PT(v).Finish()
	})
}

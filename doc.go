// Package guarded provides a wrapper type that intercepts every mutable
// access to a contained value and runs a user-supplied guard callback
// exactly once after each mutable-access scope ends, before the mutated
// value becomes observable again.
//
// # Overview
//
// The library is built around two types:
//
//  1. Cell: the long-lived owner of a value and of the guard callback
//  2. MutAccess: a short-lived handle granting exclusive mutable access
//
// A caller begins a mutable-access scope, mutates the value through the
// handle any number of times, and ends the scope. On scope end the guard
// fires with the mutated value, then the cell becomes available again for
// reads or a new mutable-access scope.
//
// # Basic Usage
//
// Wrap a value with a guard closure:
//
//	cell := guarded.New([]int{}, func(v *[]int) {
//	    fmt.Println("content is now", *v)
//	})
//
//	cell.With(func(v *[]int) { *v = append(*v, 1) })
//	// prints "content is now [1]"
//
//	cell.With(func(v *[]int) { *v = append(*v, 2) })
//	// prints "content is now [1 2]"
//
// Or manage the scope explicitly when the mutation spans multiple
// statements:
//
//	acc, err := cell.Mut()
//	if err != nil {
//	    return err
//	}
//	defer acc.Finish()
//
//	*acc.Value() = append(*acc.Value(), 3)
//
// # Invariant Checks
//
// Because the guard runs after every mutable-access scope, it can enforce
// invariants that hold no matter which code path performed the mutation:
//
//	type LessThan20 struct{ N int }
//
//	func (l *LessThan20) Finish() {
//	    if l.N > 20 {
//	        panic(fmt.Sprintf("invariant failed, internal value is too large: %d", l.N))
//	    }
//	}
//
//	cell := guarded.For[LessThan20](LessThan20{N: 0})
//	cell.With(func(l *LessThan20) { l.N = 10 }) // guard passes
//	cell.With(func(l *LessThan20) { l.N = 30 }) // guard panics
//
// # Exclusivity
//
// At most one MutAccess may be live for a given Cell at any time. Starting
// a second mutable access, or reading while one is live, fails with a
// ConcurrentAccessError. Overlapping reads are permitted with each other.
//
// A Cell is not safe for concurrent use from multiple goroutines; callers
// that need that wrap the Cell in a mutex.
//
// # Prebuilt Guards
//
// The guards subpackage ships callbacks for the common use cases: logging
// every change through log/slog, and persisting the value to a JSON file
// after every mutation scope.
package guarded

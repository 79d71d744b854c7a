package guards

import guarded "github.com/guarded-fn/guarded-go"

// Chain combines several guards into one that runs them in order.
// Cell.Attach replaces the installed guard rather than composing with it;
// Chain is the explicit way to stack behaviors, e.g. log then persist.
func Chain[T any](fns ...guarded.GuardFunc[T]) guarded.GuardFunc[T] {
	return func(v *T) {
		for _, fn := range fns {
			if fn != nil {
				fn(v)
			}
		}
	}
}

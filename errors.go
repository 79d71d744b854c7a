package guarded

import "fmt"

// ConcurrentAccessError reports an access that was rejected because the
// cell was unavailable: a mutable access was requested while one is still
// live, a read overlapped a mutable access, or vice versa.
type ConcurrentAccessError struct {
	Op      string
	Context string
}

func (e *ConcurrentAccessError) Error() string {
	return fmt.Sprintf("concurrent access error in %s: cell is %s", e.Op, e.Context)
}

const (
	stateMutBorrowed = "mutably borrowed"
	stateBeingRead   = "being read"
)

func newAccessError(op, context string) *ConcurrentAccessError {
	return &ConcurrentAccessError{
		Op:      op,
		Context: context,
	}
}

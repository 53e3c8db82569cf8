package pqueue

import "fmt"

// InvariantViolationError marks an internal bookkeeping bug: a caller
// tried to decrease the priority of a key that isn't in the queue, or by
// more than the key currently holds. Invariant violations are not
// recoverable and fail fast with a descriptive cause, so this type is
// always delivered via panic, never returned.
type InvariantViolationError struct {
	Op string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("pqueue: invariant violation: %s", e.Op)
}

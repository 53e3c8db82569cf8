package repair

import "fmt"

// ConfigError reports an invalid Option argument to Train.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("repair: config error: %s=%v", e.Field, e.Value)
}

// InvariantViolationError marks a genuine bookkeeping bug: replacePair
// found a location whose recorded right neighbor does not match the pair
// it is supposed to replace. Unlike a stale (already-consumed) location,
// this cannot happen from ordinary overlapping-run overcounting and
// indicates the pair index and the pattern buffer have desynchronized.
type InvariantViolationError struct {
	Op string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("repair: invariant violation: %s", e.Op)
}

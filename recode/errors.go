package recode

import (
	"fmt"

	"github.com/kklibo-alt/hexdiff/token"
)

// MalformedVocabularyError reports a decode-time vocabulary problem: an id
// that names no token, or (via ToBytes) an id that names a Merge rather
// than a Byte. It is returned, never panicked: a bad id in a decode call
// is a caller-input problem, unlike the invariant violations pqueue and
// repair raise.
type MalformedVocabularyError struct {
	Op     string // "expand" or "to_bytes"
	ID     token.ID
	Reason string
}

func (e *MalformedVocabularyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("recode: %s: id %d: %s", e.Op, e.ID, e.Reason)
	}
	return fmt.Sprintf("recode: %s: id %d not present in vocabulary", e.Op, e.ID)
}

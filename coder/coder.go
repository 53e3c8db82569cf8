// Package coder names the capability both vocabulary engines share, so the
// CLI and the matching pipeline can drive either one identically once
// training has produced a *bpe.Engine or a *repair.Engine.
package coder

import "github.com/kklibo-alt/hexdiff/token"

// Coder is satisfied by *bpe.Engine and *repair.Engine: both support
// encoding, decoding, and exposing their learned vocabulary, regardless of
// how they arrived at it.
type Coder interface {
	Encode(data []byte) []token.ID
	Decode(ids []token.ID) ([]byte, error)
	Vocabulary() *token.Vocabulary
}

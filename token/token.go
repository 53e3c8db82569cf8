// Package token defines the shared vocabulary that every training engine
// builds and every encode/decode path reads: a dense id space over byte
// tokens and merge tokens, plus the bijection between the two.
package token

import "math"

// ID identifies a token within a Vocabulary. Ids 0..255 are reserved for
// byte tokens and are pre-populated by NewVocabulary; ids >= 256 are minted
// one at a time, in merge order, by AddMerge.
type ID int

// Invalid marks a vacated slot inside a Re-Pair rewrite buffer. It is never
// present in a Vocabulary, never returned by Encode, and never accepted by
// Decode; it exists only as a buffer-internal bookkeeping value.
const Invalid ID = math.MaxInt

// Token is a byte token or a merge of two existing tokens. The zero value
// is the byte token for 0x00; use Byte or Merge to construct one
// explicitly.
type Token struct {
	value   byte
	left    ID
	right   ID
	isMerge bool
}

// Byte returns the token for a single raw byte.
func Byte(b byte) Token { return Token{value: b} }

// Merge returns the token formed by concatenating the expansions of left
// and right, in that order.
func Merge(left, right ID) Token { return Token{left: left, right: right, isMerge: true} }

// IsMerge reports whether t is a Merge token (as opposed to a Byte token).
func (t Token) IsMerge() bool { return t.isMerge }

// Value returns the underlying byte. Only meaningful when !t.IsMerge().
func (t Token) Value() byte { return t.value }

// Children returns the left and right operands of a Merge token. Only
// meaningful when t.IsMerge().
func (t Token) Children() (left, right ID) { return t.left, t.right }

// Vocabulary is an id↔token bijection with mint-order iteration. Ids 0..255
// are the byte tokens; every Merge(a,b) present satisfies id(a) < id(merge)
// and id(b) < id(merge) (the acyclicity invariant).
type Vocabulary struct {
	byID    []Token
	byToken map[Token]ID
}

// NewVocabulary returns a Vocabulary pre-seeded with the 256 byte tokens.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		byID:    make([]Token, 0, 256),
		byToken: make(map[Token]ID, 256),
	}
	for b := 0; b < 256; b++ {
		v.add(Byte(byte(b)))
	}
	return v
}

func (v *Vocabulary) add(t Token) ID {
	id := ID(len(v.byID))
	v.byID = append(v.byID, t)
	v.byToken[t] = id
	return id
}

// AddMerge mints the next id for Merge(left, right) and returns it. It
// panics if left or right is not already a known id: that would violate
// the acyclicity invariant, and every caller in this module only ever
// merges ids it has already looked up from the same Vocabulary.
func (v *Vocabulary) AddMerge(left, right ID) ID {
	if !v.Has(left) || !v.Has(right) {
		panic("token: merge operand is not a known id")
	}
	return v.add(Merge(left, right))
}

// Has reports whether id names a known token.
func (v *Vocabulary) Has(id ID) bool {
	return id >= 0 && int(id) < len(v.byID)
}

// Token returns the token named by id.
func (v *Vocabulary) Token(id ID) (Token, bool) {
	if !v.Has(id) {
		return Token{}, false
	}
	return v.byID[id], true
}

// Lookup returns the id for t, if one has been minted.
func (v *Vocabulary) Lookup(t Token) (ID, bool) {
	id, ok := v.byToken[t]
	return id, ok
}

// LookupMerge returns the id of Merge(left, right), if one has been
// minted. It is the MergeLookup that recode.Condense drives.
func (v *Vocabulary) LookupMerge(left, right ID) (ID, bool) {
	return v.Lookup(Merge(left, right))
}

// ByteID returns the id of the byte token for b. It is always present:
// NewVocabulary pre-seeds all 256 of them.
func (v *Vocabulary) ByteID(b byte) ID { return ID(b) }

// Len returns the number of minted ids, including the 256 byte tokens.
func (v *Vocabulary) Len() int { return len(v.byID) }

// Dump returns one Entry per id, in mint order: the byte value for a byte
// token, the left and right ids for a merge. Training and matching do not
// call it. Load is its inverse.
func (v *Vocabulary) Dump() []Entry {
	out := make([]Entry, len(v.byID))
	for id, t := range v.byID {
		if t.IsMerge() {
			out[id] = Entry{Merge: true, Left: t.left, Right: t.right}
		} else {
			out[id] = Entry{Value: t.value}
		}
	}
	return out
}

// Entry is one line of a Vocabulary.Dump.
type Entry struct {
	Merge       bool
	Value       byte
	Left, Right ID
}

// Load rebuilds a Vocabulary from entries previously produced by Dump.
// Entries must be in mint order (id 0 is byte 0x00, ..., id 255 is byte
// 0xff, id 256 onward are merges referencing only earlier ids). Load does
// not re-validate that the first 256 entries are the byte tokens, but it
// does enforce the acyclicity invariant via AddMerge.
func Load(entries []Entry) *Vocabulary {
	v := &Vocabulary{
		byID:    make([]Token, 0, len(entries)),
		byToken: make(map[Token]ID, len(entries)),
	}
	for _, e := range entries {
		if e.Merge {
			v.AddMerge(e.Left, e.Right)
		} else {
			v.add(Byte(e.Value))
		}
	}
	return v
}

// Package recode implements the byte↔id translation primitives shared by
// every training engine: ToIDs, Condense, Expand, and ToBytes. Together
// they satisfy the round-trip law: ToBytes(Expand(Condense(ToIDs(x)))) == x
// for every byte sequence x and every vocabulary produced by bpe or repair.
package recode

import "github.com/kklibo-alt/hexdiff/token"

// ToIDs converts bytes to ids, one per byte, via the vocabulary's byte
// entries. It never fails: NewVocabulary pre-seeds all 256 byte ids.
func ToIDs(data []byte, vocab *token.Vocabulary) []token.ID {
	ids := make([]token.ID, len(data))
	for i, b := range data {
		ids[i] = vocab.ByteID(b)
	}
	return ids
}

// MergeLookup resolves the id that two adjacent ids merge into, if the
// vocabulary defines one. token.Vocabulary.LookupMerge satisfies this.
type MergeLookup func(a, b token.ID) (token.ID, bool)

// Condense performs a single left-to-right pass that greedily folds each
// incoming id into the token immediately to its left whenever lookup
// defines a merge for that pair, cascading the fold leftward as far as it
// will go before moving on. Because every Merge id is strictly greater
// than both of its children (the acyclicity invariant), this produces the
// same result as applying merges in the order they were minted, regardless
// of scan direction.
func Condense(ids []token.ID, lookup MergeLookup) []token.ID {
	out := make([]token.ID, 0, len(ids))
	for _, id := range ids {
		for len(out) > 0 {
			merged, ok := lookup(out[len(out)-1], id)
			if !ok {
				break
			}
			id = merged
			out = out[:len(out)-1]
		}
		out = append(out, id)
	}
	return out
}

// Expand recursively replaces every Merge id with its two children until
// only Byte ids remain, recovering the original (pre-condense) id sequence.
func Expand(ids []token.ID, vocab *token.Vocabulary) ([]token.ID, error) {
	out := make([]token.ID, 0, len(ids))
	var walk func(id token.ID) error
	walk = func(id token.ID) error {
		tok, ok := vocab.Token(id)
		if !ok {
			return &MalformedVocabularyError{Op: "expand", ID: id}
		}
		if !tok.IsMerge() {
			out = append(out, id)
			return nil
		}
		left, right := tok.Children()
		if err := walk(left); err != nil {
			return err
		}
		return walk(right)
	}
	for _, id := range ids {
		if err := walk(id); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ToBytes emits the underlying byte for each id. Every id must name a Byte
// token; callers normally pass Expand's output, which satisfies this.
func ToBytes(ids []token.ID, vocab *token.Vocabulary) ([]byte, error) {
	out := make([]byte, 0, len(ids))
	for _, id := range ids {
		tok, ok := vocab.Token(id)
		if !ok {
			return nil, &MalformedVocabularyError{Op: "to_bytes", ID: id}
		}
		if tok.IsMerge() {
			return nil, &MalformedVocabularyError{Op: "to_bytes", ID: id, Reason: "id names a merge, not a byte"}
		}
		out = append(out, tok.Value())
	}
	return out, nil
}

// Decode is the common Expand-then-ToBytes path every engine's Decode
// method uses.
func Decode(ids []token.ID, vocab *token.Vocabulary) ([]byte, error) {
	expanded, err := Expand(ids, vocab)
	if err != nil {
		return nil, err
	}
	return ToBytes(expanded, vocab)
}

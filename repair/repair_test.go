package repair

import (
	"reflect"
	"testing"

	"github.com/kklibo-alt/hexdiff/token"
)

// S1: no training inputs, encode/decode round-trips through raw byte ids.
func TestS1EmptyTraining(t *testing.T) {
	e, err := Train(nil)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	ids := e.Encode([]byte{0x61, 0x62, 0x63})
	want := []token.ID{0x61, 0x62, 0x63}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("Encode = %v, want %v", ids, want)
	}
	back, err := e.Decode(ids)
	if err != nil || !reflect.DeepEqual(back, []byte{0x61, 0x62, 0x63}) {
		t.Fatalf("Decode = %v, %v, want [61 62 63], nil", back, err)
	}
}

// S2: two unrelated inputs never reach the count-2 floor, so no merges learn.
func TestS2NoMergesBelowFloor(t *testing.T) {
	e, err := Train([][]byte{{0x61, 0x62, 0x63}, {0x64, 0x65, 0x66}})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	got := e.Encode([]byte{0x61, 0x62, 0x63})
	want := []token.ID{0x61, 0x62, 0x63}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
}

// S3: a repeated input mints two merges, collapsing "abc" to a single id.
func TestS3RepeatedInputMintsMerges(t *testing.T) {
	e, err := Train([][]byte{
		{0x61, 0x62, 0x63},
		{0x64, 0x65, 0x66},
		{0x61, 0x62, 0x63},
	})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	got := e.Encode([]byte{0x61, 0x62, 0x63})
	want := []token.ID{257}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
	back, err := e.Decode(got)
	if err != nil || !reflect.DeepEqual(back, []byte{0x61, 0x62, 0x63}) {
		t.Fatalf("Decode = %v, %v, want [61 62 63], nil", back, err)
	}
}

// S4: overlapping shared substrings across two distinct inputs. The
// leading adjacent pair (2,3) occurs more often across both patterns than
// any other, so it is merged first; (1, merge(2,3)) then dominates.
func TestS4SharedSubstring(t *testing.T) {
	e, err := Train([][]byte{
		{1, 2, 3, 2, 3, 4},
		{1, 2, 3, 1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	got := e.Encode([]byte{1, 2, 3, 2, 3, 4})
	want := []token.ID{257, 256, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
	back, err := e.Decode(got)
	if err != nil || !reflect.DeepEqual(back, []byte{1, 2, 3, 2, 3, 4}) {
		t.Fatalf("Decode = %v, %v, want [1 2 3 2 3 4], nil", back, err)
	}
}

// S5: repeating blocks. The index counts overlapping occurrences, so each
// "0 0 0" run contributes 2 to (0,0): 4 total, beating (1,2)'s 3. (0,0) is
// therefore merged first, minting 256 = Merge(0,0) and 257 = Merge(1,2);
// a non-overlapping count would score (0,0) only 2 and merge (1,2) first,
// swapping the two ids. The encoded block is the same token sequence either
// way, Merge(1,2) then Merge(0,0), here spelled [257, 256].
func TestS5RepeatingBlocksCollapseAndRoundTrip(t *testing.T) {
	e, err := Train([][]byte{{1, 2, 0, 0, 0, 1, 2, 0, 0, 0, 1, 2}})
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	vocab := e.Vocabulary()
	zeroes, ok := vocab.Token(256)
	if !ok || !zeroes.IsMerge() {
		t.Fatalf("Token(256) = %+v, ok=%v, want a merge token", zeroes, ok)
	}
	if l, r := zeroes.Children(); l != 0 || r != 0 {
		t.Fatalf("Token(256).Children() = (%d,%d), want (0,0)", l, r)
	}
	onetwo, ok := vocab.Token(257)
	if !ok || !onetwo.IsMerge() {
		t.Fatalf("Token(257) = %+v, ok=%v, want a merge token", onetwo, ok)
	}
	if l, r := onetwo.Children(); l != 1 || r != 2 {
		t.Fatalf("Token(257).Children() = (%d,%d), want (1,2)", l, r)
	}

	got := e.Encode([]byte{1, 2, 0, 0})
	want := []token.ID{257, 256}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode([1 2 0 0]) = %v, want %v", got, want)
	}

	back, err := e.Decode(got)
	if err != nil || !reflect.DeepEqual(back, []byte{1, 2, 0, 0}) {
		t.Fatalf("Decode(%v) = %v, %v, want [1 2 0 0], nil", got, back, err)
	}
}

func TestMaxNewTokensCapsTraining(t *testing.T) {
	var minted []token.ID
	e, err := Train([][]byte{
		{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3},
	}, WithMaxNewTokens(1), WithProgress(func(id token.ID) { minted = append(minted, id) }))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(minted) != 1 {
		t.Fatalf("minted %d ids, want exactly 1 with WithMaxNewTokens(1)", len(minted))
	}
	if e.Vocabulary().Len() != 257 {
		t.Fatalf("Vocabulary().Len() = %d, want 257 (256 bytes + 1 merge)", e.Vocabulary().Len())
	}
}

func TestWithMaxNewTokensRejectsNegative(t *testing.T) {
	if _, err := Train(nil, WithMaxNewTokens(-1)); err == nil {
		t.Fatal("WithMaxNewTokens(-1) did not error")
	}
}

func TestWithProgressCalledInMintOrder(t *testing.T) {
	var minted []token.ID
	_, err := Train([][]byte{
		{0x61, 0x62, 0x63},
		{0x64, 0x65, 0x66},
		{0x61, 0x62, 0x63},
	}, WithProgress(func(id token.ID) { minted = append(minted, id) }))
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	want := []token.ID{256, 257}
	if !reflect.DeepEqual(minted, want) {
		t.Fatalf("minted = %v, want %v", minted, want)
	}
}

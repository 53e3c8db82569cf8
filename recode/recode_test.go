package recode

import (
	"reflect"
	"testing"

	"github.com/kklibo-alt/hexdiff/token"
)

func roundTrip(t *testing.T, data []byte, vocab *token.Vocabulary) {
	t.Helper()
	ids := ToIDs(data, vocab)
	condensed := Condense(ids, vocab.LookupMerge)
	got, err := Decode(condensed, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Fatalf("round trip = %v, want %v", got, data)
	}
}

func TestRoundTripEmptyVocabulary(t *testing.T) {
	vocab := token.NewVocabulary()
	for _, data := range [][]byte{{}, {0x61, 0x62, 0x63}, {0x00, 0xff, 0x00, 0xff}} {
		roundTrip(t, data, vocab)
	}
}

func TestRoundTripWithMerges(t *testing.T) {
	vocab := token.NewVocabulary()
	a, b, c := vocab.ByteID('a'), vocab.ByteID('b'), vocab.ByteID('c')
	ab := vocab.AddMerge(a, b)
	vocab.AddMerge(ab, c)

	roundTrip(t, []byte("abc"), vocab)
	roundTrip(t, []byte("abcabc"), vocab)
	roundTrip(t, []byte("ab"), vocab)
	roundTrip(t, []byte("xyz"), vocab)
}

func TestCondenseS3(t *testing.T) {
	vocab := token.NewVocabulary()
	a, b, c := vocab.ByteID(0x61), vocab.ByteID(0x62), vocab.ByteID(0x63)
	ab := vocab.AddMerge(a, b)   // 256
	abc := vocab.AddMerge(ab, c) // 257

	ids := ToIDs([]byte{0x61, 0x62, 0x63}, vocab)
	got := Condense(ids, vocab.LookupMerge)
	want := []token.ID{abc}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Condense = %v, want %v", got, want)
	}
}

func TestCondenseS4(t *testing.T) {
	vocab := token.NewVocabulary()
	one, two, three, four := vocab.ByteID(1), vocab.ByteID(2), vocab.ByteID(3), vocab.ByteID(4)
	m23 := vocab.AddMerge(two, three) // 256
	m123 := vocab.AddMerge(one, m23)  // 257

	ids := ToIDs([]byte{1, 2, 3, 2, 3, 4}, vocab)
	got := Condense(ids, vocab.LookupMerge)
	want := []token.ID{m123, m23, four}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Condense = %v, want %v", got, want)
	}

	back, err := Decode(got, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(back, []byte{1, 2, 3, 2, 3, 4}) {
		t.Fatalf("Decode = %v, want [1 2 3 2 3 4]", back)
	}
}

func TestExpandUnknownID(t *testing.T) {
	vocab := token.NewVocabulary()
	_, err := Expand([]token.ID{9999}, vocab)
	if err == nil {
		t.Fatal("Expand with an unknown id did not error")
	}
	var target *MalformedVocabularyError
	if !asMalformed(err, &target) {
		t.Fatalf("Expand error = %v, want *MalformedVocabularyError", err)
	}
}

func TestToBytesRejectsMergeID(t *testing.T) {
	vocab := token.NewVocabulary()
	a, b := vocab.ByteID('a'), vocab.ByteID('b')
	ab := vocab.AddMerge(a, b)

	_, err := ToBytes([]token.ID{ab}, vocab)
	if err == nil {
		t.Fatal("ToBytes on a merge id did not error")
	}
}

func asMalformed(err error, target **MalformedVocabularyError) bool {
	e, ok := err.(*MalformedVocabularyError)
	if ok {
		*target = e
	}
	return ok
}

// Package pairindex implements the pair-location index Re-Pair training
// maintains: a mapping from an adjacent id pair to the set of buffer
// positions where it occurs, plus the additive/subtractive composition the
// training loop needs after every merge.
package pairindex

import "github.com/kklibo-alt/hexdiff/token"

// Pair is an adjacent id pair: the key of the index.
type Pair struct {
	A, B token.ID
}

// Set is a set of buffer positions for one Pair. Removal is swap-remove:
// O(1), but it does not preserve the relative order of the remaining
// elements. Re-Pair only ever needs set membership and Len(), never a
// specific iteration order.
type Set struct {
	positions []int
	indexOf   map[int]int
}

// Len returns the number of positions in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.positions)
}

// Positions returns the set's members. The slice is owned by Set; callers
// must not mutate it.
func (s *Set) Positions() []int {
	if s == nil {
		return nil
	}
	return s.positions
}

func (s *Set) insert(pos int) {
	if s.indexOf == nil {
		s.indexOf = make(map[int]int)
	}
	if _, ok := s.indexOf[pos]; ok {
		return
	}
	s.indexOf[pos] = len(s.positions)
	s.positions = append(s.positions, pos)
}

func (s *Set) remove(pos int) {
	i, ok := s.indexOf[pos]
	if !ok {
		return
	}
	last := len(s.positions) - 1
	moved := s.positions[last]
	s.positions[i] = moved
	s.indexOf[moved] = i
	s.positions = s.positions[:last]
	delete(s.indexOf, pos)
}

// Index maps id pairs to their position sets. Pairs are visited in
// first-inserted order by Lengths; Go's map iteration order is randomized
// per process, so the index keeps its own insertion-order record rather
// than relying on map ranging.
type Index struct {
	sets  map[Pair]*Set
	order []Pair
}

// New returns an empty Index.
func New() *Index {
	return &Index{sets: make(map[Pair]*Set)}
}

// Insert records that p occurs at pos.
func (ix *Index) Insert(p Pair, pos int) {
	s, ok := ix.sets[p]
	if !ok {
		s = &Set{}
		ix.sets[p] = s
		ix.order = append(ix.order, p)
	}
	s.insert(pos)
}

// Remove forgets that p occurs at pos, dropping p from the index entirely
// once its set is empty.
func (ix *Index) Remove(p Pair, pos int) {
	s, ok := ix.sets[p]
	if !ok {
		return
	}
	s.remove(pos)
	if s.Len() == 0 {
		delete(ix.sets, p)
	}
}

// Take removes and returns p's position set, if any. Re-Pair uses this to
// pull the locations of a just-popped pair out of a pattern's index before
// rewriting them.
func (ix *Index) Take(p Pair) (*Set, bool) {
	s, ok := ix.sets[p]
	if ok {
		delete(ix.sets, p)
	}
	return s, ok
}

// Lengths calls yield once per pair currently in the index, in the order
// each pair was first inserted, with its current occurrence count. Used
// both to bulk-seed a pqueue.PriorityQueue at training start and to report
// the size of an "added"/"removed" delta.
func (ix *Index) Lengths(yield func(p Pair, count int)) {
	// A pair dropped and later re-inserted appears in order more than once;
	// only its first appearance is yielded.
	yielded := make(map[Pair]bool, len(ix.sets))
	for _, p := range ix.order {
		s, ok := ix.sets[p]
		if !ok || yielded[p] {
			continue
		}
		yielded[p] = true
		yield(p, s.Len())
	}
}

// Add merges every (pair, position) entry of other into ix, in other's
// insertion order. Re-Pair applies it after computing a merge's
// added-pair-locations delta.
func (ix *Index) Add(other *Index) {
	for _, p := range other.order {
		s, ok := other.sets[p]
		if !ok {
			continue
		}
		for _, pos := range s.positions {
			ix.Insert(p, pos)
		}
	}
}

// Subtract removes every (pair, position) entry of other from ix, in
// other's insertion order: the removal counterpart to Add.
func (ix *Index) Subtract(other *Index) {
	for _, p := range other.order {
		s, ok := other.sets[p]
		if !ok {
			continue
		}
		for _, pos := range s.positions {
			ix.Remove(p, pos)
		}
	}
}

// Package repair implements Re-Pair vocabulary construction: unlike bpe's
// stepwise non-overlapping scan, it indexes every adjacent id pair's buffer
// positions up front, drives a keyed priority queue of pair counts to
// completion in one pass, and maintains both the index and the queue
// incrementally through prev/next neighbor bookkeeping after every merge.
package repair

import (
	"sort"

	"github.com/kklibo-alt/hexdiff/pairindex"
	"github.com/kklibo-alt/hexdiff/pqueue"
	"github.com/kklibo-alt/hexdiff/recode"
	"github.com/kklibo-alt/hexdiff/token"
)

// minPairCount is the same floor bpe.InitStep uses: a pair with fewer
// occurrences is not worth a merge.
const minPairCount = 2

// Engine is a finished Re-Pair vocabulary. Unlike bpe.Engine, Re-Pair has no
// useful stepwise entry point (the incremental index only makes sense run to
// completion in one pass over the pop order), so Train always returns a
// fully trained Engine.
type Engine struct {
	vocab *token.Vocabulary
}

// config holds Train's validated options.
type config struct {
	maxNewTokens int
	onNewID      func(token.ID)
}

// Option configures a Train call.
type Option func(*config) error

// WithMaxNewTokens caps the number of merges Train will perform.
func WithMaxNewTokens(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return &ConfigError{Field: "max_new_tokens", Value: n}
		}
		c.maxNewTokens = n
		return nil
	}
}

// WithProgress registers a callback invoked once per merge, with the newly
// minted id, in mint order. Re-Pair has no InitStep to call between merges,
// so a caller that wants to observe training progress must supply this at
// Train time instead.
func WithProgress(fn func(token.ID)) Option {
	return func(c *config) error {
		c.onNewID = fn
		return nil
	}
}

// Train builds a Re-Pair vocabulary from every byte sequence in inputs.
func Train(inputs [][]byte, opts ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	vocab := token.NewVocabulary()
	patterns := make([][]token.ID, len(inputs))
	indices := make([]*pairindex.Index, len(inputs))

	pq := pqueue.New[pairindex.Pair]()
	for i, in := range inputs {
		patterns[i] = recode.ToIDs(in, vocab)
		indices[i] = recordPairs(patterns[i])
		indices[i].Lengths(func(p pairindex.Pair, count int) {
			pq.Increase(p, count)
		})
	}

	minted := 0
	for {
		if cfg.maxNewTokens > 0 && minted >= cfg.maxNewTokens {
			break
		}
		key, count, ok := pq.PopMax()
		if !ok || count < minPairCount {
			break
		}

		newID := vocab.AddMerge(key.A, key.B)
		minted++
		if cfg.onNewID != nil {
			cfg.onNewID(newID)
		}

		for i := range patterns {
			locations, ok := indices[i].Take(key)
			if !ok {
				continue
			}
			added, removed := replacePair(key.A, key.B, locations.Positions(), patterns[i], newID)

			added.Lengths(func(p pairindex.Pair, n int) {
				pq.Increase(p, n)
			})
			removed.Lengths(func(p pairindex.Pair, n int) {
				softDecrease(pq, p, n)
			})

			indices[i].Add(added)
			indices[i].Subtract(removed)
		}
	}

	return &Engine{vocab: vocab}, nil
}

// Vocabulary returns the engine's trained vocabulary.
func (e *Engine) Vocabulary() *token.Vocabulary { return e.vocab }

// Encode condenses data against the engine's vocabulary.
func (e *Engine) Encode(data []byte) []token.ID {
	ids := recode.ToIDs(data, e.vocab)
	return recode.Condense(ids, e.vocab.LookupMerge)
}

// Decode recovers the original bytes from a condensed id sequence.
func (e *Engine) Decode(ids []token.ID) ([]byte, error) {
	return recode.Decode(ids, e.vocab)
}

// recordPairs indexes every adjacent id pair in pattern by its left
// position, exhaustively and with overlap: a run of the same id can
// register more locations for a pair than a non-overlapping scan would
// count, which is the defining difference from bpe's mostCommonPair.
func recordPairs(pattern []token.ID) *pairindex.Index {
	idx := pairindex.New()
	for i := 0; i+1 < len(pattern); i++ {
		idx.Insert(pairindex.Pair{A: pattern[i], B: pattern[i+1]}, i)
	}
	return idx
}

// getPrev scans backward from index, skipping vacated (token.Invalid)
// slots, and returns the nearest live id and its position.
func getPrev(pattern []token.ID, index int) (id token.ID, pos int, ok bool) {
	for i := index - 1; i >= 0; i-- {
		if pattern[i] != token.Invalid {
			return pattern[i], i, true
		}
	}
	return 0, 0, false
}

// getNext is getPrev's forward counterpart.
func getNext(pattern []token.ID, index int) (id token.ID, pos int, ok bool) {
	for i := index + 1; i < len(pattern); i++ {
		if pattern[i] != token.Invalid {
			return pattern[i], i, true
		}
	}
	return 0, 0, false
}

// replacePair rewrites every location of (id0,id1) in pattern to
// replacement, vacating the consumed second slot with token.Invalid, and
// returns the pair-location deltas the rewrite induces on pattern's
// left and right neighbors.
//
// Because recordPairs counts overlapping occurrences of the same pair (a
// run of id0 id0 id0 can register two overlapping locations for (id0,id0)),
// a location batch can contain positions that an earlier position in the
// same batch has already consumed as its right half. A stale location
// (pattern[index0] no longer equal to id0) is therefore treated as already
// handled and skipped, rather than failing a batch that real repeating
// input will routinely produce.
func replacePair(id0, id1 token.ID, locations []int, pattern []token.ID, replacement token.ID) (added, removed *pairindex.Index) {
	added = pairindex.New()
	removed = pairindex.New()

	// The position set is swap-remove ordered, so its order is arbitrary.
	// Walking it in ascending order is what makes a location consumed by
	// an earlier one in the same batch show up as stale, not as a
	// mismatched right neighbor.
	ordered := append([]int(nil), locations...)
	sort.Ints(ordered)

	for _, index0 := range ordered {
		if pattern[index0] != id0 {
			continue
		}

		next1, index1, ok := getNext(pattern, index0)
		if !ok || next1 != id1 {
			panic(&InvariantViolationError{Op: "replacePair: right neighbor does not match recorded pair"})
		}

		if prevID, prevIndex, ok := getPrev(pattern, index0); ok {
			removed.Insert(pairindex.Pair{A: prevID, B: id0}, prevIndex)
			added.Insert(pairindex.Pair{A: prevID, B: replacement}, prevIndex)
		}
		if nextID, _, ok := getNext(pattern, index1); ok {
			removed.Insert(pairindex.Pair{A: id1, B: nextID}, index1)
			added.Insert(pairindex.Pair{A: replacement, B: nextID}, index0)
		}

		pattern[index0] = replacement
		pattern[index1] = token.Invalid
	}

	return added, removed
}

// softDecrease applies a removed-pair-location delta to the global queue,
// clamping to whatever priority the key currently holds (including zero).
// A plain pqueue.Decrease would panic here: the same repeated-id-run
// overcounting that makes replacePair skip stale locations also produces
// removed-delta entries for a key that was already popped out of pq in
// this same step. That is bookkeeping noise, not a bookkeeping bug, so it
// is discarded instead of treated as an invariant violation.
func softDecrease(pq *pqueue.PriorityQueue[pairindex.Pair], p pairindex.Pair, n int) {
	current, ok := pq.Peek(p)
	if !ok {
		return
	}
	if n > current {
		n = current
	}
	if n == 0 {
		return
	}
	pq.Decrease(p, n)
}

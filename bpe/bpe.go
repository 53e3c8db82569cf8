// Package bpe implements iterative, stepwise byte-pair-encoding
// vocabulary construction: repeatedly find the most frequent adjacent
// id-pair across all training inputs, mint an id for it, and rewrite every
// occurrence, one merge at a time so a caller can drive training
// incrementally and report progress between steps.
package bpe

import (
	"github.com/kklibo-alt/hexdiff/recode"
	"github.com/kklibo-alt/hexdiff/token"
)

// minPairCount is the fixed lower bound below which InitStep stops
// training: a pair with fewer occurrences is not worth a merge.
const minPairCount = 2

// Engine is a byte-pair-encoding vocabulary under construction (or, once
// InProgress is false, a finished one). The zero value is not usable;
// construct one with Train.
type Engine struct {
	vocab        *token.Vocabulary
	patterns     [][]token.ID
	inProgress   bool
	maxNewTokens int // 0 = unlimited
	minted       int
}

// config holds Train's validated options.
type config struct {
	maxNewTokens int
}

// Option configures a Train call.
type Option func(*config) error

// WithMaxNewTokens caps the number of merges InitStep will perform. Once
// the cap is reached, InitStep behaves exactly as if training had
// converged: it clears the in-progress state and returns without minting.
func WithMaxNewTokens(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return &ConfigError{Field: "max_new_tokens", Value: n}
		}
		c.maxNewTokens = n
		return nil
	}
}

// Train seeds a fresh vocabulary with the 256 byte tokens, encodes every
// input against it, and returns an Engine ready to be driven by InitStep.
// No merges are learned yet: the caller must call InitStep until
// InProgress() is false.
func Train(inputs [][]byte, opts ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	vocab := token.NewVocabulary()
	patterns := make([][]token.ID, len(inputs))
	for i, in := range inputs {
		patterns[i] = recode.ToIDs(in, vocab)
	}

	return &Engine{
		vocab:        vocab,
		patterns:     patterns,
		inProgress:   true,
		maxNewTokens: cfg.maxNewTokens,
	}, nil
}

// InProgress reports whether training has more merges left to consider.
// Once false, further InitStep calls are no-ops.
func (e *Engine) InProgress() bool { return e.inProgress }

// Vocabulary returns the engine's vocabulary. It is safe to read
// concurrently once training has finished (InProgress() == false); it must
// not be read concurrently with InitStep.
func (e *Engine) Vocabulary() *token.Vocabulary { return e.vocab }

// InitStep performs one training step: find the adjacent id-pair with the
// highest non-overlapping occurrence count across every pattern (ties
// broken by first-seen order), mint an id for it, and rewrite every
// pattern. If no pair reaches minPairCount, it clears the in-progress
// state instead. onNewID, if non-nil, is called exactly once with the
// newly minted id, before InitStep returns.
func (e *Engine) InitStep(onNewID func(token.ID)) {
	if !e.inProgress {
		return
	}
	if e.maxNewTokens > 0 && e.minted >= e.maxNewTokens {
		e.inProgress = false
		return
	}

	pair, count, found := mostCommonPair(e.patterns)
	if !found || count < minPairCount {
		e.inProgress = false
		return
	}

	newID := e.vocab.AddMerge(pair.a, pair.b)
	e.minted++
	if onNewID != nil {
		onNewID(newID)
	}

	for i, pattern := range e.patterns {
		e.patterns[i] = rewrite(pattern, pair, newID)
	}
}

// Encode condenses data against the engine's current vocabulary. It can be
// called at any point during or after training.
func (e *Engine) Encode(data []byte) []token.ID {
	ids := recode.ToIDs(data, e.vocab)
	return recode.Condense(ids, e.vocab.LookupMerge)
}

// Decode recovers the original bytes from a condensed id sequence.
func (e *Engine) Decode(ids []token.ID) ([]byte, error) {
	return recode.Decode(ids, e.vocab)
}

type idPair struct{ a, b token.ID }

// mostCommonPair scans every pattern left to right, counting adjacent
// pairs non-overlapping (a match at i consumes i and i+1, so an a-a-a-...
// run contributes len/2), and returns the pair with the highest total
// count, breaking ties by which pair was first encountered during the
// scan.
//
// Only a self-pair (a==b) can ever overlap itself at consecutive scan
// positions: two distinct ids a!=b can't both start a (a,b) match at i
// and i+1, since that would require s[i+1] to equal both a and b. So the
// non-overlap skip only needs to trigger on self-pairs; every other pair
// advances one position at a time, same as a plain adjacent-pair count.
func mostCommonPair(patterns [][]token.ID) (pair idPair, count int, found bool) {
	counts := make(map[idPair]int)
	var order []idPair

	for _, pattern := range patterns {
		for i := 0; i+1 < len(pattern); {
			p := idPair{pattern[i], pattern[i+1]}
			if _, seen := counts[p]; !seen {
				order = append(order, p)
			}
			counts[p]++
			if p.a == p.b {
				i += 2
			} else {
				i++
			}
		}
	}

	best := -1
	for _, p := range order {
		if n := counts[p]; n > best {
			best = n
			pair = p
			found = true
		}
	}
	return pair, best, found
}

// rewrite performs the same left-to-right, non-overlapping scan as
// mostCommonPair counted, replacing each occurrence of pair with newID.
func rewrite(pattern []token.ID, pair idPair, newID token.ID) []token.ID {
	out := make([]token.ID, 0, len(pattern))
	i := 0
	for i < len(pattern) {
		if i+1 < len(pattern) && pattern[i] == pair.a && pattern[i+1] == pair.b {
			out = append(out, newID)
			i += 2
			continue
		}
		out = append(out, pattern[i])
		i++
	}
	return out
}

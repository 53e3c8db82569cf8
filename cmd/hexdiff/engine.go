package main

import (
	"fmt"

	"github.com/kklibo-alt/hexdiff/bpe"
	"github.com/kklibo-alt/hexdiff/coder"
	"github.com/kklibo-alt/hexdiff/repair"
	"github.com/kklibo-alt/hexdiff/token"
)

// trainCoder runs one of the two training algorithms to completion over
// inputs and returns the resulting coder.Coder. onNewID, if non-nil, is
// called once per minted merge, in mint order, regardless of which
// algorithm is chosen: bpe supplies it to each InitStep call, and repair
// supplies it via WithProgress, since it has no stepwise entry point.
func trainCoder(algo string, inputs [][]byte, maxNewTokens int, onNewID func(token.ID)) (coder.Coder, error) {
	switch algo {
	case "bpe":
		var opts []bpe.Option
		if maxNewTokens > 0 {
			opts = append(opts, bpe.WithMaxNewTokens(maxNewTokens))
		}
		e, err := bpe.Train(inputs, opts...)
		if err != nil {
			return nil, err
		}
		for e.InProgress() {
			e.InitStep(onNewID)
		}
		return e, nil

	case "repair":
		var opts []repair.Option
		if maxNewTokens > 0 {
			opts = append(opts, repair.WithMaxNewTokens(maxNewTokens))
		}
		if onNewID != nil {
			opts = append(opts, repair.WithProgress(onNewID))
		}
		return repair.Train(inputs, opts...)

	default:
		return nil, fmt.Errorf("unknown --algo %q (want %q or %q)", algo, "bpe", "repair")
	}
}

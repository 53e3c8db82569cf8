package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/kklibo-alt/hexdiff/coder"
	"github.com/kklibo-alt/hexdiff/token"
)

var (
	trainAlgo         string
	trainMaxNewTokens int
)

// newTrainCmd creates the train subcommand.
func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train FILE...",
		Short: "Learn a dictionary from one or more files",
		Long: `Train a byte-pair-encoding or Re-Pair dictionary jointly over one or
more input files, printing one line per minted merge as training proceeds,
and a final vocabulary summary.`,
		Example: `  # Train a BPE dictionary over a single file
  hexdiff train --algo bpe corpus.bin

  # Train a Re-Pair dictionary jointly over several files, stopping early
  hexdiff train --algo repair --max-new-tokens 64 a.bin b.bin c.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTrain,
	}

	cmd.Flags().StringVar(&trainAlgo, "algo", "bpe", "Training algorithm: bpe or repair")
	cmd.Flags().IntVar(&trainMaxNewTokens, "max-new-tokens", 0, "Cap on minted merges (0 = unlimited)")

	return cmd
}

func runTrain(_ *cobra.Command, args []string) error {
	inputs, err := readFiles(args)
	if err != nil {
		return err
	}

	// jobRunning lets a caller tell whether the training goroutine is
	// still in flight without touching its internal state directly.
	var jobRunning atomic.Bool
	jobRunning.Store(true)

	progress := make(chan token.ID, 64)

	type trainResult struct {
		c   coder.Coder
		err error
	}
	done := make(chan trainResult, 1)

	go func() {
		defer close(progress)
		defer jobRunning.Store(false)
		defer func() {
			if r := recover(); r != nil {
				done <- trainResult{err: fmt.Errorf("training panicked: %v", r)}
			}
		}()

		c, err := trainCoder(trainAlgo, inputs, trainMaxNewTokens, func(id token.ID) {
			progress <- id
		})
		done <- trainResult{c: c, err: err}
	}()

	// The main goroutine is the "UI thread" here: it polls the progress
	// channel and prints a line per merge, exactly the text-mode stand-in
	// for repainting on every received merge-mint event.
	for id := range progress {
		fmt.Printf("merge -> id %d\n", id)
	}

	result := <-done
	if result.err != nil {
		return result.err
	}

	fmt.Printf("trained %d input(s), vocabulary size %d, job running = %v\n",
		len(inputs), result.c.Vocabulary().Len(), jobRunning.Load())
	return nil
}

func readFiles(paths []string) ([][]byte, error) {
	inputs := make([][]byte, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		inputs[i] = data
	}
	return inputs, nil
}

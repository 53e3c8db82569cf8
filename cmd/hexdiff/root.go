package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by build flags.
var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hexdiff",
	Short: "Structural diff of two byte sequences via a learned dictionary",
	Long: `hexdiff trains a byte-pair-encoding or Re-Pair dictionary over one
or more inputs, then uses it to drive a structural diff between any two of
them: encode both sides against the shared dictionary, find their longest
common substrings, and render the result as a two-column hex view.

Available operations:
  train:      learn a dictionary from one or more files and report progress
  diff:       train jointly on two files and render their structural diff`,
	Example: `  # Train a dictionary and watch merges as they happen
  hexdiff train --algo bpe corpus.bin

  # Diff two files through a jointly learned Re-Pair dictionary
  hexdiff diff --algo repair left.bin right.bin`,
	SilenceUsage: true,
}

// versionCmd prints build version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hexdiff version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newDiffCmd())
}

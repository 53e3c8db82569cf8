// Package matcher implements the greedy longest-common-substring alignment
// between two id sequences: repeatedly take the longest not-yet-matched
// common run, breaking ties toward the smallest left then right offset,
// until no common run of length 1 or more remains. The search itself is a
// naive scan; callers depend only on which matches come out and in what
// order, not on how they were found.
package matcher

import "github.com/kklibo-alt/hexdiff/token"

// Match is one aligned common run between two id sequences. SourceID is
// the index of the run in discovery order (the order Greedy00 found it in,
// not its position in either sequence).
type Match struct {
	LeftIndex  int
	RightIndex int
	Length     int
	SourceID   int
}

// Greedy00 finds every maximal common run between left and right, greedily
// picking the longest remaining one each round and marking its positions
// used in both sequences before searching again. Ties go to the run with
// the smallest LeftIndex, then the smallest RightIndex.
func Greedy00(left, right []token.ID) []Match {
	usedL := make([]bool, len(left))
	usedR := make([]bool, len(right))

	var matches []Match
	for {
		li, ri, length := longestCommonRun(left, right, usedL, usedR)
		if length == 0 {
			break
		}
		matches = append(matches, Match{
			LeftIndex:  li,
			RightIndex: ri,
			Length:     length,
			SourceID:   len(matches),
		})
		for k := 0; k < length; k++ {
			usedL[li+k] = true
			usedR[ri+k] = true
		}
	}
	return matches
}

// longestCommonRun naively scans every (i,j) start pair over unused
// positions, extending each candidate run while both sequences keep
// matching and neither side has already been claimed. Because i and j are
// visited in ascending order and only a strictly longer run replaces the
// current best, the first run found at the maximum length is kept, which
// is exactly the smallest-LeftIndex-then-smallest-RightIndex tie-break.
func longestCommonRun(left, right []token.ID, usedL, usedR []bool) (li, ri, length int) {
	for i := range left {
		if usedL[i] {
			continue
		}
		for j := range right {
			if usedR[j] || left[i] != right[j] {
				continue
			}
			l := 0
			for i+l < len(left) && j+l < len(right) &&
				!usedL[i+l] && !usedR[j+l] && left[i+l] == right[j+l] {
				l++
			}
			if l > length {
				li, ri, length = i, j, l
			}
		}
	}
	return li, ri, length
}

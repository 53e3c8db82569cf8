// Package diff assembles a matcher.Match list into two hex-viewer cell
// streams: matched spans rendered as Same cells on both sides, differing
// spans rendered byte by byte as Diff cells with a shared gap id, and
// Blank padding wherever one side's gap is shorter than the other's.
package diff

import (
	"sort"

	"github.com/kklibo-alt/hexdiff/matcher"
	"github.com/kklibo-alt/hexdiff/token"
)

// CellKind distinguishes a HexCell's role in the viewer.
type CellKind int

const (
	Same CellKind = iota
	Diff
	Blank
)

// HexCell is one rendered position in a hex-viewer column: a byte that
// matched its counterpart (Same), a byte with no counterpart at this
// position (Diff), or a padding position with no byte at all (Blank).
// SourceID is meaningless for Blank.
type HexCell struct {
	Kind     CellKind
	Value    byte
	SourceID int
}

// Decoder recovers bytes from a condensed id slice. AssembleCells calls it
// once per matched span and once per gap span on each side.
type Decoder func([]token.ID) ([]byte, error)

// AssembleCells interleaves Same spans with Diff/Blank gap spans to build
// one cell stream per side. Matches need not be sorted (Greedy00 returns
// them in discovery order) and may cross: Greedy00 pairs runs by content,
// not position, so a later run on the left can sit earlier on the right.
// Each side is therefore walked in its own position order (the k-th match
// on the left is the k-th by LeftIndex, on the right the k-th by
// RightIndex), and the k-th gaps on the two sides share a gap id and pad
// each other with Blank. Gap ids are numbered from len(matches) upward, so
// they never collide with a match's SourceID. For non-crossing matches the two orders coincide
// and this degenerates to a single lockstep walk; crossing runs come out
// as same-source-id spans at different offsets, which is how a moved run
// stays identifiable in the viewer.
func AssembleCells(matches []matcher.Match, leftIDs, rightIDs []token.ID, decode Decoder) (left, right []HexCell, err error) {
	byLeft := make([]matcher.Match, len(matches))
	copy(byLeft, matches)
	sort.Slice(byLeft, func(i, j int) bool { return byLeft[i].LeftIndex < byLeft[j].LeftIndex })

	byRight := make([]matcher.Match, len(matches))
	copy(byRight, matches)
	sort.Slice(byRight, func(i, j int) bool { return byRight[i].RightIndex < byRight[j].RightIndex })

	var leftCells, rightCells []HexCell
	leftPos, rightPos, gapID := 0, 0, len(matches)

	emitGap := func(lo, lh, ro, rh int) error {
		if lo == lh && ro == rh {
			return nil
		}
		leftBytes, err := decode(leftIDs[lo:lh])
		if err != nil {
			return err
		}
		rightBytes, err := decode(rightIDs[ro:rh])
		if err != nil {
			return err
		}
		appendGapCells(&leftCells, &rightCells, leftBytes, rightBytes, gapID)
		gapID++
		return nil
	}

	emitMatch := func(cells *[]HexCell, ids []token.ID, sourceID int) error {
		span, err := decode(ids)
		if err != nil {
			return err
		}
		for _, b := range span {
			*cells = append(*cells, HexCell{Kind: Same, Value: b, SourceID: sourceID})
		}
		return nil
	}

	for k := range byLeft {
		ml, mr := byLeft[k], byRight[k]
		if err := emitGap(leftPos, ml.LeftIndex, rightPos, mr.RightIndex); err != nil {
			return nil, nil, err
		}
		if err := emitMatch(&leftCells, leftIDs[ml.LeftIndex:ml.LeftIndex+ml.Length], ml.SourceID); err != nil {
			return nil, nil, err
		}
		if err := emitMatch(&rightCells, rightIDs[mr.RightIndex:mr.RightIndex+mr.Length], mr.SourceID); err != nil {
			return nil, nil, err
		}
		leftPos = ml.LeftIndex + ml.Length
		rightPos = mr.RightIndex + mr.Length
	}

	if err := emitGap(leftPos, len(leftIDs), rightPos, len(rightIDs)); err != nil {
		return nil, nil, err
	}

	// Crossing matches of unequal length can leave the streams uneven even
	// though every gap was padded pairwise; square off the tail.
	for len(leftCells) < len(rightCells) {
		leftCells = append(leftCells, HexCell{Kind: Blank})
	}
	for len(rightCells) < len(leftCells) {
		rightCells = append(rightCells, HexCell{Kind: Blank})
	}

	return leftCells, rightCells, nil
}

// appendGapCells emits Diff cells for each decoded byte on both sides,
// padding the shorter side's tail with Blank so the two streams stay
// aligned.
func appendGapCells(leftCells, rightCells *[]HexCell, leftBytes, rightBytes []byte, gapID int) {
	n := len(leftBytes)
	if len(rightBytes) > n {
		n = len(rightBytes)
	}
	for i := 0; i < n; i++ {
		if i < len(leftBytes) {
			*leftCells = append(*leftCells, HexCell{Kind: Diff, Value: leftBytes[i], SourceID: gapID})
		} else {
			*leftCells = append(*leftCells, HexCell{Kind: Blank})
		}
		if i < len(rightBytes) {
			*rightCells = append(*rightCells, HexCell{Kind: Diff, Value: rightBytes[i], SourceID: gapID})
		} else {
			*rightCells = append(*rightCells, HexCell{Kind: Blank})
		}
	}
}

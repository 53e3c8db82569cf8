package main

import (
	"fmt"
	"io"

	"github.com/kklibo-alt/hexdiff/diff"
)

const rowWidth = 16

// ansiPalette cycles six SGR foreground codes so adjacent source ids get
// visibly different colors without needing a real color wheel.
var ansiPalette = [6]int{31, 33, 32, 36, 34, 35}

func ansiColor(sourceID int) int {
	return ansiPalette[sourceID%len(ansiPalette)]
}

// renderHexView prints left and right cell streams as a two-column hex
// view, one row of rowWidth bytes at a time: offset, hex bytes, ascii.
// Same cells are printed in their match's color; Diff cells are printed in
// their gap's color with reverse video so matched and differing runs are
// distinguishable at a glance; Blank cells print as a placeholder with no
// color.
func renderHexView(w io.Writer, left, right []diff.HexCell) {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	for offset := 0; offset < n; offset += rowWidth {
		end := offset + rowWidth
		if end > n {
			end = n
		}
		fmt.Fprintf(w, "%08x  ", offset)
		writeHexRow(w, left, offset, end)
		fmt.Fprint(w, "  |  ")
		writeHexRow(w, right, offset, end)
		fmt.Fprintln(w)
	}
}

func writeHexRow(w io.Writer, cells []diff.HexCell, offset, end int) {
	for i := offset; i < end; i++ {
		if i >= len(cells) {
			fmt.Fprint(w, "   ")
			continue
		}
		writeHexCell(w, cells[i])
		fmt.Fprint(w, " ")
	}
	fmt.Fprint(w, " ")
	for i := offset; i < end; i++ {
		c := byte(' ')
		if i < len(cells) && cells[i].Kind != diff.Blank {
			c = '.'
			if v := cells[i].Value; v >= 0x20 && v < 0x7f {
				c = v
			}
		}
		fmt.Fprintf(w, "%c", c)
	}
}

func writeHexCell(w io.Writer, cell diff.HexCell) {
	switch cell.Kind {
	case diff.Same:
		fmt.Fprintf(w, "\x1b[%dm%02x\x1b[0m", ansiColor(cell.SourceID), cell.Value)
	case diff.Diff:
		fmt.Fprintf(w, "\x1b[7;%dm%02x\x1b[0m", ansiColor(cell.SourceID), cell.Value)
	default: // Blank
		fmt.Fprint(w, "--")
	}
}

package testutil

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// CellReader is the read side shared by the packed grid and NaiveGrid.
type CellReader interface {
	Rows() int
	Cols() int
	Get(row, col int) bool
}

// NaiveGrid is a straightforward row-major bit matrix. Every shift rebuilds
// the whole set, which makes it slow but obviously correct.
type NaiveGrid struct {
	rows, cols int
	bits       *bitset.BitSet
}

// NewNaiveGrid creates an empty rows x cols grid.
func NewNaiveGrid(rows, cols int) *NaiveGrid {
	return &NaiveGrid{rows: rows, cols: cols, bits: bitset.New(uint(rows * cols))}
}

// NaiveFrom copies any CellReader into a new NaiveGrid.
func NaiveFrom(src CellReader) *NaiveGrid {
	n := NewNaiveGrid(src.Rows(), src.Cols())
	for r := 0; r < src.Rows(); r++ {
		for c := 0; c < src.Cols(); c++ {
			n.Set(r, c, src.Get(r, c))
		}
	}
	return n
}

func (n *NaiveGrid) idx(r, c int) uint { return uint(r*n.cols + c) }

// Rows returns the number of rows.
func (n *NaiveGrid) Rows() int { return n.rows }

// Cols returns the number of columns.
func (n *NaiveGrid) Cols() int { return n.cols }

// Get reports whether (r, c) is set.
func (n *NaiveGrid) Get(r, c int) bool { return n.bits.Test(n.idx(r, c)) }

// Set assigns (r, c).
func (n *NaiveGrid) Set(r, c int, v bool) { n.bits.SetTo(n.idx(r, c), v) }

// Count returns the number of set cells.
func (n *NaiveGrid) Count() int { return int(n.bits.Count()) }

// ShiftVertical moves content up by delta rows (down for negative delta).
// Exposed rows are zero.
func (n *NaiveGrid) ShiftVertical(delta int) {
	n.remap(func(r, c int) (int, int) { return r + delta, c })
}

// ShiftHorizontal moves content toward higher columns by delta (lower for
// negative delta). Exposed columns are zero.
func (n *NaiveGrid) ShiftHorizontal(delta int) {
	n.remap(func(r, c int) (int, int) { return r, c - delta })
}

// remap rebuilds the grid so that cell (r, c) takes the value of src(r, c),
// or zero when the source lies outside the grid.
func (n *NaiveGrid) remap(src func(r, c int) (int, int)) {
	next := bitset.New(uint(n.rows * n.cols))
	for r := 0; r < n.rows; r++ {
		for c := 0; c < n.cols; c++ {
			sr, sc := src(r, c)
			if sr < 0 || sr >= n.rows || sc < 0 || sc >= n.cols {
				continue
			}
			if n.Get(sr, sc) {
				next.Set(n.idx(r, c))
			}
		}
	}
	n.bits = next
}

// Matches reports whether other has the same shape and contents.
func (n *NaiveGrid) Matches(other CellReader) bool {
	if other.Rows() != n.rows || other.Cols() != n.cols {
		return false
	}
	for r := 0; r < n.rows; r++ {
		for c := 0; c < n.cols; c++ {
			if n.Get(r, c) != other.Get(r, c) {
				return false
			}
		}
	}
	return true
}

// OverlapAt counts cells set in both n and mask with mask's origin at
// (row, col), clipped to n.
func (n *NaiveGrid) OverlapAt(row, col int, mask CellReader) int {
	hits := 0
	for r := 0; r < mask.Rows(); r++ {
		for c := 0; c < mask.Cols(); c++ {
			sr, sc := row+r, col+c
			if sr >= n.rows || sc >= n.cols {
				continue
			}
			if mask.Get(r, c) && n.Get(sr, sc) {
				hits++
			}
		}
	}
	return hits
}

// String renders like the packed grid.
func (n *NaiveGrid) String() string {
	var sb strings.Builder
	for r := 0; r < n.rows; r++ {
		for c := 0; c < n.cols; c++ {
			if n.Get(r, c) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

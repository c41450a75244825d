package bitgrid

const (
	wordBits = 64
	wordLog  = 6
	wordMask = wordBits - 1
)

// Grid is a rows x cols bit matrix with circular row addressing.
type Grid struct {
	words       []uint64
	rows        int
	cols        int
	wordsPerRow int

	// head is the physical row holding logical row 0 (0 <= head < rows).
	head int
}

// New allocates a zeroed rows x cols grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &InvalidDimensionError{Rows: rows, Cols: cols}
	}
	wpr := (cols + wordMask) >> wordLog
	return &Grid{
		words:       make([]uint64, rows*wpr),
		rows:        rows,
		cols:        cols,
		wordsPerRow: wpr,
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(rows, cols int) *Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// physicalRow maps a logical row in [0,rows) to its storage row.
// All wraparound arithmetic lives here.
func (g *Grid) physicalRow(logical int) int {
	idx := g.head + logical
	if idx >= g.rows {
		idx -= g.rows
	}
	return idx
}

// rowStart returns the word offset of a logical row.
func (g *Grid) rowStart(logical int) int {
	return g.physicalRow(logical) * g.wordsPerRow
}

func (g *Grid) checkIndex(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(&OutOfRangeError{Row: row, Col: col, Rows: g.rows, Cols: g.cols})
	}
}

// Get reports whether the cell at (row, col) is set.
func (g *Grid) Get(row, col int) bool {
	g.checkIndex(row, col)
	w := g.words[g.rowStart(row)+(col>>wordLog)]
	return (w>>(uint(col)&wordMask))&1 == 1
}

// Set assigns the cell at (row, col).
func (g *Grid) Set(row, col int, v bool) {
	g.checkIndex(row, col)
	idx := g.rowStart(row) + (col >> wordLog)
	bit := uint64(1) << (uint(col) & wordMask)
	if v {
		g.words[idx] |= bit
	} else {
		g.words[idx] &^= bit
	}
}

// Reset clears every cell and rewinds the head to physical row 0.
func (g *Grid) Reset() {
	clear(g.words)
	g.head = 0
}

// Fill sets every cell to v.
func (g *Grid) Fill(v bool) {
	if !v {
		g.Reset()
		return
	}
	for i := range g.words {
		g.words[i] = ^uint64(0)
	}
	g.cleanTailPadding()
}

// Clone returns an independent copy with the same logical contents.
// The copy is re-linearized (head 0).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		words:       make([]uint64, len(g.words)),
		rows:        g.rows,
		cols:        g.cols,
		wordsPerRow: g.wordsPerRow,
	}
	for r := 0; r < g.rows; r++ {
		src := g.rowStart(r)
		copy(c.words[r*c.wordsPerRow:(r+1)*c.wordsPerRow], g.words[src:src+g.wordsPerRow])
	}
	return c
}

// Equal reports whether both grids have the same shape and logical contents.
// Head offsets and padding bits are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	last := lowBits(g.cols)
	for r := 0; r < g.rows; r++ {
		a := g.rowStart(r)
		b := other.rowStart(r)
		for k := 0; k < g.wordsPerRow; k++ {
			x, y := g.words[a+k], other.words[b+k]
			if k == g.wordsPerRow-1 {
				x &= last
				y &= last
			}
			if x != y {
				return false
			}
		}
	}
	return true
}

// cleanTailPadding zeroes the bits past cols in the last word of every row.
// Row order does not matter here, so the storage is walked physically.
func (g *Grid) cleanTailPadding() {
	if g.cols&wordMask == 0 {
		return
	}
	mask := lowBits(g.cols)
	for r := 0; r < g.rows; r++ {
		g.words[r*g.wordsPerRow+g.wordsPerRow-1] &= mask
	}
}

func (g *Grid) clearPhysicalRow(p int) {
	start := p * g.wordsPerRow
	clear(g.words[start : start+g.wordsPerRow])
}

func (g *Grid) sameShape(other *Grid) error {
	if g.rows != other.rows || g.cols != other.cols {
		return &DimensionMismatchError{
			Rows: g.rows, Cols: g.cols,
			OtherRows: other.rows, OtherCols: other.cols,
		}
	}
	return nil
}

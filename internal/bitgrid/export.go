package bitgrid

import (
	"math/bits"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap exports the set cells as row-major indexes (row*cols + col) in
// logical row order.
func (g *Grid) Bitmap() *roaring.Bitmap {
	g.cleanTailPadding()
	bm := roaring.New()
	buf := make([]uint32, 0, 64)
	for r := 0; r < g.rows; r++ {
		start := g.rowStart(r)
		base := uint32(r * g.cols)
		for k := 0; k < g.wordsPerRow; k++ {
			w := g.words[start+k]
			for w != 0 {
				tz := bits.TrailingZeros64(w)
				buf = append(buf, base+uint32(k<<wordLog+tz))
				w &= w - 1
			}
		}
		if len(buf) > 0 {
			bm.AddMany(buf)
			buf = buf[:0]
		}
	}
	return bm
}

// String renders the grid one row per line, "1 " for set cells and ". "
// otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*2 + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Get(r, c) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

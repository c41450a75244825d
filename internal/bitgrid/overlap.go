package bitgrid

import "math/bits"

// CountIntersectionAt counts the cells set in both g and mask, with mask's
// (0,0) placed on g's (startRow, startCol). The overlap is clipped to g.
//
// This runs once per scan step. When startCol is not word aligned every mask
// word is matched against two adjacent source words combined by shifting.
func (g *Grid) CountIntersectionAt(startRow, startCol int, mask *Grid) int {
	if startRow < 0 || startCol < 0 {
		panic(&OutOfRangeError{Row: startRow, Col: startCol, Rows: g.rows, Cols: g.cols})
	}
	checkRows := min(mask.rows, g.rows-startRow)
	checkCols := min(mask.cols, g.cols-startCol)
	if checkRows <= 0 || checkCols <= 0 {
		return 0
	}

	wordOff := startCol >> wordLog
	shift := uint(startCol) & wordMask
	inv := wordBits - shift
	n := (checkCols + wordMask) >> wordLog
	last := lowBits(checkCols)
	avail := g.wordsPerRow - wordOff

	hits := 0
	for r := 0; r < checkRows; r++ {
		src := g.words[g.rowStart(startRow+r)+wordOff:]
		mrow := mask.words[mask.rowStart(r):]
		if shift == 0 {
			for i := 0; i < n-1; i++ {
				hits += bits.OnesCount64(src[i] & mrow[i])
			}
			hits += bits.OnesCount64(src[n-1] & mrow[n-1] & last)
			continue
		}
		for i := 0; i < n; i++ {
			v := src[i] >> shift
			if i+1 < avail {
				v |= src[i+1] << inv
			}
			m := mrow[i]
			if i == n-1 {
				m &= last
			}
			hits += bits.OnesCount64(v & m)
		}
	}
	return hits
}

// ExtractSubMatrix copies the region of g starting at (srcRow, srcCol) with
// dest's shape into dest, clipped to both grids.
func (g *Grid) ExtractSubMatrix(srcRow, srcCol int, dest *Grid) {
	g.ExtractRegion(srcRow, srcCol, dest.rows, dest.cols, dest)
}

// ExtractRegion copies an h x w region of g starting at (srcRow, srcCol) into
// dest's logical (0,0). The copy is clipped to both grids and never touches
// destination cells outside the copied region.
func (g *Grid) ExtractRegion(srcRow, srcCol, h, w int, dest *Grid) {
	if srcRow < 0 || srcCol < 0 {
		panic(&OutOfRangeError{Row: srcRow, Col: srcCol, Rows: g.rows, Cols: g.cols})
	}
	safeH := min(h, g.rows-srcRow, dest.rows)
	safeW := min(w, g.cols-srcCol, dest.cols)
	if safeH <= 0 || safeW <= 0 {
		return
	}

	wordOff := srcCol >> wordLog
	shift := uint(srcCol) & wordMask
	inv := wordBits - shift
	n := (safeW + wordMask) >> wordLog
	last := lowBits(safeW)
	avail := g.wordsPerRow - wordOff

	for r := 0; r < safeH; r++ {
		src := g.words[g.rowStart(srcRow+r)+wordOff:]
		dst := dest.words[dest.rowStart(r):]
		for i := 0; i < n; i++ {
			v := src[i]
			if shift != 0 {
				v >>= shift
				if i+1 < avail {
					v |= src[i+1] << inv
				}
			}
			if i == n-1 {
				dst[i] = dst[i]&^last | v&last
			} else {
				dst[i] = v
			}
		}
	}
}

// lowBits returns a mask of the bits that belong to the last word of an
// n-column span.
func lowBits(n int) uint64 {
	rem := n & wordMask
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(rem)) - 1
}

package bitgrid

// ShiftVertical rotates the logical rows by delta.
//
// A positive delta drops the top rows and exposes zeroed rows at the bottom
// (the window moved down); a negative delta exposes zeroed rows at the top.
// Only the recycled rows are touched, so a single-row shift costs
// O(wordsPerRow). When |delta| >= rows the grid is cleared and the head reset.
func (g *Grid) ShiftVertical(delta int) {
	if delta == 0 {
		return
	}
	if delta >= g.rows || -delta >= g.rows {
		g.Reset()
		return
	}

	if delta > 0 {
		// Logical rows [0,delta) become the new bottom once the head moves.
		for i := 0; i < delta; i++ {
			g.clearPhysicalRow(g.physicalRow(i))
		}
		g.head += delta
		if g.head >= g.rows {
			g.head -= g.rows
		}
		return
	}

	n := -delta
	bottom := g.rows - n
	for i := 0; i < n; i++ {
		g.clearPhysicalRow(g.physicalRow(bottom + i))
	}
	g.head -= n
	if g.head < 0 {
		g.head += g.rows
	}
}

// ShiftHorizontal moves every row's content by delta columns.
//
// A positive delta moves cells toward higher column indexes (zero columns
// appear on the left); a negative delta moves them toward lower indexes
// (zero columns appear on the right). Rows are processed physically since
// row order does not matter. When |delta| >= cols the grid is cleared; the
// head is left alone.
func (g *Grid) ShiftHorizontal(delta int) {
	if delta == 0 {
		return
	}
	if delta >= g.cols || -delta >= g.cols {
		clear(g.words)
		return
	}

	if delta > 0 {
		g.shiftUp(delta>>wordLog, uint(delta)&wordMask)
	} else {
		n := -delta
		g.shiftDown(n>>wordLog, uint(n)&wordMask)
	}
	g.cleanTailPadding()
}

// shiftUp moves bits toward higher indexes. Destination words are written
// end-to-start so every source word is read before it is overwritten.
func (g *Grid) shiftUp(wordShift int, bitShift uint) {
	inv := wordBits - bitShift
	wpr := g.wordsPerRow
	for r := 0; r < g.rows; r++ {
		row := g.words[r*wpr : (r+1)*wpr]
		for i := wpr - 1; i >= 0; i-- {
			var res uint64
			src := i - wordShift
			if src >= 0 {
				res = row[src] << bitShift
				if bitShift > 0 && src > 0 {
					res |= row[src-1] >> inv
				}
			}
			row[i] = res
		}
	}
}

// shiftDown moves bits toward lower indexes, start-to-end.
func (g *Grid) shiftDown(wordShift int, bitShift uint) {
	inv := wordBits - bitShift
	wpr := g.wordsPerRow
	for r := 0; r < g.rows; r++ {
		row := g.words[r*wpr : (r+1)*wpr]
		for i := 0; i < wpr; i++ {
			var res uint64
			src := i + wordShift
			if src < wpr {
				res = row[src] >> bitShift
				if bitShift > 0 && src+1 < wpr {
					res |= row[src+1] << inv
				}
			}
			row[i] = res
		}
	}
}

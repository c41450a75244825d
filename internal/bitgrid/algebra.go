package bitgrid

import "math/bits"

type wordOp func(a, b uint64) uint64

func and(a, b uint64) uint64 { return a & b }
func or(a, b uint64) uint64  { return a | b }
func xor(a, b uint64) uint64 { return a ^ b }

// Intersect sets g to g AND other.
func (g *Grid) Intersect(other *Grid) error { return g.combine(other, and) }

// Union sets g to g OR other.
func (g *Grid) Union(other *Grid) error { return g.combine(other, or) }

// Xor sets g to g XOR other.
func (g *Grid) Xor(other *Grid) error { return g.combine(other, xor) }

func (g *Grid) combine(other *Grid, op wordOp) error {
	if err := g.sameShape(other); err != nil {
		return err
	}

	if g.head == 0 && other.head == 0 {
		// Both linear: physical and logical layout agree.
		for i := range g.words {
			g.words[i] = op(g.words[i], other.words[i])
		}
		return nil
	}

	// Circularly unaligned: resolve each operand's physical row separately.
	for r := 0; r < g.rows; r++ {
		a := g.rowStart(r)
		b := other.rowStart(r)
		for k := 0; k < g.wordsPerRow; k++ {
			g.words[a+k] = op(g.words[a+k], other.words[b+k])
		}
	}
	return nil
}

// Invert complements every cell.
func (g *Grid) Invert() {
	for i := range g.words {
		g.words[i] = ^g.words[i]
	}
	g.cleanTailPadding()
}

// CountOnes returns the number of set cells.
func (g *Grid) CountOnes() int {
	g.cleanTailPadding()
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}

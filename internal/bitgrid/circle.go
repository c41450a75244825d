package bitgrid

import "math"

// NewCircle builds a (2r+1) x (2r+1) disk mask centred on cell (r, r).
// Every row gets the contiguous span |dx| <= floor(sqrt(r*r - dy*dy)).
func NewCircle(r int) (*Grid, error) {
	dim := 2*r + 1
	g, err := New(dim, dim)
	if err != nil {
		return nil, err
	}
	rSq := int64(r) * int64(r)
	for y := 0; y < dim; y++ {
		dy := int64(y - r)
		if dy*dy > rSq {
			continue
		}
		dx := int(math.Sqrt(float64(rSq - dy*dy)))
		g.setSpan(y, r-dx, r+dx)
	}
	return g, nil
}

// NewCircleEven builds a 2r x 2r disk mask whose centre is the corner shared
// by the four middle cells, i.e. (r-0.5, r-0.5). Span ends are rounded
// inward (ceil on the left, floor on the right) so every set cell lies in
// the disk.
func NewCircleEven(r int) (*Grid, error) {
	dim := 2 * r
	g, err := New(dim, dim)
	if err != nil {
		return nil, err
	}
	centre := float64(r) - 0.5
	rSq := float64(r) * float64(r)
	for y := 0; y < dim; y++ {
		dy := float64(y) - centre
		if dy*dy > rSq {
			continue
		}
		dx := math.Sqrt(rSq - dy*dy)
		start := max(0, int(math.Ceil(centre-dx)))
		end := min(dim-1, int(math.Floor(centre+dx)))
		g.setSpan(y, start, end)
	}
	return g, nil
}

// setSpan sets columns [from, to] of a logical row word by word.
func (g *Grid) setSpan(row, from, to int) {
	if from > to {
		return
	}
	base := g.rowStart(row)
	for w := from >> wordLog; w <= to>>wordLog; w++ {
		lo := max(from, w<<wordLog) & wordMask
		hi := min(to, (w<<wordLog)+wordMask) & wordMask
		span := ^uint64(0) >> uint(wordMask-(hi-lo)) << uint(lo)
		g.words[base+w] |= span
	}
}

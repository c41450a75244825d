package testutil

import "sort"

// Scored is a window position rated by the brute-force scorer.
type Scored struct {
	X, Z  int32
	Score int
	Seq   int64
}

// ScoreAt counts mask cells whose chunk satisfies pred, with the window's
// top-left corner at (cx-radius, cz-radius).
func ScoreAt(pred func(x, z int32) bool, mask CellReader, radius int, cx, cz int32) int {
	left, top := cx-int32(radius), cz-int32(radius)
	score := 0
	for r := 0; r < mask.Rows(); r++ {
		for c := 0; c < mask.Cols(); c++ {
			if mask.Get(r, c) && pred(left+int32(c), top+int32(r)) {
				score++
			}
		}
	}
	return score
}

// SnakeOrder visits every centre of the side x side domain starting at
// (startX, startZ): even columns top to bottom, odd columns bottom to top.
func SnakeOrder(startX, startZ int32, side int, visit func(x, z int32, seq int64)) {
	var seq int64
	for c := 0; c < side; c++ {
		for s := 0; s < side; s++ {
			row := s
			if c%2 == 1 {
				row = side - 1 - s
			}
			visit(startX+int32(c), startZ+int32(row), seq)
			seq++
		}
	}
}

// ExactTopK scores every position from scratch and returns the best n with
// positive score, ordered by score descending then snake order.
func ExactTopK(pred func(x, z int32) bool, mask CellReader, radius int, startX, startZ int32, side, n int) []Scored {
	var all []Scored
	SnakeOrder(startX, startZ, side, func(x, z int32, seq int64) {
		if s := ScoreAt(pred, mask, radius, x, z); s > 0 {
			all = append(all, Scored{X: x, Z: z, Score: s, Seq: seq})
		}
	})
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Seq < all[j].Seq
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

package slimefinder

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/slimefinder/internal/bitgrid"
	"github.com/hupe1980/slimefinder/internal/queue"
)

// ChunkSize is the width of a chunk in blocks.
const ChunkSize = 16

// Result is one ranked window position.
type Result struct {
	ChunkX int32 `json:"chunkX"`
	ChunkZ int32 `json:"chunkZ"`
	BlockX int64 `json:"blockX"`
	BlockZ int64 `json:"blockZ"`
	// Score is the number of predicate-true chunks under the mask.
	Score int `json:"score"`
	// View draws the window one row per line: '#' for a counted chunk, '+'
	// for a matching chunk outside the mask, 'o' for an empty mask cell and
	// '.' otherwise.
	View string `json:"view"`
	// Loaded lists the counted cells as row-major window indexes.
	Loaded []uint32 `json:"loaded"`
}

// render rebuilds the window of every candidate and describes it. Only the
// final TopN are rendered, so each one is filled from scratch.
func (f *Finder) render(ctx context.Context, q Query, cands []queue.Candidate) ([]Result, error) {
	r := int(q.WindowRadius)
	mask, err := q.Shape.NewMask(r)
	if err != nil {
		return nil, err
	}
	maskCells := mask.Bitmap()

	results := make([]Result, len(cands))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(q.Workers)
	for i, c := range cands {
		g.Go(func() error {
			pred := f.opts.predicate(q.Seed)
			window := bitgrid.MustNew(mask.Rows(), mask.Cols())
			left, top := c.X-int32(r), c.Z-int32(r)
			for row := 0; row < window.Rows(); row++ {
				for col := 0; col < window.Cols(); col++ {
					window.Set(row, col, pred.Test(left+int32(col), top+int32(row)))
				}
			}

			loaded := window.Bitmap()
			loaded.And(maskCells)

			results[i] = Result{
				ChunkX: c.X,
				ChunkZ: c.Z,
				BlockX: int64(c.X) * ChunkSize,
				BlockZ: int64(c.Z) * ChunkSize,
				Score:  c.Score,
				View:   view(window, mask),
				Loaded: loaded.ToArray(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func view(window, mask *bitgrid.Grid) string {
	var sb strings.Builder
	sb.Grow(window.Rows() * (window.Cols()*2 + 1))
	for r := 0; r < window.Rows(); r++ {
		for c := 0; c < window.Cols(); c++ {
			inMask, hit := mask.Get(r, c), window.Get(r, c)
			switch {
			case inMask && hit:
				sb.WriteString("# ")
			case hit:
				sb.WriteString("+ ")
			case inMask:
				sb.WriteString("o ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package slimefinder finds the places in a Minecraft world where a disk of
// chunks contains the most slime chunks.
//
// Every chunk centre of a square search area is scored by counting the
// slime chunks under a disk-shaped mask centred on it. The search returns
// the TopN best centres.
//
// # Quick Start
//
//	ctx := context.Background()
//	results, _ := slimefinder.Search(ctx, slimefinder.Query{
//	    Seed:         -8594768700734077283,
//	    SearchRadius: 1000,
//	    WindowRadius: 8,
//	    Workers:      runtime.NumCPU(),
//	    TopN:         10,
//	})
//	for i, r := range results {
//	    fmt.Printf("TOP %d: chunk [%d, %d] | slime chunks: %d\n", i+1, r.ChunkX, r.ChunkZ, r.Score)
//	}
//
// # How It Works
//
// The search area is split into vertical bands, one per worker. Each worker
// slides a bit-packed window down one column, one step right, up the next
// column and so on. A move only recomputes the row or column that entered
// the window; the score is a popcount of window AND mask.
//
//	 band 0      band 1      band 2
//	│ ↓ ↑ ↓ │   │ ↑ ↓ ↑ │   │ ↓ ↑ │
//	│ ↓ ↑ ↓ │   │ ↑ ↓ ↑ │   │ ↓ ↑ │
//	│ ↓ ↑ ↓ │   │ ↑ ↓ ↑ │   │ ↓ ↑ │
//
// Workers keep their own bounded heap. The heaps are merged once all bands
// finish. Ties are broken by the position of a centre in the global snake
// order, so the result is the same for any number of workers.
//
// # Window Shapes
//
//   - scanner.Even (default): a 2r x 2r window whose disk is centred on the
//     corner at the top-left of the centre chunk
//   - scanner.Odd: a (2r+1) x (2r+1) window whose disk is centred on the
//     centre chunk itself
//
// # Observability
//
// Use WithLogger for structured logs, WithMetricsCollector for metrics (see
// package metric for Prometheus) and WithProgress for progress snapshots.
package slimefinder

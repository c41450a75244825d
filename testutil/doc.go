// Package testutil provides testing utilities for slimefinder.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG, a slow reference bit matrix used as an
// oracle for the packed grid, and a brute-force scorer that computes the
// exact top-N window positions without any incremental tricks.
//
// # Reference Grid
//
//	ref := testutil.NewNaiveGrid(rows, cols)
//	ref.Set(r, c, true)
//	ref.ShiftVertical(1)
//	ok := ref.Matches(grid)
//
// # Exact Search (Ground Truth)
//
//	want := testutil.ExactTopK(domain, mask, radius, predicate, n)
package testutil

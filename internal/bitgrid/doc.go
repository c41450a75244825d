// Package bitgrid provides a fixed-size, bit-packed 2-D boolean matrix.
//
// Architecture:
//   - Row-aligned storage: every row starts on a uint64 word boundary
//     (wordsPerRow = ceil(cols/64)), so horizontal operations never cross rows.
//   - Circular rows: a head offset maps logical row 0 to a physical row.
//     ShiftVertical only zeroes the recycled rows and moves the head.
//   - Tail padding: bits at col >= cols in the last word of a row are kept zero
//     before any population count, export or overlap count.
//
// Used internally for:
//   - The scan window that slides over the chunk grid
//   - The disk masks that score a window position
//
// A Grid is not safe for concurrent mutation; each scan worker owns its grids.
package bitgrid

package bitgrid

import "fmt"

// InvalidDimensionError is returned when a grid is created with a non-positive size.
type InvalidDimensionError struct {
	Rows int
	Cols int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("bitgrid: invalid dimension %dx%d", e.Rows, e.Cols)
}

// OutOfRangeError describes an index outside [0,rows)x[0,cols).
//
// Get, Set and CountIntersectionAt panic with this error: an out of range
// index is a caller bug, not a runtime condition.
type OutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bitgrid: index (%d,%d) out of range for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// DimensionMismatchError is returned by the boolean algebra operations when the
// operands differ in shape.
type DimensionMismatchError struct {
	Rows, Cols           int
	OtherRows, OtherCols int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("bitgrid: dimension mismatch: %dx%d vs %dx%d", e.Rows, e.Cols, e.OtherRows, e.OtherCols)
}

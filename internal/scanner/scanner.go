// Package scanner slides a bit-packed window over the chunk grid in a snake
// pattern and scores every position against a fixed disk mask.
//
// Each step refreshes only the row or column the move exposed, so the
// predicate runs O(side) times per position instead of O(side²).
package scanner

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slimefinder/internal/bitgrid"
)

// Predicate decides whether a chunk counts toward the score.
type Predicate interface {
	Test(x, z int32) bool
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(x, z int32) bool

// Test implements Predicate.
func (f PredicateFunc) Test(x, z int32) bool { return f(x, z) }

// Shape selects the window and mask geometry.
type Shape uint8

const (
	// Even uses a 2r x 2r window and a disk centred on the corner shared by
	// the centre chunk and its up-left neighbour.
	Even Shape = iota
	// Odd uses a (2r+1) x (2r+1) window and a disk centred on the centre chunk.
	Odd
)

// String returns the config name of the shape.
func (s Shape) String() string {
	switch s {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "unknown"
	}
}

// ParseShape maps a config name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "", "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return 0, fmt.Errorf("scanner: unknown shape %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if s != Even && s != Odd {
		return nil, fmt.Errorf("scanner: unknown shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Side returns the window side for radius r.
func (s Shape) Side(r int) int {
	if s == Odd {
		return 2*r + 1
	}
	return 2 * r
}

// NewMask builds the disk mask of radius r for the shape.
func (s Shape) NewMask(r int) (*bitgrid.Grid, error) {
	if s == Odd {
		return bitgrid.NewCircle(r)
	}
	return bitgrid.NewCircleEven(r)
}

// Direction is the vertical travel direction inside a column.
type Direction uint8

const (
	// Down moves toward increasing z.
	Down Direction = iota
	// Up moves toward decreasing z.
	Up
)

// Delta returns the z step of the direction.
func (d Direction) Delta() int {
	if d == Up {
		return -1
	}
	return 1
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// ErrNoPredicate is returned when Config.Predicate is nil.
var ErrNoPredicate = errors.New("scanner: predicate is required")

// Config describes one scan band.
type Config struct {
	// StartX, StartZ are the centre of the top-left position of the band.
	StartX, StartZ int32
	// Columns is the band width; RowsPerColumn is the column height.
	Columns, RowsPerColumn int
	// Radius is the mask radius.
	Radius int
	Shape  Shape
	// StartDirection is the direction of the first column. With Up the first
	// position is the bottom of the column.
	StartDirection Direction
	Predicate      Predicate
}

// Step is one scored window position.
type Step struct {
	X, Z  int32
	Score int
	// ColumnDone marks the last position of a column.
	ColumnDone bool
}

// Scanner walks one band down a column, one step right, up the next column
// and so on. It owns its window and mask.
type Scanner struct {
	window *bitgrid.Grid
	mask   *bitgrid.Grid
	pred   Predicate

	radius        int
	side          int
	columns       int
	rowsPerColumn int

	dir Direction
	// stepsInColumn counts moves made inside the current column.
	stepsInColumn int
	produced      int64
	total         int64

	centreX, centreZ int32
	leftX, topZ      int32
}

// New creates a scanner and pre-fills the window at the first position.
func New(cfg Config) (*Scanner, error) {
	if cfg.Predicate == nil {
		return nil, ErrNoPredicate
	}
	if cfg.Columns < 0 || cfg.RowsPerColumn < 0 {
		return nil, fmt.Errorf("scanner: negative band %dx%d", cfg.Columns, cfg.RowsPerColumn)
	}
	side := cfg.Shape.Side(cfg.Radius)
	mask, err := cfg.Shape.NewMask(cfg.Radius)
	if err != nil {
		return nil, fmt.Errorf("scanner: mask radius %d: %w", cfg.Radius, err)
	}
	window, err := bitgrid.New(side, side)
	if err != nil {
		return nil, fmt.Errorf("scanner: window radius %d: %w", cfg.Radius, err)
	}

	s := &Scanner{
		window:        window,
		mask:          mask,
		pred:          cfg.Predicate,
		radius:        cfg.Radius,
		side:          side,
		columns:       cfg.Columns,
		rowsPerColumn: cfg.RowsPerColumn,
		dir:           cfg.StartDirection,
		total:         int64(cfg.Columns) * int64(cfg.RowsPerColumn),
		centreX:       cfg.StartX,
		centreZ:       cfg.StartZ,
	}
	if s.dir == Up && cfg.RowsPerColumn > 0 {
		s.centreZ += int32(cfg.RowsPerColumn - 1)
	}
	s.leftX = s.centreX - int32(s.radius)
	s.topZ = s.centreZ - int32(s.radius)

	for r := 0; r < side; r++ {
		s.fillRow(r)
	}
	return s, nil
}

// Total returns the number of positions the band contains.
func (s *Scanner) Total() int64 { return s.total }

// Produced returns the number of positions scored so far.
func (s *Scanner) Produced() int64 { return s.produced }

// Centre returns the chunk the current score applies to.
func (s *Scanner) Centre() (x, z int32) { return s.centreX, s.centreZ }

// Mask returns the scoring mask. Callers must not mutate it.
func (s *Scanner) Mask() *bitgrid.Grid { return s.mask }

// Window returns a linearized copy of the current window.
func (s *Scanner) Window() *bitgrid.Grid {
	out := bitgrid.MustNew(s.side, s.side)
	s.window.ExtractSubMatrix(0, 0, out)
	return out
}

// Next scores the next position of the traversal. The first call scores the
// starting position. It returns false once the band is exhausted.
func (s *Scanner) Next() (Step, bool) {
	if s.produced >= s.total {
		return Step{}, false
	}

	switch {
	case s.produced == 0:
		// The pre-filled window already sits on the first position.
	case s.stepsInColumn == s.rowsPerColumn-1:
		s.moveRight()
	default:
		s.moveVertical()
	}
	s.produced++

	return Step{
		X:          s.centreX,
		Z:          s.centreZ,
		Score:      s.window.CountIntersectionAt(0, 0, s.mask),
		ColumnDone: s.stepsInColumn == s.rowsPerColumn-1,
	}, true
}

// moveRight moves the window one column right, refills the exposed right
// column and reverses the vertical direction.
func (s *Scanner) moveRight() {
	s.centreX++
	s.leftX++
	s.window.ShiftHorizontal(-1)
	s.fillCol(s.side - 1)
	s.dir = s.dir.Opposite()
	s.stepsInColumn = 0
}

// moveVertical moves one row in the current direction and refills the row
// that appeared.
func (s *Scanner) moveVertical() {
	d := s.dir.Delta()
	s.centreZ += int32(d)
	s.topZ += int32(d)
	s.window.ShiftVertical(d)
	if d > 0 {
		s.fillRow(s.side - 1)
	} else {
		s.fillRow(0)
	}
	s.stepsInColumn++
}

func (s *Scanner) fillRow(r int) {
	z := s.topZ + int32(r)
	for c := 0; c < s.side; c++ {
		s.window.Set(r, c, s.pred.Test(s.leftX+int32(c), z))
	}
}

func (s *Scanner) fillCol(c int) {
	x := s.leftX + int32(c)
	for r := 0; r < s.side; r++ {
		s.window.Set(r, c, s.pred.Test(x, s.topZ+int32(r)))
	}
}

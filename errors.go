package slimefinder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned when a Query fails validation.
	ErrInvalidQuery = errors.New("invalid query")
)

// WorkerError indicates that scanning one band failed.
//
// Panics raised by contract violations inside a worker are recovered into
// a WorkerError; the original value can be accessed via errors.Unwrap.
type WorkerError struct {
	Band Band
	Err  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker for columns [%d,%d) failed: %v", e.Band.Start, e.Band.Start+e.Band.Width, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }

// recovered converts a recovered panic value into an error.
func recovered(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}

func invalidQuery(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

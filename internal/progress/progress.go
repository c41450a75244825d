package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/time/rate"
)

// DefaultInterval is the poll cadence used when Run is given a non-positive
// interval.
const DefaultInterval = time.Second

// Tracker counts completed steps toward a fixed total.
type Tracker struct {
	done  *xsync.Counter
	total int64
	start time.Time
	now   func() time.Time
}

// NewTracker starts tracking total steps from now.
func NewTracker(total int64) *Tracker {
	return &Tracker{
		done:  xsync.NewCounter(),
		total: total,
		start: time.Now(),
		now:   time.Now,
	}
}

// Add records n completed steps. Safe for concurrent use.
func (t *Tracker) Add(n int64) {
	if t == nil || n == 0 {
		return
	}
	t.done.Add(n)
}

// Done returns the number of completed steps.
func (t *Tracker) Done() int64 {
	if t == nil {
		return 0
	}
	return t.done.Value()
}

// Total returns the number of steps the search will take.
func (t *Tracker) Total() int64 {
	if t == nil {
		return 0
	}
	return t.total
}

// Snapshot is a point-in-time view of a Tracker.
type Snapshot struct {
	Completed int64
	Total     int64
	Elapsed   time.Duration
	// Fraction is Completed/Total in [0,1]; 1 for an empty search.
	Fraction float64
	// ETA is zero until the first step completes.
	ETA time.Duration
}

// Finished reports whether every step completed.
func (s Snapshot) Finished() bool { return s.Completed >= s.Total }

// Snapshot reads the counter and extrapolates the remaining time linearly.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{Fraction: 1}
	}
	s := Snapshot{
		Completed: t.done.Value(),
		Total:     t.total,
		Elapsed:   t.now().Sub(t.start),
	}
	if s.Total <= 0 {
		s.Fraction = 1
		return s
	}
	s.Fraction = min(float64(s.Completed)/float64(s.Total), 1)
	if s.Fraction > 0 && s.Fraction < 1 {
		s.ETA = time.Duration(float64(s.Elapsed)/s.Fraction) - s.Elapsed
	}
	return s
}

// Run calls fn with a fresh Snapshot once per interval until ctx is done or
// the tracker reports completion. The first call happens immediately; when ctx
// ends the wait, fn receives one last Snapshot before Run returns.
func (t *Tracker) Run(ctx context.Context, interval time.Duration, fn func(Snapshot)) {
	if t == nil || fn == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			fn(t.Snapshot())
			return
		}
		s := t.Snapshot()
		fn(s)
		if s.Finished() {
			return
		}
	}
}

// FormatDuration renders d as HH:MM:SS. Non-positive durations render as
// 00:00:00; hours are not capped at 24.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Line formats s the way the command line prints it.
func Line(s Snapshot) string {
	return fmt.Sprintf("[Progress] %d/%d (%.2f%%) | ETA: %s",
		s.Completed, s.Total, s.Fraction*100, FormatDuration(s.ETA))
}

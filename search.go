package slimefinder

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/slimefinder/internal/progress"
	"github.com/hupe1980/slimefinder/internal/queue"
	"github.com/hupe1980/slimefinder/internal/scanner"
)

// Query describes one top-N search.
type Query struct {
	// Seed is the world seed.
	Seed int64 `json:"seed"`
	// CenterX, CenterZ is the chunk the search square is centred on.
	CenterX int32 `json:"centerX"`
	CenterZ int32 `json:"centerZ"`
	// SearchRadius is the half side of the square of candidate centres.
	SearchRadius uint32 `json:"searchRadius"`
	// WindowRadius is the radius of the scoring disk.
	WindowRadius uint32 `json:"windowRadius"`
	// Workers is the number of parallel bands.
	Workers int `json:"workers"`
	// TopN is the number of results to keep.
	TopN  int           `json:"topN"`
	Shape scanner.Shape `json:"shape"`
}

// Side returns the side of the square of candidate centres.
func (q Query) Side() int { return 2*int(q.SearchRadius) + 1 }

// Positions returns the number of window positions the search scores.
func (q Query) Positions() int64 { return int64(q.Side()) * int64(q.Side()) }

// Origin returns the top-left centre of the search square.
func (q Query) Origin() (x, z int32) {
	return q.CenterX - int32(q.SearchRadius), q.CenterZ - int32(q.SearchRadius)
}

// Validate reports whether the query can be searched.
func (q Query) Validate() error {
	if q.Workers <= 0 {
		return invalidQuery("workers must be positive, got %d", q.Workers)
	}
	if q.TopN <= 0 {
		return invalidQuery("topN must be positive, got %d", q.TopN)
	}
	switch q.Shape {
	case scanner.Even:
		if q.WindowRadius == 0 {
			return invalidQuery("even window needs a radius of at least 1")
		}
	case scanner.Odd:
	default:
		return invalidQuery("unknown shape %d", q.Shape)
	}
	// Every chunk any window touches must be addressable as int32.
	reach := int64(q.SearchRadius) + int64(q.WindowRadius)
	for _, c := range []int32{q.CenterX, q.CenterZ} {
		if int64(c)-reach < math.MinInt32 || int64(c)+reach > math.MaxInt32 {
			return invalidQuery("search area around %d exceeds the chunk coordinate range", c)
		}
	}
	return nil
}

// Band is a contiguous range of columns scanned by one worker.
type Band struct {
	Index int
	// Start is the column offset from the left edge of the search square.
	Start int
	Width int
}

// Partition splits side columns into at most workers bands. Bands differ in
// width by at most one; the first side%workers bands get the extra column.
// Zero-width bands are omitted.
func Partition(side, workers int) []Band {
	if side <= 0 || workers <= 0 {
		return nil
	}
	base, rem := side/workers, side%workers
	bands := make([]Band, 0, min(side, workers))
	start := 0
	for i := 0; i < workers; i++ {
		w := base
		if i < rem {
			w++
		}
		if w == 0 {
			break
		}
		bands = append(bands, Band{Index: len(bands), Start: start, Width: w})
		start += w
	}
	return bands
}

// Finder runs searches with a fixed set of options. A Finder is safe for
// concurrent use.
type Finder struct {
	opts options
}

// New creates a Finder.
func New(optFns ...Option) *Finder {
	return &Finder{opts: applyOptions(optFns)}
}

// Search runs q with a Finder built from opts.
func Search(ctx context.Context, q Query, opts ...Option) ([]Result, error) {
	return New(opts...).Search(ctx, q)
}

// Search scans every centre of the query square and returns the TopN
// positions with a positive score, best first. Equal scores are ordered by
// the position's index in the column-by-column snake traversal, so the
// result does not depend on the number of workers.
func (f *Finder) Search(ctx context.Context, q Query) (results []Result, err error) {
	start := time.Now()
	if f.opts.shape != nil {
		q.Shape = *f.opts.shape
	}
	defer func() {
		elapsed := time.Since(start)
		f.opts.metricsCollector.RecordSearch(q.Workers, len(results), elapsed, err)
		f.opts.logger.LogSearch(ctx, q, len(results), elapsed, err)
	}()

	if err := q.Validate(); err != nil {
		return nil, err
	}

	cands, err := f.scan(ctx, q)
	if err != nil {
		return nil, err
	}
	return f.render(ctx, q, cands)
}

// scan fans the bands out to workers and merges their heaps.
func (f *Finder) scan(ctx context.Context, q Query) ([]queue.Candidate, error) {
	bands := Partition(q.Side(), q.Workers)
	tracker := progress.NewTracker(q.Positions())

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		tracker.Run(monitorCtx, f.opts.progressInterval, f.reportProgress(monitorCtx))
	}()
	defer func() {
		stopMonitor()
		<-monitorDone
	}()

	heaps := make([]*queue.Bounded, len(bands))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bands {
		g.Go(func() error {
			h, err := f.scanBand(gctx, q, b, tracker)
			heaps[i] = h
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("search canceled: %w", ctxErr)
		}
		return nil, err
	}

	// Drain in band order; Offer keeps the merge independent of that order.
	merged := queue.NewBounded(q.TopN)
	for _, h := range heaps {
		merged.Merge(h)
	}
	return merged.Sorted(), nil
}

func (f *Finder) reportProgress(ctx context.Context) func(progress.Snapshot) {
	return func(s progress.Snapshot) {
		f.opts.metricsCollector.RecordProgress(s.Completed, s.Total)
		f.opts.logger.LogProgress(ctx, s.Completed, s.Total, s.ETA)
		if f.opts.progressFn != nil {
			f.opts.progressFn(s)
		}
	}
}

// scanBand scores every position of b and keeps the best TopN. Progress is
// published once per column and once at the end of the band.
func (f *Finder) scanBand(ctx context.Context, q Query, b Band, tracker *progress.Tracker) (h *queue.Bounded, err error) {
	log := f.opts.logger.WithWorker(b.Index).WithBand(b)
	began := time.Now()
	var steps int64

	defer func() {
		if r := recover(); r != nil {
			h, err = nil, &WorkerError{Band: b, Err: recovered(r)}
		}
		kept := 0
		if h != nil {
			kept = h.Len()
		}
		f.opts.metricsCollector.RecordWorker(steps, time.Since(began), err)
		log.LogWorker(ctx, steps, kept, err)
	}()

	side := q.Side()
	ox, oz := q.Origin()
	dir := scanner.Down
	if b.Start%2 == 1 {
		dir = scanner.Up
	}
	sc, err := scanner.New(scanner.Config{
		StartX:         ox + int32(b.Start),
		StartZ:         oz,
		Columns:        b.Width,
		RowsPerColumn:  side,
		Radius:         int(q.WindowRadius),
		Shape:          q.Shape,
		StartDirection: dir,
		Predicate:      f.opts.predicate(q.Seed),
	})
	if err != nil {
		return nil, &WorkerError{Band: b, Err: err}
	}

	h = queue.NewBounded(q.TopN)
	seq := int64(b.Start) * int64(side)
	var pending int64
	for {
		step, ok := sc.Next()
		if !ok {
			break
		}
		steps++
		pending++
		if step.Score > 0 {
			h.Offer(queue.Candidate{X: step.X, Z: step.Z, Score: step.Score, Seq: seq})
		}
		seq++

		if step.ColumnDone {
			tracker.Add(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	tracker.Add(pending)
	return h, nil
}

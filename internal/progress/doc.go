// Package progress tracks how many window positions a search has scored and
// reports completion with a linear ETA.
//
// Workers add to a striped counter, so concurrent updates do not contend on
// one cache line. A monitor reads the counter on a fixed cadence:
//
//	tr := progress.NewTracker(total)
//	go tr.Run(ctx, time.Second, func(s progress.Snapshot) {
//	    fmt.Println(progress.Line(s))
//	})
//
//	// in each worker
//	tr.Add(columnSteps)
//
// The cadence has no effect on search results.
//
// # Nil Safety
//
// All Tracker methods handle a nil receiver; Add becomes a no-op.
package progress

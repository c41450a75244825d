package metric

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.RecordWorker(100, time.Millisecond, nil)
	p.RecordWorker(50, time.Millisecond, errors.New("boom"))
	p.RecordSearch(2, 7, time.Second, nil)
	p.RecordProgress(150, 200)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	samples := map[string]uint64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				samples[mf.GetName()] += m.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, 150.0, values["slimefinder_positions_scored_total"])
	assert.Equal(t, 7.0, values["slimefinder_results_total"])
	assert.Equal(t, 150.0, values["slimefinder_progress_completed"])
	assert.Equal(t, 200.0, values["slimefinder_progress_total"])
	assert.Equal(t, uint64(2), samples["slimefinder_worker_duration_seconds"])
	assert.Equal(t, uint64(1), samples["slimefinder_search_duration_seconds"])
}

func TestPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg)
	assert.Panics(t, func() { NewPrometheus(reg) })
}

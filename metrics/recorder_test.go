package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderPublishesObservations(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordChangeApplied()
	r.RecordChangeApplied()
	r.RecordChangeRejected("overlap")
	r.ObserveEvaluationDuration(10 * time.Millisecond)
	r.SetSliceCacheSize(3)
	r.RecordSliceCacheHit()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	applied := byName["dtengine_changes_applied_total"]
	require.NotNil(t, applied)
	assert.Equal(t, float64(2), applied.Metric[0].GetCounter().GetValue())

	rejected := byName["dtengine_changes_rejected_total"]
	require.NotNil(t, rejected)
	assert.Equal(t, "overlap", rejected.Metric[0].Label[0].GetValue())

	size := byName["dtengine_slice_cache_size"]
	require.NotNil(t, size)
	assert.Equal(t, float64(3), size.Metric[0].GetGauge().GetValue())

	hits := byName["dtengine_slice_cache_hits_total"]
	require.NotNil(t, hits)
	assert.Equal(t, float64(1), hits.Metric[0].GetCounter().GetValue())
}

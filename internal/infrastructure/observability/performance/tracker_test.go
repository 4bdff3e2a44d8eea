package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *Tracker, op string, d time.Duration, err error) {
	m := t.StartOperation(op)
	m.StartTime = time.Now().Add(-d)
	m.SetError(err)
	t.CompleteOperation(m)
}

func TestTracker_Snapshot(t *testing.T) {
	tr := NewTracker(&TrackerConfig{MaxMarkers: 10, SlowThreshold: 50 * time.Millisecond})
	record(tr, OpExportHTML, 10*time.Millisecond, nil)
	record(tr, OpExportHTML, 200*time.Millisecond, nil)
	record(tr, OpPreviewRender, time.Millisecond, errors.New("boom"))

	snap := tr.TakeSnapshot()
	require.Len(t, snap.Operations, 2)
	html := snap.Operations[0]
	assert.Equal(t, OpExportHTML, html.Operation)
	assert.Equal(t, 2, html.Count)
	assert.Equal(t, 1, html.Slow)
	assert.GreaterOrEqual(t, html.Max, 200*time.Millisecond)

	preview := snap.Operations[1]
	assert.Equal(t, 1, preview.Failures)
	assert.Equal(t, HealthDegraded, snap.Health)
}

func TestTracker_RingKeepsNewest(t *testing.T) {
	tr := NewTracker(&TrackerConfig{MaxMarkers: 2, SlowThreshold: time.Second})
	record(tr, "a", 0, nil)
	record(tr, "b", 0, nil)
	record(tr, "c", 0, nil)

	ms := tr.GetMetrics("")
	require.Len(t, ms, 2)
	assert.Equal(t, "b", ms[0].Operation)
	assert.Equal(t, "c", ms[1].Operation)
	assert.Empty(t, tr.GetMetrics("a"))
}

func TestTracker_EmptyIsUnknown(t *testing.T) {
	assert.Equal(t, HealthUnknown, NewTracker(nil).TakeSnapshot().Health)
}

func TestTracker_NilIsSafe(t *testing.T) {
	var tr *Tracker
	m := tr.StartOperation(OpExportWrite)
	tr.CompleteOperation(m)
	assert.True(t, m.Completed)
}

package performance

import (
	"sort"
	"sync"
	"time"
)

// TrackerConfig contains configuration options for the tracker
type TrackerConfig struct {
	MaxMarkers    int           `json:"maxMarkers"`
	SlowThreshold time.Duration `json:"slowThreshold"`
	// Thresholds overrides SlowThreshold per operation.
	Thresholds map[string]time.Duration `json:"thresholds,omitempty"`
}

// DefaultTrackerConfig returns the default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:    1000,
		SlowThreshold: 250 * time.Millisecond,
		Thresholds: map[string]time.Duration{
			OpPreviewRender: 100 * time.Millisecond,
			OpExportWrite:   time.Second,
		},
	}
}

// Tracker keeps the most recent completed markers in a ring
type Tracker struct {
	mu      sync.RWMutex
	markers []Marker
	next    int
	full    bool
	started time.Time
	config  *TrackerConfig
}

// NewTracker creates a tracker. A nil config uses the defaults.
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	if config.MaxMarkers <= 0 {
		config.MaxMarkers = 1
	}
	return &Tracker{
		markers: make([]Marker, config.MaxMarkers),
		started: time.Now(),
		config:  config,
	}
}

// StartOperation begins timing operation. A nil tracker returns a marker
// that is simply discarded on completion.
func (t *Tracker) StartOperation(operation string) *Marker {
	return &Marker{Operation: operation, StartTime: time.Now(), Success: true}
}

// CompleteOperation finishes marker and records it
func (t *Tracker) CompleteOperation(marker *Marker) {
	if marker == nil {
		return
	}
	marker.Complete()
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markers[t.next] = *marker
	t.next = (t.next + 1) % len(t.markers)
	if t.next == 0 {
		t.full = true
	}
}

func (t *Tracker) threshold(operation string) time.Duration {
	if d, ok := t.config.Thresholds[operation]; ok {
		return d
	}
	return t.config.SlowThreshold
}

// recent returns the retained markers, oldest first. Caller holds t.mu.
func (t *Tracker) recent() []Marker {
	if !t.full {
		return t.markers[:t.next]
	}
	out := make([]Marker, 0, len(t.markers))
	out = append(out, t.markers[t.next:]...)
	return append(out, t.markers[:t.next]...)
}

// GetMetrics returns the retained markers for operation, or all when empty
func (t *Tracker) GetMetrics(operation string) []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []Marker
	for _, m := range t.recent() {
		if operation == "" || m.Operation == operation {
			out = append(out, m)
		}
	}
	return out
}

// TakeSnapshot aggregates the retained markers by operation
func (t *Tracker) TakeSnapshot() *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byOp := make(map[string]*OperationStats)
	var total time.Duration
	slow := 0
	markers := t.recent()
	for _, m := range markers {
		st, ok := byOp[m.Operation]
		if !ok {
			st = &OperationStats{Operation: m.Operation}
			byOp[m.Operation] = st
		}
		st.Count++
		if !m.Success {
			st.Failures++
		}
		if m.Duration > t.threshold(m.Operation) {
			st.Slow++
			slow++
		}
		st.Max = max(st.Max, m.Duration)
		if m.EndTime.After(st.Last) {
			st.Last = m.EndTime
		}
		st.Average += m.Duration
		total += m.Duration
	}

	snap := &Snapshot{
		Timestamp: time.Now(),
		Uptime:    time.Since(t.started),
		Health:    calculateHealth(len(markers), slow),
	}
	for _, st := range byOp {
		st.Average /= time.Duration(st.Count)
		snap.Operations = append(snap.Operations, *st)
	}
	sort.Slice(snap.Operations, func(i, j int) bool {
		return snap.Operations[i].Operation < snap.Operations[j].Operation
	})
	return snap
}

// calculateHealth flags the tracker degraded when more than a tenth of the
// retained operations ran slow.
func calculateHealth(total, slow int) HealthStatus {
	if total == 0 {
		return HealthUnknown
	}
	if slow*10 > total {
		return HealthDegraded
	}
	return HealthHealthy
}

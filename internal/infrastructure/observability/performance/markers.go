// Package performance times render and export operations and keeps a short
// history for the editor's metrics endpoint.
package performance

import (
	"time"
)

// Operation names used by the application services.
const (
	OpPreviewRender = "render:preview"
	OpExportHTML    = "export:html"
	OpExportConfig  = "export:config"
	OpExportWrite   = "export:write"
)

// Marker represents a single measurement of an operation
type Marker struct {
	Operation string         `json:"operation"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Duration  time.Duration  `json:"duration"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Completed bool           `json:"completed"`
}

// Complete marks the operation as finished
func (m *Marker) Complete() {
	if m.Completed {
		return
	}
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetError records err and marks the operation as failed
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// HealthStatus summarizes recent operation timings
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthDegraded HealthStatus = "degraded"
	HealthUnknown  HealthStatus = "unknown"
)

// OperationStats aggregates the retained markers of one operation
type OperationStats struct {
	Operation string        `json:"operation"`
	Count     int           `json:"count"`
	Failures  int           `json:"failures"`
	Slow      int           `json:"slow"`
	Average   time.Duration `json:"average"`
	Max       time.Duration `json:"max"`
	Last      time.Time     `json:"last"`
}

// Snapshot is a point-in-time view of the tracker
type Snapshot struct {
	Timestamp  time.Time        `json:"timestamp"`
	Uptime     time.Duration    `json:"uptime"`
	Health     HealthStatus     `json:"health"`
	Operations []OperationStats `json:"operations"`
}

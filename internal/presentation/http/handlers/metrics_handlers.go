package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/performance"
)

// MetricsHandlers expose render and export timings
type MetricsHandlers struct {
	tracker *performance.Tracker
}

// NewMetricsHandlers creates metrics handlers
func NewMetricsHandlers(tracker *performance.Tracker) *MetricsHandlers {
	return &MetricsHandlers{tracker: tracker}
}

// GetMetrics handles GET /api/v1/metrics
func (h *MetricsHandlers) GetMetrics(c *gin.Context) {
	if op := c.Query("operation"); op != "" {
		c.JSON(http.StatusOK, gin.H{"operation": op, "markers": h.tracker.GetMetrics(op)})
		return
	}
	c.JSON(http.StatusOK, h.tracker.TakeSnapshot())
}

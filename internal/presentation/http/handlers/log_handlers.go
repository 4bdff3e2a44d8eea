package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

// LogHandlers stream logs to the editor and adjust channel levels
type LogHandlers struct {
	logger *logging.ChanneledLogger
	feed   *logging.LogFeed
}

// NewLogHandlers creates log handlers
func NewLogHandlers(logger *logging.ChanneledLogger, feed *logging.LogFeed) *LogHandlers {
	return &LogHandlers{logger: logger, feed: feed}
}

// parseLevel accepts the four slog level names only.
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return logging.ParseLevel(name), true
	}
	return slog.LevelInfo, false
}

// StreamLogs handles GET /api/v1/logs/stream as server-sent events
func (h *LogHandlers) StreamLogs(c *gin.Context) {
	if h.feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Log feed not available"})
		return
	}

	level, _ := parseLevel(c.DefaultQuery("level", "INFO"))
	entries, cancel := h.feed.Subscribe(logging.AppliedFilters{
		Channel: logging.Channel(c.DefaultQuery("channel", "all")),
		Level:   level,
	})
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(c.Writer, ": connection established\n\n")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case entry, ok := <-entries:
			if !ok {
				return false
			}
			data, err := json.Marshal(entry)
			if err != nil {
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// GetLogLevels handles GET /api/v1/logs/levels
func (h *LogHandlers) GetLogLevels(c *gin.Context) {
	c.JSON(http.StatusOK, h.logger.GetChannelLevels())
}

// SetLogLevel handles PUT /api/v1/logs/levels
func (h *LogHandlers) SetLogLevel(c *gin.Context) {
	var req struct {
		Channel string `json:"channel" binding:"required"`
		Level   string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	level, ok := parseLevel(req.Level)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log level specified"})
		return
	}
	if err := h.logger.SetChannelLevel(logging.Channel(req.Channel), level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set log level", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": fmt.Sprintf("Log level for channel '%s' set to '%s'", req.Channel, level)})
}

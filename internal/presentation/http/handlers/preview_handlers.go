package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// PreviewHandlers serves the live preview page and its websocket
type PreviewHandlers struct {
	preview *services.PreviewService
	hub     *messaging.Hub
	logger  *logging.ChanneledLogger
}

// NewPreviewHandlers creates preview handlers with injected dependencies
func NewPreviewHandlers(preview *services.PreviewService, hub *messaging.Hub, logger *logging.ChanneledLogger) *PreviewHandlers {
	return &PreviewHandlers{preview: preview, hub: hub, logger: logger}
}

func viewportParam(c *gin.Context) string {
	return string(services.ParseViewport(c.DefaultQuery("viewport", config.DefaultViewport)))
}

// Preview handles GET /preview?viewport=desktop|mobile
func (h *PreviewHandlers) Preview(c *gin.Context) {
	out, err := h.preview.Render(viewportParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// Socket handles GET /ws, upgrading to the preview push channel
func (h *PreviewHandlers) Socket(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request, viewportParam(c)); err != nil {
		h.logger.Preview().Warn("Preview socket failed", "error", err)
	}
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

// ExportHandlers serves the export downloads
type ExportHandlers struct {
	docs    *services.DocumentService
	exports *services.ExportService
	logger  *logging.ChanneledLogger
}

// NewExportHandlers creates export handlers with injected dependencies
func NewExportHandlers(docs *services.DocumentService, exports *services.ExportService, logger *logging.ChanneledLogger) *ExportHandlers {
	return &ExportHandlers{docs: docs, exports: exports, logger: logger}
}

// ExportHTML handles GET /api/v1/export/html
func (h *ExportHandlers) ExportHTML(c *gin.Context) {
	doc, err := h.docs.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out, err := h.exports.HTML(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	attachment(c, services.HTMLFileName)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// ExportConfig handles GET /api/v1/export/config
func (h *ExportHandlers) ExportConfig(c *gin.Context) {
	doc, err := h.docs.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out, err := h.exports.Config(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	attachment(c, services.ConfigFileName)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(out))
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Cache-Control", "no-store")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
)

// RegistryHandlers exposes the type catalog to the editor and the generator
type RegistryHandlers struct {
	ingest *services.IngestService
}

// NewRegistryHandlers creates registry handlers
func NewRegistryHandlers(ingest *services.IngestService) *RegistryHandlers {
	return &RegistryHandlers{ingest: ingest}
}

// GetRegistry handles GET /api/v1/registry
func (h *RegistryHandlers) GetRegistry(c *gin.Context) {
	c.JSON(http.StatusOK, h.ingest.Contract())
}

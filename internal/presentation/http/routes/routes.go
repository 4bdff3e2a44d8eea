// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/application/container"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/http/middleware"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(config.AllowedOrigins))

	documentHandlers := handlers.NewDocumentHandlers(container.DocumentService, container.IngestService, container.Logger)
	exportHandlers := handlers.NewExportHandlers(container.DocumentService, container.ExportService, container.Logger)
	previewHandlers := handlers.NewPreviewHandlers(container.PreviewService, container.Hub, container.Logger)
	registryHandlers := handlers.NewRegistryHandlers(container.IngestService)
	logHandlers := handlers.NewLogHandlers(container.Logger, container.LogFeed)
	metricsHandlers := handlers.NewMetricsHandlers(container.Tracker)

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/preview") })
	r.GET("/preview", previewHandlers.Preview)
	r.GET("/ws", previewHandlers.Socket)

	api := r.Group("/api/v1")
	api.Use(middleware.BodyLimit(int64(config.MaxImportMB) << 20))
	{
		api.GET("/document", documentHandlers.GetDocument)
		api.PUT("/document", documentHandlers.PutDocument)
		api.POST("/document/import", documentHandlers.ImportDocument)
		api.POST("/document/candidate", documentHandlers.AcceptCandidate)

		api.POST("/sections", documentHandlers.AddSection)
		api.DELETE("/sections/:id", documentHandlers.RemoveSection)
		api.POST("/sections/:id/select", documentHandlers.SelectSection)
		api.PUT("/sections/:id/image", documentHandlers.SetSectionImage)
		api.POST("/sections/:id/move", documentHandlers.MoveSection)
		api.POST("/sections/:id/items", documentHandlers.AddItem)

		api.GET("/export/html", exportHandlers.ExportHTML)
		api.GET("/export/config", exportHandlers.ExportConfig)

		api.GET("/registry", registryHandlers.GetRegistry)

		api.GET("/logs/stream", logHandlers.StreamLogs)
		api.GET("/logs/levels", logHandlers.GetLogLevels)
		api.PUT("/logs/levels", logHandlers.SetLogLevel)

		api.GET("/metrics", metricsHandlers.GetMetrics)
	}

	return r
}

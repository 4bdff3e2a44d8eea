// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/persistence/draft"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/templates"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services
	DocumentService *services.DocumentService
	IngestService   *services.IngestService
	ExportService   *services.ExportService
	PreviewService  *services.PreviewService

	// Infrastructure Dependencies
	Hub       *messaging.Hub
	Logger    *logging.ChanneledLogger
	LogFeed   *logging.LogFeed
	Tracker   *performance.Tracker
	Drafts    *draft.Store
	Autosaver *draft.Autosaver
}

// Options selects optional pieces of the container.
type Options struct {
	// Autosave keeps a draft copy of every change on disk.
	Autosave bool
	DraftDir string
	Hub      messaging.HubOptions
}

// DefaultOptions reads the options from pkg/config.
func DefaultOptions() Options {
	return Options{Autosave: true, DraftDir: config.DraftDir, Hub: messaging.DefaultHubOptions()}
}

// NewContainer creates and wires all singleton services around doc
func NewContainer(doc *page.Document, logger *logging.ChanneledLogger, feed *logging.LogFeed, opts Options) *Container {
	hub := messaging.NewHub(opts.Hub, logger)
	tracker := performance.NewTracker(nil)
	docs := services.NewDocumentService(doc, logger)
	preview := services.NewPreviewService(docs, hub, tracker, logger)
	hub.SetHandler(preview)

	c := &Container{
		DocumentService: docs,
		IngestService:   services.NewIngestService(docs, logger),
		ExportService:   services.NewExportService(templates.NewExporter(), tracker, logger),
		PreviewService:  preview,
		Hub:             hub,
		Logger:          logger,
		LogFeed:         feed,
		Tracker:         tracker,
	}

	if opts.Autosave {
		c.Drafts = draft.NewStore(opts.DraftDir)
		c.Autosaver = draft.NewAutosaver(c.Drafts, config.DraftDebounce, logger)
		docs.Subscribe(func(d *page.Document, change services.Change) {
			if change.Kind != services.ChangeSelected {
				c.Autosaver.Schedule(d)
			}
		})
	}
	return c
}

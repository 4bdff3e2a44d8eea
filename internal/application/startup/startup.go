// Package startup prepares the preview server
package startup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/AtRiskMedia/tractpage-go/internal/application/container"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/persistence/draft"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/watch"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/http/server"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

// Options controls a serve run.
type Options struct {
	Port     string
	DocPath  string // optional document to start from
	Watch    bool   // reload DocPath when it changes
	Autosave bool
}

// LoadDocument reads a JSON or YAML document file through normalization.
func LoadDocument(path string) (*page.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return DecodeFile(path, data)
}

// DecodeFile picks the decoder by extension.
func DecodeFile(path string, data []byte) (*page.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return normalize.DecodeYAML(data)
	default:
		return normalize.Decode(data)
	}
}

// Initialize runs the preview server until SIGINT or SIGTERM
func Initialize(opts Options) error {
	setupLogging()
	start := time.Now().UTC()

	log.Println("\033[32m" + `
  ▀█▀ █▀█ ▄▀█ █▀▀ ▀█▀ █▀█ ▄▀█ █▀▀ █▀▀
   █  █▀▄ █▀█ █▄▄  █  █▀▀ █▀█ █▄█ ██▄
` + "\033[97m" + `
  made by At Risk Media
` + "\033[0m")

	feed := logging.NewLogFeed(200)
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.Feed = feed
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	// Step 1: Resolve the starting document
	phaseStart := time.Now()
	doc, source, err := initialDocument(opts)
	if err != nil {
		logger.LogStartupPhase("document", time.Since(phaseStart), false, map[string]any{"error": err.Error()})
		return err
	}
	logger.LogStartupPhase("document", time.Since(phaseStart), true, map[string]any{"source": source, "sections": len(doc.Sections)})

	// Step 2: Create dependency injection container
	phaseStart = time.Now()
	containerOpts := container.DefaultOptions()
	containerOpts.Autosave = opts.Autosave
	appContainer := container.NewContainer(doc, logger, feed, containerOpts)
	logger.LogStartupPhase("container", time.Since(phaseStart), true, nil)

	// Step 3: Start HTTP server
	port := opts.Port
	if port == "" {
		port = config.Port
	}
	httpServer := server.New(port, appContainer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		return httpServer.Start()
	})

	if appContainer.Autosaver != nil {
		g.Go(func() error { return appContainer.Autosaver.Run(gctx) })
	}

	if opts.Watch && opts.DocPath != "" {
		w, err := watch.NewFileWatcher(opts.DocPath, config.WatchDebounce, func(data []byte) error {
			next, err := DecodeFile(opts.DocPath, data)
			if err != nil {
				return err
			}
			return appContainer.DocumentService.ReplaceFrom(next, "watch")
		}, logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		appContainer.Hub.Close()
		if err := httpServer.Stop(shutdownCtx); err != nil {
			logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
			return err
		}
		logger.Shutdown().Info("HTTP server stopped successfully")
		return nil
	})

	logger.Startup().Info("Application startup complete", "totalDuration", time.Since(start), "port", port)

	err = g.Wait()
	logger.Shutdown().Info("Application shutdown complete", "totalUptime", time.Since(start))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// initialDocument prefers an explicit file, then the autosaved draft, then
// the default template.
func initialDocument(opts Options) (*page.Document, string, error) {
	if opts.DocPath != "" {
		doc, err := LoadDocument(opts.DocPath)
		if err != nil {
			return nil, "", err
		}
		return doc, opts.DocPath, nil
	}
	if opts.Autosave {
		doc, err := draft.NewStore(config.DraftDir).Load()
		switch {
		case err == nil:
			return doc, "draft", nil
		case !errors.Is(err, draft.ErrNoDraft):
			log.Printf("Ignoring unreadable draft: %v", err)
		}
	}
	return page.DefaultDocument(), "default", nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

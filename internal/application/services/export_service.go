package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/templates"
)

// Export file names.
const (
	HTMLFileName   = "index.html"
	ConfigFileName = "config.json"
)

// ExportService produces the standalone page and the re-importable config.
type ExportService struct {
	exporter *templates.Exporter
	tracker  *performance.Tracker
	logger   *logging.ChanneledLogger
}

// NewExportService creates an export service. tracker may be nil.
func NewExportService(exporter *templates.Exporter, tracker *performance.Tracker, logger *logging.ChanneledLogger) *ExportService {
	if exporter == nil {
		exporter = templates.NewExporter()
	}
	return &ExportService{exporter: exporter, tracker: tracker, logger: logger}
}

// HTML renders doc as a standalone page.
func (s *ExportService) HTML(doc *page.Document) (string, error) {
	marker := s.tracker.StartOperation(performance.OpExportHTML)
	defer s.tracker.CompleteOperation(marker)

	out, err := s.exporter.HTML(doc)
	if err != nil {
		marker.SetError(err)
		s.logger.LogError(logging.ChannelExport, "html", err, nil)
		return "", err
	}
	marker.AddMetadata("bytes", len(out))
	s.logger.Export().Info("Page exported",
		"sections", len(doc.Sections),
		"size", humanize.Bytes(uint64(len(out))),
		"duration", time.Since(marker.StartTime))
	return out, nil
}

// Config encodes doc as the re-importable JSON file.
func (s *ExportService) Config(doc *page.Document) (string, error) {
	marker := s.tracker.StartOperation(performance.OpExportConfig)
	defer s.tracker.CompleteOperation(marker)

	out, err := templates.ExportConfig(doc)
	if err != nil {
		marker.SetError(err)
		s.logger.LogError(logging.ChannelExport, "config", err, nil)
		return "", err
	}
	s.logger.Export().Info("Config exported", "size", humanize.Bytes(uint64(len(out))))
	return out, nil
}

// WrittenFile is one file produced by WriteFiles.
type WrittenFile struct {
	Path string
	Size int64
}

// WriteFiles writes index.html and config.json into dir.
func (s *ExportService) WriteFiles(doc *page.Document, dir string) (written []WrittenFile, err error) {
	marker := s.tracker.StartOperation(performance.OpExportWrite)
	defer func() {
		marker.SetError(err)
		s.tracker.CompleteOperation(marker)
	}()

	htmlOut, err := s.HTML(doc)
	if err != nil {
		return nil, err
	}
	configOut, err := s.Config(doc)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for name, body := range map[string]string{HTMLFileName: htmlOut, ConfigFileName: configOut} {
		path := filepath.Join(dir, name)
		if err := writeFileAtomic(path, []byte(body)); err != nil {
			return written, err
		}
		written = append(written, WrittenFile{Path: path, Size: int64(len(body))})
		s.logger.Export().Info("Wrote export file", "path", path, "size", humanize.Bytes(uint64(len(body))))
	}
	return written, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

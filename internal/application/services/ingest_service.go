package services

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

// IngestResult tells the generator what normalization changed.
type IngestResult struct {
	Report   normalize.Report `json:"report"`
	Sections int              `json:"sections"`
}

// Contract is what the core exports to the generation pipeline so it can
// correct its own type names.
type Contract struct {
	Types   []registry.TypeInfo `json:"types"`
	Aliases map[string]string   `json:"aliases"`
}

// IngestService accepts candidate documents from the generation pipeline.
type IngestService struct {
	docs   *DocumentService
	logger *logging.ChanneledLogger
}

// NewIngestService creates an ingest service writing into docs.
func NewIngestService(docs *DocumentService, logger *logging.ChanneledLogger) *IngestService {
	return &IngestService{docs: docs, logger: logger}
}

// Accept normalizes a candidate and makes it the working document. A
// candidate failing the structural check is rejected whole.
func (s *IngestService) Accept(data []byte) (*IngestResult, error) {
	raw, err := normalize.Parse(data)
	if err != nil {
		s.logger.Content().Warn("Candidate rejected", "error", err)
		return nil, err
	}
	report := normalize.Inspect(raw)

	doc, err := normalize.Typed(normalize.Document(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode candidate: %w", err)
	}
	if err := s.docs.ReplaceFrom(doc, "generator"); err != nil {
		return nil, err
	}

	s.logger.Content().Info("Candidate accepted",
		"sections", len(doc.Sections),
		"aliased", len(report.Aliased),
		"unknown", len(report.Unknown))
	return &IngestResult{Report: report, Sections: len(doc.Sections)}, nil
}

// Contract returns the registry catalog and alias table.
func (s *IngestService) Contract() Contract {
	return Contract{Types: registry.Types(), Aliases: registry.Aliases()}
}

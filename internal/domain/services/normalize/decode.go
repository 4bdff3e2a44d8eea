package normalize

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

// ErrMalformedDocument is returned when input fails the structural check: it
// must be an object carrying a sections array.
var ErrMalformedDocument = errors.New("malformed document")

// Check performs the structural check applied before a document replaces the
// working one.
func Check(raw map[string]any) error {
	if raw == nil {
		return fmt.Errorf("%w: not an object", ErrMalformedDocument)
	}
	if _, ok := raw["sections"].([]any); !ok {
		return fmt.Errorf("%w: sections array is missing", ErrMalformedDocument)
	}
	return nil
}

// Parse decodes JSON into the raw form normalization works on.
func Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := Check(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Decode is the single ingress for documents: parse, check, normalize and
// decode into the typed model.
func Decode(data []byte) (*page.Document, error) {
	raw, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Typed(Document(raw))
}

// DecodeYAML accepts the same document written as YAML.
func DecodeYAML(data []byte) (*page.Document, error) {
	raw, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return Typed(Document(raw))
}

// ParseYAML decodes YAML into the same raw form Parse produces.
func ParseYAML(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	// Round trip through JSON so numbers and nested maps take the JSON forms.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return Parse(data)
}

// Typed decodes an already normalized raw document.
func Typed(raw map[string]any) (*page.Document, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode normalized document: %w", err)
	}
	var doc page.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode normalized document: %w", err)
	}
	return &doc, nil
}

// Raw converts a typed document back into the raw form.
func Raw(doc *page.Document) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return raw, nil
}

// Package services provides application-level orchestration services
package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

var (
	// ErrSectionNotFound is returned when an operation names a missing section.
	ErrSectionNotFound = errors.New("section not found")
	// ErrBlankImageURL is returned when an image ingress carries no URL.
	ErrBlankImageURL = errors.New("image url is blank")
)

// Change kinds reported to subscribers.
const (
	ChangeReplaced = "replaced"
	ChangeImported = "imported"
	ChangeSection  = "section"
	ChangeAdded    = "added"
	ChangeRemoved  = "removed"
	ChangeMoved    = "moved"
	ChangeSelected = "selected"
)

// Change describes one mutation of the working document.
type Change struct {
	Kind      string
	SectionID int
	Source    string
}

// DocumentService owns the working document. Every mutation replaces the
// document wholesale under the write lock and then notifies subscribers.
type DocumentService struct {
	mu     sync.RWMutex
	doc    *page.Document
	subsMu sync.RWMutex
	subs   []func(*page.Document, Change)
	logger *logging.ChanneledLogger
}

// NewDocumentService starts from doc, or the default template when nil.
func NewDocumentService(doc *page.Document, logger *logging.ChanneledLogger) *DocumentService {
	if doc == nil {
		doc = page.DefaultDocument()
	}
	return &DocumentService{doc: doc, logger: logger}
}

// Subscribe registers fn to run after every change. fn receives a private
// copy and must not block for long.
func (s *DocumentService) Subscribe(fn func(*page.Document, Change)) {
	s.subsMu.Lock()
	s.subs = append(s.subs, fn)
	s.subsMu.Unlock()
}

func (s *DocumentService) notify(doc *page.Document, change Change) {
	s.subsMu.RLock()
	subs := slices.Clone(s.subs)
	s.subsMu.RUnlock()
	for _, fn := range subs {
		snapshot, err := doc.Clone()
		if err != nil {
			s.logger.Content().Error("Failed to copy document for subscriber", "error", err)
			return
		}
		fn(snapshot, change)
	}
}

// Current returns a copy of the working document.
func (s *DocumentService) Current() (*page.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Replace swaps in doc after passing it through normalization.
func (s *DocumentService) Replace(doc *page.Document) error {
	return s.ReplaceFrom(doc, "api")
}

// ReplaceFrom is Replace with the change source recorded.
func (s *DocumentService) ReplaceFrom(doc *page.Document, source string) error {
	if doc == nil {
		return fmt.Errorf("%w: no document", normalize.ErrMalformedDocument)
	}
	raw, err := normalize.Raw(doc)
	if err != nil {
		return err
	}
	clean, err := normalize.Typed(normalize.Document(raw))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = clean
	s.mu.Unlock()

	s.logger.Content().Info("Document replaced", "source", source, "sections", len(clean.Sections))
	s.notify(clean, Change{Kind: ChangeReplaced, Source: source})
	return nil
}

// Import parses a persisted config file. A malformed file leaves the working
// document untouched.
func (s *DocumentService) Import(data []byte) (*page.Document, error) {
	doc, err := normalize.Decode(data)
	if err != nil {
		s.logger.Content().Warn("Import rejected", "error", err)
		return nil, err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Content().Info("Document imported", "sections", len(doc.Sections))
	s.notify(doc, Change{Kind: ChangeImported, Source: "import"})
	return doc.Clone()
}

// update runs fn on a working copy and commits it when fn succeeds.
func (s *DocumentService) update(change Change, fn func(doc *page.Document) error) error {
	s.mu.Lock()
	work, err := s.doc.Clone()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := fn(work); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = work
	s.mu.Unlock()

	s.logger.Content().Debug("Document updated", "change", change.Kind, "sectionId", change.SectionID)
	s.notify(work, change)
	return nil
}

// SetSectionImage stores url in a section's image field. field is "image"
// or, for speech bubbles, "avatar". An existing alt text is kept.
func (s *DocumentService) SetSectionImage(sectionID int, field, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrBlankImageURL
	}
	return s.update(Change{Kind: ChangeSection, SectionID: sectionID, Source: "image"}, func(doc *page.Document) error {
		sec := doc.FindSection(sectionID)
		if sec == nil {
			return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
		}
		target := imageField(sec, field)
		if target == nil {
			return fmt.Errorf("section %d (%s) has no %q image field", sectionID, sec.CanonicalType(), field)
		}
		img := &page.Image{URL: url}
		if *target != nil {
			img.Alt = (*target).Alt
		}
		*target = img
		return renormalize(sec)
	})
}

func imageField(sec *page.Section, field string) **page.Image {
	if sec.Content == nil {
		sec.Content = sec.ContentOrZero()
	}
	switch c := sec.Content.(type) {
	case *page.ImageContent:
		if field == "image" {
			return &c.Image
		}
	case *page.ImageTextContent:
		if field == "image" {
			return &c.Image
		}
	case *page.ConversionPanelContent:
		if field == "image" {
			return &c.Image
		}
	case *page.SpeechBubbleContent:
		if field == "avatar" || field == "image" {
			return &c.Avatar
		}
	}
	return nil
}

// SetSectionBackground turns a section's background into an image.
func (s *DocumentService) SetSectionBackground(sectionID int, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrBlankImageURL
	}
	return s.update(Change{Kind: ChangeSection, SectionID: sectionID, Source: "background"}, func(doc *page.Document) error {
		sec := doc.FindSection(sectionID)
		if sec == nil {
			return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
		}
		sec.BgType = page.BgImage
		sec.BgValue = url
		return renormalize(sec)
	})
}

// AddSection appends a new section of type tag after afterID, or at the end
// when afterID is zero. The new section's id is returned.
func (s *DocumentService) AddSection(tag string, afterID int) (int, error) {
	tag = registry.ResolveAlias(tag)
	if !registry.IsValidType(tag) {
		return 0, fmt.Errorf("unknown section type %q", tag)
	}
	var id int
	err := s.update(Change{Kind: ChangeAdded}, func(doc *page.Document) error {
		id = doc.NextSectionID()
		raw := normalize.Section(map[string]any{"id": float64(id), "type": tag})
		sec, err := typedSection(raw)
		if err != nil {
			return err
		}
		pos := len(doc.Sections)
		if afterID != 0 {
			i := slices.IndexFunc(doc.Sections, func(x page.Section) bool { return x.ID == afterID })
			if i < 0 {
				return fmt.Errorf("%w: %d", ErrSectionNotFound, afterID)
			}
			pos = i + 1
		}
		doc.Sections = slices.Insert(doc.Sections, pos, sec)
		return nil
	})
	return id, err
}

// RemoveSection deletes a section wherever it sits in the tree.
func (s *DocumentService) RemoveSection(sectionID int) error {
	return s.update(Change{Kind: ChangeRemoved, SectionID: sectionID}, func(doc *page.Document) error {
		var ok bool
		doc.Sections, ok = removeSection(doc.Sections, sectionID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
		}
		return nil
	})
}

func removeSection(list []page.Section, id int) ([]page.Section, bool) {
	for i := range list {
		if list[i].ID == id {
			return slices.Delete(list, i, i+1), true
		}
		if children, ok := removeSection(list[i].Children, id); ok {
			list[i].Children = children
			return list, true
		}
	}
	return list, false
}

// MoveSection shifts a top-level section by delta places, clamped to the list.
func (s *DocumentService) MoveSection(sectionID, delta int) error {
	return s.update(Change{Kind: ChangeMoved, SectionID: sectionID}, func(doc *page.Document) error {
		i := slices.IndexFunc(doc.Sections, func(x page.Section) bool { return x.ID == sectionID })
		if i < 0 {
			return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
		}
		j := min(max(i+delta, 0), len(doc.Sections)-1)
		sec := doc.Sections[i]
		doc.Sections = slices.Delete(doc.Sections, i, i+1)
		doc.Sections = slices.Insert(doc.Sections, j, sec)
		return nil
	})
}

// AddItem appends an empty item with a fresh ULID to the section's item
// list and returns the id.
func (s *DocumentService) AddItem(sectionID int) (page.ItemID, error) {
	id := page.NewItemID()
	err := s.update(Change{Kind: ChangeSection, SectionID: sectionID, Source: "item"}, func(doc *page.Document) error {
		sec := doc.FindSection(sectionID)
		if sec == nil {
			return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
		}
		info, ok := registry.Lookup(sec.CanonicalType())
		if !ok || info.ItemsField == "" || info.ItemsField == "buttons" {
			return fmt.Errorf("section %d (%s) has no item list", sectionID, sec.CanonicalType())
		}
		raw, err := sectionRaw(sec)
		if err != nil {
			return err
		}
		items, _ := raw[info.ItemsField].([]any)
		raw[info.ItemsField] = append(items, map[string]any{"id": string(id)})
		updated, err := typedSection(normalize.Section(raw))
		if err != nil {
			return err
		}
		updated.Children = sec.Children
		*sec = updated
		return nil
	})
	return id, err
}

// SelectSection reports that the editor focused a section.
func (s *DocumentService) SelectSection(sectionID int) error {
	s.mu.RLock()
	found := s.doc.FindSection(sectionID) != nil
	doc := s.doc
	s.mu.RUnlock()
	if !found {
		return fmt.Errorf("%w: %d", ErrSectionNotFound, sectionID)
	}
	s.notify(doc, Change{Kind: ChangeSelected, SectionID: sectionID})
	return nil
}

// renormalize runs a mutated section back through normalization so editor
// ingress stores what an import of the same data would.
func renormalize(sec *page.Section) error {
	raw, err := sectionRaw(sec)
	if err != nil {
		return err
	}
	updated, err := typedSection(normalize.Section(raw))
	if err != nil {
		return err
	}
	updated.Children = sec.Children
	*sec = updated
	return nil
}

func sectionRaw(sec *page.Section) (map[string]any, error) {
	raw, err := normalize.Raw(&page.Document{Sections: []page.Section{*sec}})
	if err != nil {
		return nil, err
	}
	list, _ := raw["sections"].([]any)
	if len(list) != 1 {
		return nil, fmt.Errorf("failed to encode section %d", sec.ID)
	}
	m, _ := list[0].(map[string]any)
	return m, nil
}

func typedSection(raw map[string]any) (page.Section, error) {
	doc, err := normalize.Typed(map[string]any{"sections": []any{raw}})
	if err != nil {
		return page.Section{}, err
	}
	if len(doc.Sections) != 1 {
		return page.Section{}, fmt.Errorf("failed to decode section")
	}
	return doc.Sections[0], nil
}

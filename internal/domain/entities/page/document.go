// Package page holds the landing-page document model: global settings, header,
// hero, the ordered section list and the floating call-to-action.
package page

import (
	"encoding/json"
	"fmt"
)

// Font families.
const (
	FontSerif = "serif"
	FontSans  = "sans"
)

// Background is the page-level background.
type Background struct {
	Type  string `json:"type"` // color|image
	Value string `json:"value"`
}

// FontSizes are multipliers applied to the base sizes of each text role.
type FontSizes struct {
	HeroTitle    float64 `json:"heroTitle"`
	HeroSubtitle float64 `json:"heroSubtitle"`
	SectionTitle float64 `json:"sectionTitle"`
	Body         float64 `json:"body"`
}

// Header configures the top bar.
type Header struct {
	Style      string `json:"style,omitempty"`  // overlay|solid
	Layout     string `json:"layout,omitempty"` // left|center
	LogoURL    string `json:"logoUrl,omitempty"`
	LogoHeight int    `json:"logoHeight,omitempty"`
	BgColor    string `json:"bgColor,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
}

// MenuItem is one navigation entry.
type MenuItem struct {
	ID    ItemID `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Hero is the full-bleed media block under the header.
type Hero struct {
	MediaType      string   `json:"mediaType,omitempty"` // image|video
	URL            string   `json:"url,omitempty"`
	GeneratedURL   string   `json:"generatedUrl,omitempty"`
	FallbackURL    string   `json:"fallbackUrl,omitempty"`
	Height         int      `json:"height,omitempty"` // vh
	OverlayOpacity float64  `json:"overlayOpacity,omitempty"`
	Blur           int      `json:"blur,omitempty"`
	FocalX         int      `json:"focalX,omitempty"`
	FocalY         int      `json:"focalY,omitempty"`
	Title          string   `json:"title,omitempty"`
	Subtitle       string   `json:"subtitle,omitempty"`
	TitleColor     string   `json:"titleColor,omitempty"`
	Buttons        []Button `json:"buttons"`
}

// FloatingCTA is the bar docked to the viewport edge.
type FloatingCTA struct {
	Enabled   bool   `json:"enabled"`
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
	BgColor   string `json:"bgColor,omitempty"`
	TextColor string `json:"textColor,omitempty"`
}

// Document is the root of a landing page.
type Document struct {
	SiteTitle     string      `json:"siteTitle"`
	Background    Background  `json:"background"`
	TextColor     string      `json:"textColor,omitempty"`
	AccentColor   string      `json:"accentColor,omitempty"`
	FontFamily    string      `json:"fontFamily,omitempty"`
	FontSizes     FontSizes   `json:"fontSizes"`
	GlobalPadding int         `json:"globalPadding,omitempty"`
	Header        Header      `json:"header"`
	MenuItems     []MenuItem  `json:"menuItems"`
	Hero          Hero        `json:"hero"`
	Sections      []Section   `json:"sections"`
	FloatingCTA   FloatingCTA `json:"floatingCta"`

	// Extra keeps top-level keys this version does not model.
	Extra map[string]any `json:"-"`
}

type plainDocument Document

// MarshalJSON writes the modelled fields merged over Extra.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extra)+12)
	for k, v := range d.Extra {
		out[k] = v
	}
	p := plainDocument(d)
	if p.Sections == nil {
		p.Sections = []Section{}
	}
	if err := mergeJSON(out, p, true); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a document, tolerating type mismatches on known fields.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var p plainDocument
	if err := json.Unmarshal(data, &p); err != nil && !isTypeError(err) {
		return err
	}
	if len(p.Sections) == 0 {
		p.Sections = nil
	}
	*d = Document(p)
	d.Extra = extraKeys(raw, knownKeys(plainDocument{}))
	return nil
}

// Clone returns a deep copy made through the JSON encoding.
func (d *Document) Clone() (*Document, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to clone document: %w", err)
	}
	return &out, nil
}

// FindSection returns the section with id, searching children depth-first.
func (d *Document) FindSection(id int) *Section {
	return findSection(d.Sections, id)
}

func findSection(sections []Section, id int) *Section {
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
		if found := findSection(sections[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// NextSectionID returns one more than the largest section id in the document.
func (d *Document) NextSectionID() int {
	return maxSectionID(d.Sections) + 1
}

func maxSectionID(sections []Section) int {
	maxID := 0
	for _, s := range sections {
		maxID = max(maxID, s.ID, maxSectionID(s.Children))
	}
	return maxID
}

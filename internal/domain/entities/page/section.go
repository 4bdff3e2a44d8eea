package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

// Padding tokens.
const (
	PaddingNone = "none"
	PaddingXS   = "xs"
	PaddingSM   = "sm"
	PaddingMD   = "md"
	PaddingLG   = "lg"
	PaddingXL   = "xl"
)

// Background kinds.
const (
	BgColor = "color"
	BgImage = "image"
)

// Divider shapes.
const (
	DividerNone      = "none"
	DividerWave      = "wave"
	DividerTiltRight = "tilt-right"
	DividerTiltLeft  = "tilt-left"
	DividerTriangle  = "triangle"
	DividerCurve     = "curve"
)

// Box styles.
const (
	BoxNone   = "none"
	BoxShadow = "shadow"
	BoxBorder = "border"
	BoxFill   = "fill"
	BoxStitch = "stitch"
	BoxDouble = "double"
	BoxComic  = "comic"
	BoxNeon   = "neon"
	BoxGlass  = "glass"
)

// DividerShapes lists every divider value, none included.
var DividerShapes = []string{DividerNone, DividerWave, DividerTiltRight, DividerTiltLeft, DividerTriangle, DividerCurve}

// BoxStyles lists every box value, none included.
var BoxStyles = []string{BoxNone, BoxShadow, BoxBorder, BoxFill, BoxStitch, BoxDouble, BoxComic, BoxNeon, BoxGlass}

// Section is one block of the page. Fields shared by every type are held
// directly; type-specific fields live in Content.
type Section struct {
	ID                 int       `json:"id"`
	Type               string    `json:"type"`
	PaddingTop         string    `json:"paddingTop,omitempty"`
	PaddingBottom      string    `json:"paddingBottom,omitempty"`
	BgType             string    `json:"bgType,omitempty"`
	BgValue            string    `json:"bgValue,omitempty"`
	BgOverlay          float64   `json:"bgOverlay,omitempty"`
	DividerTop         string    `json:"dividerTop,omitempty"`
	DividerTopColor    string    `json:"dividerTopColor,omitempty"`
	DividerBottom      string    `json:"dividerBottom,omitempty"`
	DividerBottomColor string    `json:"dividerBottomColor,omitempty"`
	BoxStyle           string    `json:"boxStyle,omitempty"`
	BoxColor           string    `json:"boxColor,omitempty"`
	Children           []Section `json:"children"`

	Content Content `json:"-"`

	// Extra keeps fields neither the common block nor the content type knows.
	Extra map[string]any `json:"-"`
}

type plainSection Section

// CanonicalType returns the alias-resolved type tag.
func (s *Section) CanonicalType() string {
	return registry.ResolveAlias(s.Type)
}

// MarshalJSON flattens common fields, content fields and Extra into one object.
func (s Section) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+24)
	for k, v := range s.Extra {
		out[k] = v
	}
	if s.Content != nil {
		if err := mergeJSON(out, s.Content, true); err != nil {
			return nil, fmt.Errorf("failed to encode section %d content: %w", s.ID, err)
		}
	}
	if err := mergeJSON(out, plainSection(s), true); err != nil {
		return nil, fmt.Errorf("failed to encode section %d: %w", s.ID, err)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the common block, then the content struct selected by
// the alias-resolved type. Unknown keys land in Extra.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var p plainSection
	if err := json.Unmarshal(data, &p); err != nil && !isTypeError(err) {
		return err
	}
	*s = Section(p)

	content := NewContent(s.Type)
	if err := json.Unmarshal(data, content); err != nil && !isTypeError(err) {
		return fmt.Errorf("failed to decode %s section %d: %w", s.Type, s.ID, err)
	}
	s.Content = content

	known := knownKeys(plainSection{})
	for k := range knownKeys(content) {
		known[k] = struct{}{}
	}
	s.Extra = extraKeys(raw, known)
	return nil
}

// ContentOrZero returns Content, or a zero value of the type's content struct
// when the section was built without one.
func (s *Section) ContentOrZero() Content {
	if s.Content != nil {
		return s.Content
	}
	return NewContent(s.Type)
}

func mergeJSON(dst map[string]any, v any, dropNull bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, val := range m {
		if dropNull && val == nil {
			continue
		}
		dst[k] = val
	}
	return nil
}

func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

var keyCache sync.Map // reflect.Type -> map[string]struct{}

// knownKeys lists the JSON names of v's struct fields.
func knownKeys(v any) map[string]struct{} {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := keyCache.Load(t); ok {
		return cloneKeys(cached.(map[string]struct{}))
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys[name] = struct{}{}
	}
	keyCache.Store(t, keys)
	return cloneKeys(keys)
}

func cloneKeys(src map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(src))
	for k := range src {
		out[k] = struct{}{}
	}
	return out
}

func extraKeys(raw map[string]any, known map[string]struct{}) map[string]any {
	var extra map[string]any
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

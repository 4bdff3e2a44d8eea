package normalize

import (
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

// TypeChange records a section whose type was rewritten through the alias
// table.
type TypeChange struct {
	SectionID any    `json:"sectionId"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// Report describes what normalization will do to a candidate's section types.
// The generation pipeline uses it to correct its own output.
type Report struct {
	Aliased []TypeChange `json:"aliased,omitempty"`
	Unknown []TypeChange `json:"unknown,omitempty"`
}

// Clean reports whether every section already used a canonical type.
func (r Report) Clean() bool {
	return len(r.Aliased) == 0 && len(r.Unknown) == 0
}

// Inspect walks the raw sections, children included.
func Inspect(raw map[string]any) Report {
	var r Report
	if sections, ok := raw["sections"].([]any); ok {
		inspectSections(sections, &r)
	}
	return r
}

func inspectSections(list []any, r *Report) {
	for _, v := range list {
		s, ok := v.(map[string]any)
		if !ok {
			continue
		}
		tag, _ := s["type"].(string)
		tag = strings.TrimSpace(tag)
		canonical := registry.ResolveAlias(tag)
		switch {
		case !registry.IsValidType(canonical):
			r.Unknown = append(r.Unknown, TypeChange{SectionID: s["id"], From: tag, To: tag})
		case canonical != tag:
			r.Aliased = append(r.Aliased, TypeChange{SectionID: s["id"], From: tag, To: canonical})
		}
		if children, ok := s["children"].([]any); ok {
			inspectSections(children, r)
		}
	}
}

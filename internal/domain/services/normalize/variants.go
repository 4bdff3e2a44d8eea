package normalize

import (
	"slices"
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

type keyword struct {
	match string
	value string
}

type variantRule struct {
	field    string
	allowed  []string
	keywords []keyword
	fallback string
}

// variantRules infer a type's layout sub-type from its free-text design when
// the sub-type itself is missing or unrecognised.
var variantRules = map[string]variantRule{
	registry.TypeColumns: {
		field:   "colType",
		allowed: []string{"card", "text", "image", "video", "social"},
		keywords: []keyword{
			{"video", "video"}, {"youtube", "video"}, {"movie", "video"},
			{"social", "social"}, {"sns", "social"}, {"embed", "social"},
			{"image", "image"}, {"gallery", "image"}, {"photo", "image"},
			{"text", "text"}, {"card", "card"},
		},
		fallback: "card",
	},
	registry.TypeProcess: {
		field:   "stepType",
		allowed: []string{"timeline", "cards", "arrow", "numbered"},
		keywords: []keyword{
			{"timeline", "timeline"}, {"arrow", "arrow"}, {"flow", "arrow"},
			{"card", "cards"}, {"number", "numbered"}, {"step", "numbered"},
		},
		fallback: "numbered",
	},
	registry.TypeReview: {
		field:   "layoutType",
		allowed: []string{"card", "bubble", "list"},
		keywords: []keyword{
			{"bubble", "bubble"}, {"speech", "bubble"}, {"chat", "bubble"},
			{"list", "list"}, {"card", "card"},
		},
		fallback: "card",
	},
	registry.TypeStaff: {
		field:   "layoutType",
		allowed: []string{"grid", "list", "circle"},
		keywords: []keyword{
			{"circle", "circle"}, {"round", "circle"},
			{"list", "list"}, {"grid", "grid"}, {"card", "grid"},
		},
		fallback: "grid",
	},
}

// inferVariant fills the type's sub-type field. It reads the design before
// canonicalizeDesign replaces it.
func inferVariant(s map[string]any, tag string) {
	rule, ok := variantRules[tag]
	if !ok {
		return
	}
	current, _ := s[rule.field].(string)
	current = strings.ToLower(strings.TrimSpace(current))
	if slices.Contains(rule.allowed, current) {
		s[rule.field] = current
		return
	}
	design, _ := s["design"].(string)
	hint := current + " " + strings.ToLower(design)
	for _, kw := range rule.keywords {
		if strings.Contains(hint, kw.match) {
			s[rule.field] = kw.value
			return
		}
	}
	s[rule.field] = rule.fallback
}

// designSynonyms migrate legacy free-text designs. A synonym only applies when
// its target is one of the type's designs.
var designSynonyms = []keyword{
	{"soft", registry.DesignGentle}, {"pastel", registry.DesignGentle}, {"cute", registry.DesignGentle},
	{"pop", registry.DesignStylish}, {"modern", registry.DesignStylish}, {"trend", registry.DesignStylish}, {"vivid", registry.DesignStylish},
	{"corporate", registry.DesignMasculine}, {"business", registry.DesignMasculine}, {"bold", registry.DesignMasculine}, {"crisp", registry.DesignMasculine},
	{"premium", registry.DesignLuxury}, {"elegant", registry.DesignLuxury}, {"gold", registry.DesignLuxury}, {"serif", registry.DesignLuxury},
	{"organic", registry.DesignEarth}, {"natural", registry.DesignEarth}, {"nature", registry.DesignEarth}, {"warm", registry.DesignEarth},
	{"neon", registry.DesignCyber}, {"tech", registry.DesignCyber}, {"futur", registry.DesignCyber}, {"dark", registry.DesignCyber},
	{"round", "rounded"}, {"frame", "polaroid"}, {"photo", "polaroid"}, {"drop", "shadow"},
	{"line", "underline"}, {"label", "ribbon"}, {"band", "ribbon"}, {"balloon", "bubble"},
	{"classic", registry.DesignStandard}, {"default", registry.DesignStandard}, {"basic", registry.DesignStandard},
	{"plain", "simple"},
}

// canonicalizeDesign validates design against the type's closed design set.
// Unknown values are migrated by substring match, then by synonym, and fall
// back to the type's default design.
func canonicalizeDesign(s map[string]any, info registry.TypeInfo) {
	if len(info.Designs) == 0 {
		return
	}
	raw, _ := s["design"].(string)
	design := strings.ToLower(strings.TrimSpace(raw))
	s["design"] = canonicalDesign(design, info)
}

func canonicalDesign(design string, info registry.TypeInfo) string {
	if design == "" {
		return info.DefaultDesign
	}
	if slices.Contains(info.Designs, design) {
		return design
	}
	for _, d := range info.Designs {
		if strings.Contains(design, d) {
			return d
		}
	}
	for _, syn := range designSynonyms {
		if strings.Contains(design, syn.match) && slices.Contains(info.Designs, syn.value) {
			return syn.value
		}
	}
	return info.DefaultDesign
}

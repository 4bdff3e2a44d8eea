// Package normalize reconciles loosely shaped documents, whether hand edited or
// produced by the generation pipeline, into the shape the renderers expect.
//
// Every function here works on decoded JSON (map[string]any), never mutates its
// input and never fails: fields that cannot be repaired are dropped or left for
// the renderers' own "draw nothing" policies. Running a function twice gives
// the same result as running it once.
package normalize

import (
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

// Document normalizes a whole document: every section and child section, the
// hero media, menu items and the font-size map.
func Document(raw map[string]any) map[string]any {
	doc := cloneMap(raw)
	if doc == nil {
		doc = map[string]any{}
	}

	if sections, ok := doc["sections"].([]any); ok {
		ids := newIDAllocator()
		ids.collect(sections)
		doc["sections"] = normalizeSections(sections, ids)
	}

	normalizePageBackground(doc)
	normalizeFontSizes(doc)
	normalizeMenu(doc)
	if header, ok := doc["header"].(map[string]any); ok {
		coerceInts(header, "logoHeight")
		guardImageToURL(header, "logo", "logoUrl")
	}
	if hero, ok := doc["hero"].(map[string]any); ok {
		normalizeHero(hero)
	}
	coerceInts(doc, "globalPadding")
	return doc
}

// Section normalizes one section and, recursively, its children. A section
// without an id keeps none; ids are assigned when a whole list is normalized.
func Section(raw map[string]any) map[string]any {
	s := cloneMap(raw)
	if s == nil {
		return map[string]any{}
	}
	ids := newIDAllocator()
	ids.collect([]any{s})
	if _, ok := s["id"]; ok {
		ids.assign(s)
	}
	normalizeSection(s, ids)
	return s
}

func normalizeSections(list []any, ids *idAllocator) []any {
	out := make([]any, 0, len(list))
	for _, v := range list {
		s, ok := v.(map[string]any)
		if !ok {
			// Not a section record; nothing can render it.
			continue
		}
		ids.assign(s)
		normalizeSection(s, ids)
		out = append(out, s)
	}
	return out
}

func normalizeSection(s map[string]any, ids *idAllocator) {
	if tag, ok := s["type"].(string); ok {
		s["type"] = registry.ResolveAlias(strings.TrimSpace(tag))
	}
	tag, _ := s["type"].(string)

	normalizeBackground(s)
	aliasText(s, "heading", "title")
	aliasText(s, "text", "content")
	for _, key := range imageKeys {
		guardImage(s, key)
	}
	coerceInts(s, intKeys...)
	clampUnit(s, "bgOverlay")
	coerceFloats(s, floatKeys...)

	if info, ok := registry.Lookup(tag); ok {
		inferVariant(s, info.Tag)
		canonicalizeDesign(s, info)
		moveListAlias(s, info)
	}
	normalizeLists(s, sectionKey(s))

	if children, ok := s["children"].([]any); ok {
		s["children"] = normalizeSections(children, ids)
	}
}

var (
	imageKeys = []string{"image", "avatar", "logo"}
	intKeys   = []string{"width", "columnCount", "rating", "height", "minHeight", "level", "highlightColumn", "logoHeight", "blur"}
	floatKeys = []string{"bgOverlay", "overlayOpacity"}
)

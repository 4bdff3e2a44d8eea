package normalize

import (
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

var fontSizeKeys = []string{"heroTitle", "heroSubtitle", "sectionTitle", "body"}

// normalizeFontSizes guarantees all four multipliers, defaulting missing or
// non-positive ones.
func normalizeFontSizes(doc map[string]any) {
	sizes, ok := doc["fontSizes"].(map[string]any)
	if !ok {
		sizes = make(map[string]any, len(fontSizeKeys))
		doc["fontSizes"] = sizes
	}
	for _, key := range fontSizeKeys {
		f, ok := toFloat(sizes[key])
		if !ok || f <= 0 {
			f = page.DefaultFontScale
		}
		sizes[key] = f
	}
}

func normalizeMenu(doc map[string]any) {
	list, ok := doc["menuItems"].([]any)
	if !ok {
		return
	}
	out := make([]any, 0, len(list))
	seen := make(map[string]bool, len(list))
	for i, v := range list {
		item, ok := v.(map[string]any)
		if !ok {
			continue
		}
		aliasText(item, "label", "text", "title", "name")
		aliasText(item, "url", "href", "link")
		id := itemKey(item["id"])
		if id == "" || seen[id] {
			id = itemID("menu", "items", i)
			item["id"] = id
		}
		seen[id] = true
		out = append(out, item)
	}
	doc["menuItems"] = out
}

// normalizeHero resolves the hero media url: a generated background beats
// the user's own url, which beats the static fallback.
func normalizeHero(hero map[string]any) {
	for _, key := range []string{"generatedUrl", "url", "fallbackUrl"} {
		v, ok := hero[key]
		if !ok {
			continue
		}
		if img, ok := resolveImage(v); ok {
			hero[key] = img["url"]
		} else {
			delete(hero, key)
		}
	}
	for _, key := range []string{"generatedUrl", "url", "fallbackUrl"} {
		if u, ok := hero[key].(string); ok {
			hero["url"] = u
			break
		}
	}

	if mt, _ := hero["mediaType"].(string); mt != "image" && mt != "video" {
		hero["mediaType"] = "image"
		if u, _ := hero["url"].(string); isVideoURL(u) {
			hero["mediaType"] = "video"
		}
	}

	aliasText(hero, "title", "heading")
	aliasText(hero, "subtitle", "text", "content")
	coerceInts(hero, "height", "blur", "focalX", "focalY")
	clampUnit(hero, "overlayOpacity")

	if buttons, ok := hero["buttons"].([]any); ok {
		hero["buttons"] = normalizeItems(buttons, "hero", "buttons")
	}
}

func isVideoURL(u string) bool {
	u = strings.ToLower(u)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	for _, suffix := range []string{".mp4", ".webm", ".mov", ".m3u8"} {
		if strings.HasSuffix(u, suffix) {
			return true
		}
	}
	return strings.Contains(u, "youtube.com/") || strings.Contains(u, "youtu.be/") || strings.Contains(u, "vimeo.com/")
}

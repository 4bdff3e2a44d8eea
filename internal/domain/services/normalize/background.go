package normalize

import "strings"

const (
	bgImage = "image"
	bgColor = "color"
)

// normalizeBackground folds the legacy background fields into bgType/bgValue.
// An image source beats a colour source. Legacy keys are removed once folded.
func normalizeBackground(s map[string]any) {
	kind, _ := s["bgType"].(string)
	value, _ := s["bgValue"].(string)
	style, _ := s["style"].(map[string]any)

	if kind == "" && strings.TrimSpace(value) != "" {
		kind = bgColor
		if looksLikeImage(value) {
			kind = bgImage
		}
	}

	var image, color string
	if kind == bgImage {
		image = stripURL(value)
	}
	for _, v := range []any{s["bgImage"], style["bgImage"], style["backgroundImage"]} {
		if image != "" {
			break
		}
		if img, ok := resolveImage(v); ok {
			image = img["url"].(string)
		}
	}
	if kind == bgColor {
		color = strings.TrimSpace(value)
	}
	for _, v := range []any{s["backgroundColor"], style["backgroundColor"]} {
		if color != "" {
			break
		}
		if c, ok := text(v); ok {
			color = strings.TrimSpace(c)
		}
	}

	delete(s, "bgImage")
	delete(s, "backgroundColor")
	if style != nil {
		delete(style, "bgImage")
		delete(style, "backgroundImage")
		delete(style, "backgroundColor")
		if len(style) == 0 {
			delete(s, "style")
		}
	}

	switch {
	case image != "":
		s["bgType"], s["bgValue"] = bgImage, image
	case color != "":
		s["bgType"], s["bgValue"] = bgColor, color
	case kind == bgImage || kind == bgColor || kind == "":
		delete(s, "bgType")
		delete(s, "bgValue")
	}
}

// normalizePageBackground applies the same rules to the document background,
// which uses {type, value}.
func normalizePageBackground(doc map[string]any) {
	switch bg := doc["background"].(type) {
	case string:
		section := map[string]any{"bgValue": bg}
		normalizeBackground(section)
		if kind, ok := section["bgType"].(string); ok {
			doc["background"] = map[string]any{"type": kind, "value": section["bgValue"]}
		} else {
			delete(doc, "background")
		}
	case map[string]any:
		if bg["type"] == bgImage {
			if v, ok := bg["value"].(string); ok {
				bg["value"] = stripURL(v)
			}
		}
	}
}

func looksLikeImage(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, prefix := range []string{"url(", "http://", "https://", "data:image/", "/"} {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

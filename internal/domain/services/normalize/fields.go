package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// text returns v as a trimmed-nonblank string.
func text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// aliasText copies the first non-blank source into dst when dst is blank.
// Sources are left in place.
func aliasText(m map[string]any, dst string, sources ...string) {
	if _, ok := text(m[dst]); ok {
		return
	}
	for _, src := range sources {
		if s, ok := text(m[src]); ok {
			m[dst] = s
			return
		}
	}
}

// guardImage resolves m[key] to {url, alt}, or removes it when no usable url
// can be found.
func guardImage(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	img, ok := resolveImage(v)
	if !ok {
		delete(m, key)
		return
	}
	m[key] = img
}

// guardImageToURL folds an image object at key into the plain url field dst.
func guardImageToURL(m map[string]any, key, dst string) {
	v, ok := m[key]
	if !ok {
		return
	}
	delete(m, key)
	img, ok := resolveImage(v)
	if !ok {
		return
	}
	if _, has := text(m[dst]); !has {
		m[dst] = img["url"]
	}
}

func resolveImage(v any) (map[string]any, bool) {
	var url, alt string
	switch t := v.(type) {
	case string:
		url = t
	case map[string]any:
		for _, k := range []string{"url", "src", "href"} {
			if s, ok := text(t[k]); ok {
				url = s
				break
			}
		}
		alt, _ = t["alt"].(string)
	}
	url = stripURL(url)
	if url == "" {
		return nil, false
	}
	img := map[string]any{"url": url}
	if strings.TrimSpace(alt) != "" {
		img["alt"] = alt
	}
	return img, true
}

// stripURL removes CSS url(...) wrapping and quotes from an image reference.
func stripURL(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 && strings.EqualFold(s[:4], "url(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[4 : len(s)-1])
	}
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		t = strings.TrimSpace(t)
		t = strings.TrimSuffix(strings.TrimSuffix(t, "%"), "px")
		f, err := strconv.ParseFloat(t, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceInts turns numeric strings and fractional numbers at keys into whole
// float64 values, the form encoding/json decodes integers to.
func coerceInts(m map[string]any, keys ...string) {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			m[key] = math.Round(f)
		}
	}
}

func coerceFloats(m map[string]any, keys ...string) {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			m[key] = f
		}
	}
}

// clampUnit bounds a numeric field to 0..1. Strings ending in "%" and values
// of 2 or more are read as percentages first.
func clampUnit(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	f, ok := toFloat(v)
	if !ok {
		return
	}
	if s, isStr := v.(string); (isStr && strings.HasSuffix(strings.TrimSpace(s), "%")) || f >= 2 {
		f /= 100
	}
	m[key] = min(max(f, 0), 1)
}

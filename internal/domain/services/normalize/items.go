package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

// listFields are the item-bearing fields, in the order ids are assigned.
var listFields = []string{"items", "plans", "members", "faqs", "features", "steps", "links", "rows", "buttons"}

type fieldAlias struct {
	dst     string
	sources []string
}

var genericItemAliases = []fieldAlias{
	{"title", []string{"heading"}},
	{"text", []string{"content", "description"}},
}

// listItemAliases replace genericItemAliases for lists whose items use other
// field names.
var listItemAliases = map[string][]fieldAlias{
	"faqs":    {{"question", []string{"q", "title"}}, {"answer", []string{"a", "text", "content"}}},
	"links":   {{"label", []string{"title", "text"}}, {"url", []string{"href", "link"}}},
	"buttons": {{"text", []string{"label", "title"}}, {"url", []string{"href", "link"}}},
	"plans":   {{"name", []string{"title"}}, {"buttonUrl", []string{"url"}}},
	"members": {{"name", []string{"title"}}, {"role", []string{"position"}}, {"text", []string{"content", "description"}}},
}

// listSources are the names a type's list may arrive under.
var listSources = []string{"items", "features", "points", "list", "entries", "cards"}

// moveListAlias moves a list found under another name to the type's items
// field when that field is missing.
func moveListAlias(s map[string]any, info registry.TypeInfo) {
	if info.ItemsField == "" {
		return
	}
	if _, ok := s[info.ItemsField].([]any); ok {
		return
	}
	for _, src := range listSources {
		if src == info.ItemsField {
			continue
		}
		if list, ok := s[src].([]any); ok {
			s[info.ItemsField] = list
			delete(s, src)
			return
		}
	}
}

func normalizeLists(s map[string]any, key string) {
	for _, name := range listFields {
		if list, ok := s[name].([]any); ok {
			s[name] = normalizeItems(list, key, name)
		}
	}
}

// normalizeItems aliases item fields, guards item images and gives every item a
// unique id. Bare strings become {text}.
func normalizeItems(list []any, key, name string) []any {
	aliases, ok := listItemAliases[name]
	if !ok {
		aliases = genericItemAliases
	}
	out := make([]any, 0, len(list))
	seen := make(map[string]bool, len(list))
	for i, v := range list {
		var item map[string]any
		switch t := v.(type) {
		case map[string]any:
			item = t
		case string:
			if strings.TrimSpace(t) == "" {
				continue
			}
			item = map[string]any{"text": t}
		default:
			continue
		}

		for _, alias := range aliases {
			aliasText(item, alias.dst, alias.sources...)
		}
		for _, k := range imageKeys {
			guardImage(item, k)
		}
		coerceInts(item, "rating")

		id := itemKey(item["id"])
		if id == "" || seen[id] {
			id = itemID(key, name, i)
			item["id"] = id
		}
		seen[id] = true
		out = append(out, item)
	}
	return out
}

func itemKey(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
	}
	return ""
}

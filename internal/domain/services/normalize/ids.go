package normalize

import (
	"fmt"
	"strconv"
)

// idAllocator keeps section ids unique across a document tree. Ids that are
// already valid and unseen are kept; missing, invalid and duplicate ids get
// max+1 in walk order.
type idAllocator struct {
	seen map[int]bool
	max  int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{seen: make(map[int]bool)}
}

func (a *idAllocator) collect(list []any) {
	for _, v := range list {
		s, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := sectionID(s["id"]); ok {
			a.max = max(a.max, id)
		}
		if children, ok := s["children"].([]any); ok {
			a.collect(children)
		}
	}
}

func (a *idAllocator) assign(s map[string]any) {
	id, ok := sectionID(s["id"])
	if !ok || a.seen[id] {
		a.max++
		id = a.max
	}
	a.seen[id] = true
	s["id"] = float64(id)
}

func sectionID(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f < 1 || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// sectionKey is the section part of synthetic item ids.
func sectionKey(s map[string]any) string {
	if id, ok := sectionID(s["id"]); ok {
		return strconv.Itoa(id)
	}
	return "section"
}

// itemID is the deterministic id given to list items that arrive without one.
func itemID(sectionKey, list string, index int) string {
	return fmt.Sprintf("%s-%s-%d", sectionKey, list, index)
}

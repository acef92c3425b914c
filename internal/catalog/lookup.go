package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a name may be from the query before it
// stops being offered as a suggestion.
const maxSuggestDistance = 3

// ByName returns the element whose display name matches name,
// case-insensitively, or nil if there is none. When name parses as a known
// element id, the id match wins, mirroring the original tool's lookup.
func (c *Catalog) ByName(name string) *Element {
	if el, ok := c.elements[ElementID(name)]; ok {
		return el
	}
	lower := strings.ToLower(name)
	for _, id := range c.ids {
		el := c.elements[id]
		if strings.ToLower(el.Name) == lower {
			return el
		}
	}
	return nil
}

// Suggest returns up to limit element names close to the query, nearest
// first, for "did you mean" output. Names further than a small edit
// distance are never suggested.
func (c *Catalog) Suggest(name string, limit int) []string {
	type scored struct {
		name string
		dist int
	}
	lower := strings.ToLower(name)

	var candidates []scored
	for _, id := range c.ids {
		el := c.elements[id]
		d := levenshtein.ComputeDistance(lower, strings.ToLower(el.Name))
		if d <= maxSuggestDistance {
			candidates = append(candidates, scored{name: el.Name, dist: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.name
	}
	return out
}

package catalog

import "sort"

// Catalog is the immutable table of elements and the recipes that produce
// them.
//
// Construction validates every identity reference; afterwards the catalog
// is read-only and safe to share across any number of concurrent
// resolutions.
type Catalog struct {
	elements map[ElementID]*Element

	// recipesFor preserves the insertion order of recipes per produced
	// element. Ordering matters: the resolver's tie-break is
	// first-registered recipe wins.
	recipesFor map[ElementID][]Recipe

	// usedIn is the reverse index: every recipe an element appears in as
	// an ingredient, in recipe registration order.
	usedIn map[ElementID][]Recipe

	// ids holds all element ids sorted for deterministic iteration.
	ids []ElementID
}

// New constructs a Catalog from raw records.
//
// Fails with a MalformedDataError when an element id is duplicated or a
// recipe references an ingredient or result id absent from the element
// list. The raw recipe data may contain cycles; cycle avoidance is the
// resolver's job, not a load-time check.
func New(elements []ElementRecord, recipes []RecipeRecord) (*Catalog, error) {
	c := &Catalog{
		elements:   make(map[ElementID]*Element, len(elements)),
		recipesFor: make(map[ElementID][]Recipe),
		usedIn:     make(map[ElementID][]Recipe),
	}

	for _, rec := range elements {
		if _, ok := c.elements[rec.ID]; ok {
			return nil, &MalformedDataError{
				Code:    ErrCodeDuplicateElement,
				Message: "element id registered twice",
				Element: rec.ID,
			}
		}
		c.elements[rec.ID] = &Element{
			ID:     rec.ID,
			Name:   rec.Name,
			Base:   rec.Base,
			Final:  rec.Final,
			Hidden: rec.Hidden,
		}
		c.ids = append(c.ids, rec.ID)
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })

	for i := range recipes {
		rec := recipes[i]
		for _, id := range [...]ElementID{rec.First, rec.Second, rec.Result} {
			if _, ok := c.elements[id]; !ok {
				return nil, &MalformedDataError{
					Code:    ErrCodeDanglingReference,
					Message: "recipe references unknown element",
					Element: id,
					Recipe:  &rec,
				}
			}
		}
		r := Recipe{First: rec.First, Second: rec.Second, Result: rec.Result}
		c.recipesFor[rec.Result] = append(c.recipesFor[rec.Result], r)
		c.usedIn[rec.First] = append(c.usedIn[rec.First], r)
		if rec.Second != rec.First {
			c.usedIn[rec.Second] = append(c.usedIn[rec.Second], r)
		}
	}

	return c, nil
}

// Element returns the element for id, or nil if unknown.
func (c *Catalog) Element(id ElementID) *Element {
	return c.elements[id]
}

// Len returns the number of elements in the catalog.
func (c *Catalog) Len() int {
	return len(c.elements)
}

// IDs returns all element ids in sorted order.
// The returned slice must not be modified.
func (c *Catalog) IDs() []ElementID {
	return c.ids
}

// Elements returns all elements in sorted id order.
func (c *Catalog) Elements() []*Element {
	out := make([]*Element, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.elements[id])
	}
	return out
}

// ProducedBy returns every element a combination of a and b produces, in
// recipe registration order. A pair can produce several elements; an
// unknown or recipe-less pair produces none.
func (c *Catalog) ProducedBy(a, b ElementID) []ElementID {
	var out []ElementID
	seen := make(map[ElementID]bool)
	for _, r := range c.usedIn[a] {
		match := (r.First == a && r.Second == b) || (r.First == b && r.Second == a)
		if match && !seen[r.Result] {
			seen[r.Result] = true
			out = append(out, r.Result)
		}
	}
	return out
}

// Graph returns the query view the resolver traverses.
func (c *Catalog) Graph() *Graph {
	return &Graph{cat: c}
}

package catalog

// Graph is the recipe-graph view over a Catalog.
//
// It performs no computation of its own; it exists so the resolver depends
// on a narrow query surface instead of the catalog's storage layout.
// Safe for concurrent reads.
type Graph struct {
	cat *Catalog
}

// RecipesFor returns the alternative ways to produce id, in registration
// order. Empty for base elements and for elements nothing produces.
// The returned slice must not be modified.
func (g *Graph) RecipesFor(id ElementID) []Recipe {
	return g.cat.recipesFor[id]
}

// UsedIn returns every recipe id appears in as an ingredient, in
// registration order. These are the raw reverse edges; the closure builder
// computes the narrower "used by a winning plan" relation itself.
func (g *Graph) UsedIn(id ElementID) []Recipe {
	return g.cat.usedIn[id]
}

// IsBase reports whether id is a base element. Unknown ids are not base.
func (g *Graph) IsBase(id ElementID) bool {
	el := g.cat.elements[id]
	return el != nil && el.Base
}

// BaseElements returns all base elements in sorted id order.
func (g *Graph) BaseElements() []*Element {
	var out []*Element
	for _, id := range g.cat.ids {
		if el := g.cat.elements[id]; el.Base {
			out = append(out, el)
		}
	}
	return out
}

// Element returns the element for id, or nil if unknown.
func (g *Graph) Element(id ElementID) *Element {
	return g.cat.elements[id]
}

// IDs returns all element ids in sorted order.
// The returned slice must not be modified.
func (g *Graph) IDs() []ElementID {
	return g.cat.ids
}

// Len returns the number of elements in the underlying catalog.
// The resolver uses it to bound recursion depth.
func (g *Graph) Len() int {
	return len(g.cat.elements)
}

package catalog

// ElementID identifies an element within a catalog.
//
// The game data keys elements by small numbers serialized as strings, and
// authored catalogs key them by name-like labels. A string id serves both
// without a parsing step.
type ElementID string

// Element is a single entry in the catalog.
//
// Elements are created at load time and never mutated during a run.
type Element struct {
	ID   ElementID `json:"id"`
	Name string    `json:"name"`

	// Base marks the starting elements. They have no recipes and are
	// assumed always available.
	Base bool `json:"base,omitempty"`

	// Final marks elements that cannot be combined further. Informational
	// only; the resolver never needs it.
	Final bool `json:"final,omitempty"`

	// Hidden is carried from the game data. It appears unused by the game.
	Hidden bool `json:"hidden,omitempty"`
}

// Recipe states that combining First and Second produces Result.
//
// The ingredient pair is unordered, and First may equal Second (an element
// combined with itself). An element with several recipes can be produced by
// any one of them; both ingredients of a single recipe are always required.
type Recipe struct {
	First  ElementID `json:"first"`
	Second ElementID `json:"second"`
	Result ElementID `json:"result"`
}

// Uses reports whether id appears as an ingredient of the recipe.
func (r Recipe) Uses(id ElementID) bool {
	return r.First == id || r.Second == id
}

// Same reports whether two recipes name the same combination, ignoring
// ingredient order.
func (r Recipe) Same(other Recipe) bool {
	if r.Result != other.Result {
		return false
	}
	return (r.First == other.First && r.Second == other.Second) ||
		(r.First == other.Second && r.Second == other.First)
}

// ElementRecord is the raw element row handed to New by a loader.
type ElementRecord struct {
	ID     ElementID
	Name   string
	Base   bool
	Final  bool
	Hidden bool
}

// RecipeRecord is the raw recipe row handed to New by a loader.
type RecipeRecord struct {
	First  ElementID
	Second ElementID
	Result ElementID
}

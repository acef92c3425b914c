// Package book assembles the whole-game closure into the browsable recipe
// book artifact.
//
// Each element gets one entry: the recipe chain the resolver selected for
// it and the elements it unlocks. Entries cross-link by element id so the
// external site generator can render pages without re-deriving anything.
// Rendering itself (HTML, markdown) is out of scope here; the book is the
// structured JSON the generator consumes.
package book

import (
	"encoding/json"
	"io"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
)

// Ref is a cross-link to another element's page.
type Ref struct {
	ID   catalog.ElementID `json:"id"`
	Name string            `json:"name"`
}

// StepRecord is one combination of an entry's recipe chain.
type StepRecord struct {
	First  Ref `json:"first"`
	Second Ref `json:"second"`
	Result Ref `json:"result"`
}

// Entry is one element's page: the winning recipe chain and the elements
// whose chains consume it.
type Entry struct {
	ID          catalog.ElementID `json:"id"`
	Name        string            `json:"name"`
	Base        bool              `json:"base,omitempty"`
	Final       bool              `json:"final,omitempty"`
	Unreachable bool              `json:"unreachable,omitempty"`
	Steps       []StepRecord      `json:"steps,omitempty"`
	UsedBy      []Ref             `json:"used_by,omitempty"`
}

// Book is the full catalog artifact, entries ordered by collated display
// name so the emitted JSON is stable across runs.
type Book struct {
	Entries []Entry `json:"entries"`
}

// Build assembles the book from a catalog and its resolved closure.
func Build(cat *catalog.Catalog, closure resolver.Closure) *Book {
	ref := func(id catalog.ElementID) Ref {
		r := Ref{ID: id, Name: string(id)}
		if el := cat.Element(id); el != nil {
			r.Name = el.Name
		}
		return r
	}

	// Collated name order, not byte order: the book is for humans.
	coll := collate.New(language.English, collate.IgnoreCase)

	entries := make([]Entry, 0, cat.Len())
	for _, el := range cat.Elements() {
		closed := closure[el.ID]

		entry := Entry{
			ID:          el.ID,
			Name:        el.Name,
			Base:        el.Base,
			Final:       el.Final,
			Unreachable: closed.Unreachable,
		}
		for _, step := range closed.Plan {
			entry.Steps = append(entry.Steps, StepRecord{
				First:  ref(step.First),
				Second: ref(step.Second),
				Result: ref(step.Result),
			})
		}
		for _, user := range closed.UsedBy {
			entry.UsedBy = append(entry.UsedBy, ref(user))
		}
		sort.SliceStable(entry.UsedBy, func(i, j int) bool {
			return coll.CompareString(entry.UsedBy[i].Name, entry.UsedBy[j].Name) < 0
		})

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return coll.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	return &Book{Entries: entries}
}

// WriteJSON emits the book as indented JSON.
func (b *Book) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

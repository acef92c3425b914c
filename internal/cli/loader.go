package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/compiler"
)

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// dumpElement mirrors one entry of the game's JSON dump. Field names
// follow the dump: "n" is the display name, "p" the recipe pairs with
// element ids serialized as strings.
type dumpElement struct {
	Name    string     `json:"n"`
	Recipes [][]string `json:"p"`
	Prime   bool       `json:"prime"`
	Final   bool       `json:"final"`
	Hidden  bool       `json:"hidden"`
}

// LoadCatalog reads a catalog from path.
//
// A ".cue" file is compiled as an authored catalog definition; anything
// else is parsed as the game's JSON dump (a map of element id to entry).
// Referential errors surface as catalog.MalformedDataError.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading catalog: %v", err)}
	}

	if filepath.Ext(path) == ".cue" {
		return loadCUECatalog(path, data)
	}
	return loadJSONDump(data)
}

// loadJSONDump parses the game's JSON dump into a catalog.
//
// JSON object order is not observable through a map, so elements register
// in sorted id order. Recipe order within an element follows the dump's
// array order, which is what the resolver's tie-break sees.
func loadJSONDump(data []byte) (*catalog.Catalog, error) {
	var dump map[string]dumpElement
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, &LoadError{Code: ErrCodeBadDump, Message: fmt.Sprintf("parsing dump: %v", err)}
	}

	ids := make([]string, 0, len(dump))
	for id := range dump {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var elements []catalog.ElementRecord
	var recipes []catalog.RecipeRecord
	for _, id := range ids {
		entry := dump[id]
		name := entry.Name
		if name == "" {
			name = id
		}
		elements = append(elements, catalog.ElementRecord{
			ID:     catalog.ElementID(id),
			Name:   name,
			Base:   entry.Prime,
			Final:  entry.Final,
			Hidden: entry.Hidden,
		})
		for _, pair := range entry.Recipes {
			if len(pair) != 2 {
				return nil, &LoadError{
					Code:    ErrCodeBadDump,
					Message: fmt.Sprintf("element %s: recipe must have exactly two ingredients, got %d", id, len(pair)),
				}
			}
			recipes = append(recipes, catalog.RecipeRecord{
				First:  catalog.ElementID(pair[0]),
				Second: catalog.ElementID(pair[1]),
				Result: catalog.ElementID(id),
			})
		}
	}

	return catalog.New(elements, recipes)
}

// loadCUECatalog compiles an authored .cue catalog file.
func loadCUECatalog(path string, data []byte) (*catalog.Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeCUEFailed, Message: fmt.Sprintf("compiling %s: %v", path, err)}
	}

	elements, recipes, err := compiler.CompileCatalog(v)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeCUEFailed, Message: err.Error()}
	}

	return catalog.New(elements, recipes)
}

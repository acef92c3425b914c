// Package compiler turns authored CUE catalog definitions into raw catalog
// records. The game's own JSON dump bypasses it; CUE is the authoring
// format for hand-written and test catalogs.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/alembic/internal/catalog"
)

// CompileCatalog parses a CUE value into element and recipe records.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The expected shape keys elements by id under "element":
//
//	element: water: { name: "Water", base: true }
//	element: mud: { name: "Mud", recipes: [["earth", "water"]] }
//
// Recipe pairs reference element ids; referential integrity is checked by
// catalog.New, not here.
func CompileCatalog(v cue.Value) ([]catalog.ElementRecord, []catalog.RecipeRecord, error) {
	if err := v.Err(); err != nil {
		return nil, nil, formatCUEError(err)
	}

	elementsVal := v.LookupPath(cue.ParsePath("element"))
	if !elementsVal.Exists() {
		return nil, nil, &CompileError{
			Field:   "element",
			Message: "no elements defined",
			Pos:     v.Pos(),
		}
	}

	iter, err := elementsVal.Fields()
	if err != nil {
		return nil, nil, formatCUEError(err)
	}

	var elements []catalog.ElementRecord
	var recipes []catalog.RecipeRecord
	for iter.Next() {
		id := catalog.ElementID(iter.Label())
		el, elRecipes, err := compileElement(id, iter.Value())
		if err != nil {
			return nil, nil, err
		}
		elements = append(elements, el)
		recipes = append(recipes, elRecipes...)
	}

	return elements, recipes, nil
}

// compileElement parses one element struct. The name defaults to the label
// when omitted.
func compileElement(id catalog.ElementID, v cue.Value) (catalog.ElementRecord, []catalog.RecipeRecord, error) {
	rec := catalog.ElementRecord{ID: id, Name: string(id)}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return rec, nil, formatCUEError(err)
		}
		rec.Name = name
	}

	for _, flag := range []struct {
		path string
		dst  *bool
	}{
		{"base", &rec.Base},
		{"final", &rec.Final},
		{"hidden", &rec.Hidden},
	} {
		flagVal := v.LookupPath(cue.ParsePath(flag.path))
		if !flagVal.Exists() {
			continue
		}
		b, err := flagVal.Bool()
		if err != nil {
			return rec, nil, formatCUEError(err)
		}
		*flag.dst = b
	}

	recipes, err := compileRecipes(id, v)
	if err != nil {
		return rec, nil, err
	}
	if rec.Base && len(recipes) > 0 {
		return rec, nil, &CompileError{
			Field:   fmt.Sprintf("element.%s.recipes", id),
			Message: "base elements cannot have recipes",
			Pos:     v.Pos(),
		}
	}

	return rec, recipes, nil
}

// compileRecipes parses the optional recipes list: each entry is a pair of
// ingredient ids, in declaration order. Order is preserved because it is
// the resolver's tie-break.
func compileRecipes(result catalog.ElementID, v cue.Value) ([]catalog.RecipeRecord, error) {
	recipesVal := v.LookupPath(cue.ParsePath("recipes"))
	if !recipesVal.Exists() {
		return nil, nil
	}

	listIter, err := recipesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var recipes []catalog.RecipeRecord
	for listIter.Next() {
		pairIter, err := listIter.Value().List()
		if err != nil {
			return nil, formatCUEError(err)
		}

		var pair []catalog.ElementID
		for pairIter.Next() {
			ingredient, err := pairIter.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			pair = append(pair, catalog.ElementID(ingredient))
		}
		if len(pair) != 2 {
			return nil, &CompileError{
				Field:   fmt.Sprintf("element.%s.recipes", result),
				Message: fmt.Sprintf("recipe must name exactly two ingredients, got %d", len(pair)),
				Pos:     recipesVal.Pos(),
			}
		}

		recipes = append(recipes, catalog.RecipeRecord{
			First:  pair[0],
			Second: pair[1],
			Result: result,
		})
	}

	return recipes, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}

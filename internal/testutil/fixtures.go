// Package testutil provides shared fixture catalogs for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/alembic/internal/catalog"
)

// Primordial returns the four starting elements every fixture builds on.
func Primordial() []catalog.ElementRecord {
	return []catalog.ElementRecord{
		{ID: "air", Name: "Air", Base: true},
		{ID: "earth", Name: "Earth", Base: true},
		{ID: "fire", Name: "Fire", Base: true},
		{ID: "water", Name: "Water", Base: true},
	}
}

// NewCatalog builds a catalog and fails the test on malformed data.
func NewCatalog(t *testing.T, elements []catalog.ElementRecord, recipes []catalog.RecipeRecord) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(elements, recipes)
	require.NoError(t, err)
	return cat
}

// MudBrick returns the canonical two-step fixture:
// Earth+Water -> Mud, Mud+Fire -> Brick.
func MudBrick(t *testing.T) *catalog.Catalog {
	t.Helper()
	elements := append(Primordial(),
		catalog.ElementRecord{ID: "mud", Name: "Mud"},
		catalog.ElementRecord{ID: "brick", Name: "Brick"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
	}
	return NewCatalog(t, elements, recipes)
}

// MutualCycle returns a fixture where X's only recipe needs Y and Y's only
// recipe needs X. Neither is reachable.
func MutualCycle(t *testing.T) *catalog.Catalog {
	t.Helper()
	elements := append(Primordial(),
		catalog.ElementRecord{ID: "x", Name: "X"},
		catalog.ElementRecord{ID: "y", Name: "Y"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "y", Second: "fire", Result: "x"},
		{First: "x", Second: "water", Result: "y"},
	}
	return NewCatalog(t, elements, recipes)
}

// CycleWithEscape returns a fixture where X's first recipe is cyclic
// through Y but its second recipe uses base elements only.
func CycleWithEscape(t *testing.T) *catalog.Catalog {
	t.Helper()
	elements := append(Primordial(),
		catalog.ElementRecord{ID: "x", Name: "X"},
		catalog.ElementRecord{ID: "y", Name: "Y"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "y", Second: "fire", Result: "x"},
		{First: "earth", Second: "air", Result: "x"},
		{First: "x", Second: "water", Result: "y"},
	}
	return NewCatalog(t, elements, recipes)
}

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
	"github.com/roach88/alembic/internal/testutil"
)

func TestBuildAll_EntryForEveryElement(t *testing.T) {
	cat := testutil.MudBrick(t)

	closure := resolver.New(cat.Graph()).BuildAll()

	require.Len(t, closure, cat.Len())
	for _, id := range cat.IDs() {
		_, ok := closure[id]
		assert.True(t, ok, "missing entry for %s", id)
	}
}

func TestBuildAll_UsedByMatchesSelectedPlans(t *testing.T) {
	cat := testutil.MudBrick(t)

	closure := resolver.New(cat.Graph()).BuildAll()

	// Every used-by edge must be backed by a consuming step in the user's
	// winning plan.
	for id, entry := range closure {
		for _, user := range entry.UsedBy {
			assert.True(t, closure[user].Plan.Consumes(id),
				"%s lists %s as user but %s's plan never consumes it", id, user, user)
		}
	}

	assert.Equal(t, []catalog.ElementID{"brick"}, closure["mud"].UsedBy)
	// Earth feeds the mud step, which appears in both mud's and brick's plans.
	assert.Equal(t, []catalog.ElementID{"brick", "mud"}, closure["earth"].UsedBy)
	assert.Empty(t, closure["brick"].UsedBy)
}

func TestBuildAll_UsedByIgnoresUnselectedRecipes(t *testing.T) {
	// Rain has two recipes; only the first is selected, so steam must not
	// appear as used by rain.
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "steam", Name: "Steam"},
		catalog.ElementRecord{ID: "rain", Name: "Rain"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "water", Second: "fire", Result: "steam"},
		{First: "water", Second: "air", Result: "rain"},
		{First: "steam", Second: "water", Result: "rain"},
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	closure := resolver.New(cat.Graph()).BuildAll()

	assert.Empty(t, closure["steam"].UsedBy)
	require.Len(t, closure["rain"].Plan, 1)
}

func TestBuildAll_UnreachableRecordedNotFatal(t *testing.T) {
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "mud", Name: "Mud"},
		catalog.ElementRecord{ID: "orphan", Name: "Orphan"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "earth", Second: "water", Result: "mud"},
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	closure := resolver.New(cat.Graph()).BuildAll()

	require.Len(t, closure, cat.Len())
	assert.True(t, closure["orphan"].Unreachable)
	assert.False(t, closure["mud"].Unreachable)
	require.Len(t, closure["mud"].Plan, 1)
}

func TestBuildAll_MutualCycleBothUnreachable(t *testing.T) {
	cat := testutil.MutualCycle(t)

	closure := resolver.New(cat.Graph()).BuildAll()

	assert.True(t, closure["x"].Unreachable)
	assert.True(t, closure["y"].Unreachable)
	assert.False(t, closure["water"].Unreachable)
}

func TestBuildAll_OrderIndependentOfCycles(t *testing.T) {
	// BuildAll iterates in sorted id order, so here X is resolved before
	// Y. Y's earlier rejection inside X's search must not leak into its
	// own entry.
	cat := testutil.CycleWithEscape(t)

	closure := resolver.New(cat.Graph()).BuildAll()

	assert.False(t, closure["x"].Unreachable)
	assert.False(t, closure["y"].Unreachable)
	assert.Equal(t, []catalog.ElementID{"y"}, closure["x"].UsedBy)
}

func TestBuildAll_BaseElementsHaveEmptyPlans(t *testing.T) {
	cat := testutil.MudBrick(t)

	closure := resolver.New(cat.Graph()).BuildAll()

	for _, el := range cat.Graph().BaseElements() {
		entry := closure[el.ID]
		assert.False(t, entry.Unreachable)
		assert.Empty(t, entry.Plan)
	}
}

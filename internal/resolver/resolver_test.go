package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
	"github.com/roach88/alembic/internal/testutil"
)

// assertValidPlan checks the two plan invariants: every ingredient is a
// base element or the result of a strictly earlier step, and no element is
// produced twice.
func assertValidPlan(t *testing.T, g *catalog.Graph, plan resolver.Plan) {
	t.Helper()

	available := make(map[catalog.ElementID]bool)
	produced := make(map[catalog.ElementID]bool)
	for i, step := range plan {
		for _, ingredient := range []catalog.ElementID{step.First, step.Second} {
			if !g.IsBase(ingredient) && !available[ingredient] {
				t.Fatalf("step %d uses %s before it is available", i, ingredient)
			}
		}
		if produced[step.Result] {
			t.Fatalf("element %s produced twice", step.Result)
		}
		produced[step.Result] = true
		available[step.Result] = true
	}
}

func TestResolve_BaseElementEmptyPlan(t *testing.T) {
	cat := testutil.MudBrick(t)
	r := resolver.New(cat.Graph())

	for _, id := range []catalog.ElementID{"air", "earth", "fire", "water"} {
		plan, err := r.Resolve(id)
		require.NoError(t, err, "base element %s", id)
		assert.Empty(t, plan)
	}
}

func TestResolve_MudBrickExactOrder(t *testing.T) {
	cat := testutil.MudBrick(t)
	r := resolver.New(cat.Graph())

	plan, err := r.Resolve("brick")
	require.NoError(t, err)

	require.Equal(t, resolver.Plan{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
	}, plan)
	assertValidPlan(t, cat.Graph(), plan)
}

func TestResolve_Idempotent(t *testing.T) {
	cat := testutil.MudBrick(t)
	r := resolver.New(cat.Graph())

	first, err := r.Resolve("brick")
	require.NoError(t, err)
	second, err := r.Resolve("brick")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Same catalog, fresh session: still the same plan.
	again, err := resolver.New(cat.Graph()).Resolve("brick")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestResolve_Unreachable(t *testing.T) {
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "orphan", Name: "Orphan"},
	)
	cat := testutil.NewCatalog(t, elements, nil)
	r := resolver.New(cat.Graph())

	_, err := r.Resolve("orphan")
	require.Error(t, err)
	assert.True(t, resolver.IsUnreachable(err))

	var re *resolver.ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, resolver.ErrCodeUnreachable, re.Code)
	assert.Equal(t, catalog.ElementID("orphan"), re.Element)
}

func TestResolve_UnknownElement(t *testing.T) {
	cat := testutil.MudBrick(t)
	r := resolver.New(cat.Graph())

	_, err := r.Resolve("philosophers-stone")
	assert.True(t, resolver.IsUnreachable(err))
}

func TestResolve_CycleRejection(t *testing.T) {
	cat := testutil.MutualCycle(t)
	r := resolver.New(cat.Graph())

	_, err := r.Resolve("x")
	assert.True(t, resolver.IsUnreachable(err))

	_, err = r.Resolve("y")
	assert.True(t, resolver.IsUnreachable(err))
}

func TestResolve_CycleTolerance(t *testing.T) {
	cat := testutil.CycleWithEscape(t)
	r := resolver.New(cat.Graph())

	plan, err := r.Resolve("x")
	require.NoError(t, err)

	// The cyclic first recipe is rejected; the base-only alternative wins.
	require.Len(t, plan, 1)
	assert.Equal(t, resolver.Step{First: "earth", Second: "air", Result: "x"}, plan[0])
}

func TestResolve_CycleFailureNotMemoized(t *testing.T) {
	cat := testutil.CycleWithEscape(t)
	r := resolver.New(cat.Graph())

	// Resolving X first visits Y and rejects it as a cycle. That failure
	// is contextual: once X is settled, Y must still resolve through it.
	_, err := r.Resolve("x")
	require.NoError(t, err)

	plan, err := r.Resolve("y")
	require.NoError(t, err)
	require.Equal(t, resolver.Plan{
		{First: "earth", Second: "air", Result: "x"},
		{First: "x", Second: "water", Result: "y"},
	}, plan)
	assertValidPlan(t, cat.Graph(), plan)
}

func TestResolve_FirstRecipeWins(t *testing.T) {
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "rain", Name: "Rain"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "water", Second: "air", Result: "rain"},
		{First: "water", Second: "water", Result: "rain"},
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	plan, err := resolver.New(cat.Graph()).Resolve("rain")
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, resolver.Step{First: "water", Second: "air", Result: "rain"}, plan[0])
}

func TestResolve_SelfCombination(t *testing.T) {
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "mud", Name: "Mud"},
		catalog.ElementRecord{ID: "swamp", Name: "Swamp"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "mud", Result: "swamp"},
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	plan, err := resolver.New(cat.Graph()).Resolve("swamp")
	require.NoError(t, err)

	// Mud is crafted once and listed as both ingredients of the last step.
	require.Equal(t, resolver.Plan{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "mud", Result: "swamp"},
	}, plan)
	assertValidPlan(t, cat.Graph(), plan)
}

func TestResolve_SharedDependencyDeduplicated(t *testing.T) {
	// Both ingredients of "wall" depend on mud; the merged plan crafts mud
	// exactly once.
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "mud", Name: "Mud"},
		catalog.ElementRecord{ID: "brick", Name: "Brick"},
		catalog.ElementRecord{ID: "adobe", Name: "Adobe"},
		catalog.ElementRecord{ID: "wall", Name: "Wall"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
		{First: "mud", Second: "air", Result: "adobe"},
		{First: "brick", Second: "adobe", Result: "wall"},
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	plan, err := resolver.New(cat.Graph()).Resolve("wall")
	require.NoError(t, err)

	require.Equal(t, resolver.Plan{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
		{First: "mud", Second: "air", Result: "adobe"},
		{First: "brick", Second: "adobe", Result: "wall"},
	}, plan)
	assertValidPlan(t, cat.Graph(), plan)
}

func TestResolve_DeepChainStaysValid(t *testing.T) {
	// A longer chain with alternatives exercises ordering validity beyond
	// hand-checked fixtures.
	elements := append(testutil.Primordial(),
		catalog.ElementRecord{ID: "mud", Name: "Mud"},
		catalog.ElementRecord{ID: "brick", Name: "Brick"},
		catalog.ElementRecord{ID: "house", Name: "House"},
		catalog.ElementRecord{ID: "village", Name: "Village"},
	)
	recipes := []catalog.RecipeRecord{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
		{First: "brick", Second: "brick", Result: "house"},
		{First: "house", Second: "house", Result: "village"},
		{First: "village", Second: "fire", Result: "house"}, // cyclic alternative, never chosen
	}
	cat := testutil.NewCatalog(t, elements, recipes)

	plan, err := resolver.New(cat.Graph()).Resolve("village")
	require.NoError(t, err)
	assertValidPlan(t, cat.Graph(), plan)
	assert.Equal(t, catalog.ElementID("village"), plan[len(plan)-1].Result)
}

func TestResolver_Seed(t *testing.T) {
	cat := testutil.MudBrick(t)
	r := resolver.New(cat.Graph())
	r.Seed("mud")

	plan, err := r.Resolve("mud")
	require.NoError(t, err)
	assert.Empty(t, plan)

	// Brick no longer needs the mud step.
	plan, err = r.Resolve("brick")
	require.NoError(t, err)
	require.Equal(t, resolver.Plan{
		{First: "mud", Second: "fire", Result: "brick"},
	}, plan)
}

// syntheticGraph exercises the Graph interface decoupling: the resolver
// never sees a catalog here.
type syntheticGraph struct {
	recipes map[catalog.ElementID][]catalog.Recipe
	base    map[catalog.ElementID]bool
	ids     []catalog.ElementID
}

func (g *syntheticGraph) RecipesFor(id catalog.ElementID) []catalog.Recipe { return g.recipes[id] }
func (g *syntheticGraph) IsBase(id catalog.ElementID) bool                 { return g.base[id] }
func (g *syntheticGraph) IDs() []catalog.ElementID                         { return g.ids }
func (g *syntheticGraph) Len() int                                         { return len(g.ids) }

func TestResolve_SyntheticGraph(t *testing.T) {
	g := &syntheticGraph{
		recipes: map[catalog.ElementID][]catalog.Recipe{
			"steam": {{First: "water", Second: "fire", Result: "steam"}},
		},
		base: map[catalog.ElementID]bool{"water": true, "fire": true},
		ids:  []catalog.ElementID{"fire", "steam", "water"},
	}

	plan, err := resolver.New(g).Resolve("steam")
	require.NoError(t, err)
	require.Equal(t, resolver.Plan{
		{First: "water", Second: "fire", Result: "steam"},
	}, plan)
}

func TestPlan_ProducesConsumes(t *testing.T) {
	plan := resolver.Plan{
		{First: "earth", Second: "water", Result: "mud"},
		{First: "mud", Second: "fire", Result: "brick"},
	}

	assert.True(t, plan.Produces("mud"))
	assert.False(t, plan.Produces("earth"))
	assert.True(t, plan.Consumes("fire"))
	assert.False(t, plan.Consumes("brick"))
}

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/alembic/internal/catalog"
)

func TestCache_ColorTransitions(t *testing.T) {
	c := newCache()

	assert.Equal(t, colorWhite, c.state("mud"))
	assert.Nil(t, c.lookup("mud"))

	c.markInProgress("mud")
	assert.Equal(t, colorGray, c.state("mud"))
	assert.Nil(t, c.lookup("mud"), "gray entries are not settled")

	plan := Plan{{First: "earth", Second: "water", Result: "mud"}}
	c.complete("mud", plan)
	assert.Equal(t, colorBlack, c.state("mud"))

	e := c.lookup("mud")
	require.NotNil(t, e)
	assert.False(t, e.unreachable)
	assert.Equal(t, plan, e.plan)
}

func TestCache_Unreachable(t *testing.T) {
	c := newCache()

	c.markInProgress("orphan")
	c.markUnreachable("orphan")

	e := c.lookup("orphan")
	require.NotNil(t, e)
	assert.True(t, e.unreachable)
	assert.Empty(t, e.plan)
}

func TestCache_ForgetReturnsToWhite(t *testing.T) {
	c := newCache()

	c.markInProgress("x")
	c.forget("x")

	assert.Equal(t, colorWhite, c.state("x"))
	assert.Nil(t, c.lookup("x"))
}

func TestResolver_DepthGuardPanics(t *testing.T) {
	// A graph that lies about its size trips the recursion assertion: the
	// chain below is longer than the reported element count.
	g := &liarGraph{}

	assert.Panics(t, func() {
		New(g).Resolve("e3")
	})
}

// liarGraph reports Len 1 but holds a three-element chain.
type liarGraph struct{}

func (g *liarGraph) RecipesFor(id catalog.ElementID) []catalog.Recipe {
	switch id {
	case "e3":
		return []catalog.Recipe{{First: "e2", Second: "base", Result: "e3"}}
	case "e2":
		return []catalog.Recipe{{First: "e1", Second: "base", Result: "e2"}}
	case "e1":
		return []catalog.Recipe{{First: "base", Second: "base", Result: "e1"}}
	}
	return nil
}
func (g *liarGraph) IsBase(id catalog.ElementID) bool { return id == "base" }
func (g *liarGraph) IDs() []catalog.ElementID         { return []catalog.ElementID{"e3"} }
func (g *liarGraph) Len() int                         { return 1 }

package resolver

import (
	"fmt"

	"github.com/roach88/alembic/internal/catalog"
)

// Graph is the query surface the resolver traverses. *catalog.Graph
// satisfies it; tests may substitute synthetic graphs.
type Graph interface {
	// RecipesFor returns the alternative recipes producing id, in the
	// order that decides ties: first registered wins.
	RecipesFor(id catalog.ElementID) []catalog.Recipe

	// IsBase reports whether id is a base element.
	IsBase(id catalog.ElementID) bool

	// IDs returns all element ids in deterministic order.
	IDs() []catalog.ElementID

	// Len returns the number of elements in the graph.
	Len() int
}

// outcome classifies the result of one recursive resolution.
type outcome int

const (
	outcomeResolved outcome = iota
	outcomeUnreachable
	// outcomeCycle means the resolution reached an element currently being
	// resolved up the chain. Unlike unreachable it is contextual and is
	// never memoized.
	outcomeCycle
)

// Resolver computes crafting plans against a read-only recipe graph.
//
// A Resolver owns one resolution session: results are cached across calls,
// so each element is resolved at most once regardless of how many targets
// depend on it. Not safe for concurrent use; give each goroutine its own
// Resolver over the shared graph.
type Resolver struct {
	graph Graph
	cache *cache
}

// New creates a Resolver with a fresh session cache.
func New(g Graph) *Resolver {
	return &Resolver{graph: g, cache: newCache()}
}

// Seed marks elements as already acquired: they resolve to the empty plan
// exactly like base elements. Used to continue from a player's recorded
// progress. Must be called before any Resolve.
func (r *Resolver) Seed(ids ...catalog.ElementID) {
	for _, id := range ids {
		r.cache.complete(id, nil)
	}
}

// Resolve returns an ordered sequence of combination steps that crafts
// target from the base elements.
//
// Returns a ResolveError with code UNREACHABLE when no cycle-free recipe
// chain exists. Base and seeded elements resolve to the empty plan.
// Calling Resolve twice for the same target yields the identical plan.
func (r *Resolver) Resolve(target catalog.ElementID) (Plan, error) {
	plan, out := r.resolve(target, 1)
	if out != outcomeResolved {
		// A cycle outcome cannot surface at the top level: no element is
		// gray between Resolve calls. Treat it as unreachable regardless.
		return nil, newUnreachableError(target)
	}
	return plan, nil
}

// resolve is the memoized depth-first search at the core of the package.
func (r *Resolver) resolve(id catalog.ElementID, depth int) (Plan, outcome) {
	// Recursion is bounded by the element count: each gray element blocks
	// its own revisit, so a deeper chain means the coloring is broken.
	if depth > r.graph.Len()+1 {
		panic(fmt.Sprintf("resolver: recursion depth %d exceeds element count %d", depth, r.graph.Len()))
	}

	if e := r.cache.lookup(id); e != nil {
		if e.unreachable {
			return nil, outcomeUnreachable
		}
		return e.plan, outcomeResolved
	}
	if r.graph.IsBase(id) {
		return nil, outcomeResolved
	}
	if r.cache.state(id) == colorGray {
		return nil, outcomeCycle
	}

	r.cache.markInProgress(id)

	sawCycle := false
	for _, rec := range r.graph.RecipesFor(id) {
		first, out := r.resolve(rec.First, depth+1)
		if out != outcomeResolved {
			sawCycle = sawCycle || out == outcomeCycle
			continue
		}

		// Self-combination needs its single ingredient only once.
		var second Plan
		if rec.Second != rec.First {
			second, out = r.resolve(rec.Second, depth+1)
			if out != outcomeResolved {
				sawCycle = sawCycle || out == outcomeCycle
				continue
			}
		}

		plan := merge(first, second, Step{First: rec.First, Second: rec.Second, Result: id})
		r.cache.complete(id, plan)
		return plan, outcomeResolved
	}

	if sawCycle {
		// Every recipe failed, but at least one failed only because of the
		// chain currently being explored. The element may still resolve in
		// another context, so forget it instead of memoizing failure.
		r.cache.forget(id)
		return nil, outcomeCycle
	}

	r.cache.markUnreachable(id)
	return nil, outcomeUnreachable
}

package resolver

import "github.com/roach88/alembic/internal/catalog"

// Step is one combination: combine two already-available elements to
// obtain Result. For a self-combination First equals Second and only the
// one ingredient needs to be available.
type Step struct {
	First  catalog.ElementID `json:"first"`
	Second catalog.ElementID `json:"second"`
	Result catalog.ElementID `json:"result"`
}

// Plan is an ordered sequence of steps sufficient to craft its final
// step's result from the base elements.
//
// Invariants: every ingredient of a step is either a base element or the
// result of a strictly earlier step, and no element appears as a result
// more than once. The empty plan belongs to elements that need no
// crafting (base or already acquired).
type Plan []Step

// Produces reports whether any step of the plan results in id.
func (p Plan) Produces(id catalog.ElementID) bool {
	for _, s := range p {
		if s.Result == id {
			return true
		}
	}
	return false
}

// Consumes reports whether any step of the plan uses id as an ingredient.
func (p Plan) Consumes(id catalog.ElementID) bool {
	for _, s := range p {
		if s.First == id || s.Second == id {
			return true
		}
	}
	return false
}

// merge concatenates two ingredient plans and appends the final step.
//
// The two plans may share sub-dependencies, so any step whose result was
// already produced by an earlier step is dropped. The final step's result
// can never collide: a plan producing it would have closed a cycle and
// been rejected during the search.
func merge(a, b Plan, final Step) Plan {
	out := make(Plan, 0, len(a)+len(b)+1)
	produced := make(map[catalog.ElementID]bool, len(a)+len(b))
	for _, part := range [...]Plan{a, b} {
		for _, s := range part {
			if produced[s.Result] {
				continue
			}
			produced[s.Result] = true
			out = append(out, s)
		}
	}
	return append(out, final)
}

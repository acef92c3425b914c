package resolver

import (
	"sort"

	"github.com/roach88/alembic/internal/catalog"
)

// Entry is the per-element record of the whole-graph closure: the winning
// recipe chain (or the unreachable outcome) and the elements whose winning
// plans consume this one.
type Entry struct {
	Plan        Plan
	Unreachable bool
	UsedBy      []catalog.ElementID
}

// Closure maps every element of the catalog to its Entry. It is the
// artifact the documentation generator renders into the recipe book.
type Closure map[catalog.ElementID]Entry

// BuildAll resolves every element in the graph and assembles the closure.
//
// All resolutions share this Resolver's session cache, so the work is
// linear in the catalog regardless of iteration order. Elements that turn
// out unreachable are recorded as such and never abort the run.
//
// UsedBy is the reverse of the "ingredient of" relation restricted to
// selected plans: X is used by Y when Y's winning plan contains a step
// consuming X. Recipes the resolver did not select contribute nothing.
func (r *Resolver) BuildAll() Closure {
	ids := r.graph.IDs()
	closure := make(Closure, len(ids))

	for _, id := range ids {
		plan, err := r.Resolve(id)
		if err != nil {
			closure[id] = Entry{Unreachable: true}
			continue
		}
		closure[id] = Entry{Plan: plan}
	}

	usedBy := make(map[catalog.ElementID]map[catalog.ElementID]bool)
	for _, id := range ids {
		entry := closure[id]
		for _, step := range entry.Plan {
			for _, ingredient := range [...]catalog.ElementID{step.First, step.Second} {
				if usedBy[ingredient] == nil {
					usedBy[ingredient] = make(map[catalog.ElementID]bool)
				}
				usedBy[ingredient][id] = true
			}
		}
	}

	for id, users := range usedBy {
		entry := closure[id]
		entry.UsedBy = make([]catalog.ElementID, 0, len(users))
		for user := range users {
			entry.UsedBy = append(entry.UsedBy, user)
		}
		sort.Slice(entry.UsedBy, func(i, j int) bool { return entry.UsedBy[i] < entry.UsedBy[j] })
		closure[id] = entry
	}

	return closure
}

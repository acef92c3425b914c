// Package resolver computes crafting plans over a recipe graph.
//
// A Resolver answers two questions: how to craft one element from the base
// elements (Resolve), and the same for every element in the game at once
// (BuildAll). Resolution is a memoized depth-first search; each element is
// resolved at most once per session no matter how many others depend on it.
//
// Cycle avoidance uses the classic three-color marking scheme. An element
// being resolved is marked in-progress; a recipe that reaches an
// in-progress element through its ingredients would close a cycle, so that
// recipe is rejected and the search backtracks to the next alternative.
// The raw recipe data is allowed to contain cycles - the resolver's job is
// to never select a chain that closes one, not to reject the data.
//
// Plans follow the first-match policy: recipes are tried in registration
// order and the first one whose ingredients resolve wins. No search for a
// globally shorter plan is performed.
//
// The resolution cache is the only mutable state in the core and is not
// safe for concurrent writers. Parallel resolutions of independent targets
// must each use their own Resolver over the same shared read-only graph.
package resolver

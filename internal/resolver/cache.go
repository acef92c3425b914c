package resolver

import "github.com/roach88/alembic/internal/catalog"

// color is the classic traversal coloring: white elements are untouched,
// gray elements are being resolved somewhere up the call chain, black
// elements are settled (plan or unreachable).
type color int

const (
	colorWhite color = iota // not in the cache
	colorGray               // in progress - reaching it again closes a cycle
	colorBlack              // settled
)

type cacheEntry struct {
	state       color
	plan        Plan
	unreachable bool
}

// cache is the per-session resolution cache.
//
// It is the only mutable state in the core. It is deliberately not
// locked: resolution is single-threaded by design, and independent
// parallel resolutions each get their own cache.
type cache struct {
	entries map[catalog.ElementID]*cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[catalog.ElementID]*cacheEntry)}
}

// state returns the element's color.
func (c *cache) state(id catalog.ElementID) color {
	if e := c.entries[id]; e != nil {
		return e.state
	}
	return colorWhite
}

// lookup returns the settled entry for id, or nil if id is not black.
func (c *cache) lookup(id catalog.ElementID) *cacheEntry {
	if e := c.entries[id]; e != nil && e.state == colorBlack {
		return e
	}
	return nil
}

// markInProgress colors id gray.
func (c *cache) markInProgress(id catalog.ElementID) {
	c.entries[id] = &cacheEntry{state: colorGray}
}

// complete replaces id's in-progress marker with a finished plan.
func (c *cache) complete(id catalog.ElementID, plan Plan) {
	c.entries[id] = &cacheEntry{state: colorBlack, plan: plan}
}

// markUnreachable permanently records that no cycle-free chain reaches id.
func (c *cache) markUnreachable(id catalog.ElementID) {
	c.entries[id] = &cacheEntry{state: colorBlack, unreachable: true}
}

// forget returns id to white. Used when a resolution failed only because
// it reached an in-progress ancestor: that outcome depends on the chain
// currently being explored, so it must not be memoized.
func (c *cache) forget(id catalog.ElementID) {
	delete(c.entries, id)
}

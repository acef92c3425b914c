// Package catalog holds the immutable element and recipe tables.
//
// A Catalog is constructed once from raw element and recipe records and
// never mutated afterwards, so it can be shared freely across concurrent
// resolutions. All identity lives here: elements are addressed by a stable
// ElementID and recipes by the element they produce.
//
// The Graph type is a thin query view over a Catalog. It exposes, per
// element, the ordered list of recipes that produce it (forward edges) and
// the recipes it participates in (reverse edges). The resolver depends on
// this view rather than on the Catalog's storage layout, which keeps it
// testable against synthetic graphs.
package catalog

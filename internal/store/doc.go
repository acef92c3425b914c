// Package store persists player progress: play sessions and the
// combinations performed in them.
//
// It replaces the upstream tool's history.json with a SQLite journal.
// Only the (first, second) ingredient pair is recorded, exactly what the
// game's own history holds; what a pair unlocked is re-derived against a
// catalog on read, so the journal stays valid when the game data updates.
//
// SQLite is configured for a single writer with WAL mode, so concurrent
// readers (a running resolve while the book builds) are safe.
package store

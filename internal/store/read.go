package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/alembic/internal/catalog"
)

// Combination is one recorded step of a session's history.
type Combination struct {
	First      catalog.ElementID
	Second     catalog.ElementID
	CombinedAt time.Time
}

// LatestSession returns the most recently started session id, or "" when
// the journal is empty. UUIDv7 ids sort by creation time, so the maximum
// id is the newest session.
func (s *Store) LatestSession(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM sessions ORDER BY id DESC LIMIT 1
	`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest session: %w", err)
	}
	return id, nil
}

// Combinations returns a session's history in the order it was recorded.
// Returns an empty slice (not nil) for an unknown or empty session.
func (s *Store) Combinations(ctx context.Context, sessionID string) ([]Combination, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT first, second, combined_at
		FROM combinations
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query combinations: %w", err)
	}
	defer rows.Close()

	combinations := []Combination{}
	for rows.Next() {
		var first, second string
		var at int64
		if err := rows.Scan(&first, &second, &at); err != nil {
			return nil, fmt.Errorf("scan combination: %w", err)
		}
		combinations = append(combinations, Combination{
			First:      catalog.ElementID(first),
			Second:     catalog.ElementID(second),
			CombinedAt: time.Unix(at, 0).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate combinations: %w", err)
	}

	return combinations, nil
}

// Acquired replays a session's history against a catalog and returns the
// elements it unlocked, in unlock order. Combinations that no longer
// exist in the catalog unlock nothing and are skipped silently, matching
// the upstream tool's tolerance for stale history.
func (s *Store) Acquired(ctx context.Context, sessionID string, cat *catalog.Catalog) ([]catalog.ElementID, error) {
	history, err := s.Combinations(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var acquired []catalog.ElementID
	seen := make(map[catalog.ElementID]bool)
	for _, comb := range history {
		for _, produced := range cat.ProducedBy(comb.First, comb.Second) {
			if !seen[produced] {
				seen[produced] = true
				acquired = append(acquired, produced)
			}
		}
	}

	return acquired, nil
}

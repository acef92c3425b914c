package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
)

// StartSession creates a new play session and returns its id.
//
// Session ids are UUIDv7: the embedded timestamp keeps them sortable by
// creation time, which is what LatestSession relies on.
func (s *Store) StartSession(ctx context.Context) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, started_at) VALUES (?, ?)
	`, id, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}

	return id, nil
}

// RecordCombination appends one performed combination to a session.
func (s *Store) RecordCombination(ctx context.Context, sessionID string, first, second catalog.ElementID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO combinations (session_id, first, second, combined_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, string(first), string(second), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("record combination: %w", err)
	}

	return nil
}

// RecordPlan appends every step of a followed plan to a session, in plan
// order. Used after the player carries out a resolved chain.
func (s *Store) RecordPlan(ctx context.Context, sessionID string, plan resolver.Plan) error {
	for _, step := range plan {
		if err := s.RecordCombination(ctx, sessionID, step.First, step.Second); err != nil {
			return err
		}
	}
	return nil
}

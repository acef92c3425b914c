package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/roach88/alembic/internal/catalog"
	"github.com/roach88/alembic/internal/resolver"
	"github.com/roach88/alembic/internal/store"
)

// openCatalog loads the configured catalog and converts load failures into
// formatted CLI errors with the right exit code.
func openCatalog(opts *RootOptions, formatter *OutputFormatter) (*catalog.Catalog, error) {
	formatter.VerboseLog("Loading catalog from %s", opts.Catalog)

	cat, err := LoadCatalog(opts.Catalog)
	if err == nil {
		return cat, nil
	}

	var malformed *catalog.MalformedDataError
	if errors.As(err, &malformed) {
		_ = formatter.Error(ErrCodeMalformed, malformed.Error(), malformed)
		return nil, NewExitError(ExitFailure, malformed.Error())
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return nil, NewExitError(ExitCommandError, loadErr.Message)
	}

	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return nil, NewExitError(ExitCommandError, err.Error())
}

// seedFromHistory replays the latest recorded session into the resolver so
// plans continue from the player's progress instead of the base elements.
//
// Returns the acquired elements. Seeding is skipped when --no-history is
// set or when no journal file exists yet; a journal that exists but cannot
// be read is an error, not a silent fresh start.
func seedFromHistory(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, cat *catalog.Catalog, r *resolver.Resolver) ([]catalog.ElementID, error) {
	if opts.NoHistory {
		return nil, nil
	}
	if _, err := os.Stat(opts.History); os.IsNotExist(err) {
		return nil, nil
	}

	s, err := store.Open(opts.History)
	if err != nil {
		return nil, historyError(formatter, err)
	}
	defer s.Close()

	session, err := s.LatestSession(ctx)
	if err != nil {
		return nil, historyError(formatter, err)
	}
	if session == "" {
		return nil, nil
	}

	acquired, err := s.Acquired(ctx, session, cat)
	if err != nil {
		return nil, historyError(formatter, err)
	}

	formatter.VerboseLog("Seeding %d acquired element(s) from session %s", len(acquired), session)
	r.Seed(acquired...)
	return acquired, nil
}

// recordPlan appends a followed plan to the journal, starting a session if
// none exists yet.
func recordPlan(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, plan resolver.Plan) error {
	s, err := store.Open(opts.History)
	if err != nil {
		return historyError(formatter, err)
	}
	defer s.Close()

	session, err := s.LatestSession(ctx)
	if err != nil {
		return historyError(formatter, err)
	}
	if session == "" {
		session, err = s.StartSession(ctx)
		if err != nil {
			return historyError(formatter, err)
		}
		formatter.VerboseLog("Started session %s", session)
	}

	if err := s.RecordPlan(ctx, session, plan); err != nil {
		return historyError(formatter, err)
	}
	formatter.VerboseLog("Recorded %d step(s) to session %s", len(plan), session)
	return nil
}

func historyError(formatter *OutputFormatter, err error) error {
	message := fmt.Sprintf("progress journal: %v", err)
	_ = formatter.Error(ErrCodeHistory, message, nil)
	return NewExitError(ExitCommandError, message)
}

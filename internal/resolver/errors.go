package resolver

import (
	"errors"
	"fmt"

	"github.com/roach88/alembic/internal/catalog"
)

// ResolveErrorCode categorizes resolution errors.
type ResolveErrorCode string

const (
	// ErrCodeUnreachable indicates no cycle-free chain of recipes connects
	// the base elements to the target. A normal, expected outcome for bad
	// game data, not a crash.
	ErrCodeUnreachable ResolveErrorCode = "UNREACHABLE"
)

// ResolveError is the per-target error returned by Resolve.
//
// Both resolution outcomes are deterministic functions of the catalog, so
// retrying with the same data always reproduces the same result.
type ResolveError struct {
	Code    ResolveErrorCode
	Element catalog.ElementID
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: no recipe chain reaches element %s", e.Code, e.Element)
}

// IsUnreachable returns true if the error marks an unreachable element.
// Uses errors.As to handle wrapped errors.
func IsUnreachable(err error) bool {
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Code == ErrCodeUnreachable
	}
	return false
}

// newUnreachableError creates a ResolveError for an unreachable element.
func newUnreachableError(id catalog.ElementID) *ResolveError {
	return &ResolveError{Code: ErrCodeUnreachable, Element: id}
}

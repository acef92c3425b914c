package catalog

import (
	"errors"
	"fmt"
)

// DataErrorCode categorizes catalog construction errors.
type DataErrorCode string

const (
	// ErrCodeDanglingReference indicates a recipe names an element id that
	// is absent from the element list.
	ErrCodeDanglingReference DataErrorCode = "DANGLING_REFERENCE"

	// ErrCodeDuplicateElement indicates the same element id appears twice
	// in the element list.
	ErrCodeDuplicateElement DataErrorCode = "DUPLICATE_ELEMENT"
)

// MalformedDataError is raised once, at catalog construction time, when the
// raw tables are inconsistent. It is fatal: no resolution may begin against
// a catalog that failed to construct.
type MalformedDataError struct {
	Code    DataErrorCode
	Message string

	// Element is the offending id (the missing reference for
	// DANGLING_REFERENCE, the repeated id for DUPLICATE_ELEMENT).
	Element ElementID

	// Recipe is the recipe that carried the bad reference, when relevant.
	Recipe *RecipeRecord
}

// Error implements the error interface.
func (e *MalformedDataError) Error() string {
	if e.Recipe != nil {
		return fmt.Sprintf("%s: %s (element=%s, recipe=%s+%s->%s)",
			e.Code, e.Message, e.Element, e.Recipe.First, e.Recipe.Second, e.Recipe.Result)
	}
	return fmt.Sprintf("%s: %s (element=%s)", e.Code, e.Message, e.Element)
}

// IsMalformedData returns true if the error is a MalformedDataError.
// Uses errors.As to handle wrapped errors.
func IsMalformedData(err error) bool {
	var me *MalformedDataError
	return errors.As(err, &me)
}

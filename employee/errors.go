/*
errors.go - Centralized error types for the employee model

PURPOSE:
  All model error types in one place for consistency and discoverability.
  The roster and codec packages wrap or return these unchanged; nothing in
  the model logs or reports - callers decide how to surface failures.

ERROR CATEGORIES:
  1. Field errors - a name/email/image/wage value fails its validator
  2. Category errors - a role or department code outside the enumerated set
  3. Record errors - a persisted line that cannot map to any record shape
  4. Access errors - roster index out of range

USAGE:
  Callers match with errors.Is / errors.As:

    if errors.Is(err, employee.ErrInvalidField) {
        var fe *employee.InvalidFieldError
        errors.As(err, &fe)
        highlight(fe.Field)
    }

SEE ALSO:
  - validate.go: Produces field and category errors
  - employee.go: Propagates them from constructors and setters
*/
package employee

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidField is returned when a name, email, image, or wage value
	// fails its validator.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidCategory is returned when a role or department code is not
	// in the enumerated set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrMalformedRecord is returned when a persisted line has an
	// unrecognized category tag or the wrong number of fields.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrIndexOutOfRange is returned on roster access with an invalid position.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCategoryMismatch is returned when a variant-specific setter is
	// applied to a record of a different category.
	ErrCategoryMismatch = errors.New("field not present on this category")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidFieldError identifies which field was rejected and what value it saw.
type InvalidFieldError struct {
	Field  string // "name", "email", "image", "yearly", "hourly"
	Value  string // offending value, rendered as text
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidField
}

// InvalidCategoryError carries the raw value that failed enum membership:
// the integer code, or - for persisted name fields - the raw name text.
type InvalidCategoryError struct {
	Kind string // "role" or "department"
	Code int
	Name string // set instead of Code when a persisted name failed lookup
}

func (e *InvalidCategoryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%q is not a valid %s", e.Name, e.Kind)
	}
	return fmt.Sprintf("%d is not a valid %s", e.Code, e.Kind)
}

func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// IndexOutOfRangeError reports an invalid roster position.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for roster of %d", e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error came from field or category
// validation, as opposed to a structural (malformed line, bad index) failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidField) || errors.Is(err, ErrInvalidCategory)
}

// Package domainerr defines the error taxonomy shared by the domain
// services and repositories. Validation failures carry the offending
// field and the violated constraint; lookups that find nothing return
// (or wrap) ErrNotFound.
package domainerr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when a lookup by identifier
// yields nothing. The domain services themselves never produce it;
// they assume they are handed already-resolved entities.
var ErrNotFound = errors.New("not found")

// Violation names a single violated constraint on a field.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError reports one or more field constraint violations.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Constraint)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Invalid builds a single-violation ValidationError.
func Invalid(field, constraint string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Constraint: constraint}}}
}

// Add appends a violation. Used to aggregate per-field failures into
// one error when constructing an aggregate.
func (e *ValidationError) Add(field, constraint string) {
	e.Violations = append(e.Violations, Violation{Field: field, Constraint: constraint})
}

// Merge folds err's violations into e when err is a ValidationError.
// Non-validation errors are ignored.
func (e *ValidationError) Merge(err error) {
	if ve := AsValidation(err); ve != nil {
		e.Violations = append(e.Violations, ve.Violations...)
	}
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool { return len(e.Violations) == 0 }

// AsValidation unwraps err into a *ValidationError, or nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

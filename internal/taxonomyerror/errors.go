// Package taxonomyerror defines the typed errors returned by taxonomy
// mutations. Callers inspect them with errors.As and errors.Is.
package taxonomyerror

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a structural mutation is requested while
// another one is still in flight.
var ErrBusy = errors.New("another taxonomy mutation is in progress")

// ValidationError represents rejected input to a mutation
type ValidationError struct {
	Kind   string
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s='%s': %s", e.Kind, e.Field, e.Value, e.Reason)
}

// NotFoundError represents a registry lookup that matched nothing
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found in registry", e.Kind, e.Name)
}

// CascadeError represents an unexpected failure while computing the
// collections affected by a mutation. Nothing was applied.
type CascadeError struct {
	Operation string
	Kind      string
	Err       error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Operation, e.Kind, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

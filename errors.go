package fern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingVariable is matched by errors returned when no candidate variable is set
// and no default applies.
var ErrMissingVariable = errors.New("missing environment variable")

// ErrInvalidMode is matched by errors returned when the mode variable holds an unknown mode.
var ErrInvalidMode = errors.New("invalid mode")

// ErrCoercion is matched by errors returned when a value could not be converted.
var ErrCoercion = errors.New("coercion failed")

var errNoCoercer = errors.New("no conversion from string")

// MissingVariableError lists the candidate names that were checked.
type MissingVariableError struct {
	Keys Keys
}

func (e *MissingVariableError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, key := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", key)
	}

	return fmt.Sprintf("%s: %s", ErrMissingVariable, strings.Join(quoted, ", "))
}

// Is reports whether target is ErrMissingVariable.
func (e *MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}

// InvalidModeError carries the rejected mode and the accepted ones.
type InvalidModeError struct {
	Variable string
	Value    string
	Valid    []string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%s: %s must be one of %v, not %q", ErrInvalidMode, e.Variable, e.Valid, e.Value)
}

// Is reports whether target is ErrInvalidMode.
func (e *InvalidModeError) Is(target error) bool {
	return target == ErrInvalidMode
}

// CoercionError carries the variable, its raw value and the conversion failure.
type CoercionError struct {
	Key   string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %v", ErrCoercion, e.Key, e.Value, e.Err)
}

// Unwrap exposes both ErrCoercion and the underlying conversion error.
func (e *CoercionError) Unwrap() []error {
	return []error{ErrCoercion, e.Err}
}

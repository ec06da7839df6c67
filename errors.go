package tristate

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNoValue indicates the wrapped value was read while the slot is
	// null or undefined.
	ErrNoValue = errors.New("value is null or undefined")

	// ErrCoerce indicates a wire token could not be coerced into the
	// wrapper's element type.
	ErrCoerce = errors.New("coerce failed")

	// ErrNotTriState indicates a type that is not a Value instantiation
	// reached codec construction. This is a contract violation, not a
	// runtime data error.
	ErrNotTriState = errors.New("not a tri-state type")
)

// CoerceError reports a failed coercion of a wire token into a wrapper's
// element type. With the default lenient policy it is never returned to
// callers; it is carried on the coercion-failure signal and, in strict
// mode, surfaced through the engine's error reporting.
type CoerceError struct {
	Err      error  // Underlying sentinel error (ErrCoerce)
	TypeName string // Wrapper type that rejected the token
	Cause    error  // Original error from the element decode
}

func (e *CoerceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s into %s: %v", e.Err.Error(), e.TypeName, e.Cause)
	}
	return fmt.Sprintf("%s into %s", e.Err.Error(), e.TypeName)
}

func (e *CoerceError) Unwrap() error {
	return e.Err
}

// newCoerceError creates a CoerceError for a rejected wire token.
func newCoerceError(typeName string, cause error) error {
	return &CoerceError{
		Err:      ErrCoerce,
		TypeName: typeName,
		Cause:    cause,
	}
}

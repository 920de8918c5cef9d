package colour

import "fmt"

// ValidationError reports an out-of-range or malformed argument passed to a
// constructor or batch operation. It is returned immediately at the call
// boundary and is never used for the documented perceptual corrections
// (gamut mapping, near-black soft clamp), which are part of the algorithms.
type ValidationError struct {
	// Field is the name of the offending parameter (e.g. "hex", "ior").
	Field string

	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

package services

import "fmt"

// ValidationError reports a rejected input with enough context for the
// caller to build a user-facing message. Validation failures are
// surfaced before any computation happens; a call never returns a
// partially computed result.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

package errors

import "fmt"

// ValidationError reports a task field that is missing or violates its limits.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func TooLong(field string, max int) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
}

package domain

// ValidationError signals missing or malformed input. The message is safe
// to return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError with the given user-facing message.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

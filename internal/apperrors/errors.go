package apperrors

import "errors"

// ErrNotFound signals that a job id did not resolve to a record.
// The message is what the API surfaces to the caller.
var ErrNotFound = errors.New("Job not found")

// ValidationError carries a human-readable message about missing or
// malformed input. Nothing is persisted when one is returned.
type ValidationError struct {
	msg string
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

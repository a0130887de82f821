package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDueDate     = errors.New("due date is required")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrEmptyCategory    = errors.New("category is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrConfigExists     = errors.New("config file already exists")
)

// ValidationError reports task input that breaks a validation rule.
// It wraps one of the domain sentinel errors so callers can use errors.Is.
type ValidationError struct {
	Err   error  // Sentinel describing the rule that failed
	Field string // Name of the offending field
}

// Error returns the human-readable reason.
func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package shared

import (
	"github.com/runoshun/tasklist/internal/domain"
)

// ParsePriority converts user text into a Priority.
// Unrecognized text is reported as a *domain.ValidationError.
func ParsePriority(s string) (domain.Priority, error) {
	p, ok := domain.ParsePriority(s)
	if !ok {
		return "", &domain.ValidationError{Field: "priority", Err: domain.ErrInvalidPriority}
	}
	return p, nil
}

// ParseStatus converts user text into a Status.
// Unrecognized text is reported as a *domain.ValidationError.
func ParseStatus(s string) (domain.Status, error) {
	st, ok := domain.ParseStatus(s)
	if !ok {
		return "", &domain.ValidationError{Field: "status", Err: domain.ErrInvalidStatus}
	}
	return st, nil
}

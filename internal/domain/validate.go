package domain

import "strings"

// Validate checks the rules every stored task must satisfy.
// Rules are checked in a fixed order and the first failure is returned
// as a *ValidationError.
func Validate(t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	if strings.TrimSpace(t.DueDate) == "" {
		return &ValidationError{Field: "dueDate", Err: ErrEmptyDueDate}
	}
	if !t.Priority.IsValid() {
		return &ValidationError{Field: "priority", Err: ErrInvalidPriority}
	}
	if strings.TrimSpace(t.Category) == "" {
		return &ValidationError{Field: "category", Err: ErrEmptyCategory}
	}
	return nil
}

// ValidateDraft applies the Validate rules to a draft.
func ValidateDraft(d Draft) error {
	return Validate(d.Task())
}

// Task converts the draft into a task with no ID and the initial status.
// The title is trimmed; the description is kept as given ("" when empty).
func (d Draft) Task() Task {
	return Task{
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Priority:    d.Priority,
		DueDate:     strings.TrimSpace(d.DueDate),
		Category:    d.Category,
		Status:      StatusPending,
	}
}

// Normalize returns the patch with the same input cleanup Draft.Task
// applies: the title and due date lose surrounding whitespace.
func (p Patch) Normalize() Patch {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if p.DueDate != nil {
		due := strings.TrimSpace(*p.DueDate)
		p.DueDate = &due
	}
	return p
}

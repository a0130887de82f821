// Package domain contains core business entities and interfaces.
package domain

// Task represents a single to-do record.
// Fields are ordered to minimize memory padding.
type Task struct {
	Title       string   `json:"title" yaml:"title"`             // Title (required)
	Description string   `json:"description" yaml:"description"` // Description (may be empty, never absent)
	Priority    Priority `json:"priority" yaml:"priority"`       // High, Medium or Low
	DueDate     string   `json:"dueDate" yaml:"dueDate"`         // ISO calendar date (YYYY-MM-DD)
	Category    string   `json:"category" yaml:"category"`       // Free-form label (required)
	Status      Status   `json:"status" yaml:"status"`           // Current status
	ID          int      `json:"id" yaml:"id"`                   // Task ID (assigned by the store)
}

// Draft is the caller-supplied field bundle for creating a task.
// Status is accepted for symmetry with Task but is always ignored:
// new tasks start as StatusPending.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	Category    string
	Status      Status
}

// Patch is a partial update for an existing task.
// A nil field preserves the current value; a non-nil field overrides it.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *string
	Category    *string
	Status      *Status
}

// IsEmpty returns true if the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && p.Category == nil && p.Status == nil
}

// Apply returns a copy of t with the patch fields merged on top.
// The ID is never changed.
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

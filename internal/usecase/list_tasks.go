package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/view"
)

// ListTasksInput contains the parameters for listing tasks.
// Empty Category or Status means all; empty Sort uses the configured default.
type ListTasksInput struct {
	Text     string // Search text matched against title and description
	Category string // Exact category, "" or view.All for every category
	Status   string // Status text, "" or view.All for every status
	Sort     string // Sort key; unknown keys keep insertion order
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Items      []view.Item  // Matching tasks with derived fields, in view order
	Categories []string     // Every category in the collection, first-seen order
	Sort       view.SortKey // Sort key that was applied
	Total      int          // Number of tasks in the collection
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks       domain.TaskRepository
	pipeline    *view.Pipeline
	clock       domain.Clock
	defaultSort view.SortKey
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, pipeline *view.Pipeline, clock domain.Clock, defaultSort view.SortKey) *ListTasks {
	return &ListTasks{
		tasks:       tasks,
		pipeline:    pipeline,
		clock:       clock,
		defaultSort: defaultSort,
	}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	sortKey := uc.defaultSort
	if strings.TrimSpace(in.Sort) != "" {
		// Unknown keys pass through and leave the order untouched.
		sortKey, _ = view.ParseSortKey(in.Sort)
	}

	status := in.Status
	if strings.EqualFold(status, view.All) {
		status = ""
	} else if s, ok := domain.ParseStatus(status); ok {
		status = string(s)
	}

	all := uc.tasks.List()
	derived := uc.pipeline.Derive(all, view.Criteria{
		Text:     in.Text,
		Category: in.Category,
		Status:   status,
		Sort:     sortKey,
	})

	return &ListTasksOutput{
		Items:      view.Items(derived, uc.clock.Now()),
		Categories: uc.tasks.Categories(),
		Sort:       sortKey,
		Total:      len(all),
	}, nil
}

// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Values are raw user text; Priority accepts the forms domain.ParsePriority knows.
type NewTaskInput struct {
	Title       string // Task title (required)
	Description string // Task description (optional)
	Priority    string // High, Medium or Low (required)
	DueDate     string // YYYY-MM-DD (required)
	Category    string // Category label (required)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks domain.TaskRepository
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository) *NewTask {
	return &NewTask{
		tasks: tasks,
	}
}

// Execute creates a new task with the given input.
// Invalid input is reported as a *domain.ValidationError in the store's rule order.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	// An unrecognized priority stays as typed so validation reports it in order.
	priority, _ := domain.ParsePriority(in.Priority)

	task, err := uc.tasks.Create(domain.Draft{
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     in.DueDate,
		Category:    in.Category,
	})
	if err != nil {
		return nil, err
	}

	return &NewTaskOutput{Task: task}, nil
}

package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskID are optional. Only non-nil fields will be updated.
type EditTaskInput struct {
	Title       *string // New title (nil = no change)
	Description *string // New description (nil = no change)
	Priority    *string // New priority (nil = no change)
	DueDate     *string // New due date (nil = no change)
	Category    *string // New category (nil = no change)
	Status      *string // New status (nil = no change)
	TaskID      int     // Task ID to edit (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks domain.TaskRepository
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository) *EditTask {
	return &EditTask{
		tasks: tasks,
	}
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	patch := domain.Patch{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Category:    in.Category,
	}

	if in.Priority != nil {
		p, err := shared.ParsePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		patch.Priority = &p
	}
	if in.Status != nil {
		s, err := shared.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &s
	}

	// Validate that at least one field is being updated
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := uc.tasks.Update(in.TaskID, patch)
	if err != nil {
		return nil, err
	}

	return &EditTaskOutput{Task: task}, nil
}

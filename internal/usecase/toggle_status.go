package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// ToggleStatusInput contains the parameters for advancing a task's status.
type ToggleStatusInput struct {
	TaskID int // Task ID (required)
}

// ToggleStatusOutput contains the result of advancing a task's status.
type ToggleStatusOutput struct {
	Task *domain.Task  // The task with its new status
	From domain.Status // Status before the toggle
}

// ToggleStatus is the use case for cycling Pending → InProgress → Completed.
type ToggleStatus struct {
	tasks domain.TaskRepository
}

// NewToggleStatus creates a new ToggleStatus use case.
func NewToggleStatus(tasks domain.TaskRepository) *ToggleStatus {
	return &ToggleStatus{
		tasks: tasks,
	}
}

// Execute advances the task's status.
// The store ignores unknown ids; here they become domain.ErrTaskNotFound
// so front ends can tell the user.
func (uc *ToggleStatus) Execute(_ context.Context, in ToggleStatusInput) (*ToggleStatusOutput, error) {
	before, ok := uc.tasks.Get(in.TaskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	task, err := uc.tasks.ToggleStatus(in.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return &ToggleStatusOutput{Task: task, From: before.Status}, nil
}

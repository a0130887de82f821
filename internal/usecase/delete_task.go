package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task    *domain.Task // The removed task (nil when nothing was removed)
	Removed bool         // Whether a task was removed
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks domain.TaskRepository
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository) *DeleteTask {
	return &DeleteTask{
		tasks: tasks,
	}
}

// Execute deletes the task with the given ID.
// A missing task is not an error; the output reports Removed = false.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, ok := uc.tasks.Get(in.TaskID)

	removed, err := uc.tasks.Remove(in.TaskID)
	if err != nil {
		return nil, err
	}

	out := &DeleteTaskOutput{Removed: removed}
	if removed && ok {
		out.Task = &task
	}
	return out, nil
}

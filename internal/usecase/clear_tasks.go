package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ClearTasksInput contains the parameters for removing every task.
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of removing every task.
type ClearTasksOutput struct {
	Cleared int // Number of tasks removed
}

// ClearTasks is the use case for removing every task.
type ClearTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(tasks domain.TaskRepository, logger domain.Logger) *ClearTasks {
	return &ClearTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes every task and persists the empty collection.
func (uc *ClearTasks) Execute(_ context.Context, _ ClearTasksInput) (*ClearTasksOutput, error) {
	count := len(uc.tasks.List())

	if err := uc.tasks.ClearAll(); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "usecase", fmt.Sprintf("cleared %d tasks", count))
	}

	return &ClearTasksOutput{Cleared: count}, nil
}

// Package shared holds helpers used by several use cases.
package shared

import (
	"github.com/runoshun/tasklist/internal/domain"
)

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if not found.
// This centralizes the common pattern of:
//
//	task, ok := repo.Get(taskID)
//	if !ok { return nil, domain.ErrTaskNotFound }
func GetTask(repo domain.TaskRepository, taskID int) (*domain.Task, error) {
	task, ok := repo.Get(taskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

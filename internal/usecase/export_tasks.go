package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasklist/internal/domain"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // "json" (default) or "yaml"
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Data  []byte // Serialized tasks in insertion order
	Count int    // Number of exported tasks
}

// ExportTasks is the use case for serializing the whole collection.
type ExportTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute serializes every task in the requested format.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.List()
	if tasks == nil {
		tasks = []domain.Task{}
	}

	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = ExportFormatJSON
	}

	var data []byte
	var err error
	switch format {
	case ExportFormatJSON:
		data, err = json.MarshalIndent(tasks, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case ExportFormatYAML, "yml":
		data, err = yaml.Marshal(tasks)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFormat, in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	if uc.logger != nil {
		uc.logger.Debug(0, "usecase", fmt.Sprintf("exported %d tasks as %s", len(tasks), format))
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}

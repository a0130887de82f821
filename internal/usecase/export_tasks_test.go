package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasklist/internal/domain"
)

func TestExportTasks_Execute_JSON(t *testing.T) {
	store, _ := newTestStore(t)
	seedTask(t, store, "Pay rent", domain.PriorityMedium, "2024-05-03", "Home")
	uc := NewExportTasks(store, nil)

	out, err := uc.Execute(context.Background(), ExportTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.JSONEq(t, `[{
		"id": 1,
		"title": "Pay rent",
		"description": "",
		"priority": "Medium",
		"dueDate": "2024-05-03",
		"category": "Home",
		"status": "Pending"
	}]`, string(out.Data))
}

func TestExportTasks_Execute_YAML(t *testing.T) {
	store, _ := newTestStore(t)
	seedTask(t, store, "Pay rent", domain.PriorityMedium, "2024-05-03", "Home")
	seedTask(t, store, "Buy milk", domain.PriorityHigh, "2024-05-01", "Home")
	uc := NewExportTasks(store, nil)

	out, err := uc.Execute(context.Background(), ExportTasksInput{Format: "YAML"})
	require.NoError(t, err)

	var decoded []domain.Task
	require.NoError(t, yaml.Unmarshal(out.Data, &decoded))
	// Insertion order, not view order
	assert.Equal(t, store.List(), decoded)
	assert.Contains(t, string(out.Data), "title: Pay rent")
}

func TestExportTasks_Execute_Empty(t *testing.T) {
	store, _ := newTestStore(t)
	uc := NewExportTasks(store, nil)

	out, err := uc.Execute(context.Background(), ExportTasksInput{Format: "json"})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.JSONEq(t, `[]`, string(out.Data))
}

func TestExportTasks_Execute_UnknownFormat(t *testing.T) {
	store, _ := newTestStore(t)
	uc := NewExportTasks(store, nil)

	_, err := uc.Execute(context.Background(), ExportTasksInput{Format: "csv"})

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

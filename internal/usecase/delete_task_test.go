package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/domain"
)

func TestDeleteTask_Execute_Success(t *testing.T) {
	store, _ := newTestStore(t)
	first := seedTask(t, store, "Buy milk", domain.PriorityHigh, "2024-05-01", "Home")
	second := seedTask(t, store, "Pay rent", domain.PriorityMedium, "2024-05-03", "Home")
	uc := NewDeleteTask(store)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: first.ID})

	require.NoError(t, err)
	assert.True(t, out.Removed)
	require.NotNil(t, out.Task)
	assert.Equal(t, "Buy milk", out.Task.Title)
	assert.Equal(t, []domain.Task{*second}, store.List())
}

func TestDeleteTask_Execute_MissingIsNoop(t *testing.T) {
	store, slot := newTestStore(t)
	seedTask(t, store, "Buy milk", domain.PriorityHigh, "2024-05-01", "Home")
	writes := slot.Writes
	uc := NewDeleteTask(store)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 99})

	require.NoError(t, err)
	assert.False(t, out.Removed)
	assert.Nil(t, out.Task)
	assert.Equal(t, writes, slot.Writes)
	assert.Len(t, store.List(), 1)
}

func TestDeleteTask_Execute_WriteError(t *testing.T) {
	store, slot := newTestStore(t)
	task := seedTask(t, store, "Buy milk", domain.PriorityHigh, "2024-05-01", "Home")
	slot.WriteErr = errors.New("read-only")
	uc := NewDeleteTask(store)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: task.ID})

	require.Error(t, err)
	assert.Len(t, store.List(), 1)
}

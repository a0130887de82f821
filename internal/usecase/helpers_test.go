package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/taskstore"
	"github.com/runoshun/tasklist/internal/testutil"
)

// newTestStore returns a loaded store over an empty in-memory slot.
func newTestStore(t *testing.T) (*taskstore.Store, *testutil.MemorySlot) {
	t.Helper()
	slot := testutil.NewMemorySlot(nil)
	store := taskstore.New(slot, nil)
	store.Load()
	return store, slot
}

// seedTask creates a task directly through the store.
func seedTask(t *testing.T, store *taskstore.Store, title string, p domain.Priority, due, category string) *domain.Task {
	t.Helper()
	task, err := store.Create(domain.Draft{
		Title:    title,
		Priority: p,
		DueDate:  due,
		Category: category,
	})
	require.NoError(t, err)
	return task
}

func fixedClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)}
}

func strPtr(s string) *string {
	return &s
}

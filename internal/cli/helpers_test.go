package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/taskstore"
	"github.com/runoshun/tasklist/internal/testutil"
)

// newTestContainer returns a container over an in-memory slot with a fixed clock.
func newTestContainer(t *testing.T) (*app.Container, *taskstore.Store, *testutil.MemorySlot) {
	t.Helper()
	slot := testutil.NewMemorySlot(nil)
	store := taskstore.New(slot, nil)
	store.Load()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	c := app.NewWithDeps(app.Config{DataDir: t.TempDir(), SlotPath: "memory"}, store, clock, nil)
	return c, store, slot
}

// runCommand executes the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, c *app.Container, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func seed(t *testing.T, store *taskstore.Store, title string, p domain.Priority, due, category string) *domain.Task {
	t.Helper()
	task, err := store.Create(domain.Draft{Title: title, Priority: p, DueDate: due, Category: category})
	if err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
	return task
}

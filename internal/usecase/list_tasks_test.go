package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/taskstore"
	"github.com/runoshun/tasklist/internal/view"
)

func titles(items []view.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Task.Title)
	}
	return out
}

func seedListStore(t *testing.T) *taskstore.Store {
	t.Helper()
	store, _ := newTestStore(t)
	seedTask(t, store, "Pay rent", domain.PriorityMedium, "2024-05-03", "Home")
	seedTask(t, store, "Buy milk", domain.PriorityHigh, "2024-05-01", "Home")
	seedTask(t, store, "Write report", domain.PriorityLow, "2024-04-28", "Work")
	return store
}

func TestListTasks_Execute_DefaultSort(t *testing.T) {
	store := seedListStore(t)
	uc := NewListTasks(store, view.New(view.DefaultLocale), fixedClock(), view.SortDueDateAsc)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Write report", "Buy milk", "Pay rent"}, titles(out.Items))
	assert.Equal(t, view.SortDueDateAsc, out.Sort)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, []string{"Home", "Work"}, out.Categories)
}

func TestListTasks_Execute_DerivedFields(t *testing.T) {
	store := seedListStore(t)
	uc := NewListTasks(store, view.New(view.DefaultLocale), fixedClock(), view.SortDueDateAsc)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "Overdue by 3d", out.Items[0].DueLabel)
	assert.Equal(t, "0d", out.Items[1].DueLabel)
	assert.Equal(t, "2d", out.Items[2].DueLabel)
}

func TestListTasks_Execute_Filters(t *testing.T) {
	store := seedListStore(t)
	_, err := store.ToggleStatus(2) // Buy milk -> InProgress
	require.NoError(t, err)
	uc := NewListTasks(store, view.New(view.DefaultLocale), fixedClock(), view.SortDueDateAsc)

	tests := []struct {
		name string
		in   ListTasksInput
		want []string
	}{
		{"text", ListTasksInput{Text: "MILK"}, []string{"Buy milk"}},
		{"category", ListTasksInput{Category: "Work"}, []string{"Write report"}},
		{"category all", ListTasksInput{Category: view.All}, []string{"Write report", "Buy milk", "Pay rent"}},
		{"status parsed", ListTasksInput{Status: "in-progress"}, []string{"Buy milk"}},
		{"status legacy", ListTasksInput{Status: "Pendente"}, []string{"Write report", "Pay rent"}},
		{"status all lower case", ListTasksInput{Status: "all"}, []string{"Write report", "Buy milk", "Pay rent"}},
		{"status all upper case", ListTasksInput{Status: "ALL"}, []string{"Write report", "Buy milk", "Pay rent"}},
		{"category all is exact", ListTasksInput{Category: "all"}, []string{}},
		{"unknown status matches nothing", ListTasksInput{Status: "blocked"}, []string{}},
		{"combined", ListTasksInput{Text: "r", Category: "Home"}, []string{"Pay rent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(out.Items))
			assert.Equal(t, 3, out.Total)
		})
	}
}

func TestListTasks_Execute_SortOverride(t *testing.T) {
	store := seedListStore(t)
	uc := NewListTasks(store, view.New(view.DefaultLocale), fixedClock(), view.SortDueDateAsc)

	out, err := uc.Execute(context.Background(), ListTasksInput{Sort: "titulo_asc"})
	require.NoError(t, err)
	assert.Equal(t, view.SortTitleAsc, out.Sort)
	assert.Equal(t, []string{"Buy milk", "Pay rent", "Write report"}, titles(out.Items))

	out, err = uc.Execute(context.Background(), ListTasksInput{Sort: "priority-asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk", "Pay rent", "Write report"}, titles(out.Items))
}

func TestListTasks_Execute_UnknownSortKeepsInsertionOrder(t *testing.T) {
	store := seedListStore(t)
	uc := NewListTasks(store, view.New(view.DefaultLocale), fixedClock(), view.SortDueDateAsc)

	out, err := uc.Execute(context.Background(), ListTasksInput{Sort: "random"})

	require.NoError(t, err)
	assert.Equal(t, view.SortKey("random"), out.Sort)
	assert.Equal(t, []string{"Pay rent", "Buy milk", "Write report"}, titles(out.Items))
}

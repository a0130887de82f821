package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/taskstore"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/runoshun/tasklist/internal/view"
)

// newTestModel returns a model over three seeded tasks.
// Default sort is by due date, so the order is #2, #1, #3.
func newTestModel(t *testing.T) (*Model, *taskstore.Store, *testutil.MemorySlot) {
	t.Helper()
	slot := testutil.NewMemorySlot(nil)
	store := taskstore.New(slot, nil)
	store.Load()

	drafts := []domain.Draft{
		{Title: "Buy milk", Priority: domain.PriorityHigh, DueDate: "2024-05-02", Category: "Home"},
		{Title: "Write report", Priority: domain.PriorityLow, DueDate: "2024-04-28", Category: "Work"},
		{Title: "Pay rent", Priority: domain.PriorityMedium, DueDate: "2024-05-10", Category: "Home"},
	}
	for _, d := range drafts {
		_, err := store.Create(d)
		require.NoError(t, err)
	}

	clock := &testutil.MockClock{NowTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	c := app.NewWithDeps(app.Config{DataDir: t.TempDir(), SlotPath: "memory"}, store, clock, nil)
	return New(c), store, slot
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func ids(m *Model) []int {
	out := make([]int, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.Task.ID)
	}
	return out
}

func TestNew_DerivesItems(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, []int{2, 1, 3}, ids(m))
	assert.Equal(t, []string{"Home", "Work"}, m.categories)
	assert.Equal(t, 3, m.total)
	assert.Equal(t, view.SortDueDateAsc, m.sortKey)
	assert.Equal(t, "Overdue by 3d", m.items[0].DueLabel)
	assert.Nil(t, m.Init())
}

func TestNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.cursor)

	press(t, m, runes("k"))
	assert.Equal(t, 1, m.cursor)

	press(t, m, runes("g"))
	assert.Equal(t, 0, m.cursor)

	press(t, m, runes("G"))
	assert.Equal(t, 2, m.cursor)
	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, 3, m.SelectedItem().Task.ID)
}

func TestToggleStatus(t *testing.T) {
	m, store, _ := newTestModel(t)

	cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	require.NotNil(t, cmd)
	task, ok := store.Get(2)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, "Task #2: Pending → In Progress", m.message)
	assert.Equal(t, domain.StatusInProgress, m.items[0].Task.Status)
}

func TestToggleStatus_WriteFailure(t *testing.T) {
	m, store, slot := newTestModel(t)
	slot.WriteErr = errors.New("disk full")

	press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.Error(t, m.err)
	task, _ := store.Get(2)
	assert.Equal(t, domain.StatusPending, task.Status)

	// Any key press clears the error.
	press(t, m, runes("j"))
	assert.NoError(t, m.err)
}

func TestDelete_Confirm(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(t, m, runes("d"))
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmDelete, m.confirmAction)
	assert.Equal(t, 2, m.confirmTaskID)

	cmd := press(t, m, runes("y"))

	require.NotNil(t, cmd)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, ConfirmNone, m.confirmAction)
	_, ok := store.Get(2)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 3}, ids(m))
	assert.Equal(t, "Removed task #2", m.message)
}

func TestDelete_Cancel(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(t, m, runes("d"), runes("n"))

	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, store.List(), 3)
	assert.Empty(t, m.message)
}

func TestClear_Confirm(t *testing.T) {
	m, store, _ := newTestModel(t)
	press(t, m, runes("c"))
	require.Equal(t, "Home", m.category)

	press(t, m, runes("D"))
	assert.Equal(t, ConfirmClear, m.confirmAction)
	press(t, m, runes("y"))

	assert.Empty(t, store.List())
	assert.Empty(t, m.items)
	assert.Empty(t, m.category)
	assert.Equal(t, "Removed 3 tasks", m.message)

	// Nothing left to clear.
	press(t, m, runes("D"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "No tasks to clear", m.message)
}

func TestCycleCategory(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("c"))
	assert.Equal(t, "Home", m.category)
	assert.Equal(t, []int{1, 3}, ids(m))

	press(t, m, runes("c"))
	assert.Equal(t, "Work", m.category)
	assert.Equal(t, []int{2}, ids(m))

	press(t, m, runes("c"))
	assert.Empty(t, m.category)
	assert.Len(t, m.items, 3)
}

func TestCategoryResetsWhenLastTaskRemoved(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(t, m, runes("c"), runes("c"))
	require.Equal(t, "Work", m.category)

	press(t, m, runes("d"), runes("y"))

	assert.Empty(t, m.category)
	assert.Equal(t, []string{"Home"}, m.categories)
	assert.Equal(t, []int{1, 3}, ids(m))
}

func TestCycleStatus(t *testing.T) {
	m, store, _ := newTestModel(t)
	_, err := store.ToggleStatus(1)
	require.NoError(t, err)

	press(t, m, runes("f"))
	assert.Equal(t, string(domain.StatusPending), m.status)
	assert.Equal(t, []int{2, 3}, ids(m))

	press(t, m, runes("f"))
	assert.Equal(t, string(domain.StatusInProgress), m.status)
	assert.Equal(t, []int{1}, ids(m))

	press(t, m, runes("f"))
	assert.Equal(t, string(domain.StatusCompleted), m.status)
	assert.Empty(t, m.items)

	press(t, m, runes("f"))
	assert.Empty(t, m.status)
	assert.Len(t, m.items, 3)
}

func TestCycleSort(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(t, m, runes("s"))

	require.NotNil(t, cmd)
	assert.Equal(t, view.SortDueDateDesc, m.sortKey)
	assert.Equal(t, []int{3, 1, 2}, ids(m))
	assert.Equal(t, "Sort: due date ↓", m.message)
}

func TestSearch(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("/"))
	require.Equal(t, ModeSearch, m.mode)
	assert.True(t, m.mode.IsInputMode())

	// Keys that are bindings in normal mode are typed as text here.
	press(t, m, runes("r"), runes("e"), runes("p"))
	assert.Equal(t, "rep", m.searchInput.Value())
	assert.Equal(t, []int{2}, ids(m))

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, []int{2}, ids(m))

	// Escape from a new search drops the query.
	press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.searchInput.Value())
	assert.Len(t, m.items, 3)
}

func TestResetFilters(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(t, m, runes("c"), runes("f"), runes("s"))

	press(t, m, runes("r"))

	assert.Empty(t, m.category)
	assert.Empty(t, m.status)
	assert.Equal(t, view.SortDueDateAsc, m.sortKey)
	assert.Len(t, m.items, 3)
}

func TestClearMessage(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(t, m, runes("s"))
	first := m.messageSeq
	press(t, m, runes("s"))

	// A stale timer leaves the newer message in place.
	press(t, m, MsgClearMessage{Seq: first})
	assert.NotEmpty(t, m.message)

	press(t, m, MsgClearMessage{Seq: m.messageSeq})
	assert.Empty(t, m.message)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpMode(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(t, m, runes("?"))
	assert.Equal(t, ModeHelp, m.mode)
	assert.True(t, m.help.ShowAll)

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
	assert.False(t, m.help.ShowAll)
}

func TestNextOption(t *testing.T) {
	options := []string{"a", "b"}
	tests := []struct {
		current string
		want    string
	}{
		{"", "a"},
		{"a", "b"},
		{"b", ""},
		{"gone", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextOption(options, tt.current), "current=%q", tt.current)
	}
	assert.Empty(t, nextOption(nil, ""))
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/runoshun/tasklist/internal/view"
)

// messageTimeout is how long a transient status message stays visible.
const messageTimeout = 3 * time.Second

// Model is the main bubbletea model for the TUI.
//
// The task store is not safe for concurrent use, so every use case runs
// synchronously inside Update rather than in a tea.Cmd goroutine.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	items      []view.Item
	categories []string

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	searchInput textinput.Model
	form        taskForm

	// Filter state
	category string // "" means every category
	status   string // "" means every status
	message  string
	sortKey  view.SortKey

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	width         int
	height        int
	cursor        int
	total         int
	confirmTaskID int
	messageSeq    int
}

// New creates a new TUI Model with the given container.
// The task list is derived before New returns.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search title or description..."
	si.CharLimit = 100

	m := &Model{
		container:   c,
		mode:        ModeNormal,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		searchInput: si,
		form:        newTaskForm(),
		sortKey:     c.DefaultSort(),
	}
	m.refresh()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh re-derives the visible items from the store and current filters.
func (m *Model) refresh() {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
		Text:     m.searchInput.Value(),
		Category: m.category,
		Status:   m.status,
		Sort:     string(m.sortKey),
	})
	if err != nil {
		m.err = err
		return
	}
	m.categories = out.Categories
	if m.category != "" && !slices.Contains(m.categories, m.category) {
		// The filtered category disappeared with its last task.
		m.category = ""
		m.refresh()
		return
	}
	m.items = out.Items
	m.total = out.Total
	m.sortKey = out.Sort

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SelectedItem returns the item under the cursor, or nil if the view is empty.
func (m *Model) SelectedItem() *view.Item {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// setMessage shows a transient message and schedules its removal.
func (m *Model) setMessage(format string, args ...any) tea.Cmd {
	m.messageSeq++
	m.message = fmt.Sprintf(format, args...)
	seq := m.messageSeq
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return MsgClearMessage{Seq: seq}
	})
}

// cycleCategory moves the category filter to the next known category.
// After the last category the filter returns to every category.
func (m *Model) cycleCategory() {
	m.category = nextOption(m.categories, m.category)
}

// cycleStatus moves the status filter through every status and back to all.
func (m *Model) cycleStatus() {
	statuses := domain.AllStatuses()
	options := make([]string, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, string(s))
	}
	m.status = nextOption(options, m.status)
}

// nextOption returns the option after current, or "" after the last one.
// An unknown current value restarts at the first option.
func nextOption(options []string, current string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

// toggleSelected advances the status of the task under the cursor.
func (m *Model) toggleSelected() tea.Cmd {
	item := m.SelectedItem()
	if item == nil {
		return nil
	}
	out, err := m.container.ToggleStatusUseCase().Execute(context.Background(), usecase.ToggleStatusInput{
		TaskID: item.Task.ID,
	})
	if err != nil {
		m.err = err
		return nil
	}
	m.refresh()
	return m.setMessage("Task #%d: %s → %s", out.Task.ID, out.From.Display(), out.Task.Status.Display())
}

// deleteTask removes the task awaiting confirmation.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
		TaskID: taskID,
	})
	if err != nil {
		m.err = err
		return nil
	}
	m.refresh()
	if !out.Removed {
		return m.setMessage("Task #%d no longer exists", taskID)
	}
	return m.setMessage("Removed task #%d", taskID)
}

// clearTasks removes every task.
func (m *Model) clearTasks() tea.Cmd {
	out, err := m.container.ClearTasksUseCase().Execute(context.Background(), usecase.ClearTasksInput{})
	if err != nil {
		m.err = err
		return nil
	}
	m.category = ""
	m.refresh()
	return m.setMessage("Removed %d tasks", out.Cleared)
}

// openForm switches to the task form, prefilled from task when editing.
func (m *Model) openForm(task *domain.Task) tea.Cmd {
	m.mode = ModeForm
	return m.form.open(task)
}

// closeForm leaves the task form without saving.
func (m *Model) closeForm() {
	m.form.close()
	m.mode = ModeNormal
}

// submitForm creates or updates a task from the form inputs.
// A validation failure keeps the form open with the offending input focused.
func (m *Model) submitForm() tea.Cmd {
	var (
		task    *domain.Task
		err     error
		message string
	)
	if m.form.isEdit() {
		in := usecase.EditTaskInput{
			TaskID:      m.form.taskID,
			Title:       m.form.changed(FieldTitle),
			Description: m.form.changed(FieldDescription),
			Priority:    m.form.changed(FieldPriority),
			DueDate:     m.form.changed(FieldDueDate),
			Category:    m.form.changed(FieldCategory),
		}
		var out *usecase.EditTaskOutput
		out, err = m.container.EditTaskUseCase().Execute(context.Background(), in)
		if errors.Is(err, domain.ErrNoFieldsToUpdate) {
			m.closeForm()
			return m.setMessage("Task #%d unchanged", in.TaskID)
		}
		if err == nil {
			task, message = out.Task, "Updated task #%d"
		}
	} else {
		var out *usecase.NewTaskOutput
		out, err = m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title:       m.form.value(FieldTitle),
			Description: m.form.value(FieldDescription),
			Priority:    m.form.value(FieldPriority),
			DueDate:     m.form.value(FieldDueDate),
			Category:    m.form.value(FieldCategory),
		})
		if err == nil {
			task, message = out.Task, "Created task #%d"
		}
	}

	if err != nil {
		m.form.err = err
		if field, ok := fieldForError(err); ok {
			return m.form.focus(field)
		}
		return nil
	}

	m.closeForm()
	m.refresh()
	m.selectTask(task.ID)
	return m.setMessage(message, task.ID)
}

// selectTask moves the cursor onto the task when it is visible.
func (m *Model) selectTask(id int) {
	for i, it := range m.items {
		if it.Task.ID == id {
			m.cursor = i
			return
		}
	}
}

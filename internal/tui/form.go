package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/domain"
)

// FormField identifies an input of the task form.
type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
	FieldPriority
	FieldDueDate
	FieldCategory

	fieldCount = int(FieldCategory) + 1
)

// Next returns the following field, wrapping after the last one.
func (f FormField) Next() FormField {
	return FormField((int(f) + 1) % fieldCount)
}

// Prev returns the preceding field, wrapping before the first one.
func (f FormField) Prev() FormField {
	return FormField((int(f) + fieldCount - 1) % fieldCount)
}

// Label returns the caption shown next to the input.
func (f FormField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description (optional)"
	case FieldPriority:
		return "Priority"
	case FieldDueDate:
		return "Due date"
	case FieldCategory:
		return "Category"
	}
	return ""
}

// fieldForError maps a validation failure back to the input that caused it.
func fieldForError(err error) (FormField, bool) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return 0, false
	}
	switch ve.Field {
	case "title":
		return FieldTitle, true
	case "priority":
		return FieldPriority, true
	case "dueDate":
		return FieldDueDate, true
	case "category":
		return FieldCategory, true
	}
	return 0, false
}

// taskForm holds the inputs of the add/edit dialog.
// A zero taskID means the form creates a new task.
type taskForm struct {
	err     error
	inputs  [fieldCount]textinput.Model
	initial [fieldCount]string
	taskID  int
	field   FormField
}

func newTaskForm() taskForm {
	var f taskForm
	placeholders := [fieldCount]string{
		FieldTitle:       "What needs to be done?",
		FieldDescription: "Details...",
		FieldPriority:    "High, Medium or Low",
		FieldDueDate:     "YYYY-MM-DD",
		FieldCategory:    "Work, Home...",
	}
	limits := [fieldCount]int{
		FieldTitle:       200,
		FieldDescription: 500,
		FieldPriority:    20,
		FieldDueDate:     20,
		FieldCategory:    50,
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		f.inputs[i] = ti
	}
	return f
}

// open fills the form from task, or with defaults when task is nil,
// and focuses the title.
func (f *taskForm) open(task *domain.Task) tea.Cmd {
	values := [fieldCount]string{
		FieldPriority: string(domain.PriorityMedium),
	}
	f.taskID = 0
	if task != nil {
		f.taskID = task.ID
		values = [fieldCount]string{
			FieldTitle:       task.Title,
			FieldDescription: task.Description,
			FieldPriority:    string(task.Priority),
			FieldDueDate:     task.DueDate,
			FieldCategory:    task.Category,
		}
	}
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
		f.inputs[i].CursorEnd()
		// Keep what the input actually holds so unchanged fields are detected.
		f.initial[i] = f.inputs[i].Value()
	}
	f.err = nil
	return f.focus(FieldTitle)
}

// close blurs and empties every input.
func (f *taskForm) close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
		f.inputs[i].Reset()
	}
	f.err = nil
	f.taskID = 0
	f.field = FieldTitle
}

// focus moves the cursor to field.
func (f *taskForm) focus(field FormField) tea.Cmd {
	f.field = field
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[field].Focus()
}

// update forwards a key to the focused input.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.field], cmd = f.inputs[f.field].Update(msg)
	return cmd
}

func (f *taskForm) value(field FormField) string {
	return f.inputs[field].Value()
}

// changed returns a pointer to the field value when it differs from the
// value the form opened with, and nil otherwise.
func (f *taskForm) changed(field FormField) *string {
	v := f.inputs[field].Value()
	if v == f.initial[field] {
		return nil
	}
	return &v
}

// isEdit reports whether the form edits an existing task.
func (f *taskForm) isEdit() bool {
	return f.taskID != 0
}

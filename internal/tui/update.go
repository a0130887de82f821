package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.searchInput.Width = msg.Width - 20
		for i := range m.form.inputs {
			m.form.inputs[i].Width = max(min(msg.Width-30, 60), 20)
		}
		return m, nil

	case MsgClearMessage:
		if msg.Seq == m.messageSeq {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Category):
		m.cycleCategory()
		m.cursor = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Status):
		m.cycleStatus()
		m.cursor = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortKey = m.sortKey.Next()
		m.refresh()
		return m, m.setMessage("Sort: %s", m.sortKey.Display())

	case key.Matches(msg, m.keys.Reset):
		m.searchInput.Reset()
		m.category = ""
		m.status = ""
		m.sortKey = m.container.DefaultSort()
		m.cursor = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, m.openForm(nil)

	case key.Matches(msg, m.keys.Edit):
		item := m.SelectedItem()
		if item == nil {
			return m, nil
		}
		task := item.Task
		return m, m.openForm(&task)

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		item := m.SelectedItem()
		if item == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = item.Task.ID
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.total == 0 {
			return m, m.setMessage("No tasks to clear")
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

// handleSearchMode handles keys while editing the text filter.
// The view is re-derived on every keystroke.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.mode = ModeNormal
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.searchInput.Blur()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.cursor = 0
	m.refresh()
	return m, cmd
}

// handleFormMode handles keys in the add/edit task form.
// Enter saves from any input; tab and the arrows move between inputs.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m, m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.focus(m.form.field.Next())

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.focus(m.form.field.Prev())
	}

	return m, m.form.update(msg)
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		action := m.confirmAction
		taskID := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = 0

		switch action {
		case ConfirmDelete:
			return m, m.deleteTask(taskID)
		case ConfirmClear:
			return m, m.clearTasks()
		case ConfirmNone:
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = 0
		return m, nil
	}

	return m, nil
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.help.ShowAll = false
	}
	return m, nil
}

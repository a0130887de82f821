package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/view"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeSearch, ModeConfirm, ModeForm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeForm:
		b.WriteString("\n")
		b.WriteString(m.viewForm())
	case ModeNormal, ModeSearch, ModeHelp:
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the header with "Tasks" and task count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.items), m.total)
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 6 // padding
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewFilters renders the active filters and sort key.
func (m *Model) viewFilters() string {
	part := func(label, value string, active bool) string {
		if active {
			return label + ": " + m.styles.FilterOn.Render(value)
		}
		return label + ": " + value
	}

	category := view.All
	if m.category != "" {
		category = m.category
	}
	status := view.All
	if m.status != "" {
		status = domain.Status(m.status).Display()
	}

	parts := []string{
		part("category", category, m.category != ""),
		part("status", status, m.status != ""),
		part("sort", m.sortKey.Display(), false),
	}
	if q := m.searchInput.Value(); q != "" && m.mode != ModeSearch {
		parts = append(parts, part("search", q, true))
	}
	return m.styles.FilterBar.Render(strings.Join(parts, "  │  "))
}

// viewTaskList renders the visible tasks.
func (m *Model) viewTaskList() string {
	if len(m.items) == 0 {
		return m.viewEmptyState()
	}

	rowWidth := m.width - 6 // Account for app padding
	if rowWidth < 40 {
		rowWidth = 40
	}

	start, end := m.visibleRange()

	var b strings.Builder
	for i := start; i < end; i++ {
		selected := i == m.cursor
		line := m.renderTaskItem(m.items[i], selected, rowWidth)
		if selected {
			b.WriteString(m.styles.TaskSelected.Width(rowWidth).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return m.styles.TaskList.Render(b.String())
}

// visibleRange returns the slice of items that fits on screen around the cursor.
func (m *Model) visibleRange() (int, int) {
	rows := m.height - 12 // header, filters, footer and padding
	if rows < 5 {
		rows = 5
	}
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > len(m.items) {
		start = len(m.items) - rows
	}
	return start, start + rows
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.total == 0 {
		b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("n"))
		b.WriteString(m.styles.Footer.Render(" to add one"))
	} else {
		b.WriteString(m.styles.Footer.Render("  No tasks match the current filters\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("r"))
		b.WriteString(m.styles.Footer.Render(" to reset filters"))
	}
	b.WriteString("\n")
	return b.String()
}

// renderTaskItem renders a single task row.
// Format: "> 17 ● InPrg 🔴 3d          Home  Buy milk"
func (m *Model) renderTaskItem(item view.Item, selected bool, width int) string {
	task := item.Task

	indicator := " "
	if selected {
		indicator = m.styles.CursorSelected.Render(">")
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	statusFull := fmt.Sprintf("%s %-5s", StatusIcon(task.Status), StatusText(task.Status))
	due := fmt.Sprintf("%-14s", item.DueLabel)
	category := runewidth.FillRight(runewidth.Truncate(task.Category, 12, "…"), 12)

	dueStyle := m.styles.DueNormal
	if item.HasDue && item.DaysRemaining < 0 && task.Status != domain.StatusCompleted {
		dueStyle = m.styles.DueOverdue
	}

	idStyle, titleStyle := m.styles.TaskID, m.styles.TaskTitle
	if selected {
		idStyle, titleStyle = m.styles.TaskIDSelected, m.styles.TaskTitleSelected
	}
	if task.Status == domain.StatusCompleted && !selected {
		titleStyle = m.styles.TaskTitleDone
	}

	// indicator, id, status, icon, due and category take a fixed 48 columns
	maxTitle := width - 48
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := escapeNewlines(task.Title)
	if runewidth.StringWidth(title) > maxTitle {
		title = runewidth.Truncate(title, maxTitle, "...")
	}

	return fmt.Sprintf("%s %s %s %s %s %s  %s",
		indicator,
		idStyle.Render(idStr),
		m.styles.StatusStyle(task.Status).Render(statusFull),
		m.styles.PriorityStyle(task.Priority).Render(task.Priority.Icon()),
		dueStyle.Render(due),
		m.styles.TaskCategory.Render(category),
		titleStyle.Render(title),
	)
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// viewConfirmDialog renders the confirmation dialog for destructive actions.
func (m *Model) viewConfirmDialog() string {
	var prompt string
	switch m.confirmAction {
	case ConfirmDelete:
		title := fmt.Sprintf("#%d", m.confirmTaskID)
		if task, ok := m.container.Tasks.Get(m.confirmTaskID); ok {
			title = fmt.Sprintf("#%d %q", task.ID, task.Title)
		}
		prompt = "Remove task " + title + "?"
	case ConfirmClear:
		prompt = fmt.Sprintf("Remove all %d tasks?", m.total)
	case ConfirmNone:
		return ""
	}

	content := m.styles.DialogTitle.Render("Confirm "+m.confirmAction.String()) + "\n\n" +
		m.styles.DialogPrompt.Render(prompt) + "\n\n" +
		m.styles.FooterKey.Render("y") + m.styles.Footer.Render(" confirm  ") +
		m.styles.FooterKey.Render("n") + m.styles.Footer.Render(" cancel")
	return m.styles.Dialog.Render(content)
}

// viewForm renders the add/edit task dialog.
func (m *Model) viewForm() string {
	heading := "◆ New Task"
	action := " create  "
	if m.form.isEdit() {
		heading = fmt.Sprintf("◆ Edit Task #%d", m.form.taskID)
		action = " save  "
	}

	lines := []string{m.styles.DialogTitle.Render(heading), ""}
	for i := range m.form.inputs {
		field := FormField(i)
		label := m.styles.Footer.Render(field.Label())
		if field == m.form.field {
			label = m.styles.InputPrompt.Render(field.Label())
		}
		lines = append(lines, label, m.form.inputs[i].View(), "")
	}
	if m.form.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.form.err.Error()), "")
	}
	lines = append(lines,
		m.styles.FooterKey.Render("enter")+m.styles.Footer.Render(action)+
			m.styles.FooterKey.Render("tab")+m.styles.Footer.Render(" next  ")+
			m.styles.FooterKey.Render("esc")+m.styles.Footer.Render(" cancel"))

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewFooter renders the status message or the short help line.
func (m *Model) viewFooter() string {
	if m.message != "" {
		return m.styles.Message.Render(m.message)
	}
	switch m.mode {
	case ModeSearch:
		return m.styles.Footer.Render("enter accept  esc clear")
	case ModeForm:
		return m.styles.Footer.Render("tab next field  enter save  esc cancel")
	case ModeNormal, ModeConfirm, ModeHelp:
	}
	return m.help.View(m.keys)
}

// viewHelp renders the full keybinding help.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("Press ? or esc to close"))
	return b.String()
}

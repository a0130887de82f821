package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/runoshun/tasklist/internal/view"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		Category    string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task. New tasks always start as Pending.

Priority accepts High, Medium or Low (case-insensitive).
The due date uses the YYYY-MM-DD format.

Examples:
  # Create a task
  tasklist add --title "Buy milk" --due 2024-05-01 --category Home --priority high

  # Create a task with a description
  tasklist add -t "Pay rent" -d "Transfer to landlord" --due 2024-05-03 -c Home`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    opts.Priority,
				DueDate:     opts.Due,
				Category:    opts.Category,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(domain.PriorityMedium), "Priority: High, Medium or Low")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category (required)")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search   string
		Category string
		Status   string
		Sort     string
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display a filtered, sorted list of tasks.

Output format is tab-separated with columns:
  ID, STATUS, PRIORITY, DUE, DAYS, CATEGORY, TITLE

DAYS counts whole days until the due date ("Overdue by Nd" once passed).

Sort keys:
  dueDate-asc, dueDate-desc, priority-asc (highest first),
  priority-desc (lowest first), title-asc, title-desc

Examples:
  # List every task with the configured default sort
  tasklist list

  # Search title and description
  tasklist list --search milk

  # Only pending work tasks, highest priority first
  tasklist list --category Work --status pending --sort priority-asc

  # Machine-readable output
  tasklist list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Text:     opts.Search,
				Category: opts.Category,
				Status:   opts.Status,
				Sort:     opts.Sort,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printItemsJSON(cmd.OutOrStdout(), out.Items)
			}
			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			printTaskList(cmd.OutOrStdout(), out.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Filter by text in title or description")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status: Pending, InProgress, Completed")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort key (default from config)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, items []view.Item) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tDAYS\tCATEGORY\tTITLE")

	// Rows
	for _, it := range items {
		t := it.Task
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Status.Display(),
			t.Priority,
			orDash(t.DueDate),
			it.DueLabel,
			t.Category,
			t.Title,
		)
	}
}

// jsonItem is the --json representation of a listed task.
type jsonItem struct {
	DaysRemaining *int `json:"daysRemaining"`
	domain.Task
	DueLabel string `json:"dueLabel"`
}

func printItemsJSON(w io.Writer, items []view.Item) error {
	out := make([]jsonItem, 0, len(items))
	for _, it := range items {
		ji := jsonItem{Task: it.Task, DueLabel: it.DueLabel}
		if it.HasDue {
			days := it.DaysRemaining
			ji.DaysRemaining = &days
		}
		out = append(out, ji)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display detailed information about a task.

Examples:
  # Show task by ID
  tasklist show 1

  # Output in JSON format
  tasklist show 1 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printItemsJSON(cmd.OutOrStdout(), []view.Item{out.Item})
			}
			printTaskDetail(cmd.OutOrStdout(), out.Item)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskDetail prints a single task in a human-readable layout.
func printTaskDetail(w io.Writer, it view.Item) {
	t := it.Task
	_, _ = fmt.Fprintf(w, "# %d: %s\n\n", t.ID, t.Title)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", t.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s %s\n", t.Priority.Icon(), t.Priority)
	_, _ = fmt.Fprintf(w, "Due:      %s (%s)\n", orDash(t.DueDate), it.DueLabel)
	_, _ = fmt.Fprintf(w, "Category: %s\n", t.Category)
	if t.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", t.Description)
	}
}

// newEditCommand creates the edit command for editing task information.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		Category    string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task information",
		Long: `Edit an existing task. Only the given flags are changed.

Examples:
  # Change the title
  tasklist edit 1 --title "Buy oat milk"

  # Reschedule and raise priority
  tasklist edit 1 --due 2024-05-10 --priority high

  # Set the status directly
  tasklist edit 1 --status completed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			input := usecase.EditTaskInput{TaskID: taskID}
			flags := cmd.Flags()
			if flags.Changed("title") {
				input.Title = &opts.Title
			}
			if flags.Changed("description") {
				input.Description = &opts.Description
			}
			if flags.Changed("priority") {
				input.Priority = &opts.Priority
			}
			if flags.Changed("due") {
				input.DueDate = &opts.Due
			}
			if flags.Changed("category") {
				input.Category = &opts.Category
			}
			if flags.Changed("status") {
				input.Status = &opts.Status
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date YYYY-MM-DD")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status: Pending, InProgress, Completed")

	return cmd
}

// newToggleCommand creates the toggle command for advancing a task's status.
func newToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Advance task status",
		Long: `Advance the status of a task: Pending → In Progress → Completed → Pending.

Examples:
  tasklist toggle 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.ToggleStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleStatusInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d: %s → %s\n",
				out.Task.ID, out.From.Display(), out.Task.Status.Display())
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task. Asks for confirmation unless --yes is given.

Examples:
  # Delete task by ID
  tasklist rm 1

  # Delete without asking
  tasklist rm 1 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			task, ok := c.Tasks.Get(taskID)
			if !ok {
				return fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, taskID)
			}

			if !yes {
				confirmed, err := confirm(cmd, fmt.Sprintf("Remove task #%d %q?", task.ID, task.Title))
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if !out.Removed {
				return fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, taskID)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d.\n", taskID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

// newClearCommand creates the clear command for removing every task.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		Long: `Delete every task. Asks for confirmation unless --yes is given.

Examples:
  tasklist clear
  tasklist clear --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				count := len(c.Tasks.List())
				confirmed, err := confirm(cmd, fmt.Sprintf("Remove all %d tasks?", count))
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			uc := c.ClearTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ClearTasksInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tasks.\n", out.Cleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

// confirm asks a yes/no question on the command's input.
// EOF or anything but y/yes counts as no.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// parseTaskID parses a task ID from a string.
// Accepts both "1" and "#1" formats.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

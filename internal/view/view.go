// Package view derives ordered, filtered task views for display.
// Nothing here touches storage; every function works on copies of its input.
package view

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/runoshun/tasklist/internal/domain"
)

// All disables a category or status filter.
// The status filter matches it in any case; categories are free-form
// labels and only the exact word disables them.
const All = "All"

// Criteria selects and orders the tasks of a view.
// An empty Category or Status behaves like All.
type Criteria struct {
	Text     string
	Category string
	Status   string
	Sort     SortKey
}

// Item is a view entry with its derived display fields.
// Fields are ordered to minimize memory padding.
type Item struct {
	Task          domain.Task
	DueLabel      string // "Nd", "Overdue by Nd" or "-"
	DaysRemaining int
	HasDue        bool
}

// Pipeline derives views using the collation rules of one locale.
type Pipeline struct {
	tag language.Tag
}

// DefaultLocale is the collation locale used by Derive.
var DefaultLocale = language.BrazilianPortuguese

// New creates a Pipeline for the given locale.
func New(tag language.Tag) *Pipeline {
	return &Pipeline{tag: tag}
}

// NewForLocale creates a Pipeline from a BCP 47 tag string.
// An unparsable tag falls back to DefaultLocale.
func NewForLocale(locale string) *Pipeline {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = DefaultLocale
	}
	return New(tag)
}

// Derive filters and sorts tasks with the default locale.
func Derive(tasks []domain.Task, c Criteria) []domain.Task {
	return New(DefaultLocale).Derive(tasks, c)
}

// Derive returns the tasks matching c, ordered by c.Sort.
// The input slice is never modified.
func (p *Pipeline) Derive(tasks []domain.Task, c Criteria) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	out = append(out, tasks...)

	if text := strings.TrimSpace(c.Text); text != "" {
		needle := fold(text)
		out = slices.DeleteFunc(out, func(t domain.Task) bool {
			return !strings.Contains(fold(t.Title), needle) &&
				!strings.Contains(fold(t.Description), needle)
		})
	}

	if isFiltered(c.Category) {
		out = slices.DeleteFunc(out, func(t domain.Task) bool {
			return t.Category != c.Category
		})
	}

	if c.Status != "" && !strings.EqualFold(c.Status, All) {
		out = slices.DeleteFunc(out, func(t domain.Task) bool {
			return string(t.Status) != c.Status
		})
	}

	if cmp := p.comparator(c.Sort); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

// Items attaches derived display fields to each task.
func Items(tasks []domain.Task, today time.Time) []Item {
	items := make([]Item, 0, len(tasks))
	for _, t := range tasks {
		days, ok := domain.DaysRemaining(t.DueDate, today)
		items = append(items, Item{
			Task:          t,
			DaysRemaining: days,
			HasDue:        ok,
			DueLabel:      domain.FormatDaysRemaining(days, ok),
		})
	}
	return items
}

func isFiltered(v string) bool {
	return v != "" && v != All
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// comparator returns the ordering for key, or nil to keep insertion order.
func (p *Pipeline) comparator(key SortKey) func(a, b domain.Task) int {
	// collate.Collator is not safe for concurrent use; build one per derivation.
	col := collate.New(p.tag, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
	str := col.CompareString
	rank := func(t domain.Task) int { return t.Priority.Rank() }

	switch key {
	case SortDueDateAsc:
		return func(a, b domain.Task) int {
			if c := str(a.DueDate, b.DueDate); c != 0 {
				return c
			}
			return rank(b) - rank(a)
		}
	case SortDueDateDesc:
		return func(a, b domain.Task) int {
			if c := str(b.DueDate, a.DueDate); c != 0 {
				return c
			}
			return rank(a) - rank(b)
		}
	case SortPriorityAsc:
		// Highest priority first.
		return func(a, b domain.Task) int {
			if c := rank(b) - rank(a); c != 0 {
				return c
			}
			return str(a.DueDate, b.DueDate)
		}
	case SortPriorityDesc:
		return func(a, b domain.Task) int {
			if c := rank(a) - rank(b); c != 0 {
				return c
			}
			return str(a.DueDate, b.DueDate)
		}
	case SortTitleAsc:
		return func(a, b domain.Task) int {
			return str(a.Title, b.Title)
		}
	case SortTitleDesc:
		return func(a, b domain.Task) int {
			return str(b.Title, a.Title)
		}
	default:
		return nil
	}
}

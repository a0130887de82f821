package view

import "strings"

// SortKey selects the ordering of a view.
type SortKey string

const (
	SortDueDateAsc   SortKey = "dueDate-asc"   // Earliest first, then highest priority
	SortDueDateDesc  SortKey = "dueDate-desc"  // Latest first, then lowest priority
	SortPriorityAsc  SortKey = "priority-asc"  // Highest priority first, then earliest
	SortPriorityDesc SortKey = "priority-desc" // Lowest priority first, then earliest
	SortTitleAsc     SortKey = "title-asc"
	SortTitleDesc    SortKey = "title-desc"
)

// AllSortKeys returns every supported sort key in menu order.
func AllSortKeys() []SortKey {
	return []SortKey{
		SortDueDateAsc,
		SortDueDateDesc,
		SortPriorityAsc,
		SortPriorityDesc,
		SortTitleAsc,
		SortTitleDesc,
	}
}

// legacySortKeys maps the option values stored by the legacy browser app.
var legacySortKeys = map[string]SortKey{
	"data_asc":        SortDueDateAsc,
	"data_desc":       SortDueDateDesc,
	"prioridade_asc":  SortPriorityAsc,
	"prioridade_desc": SortPriorityDesc,
	"titulo_asc":      SortTitleAsc,
	"titulo_desc":     SortTitleDesc,
}

// ParseSortKey converts user input into a SortKey.
// The second return value is false if the input is not recognized.
func ParseSortKey(s string) (SortKey, bool) {
	s = strings.TrimSpace(s)
	for _, k := range AllSortKeys() {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	if k, ok := legacySortKeys[strings.ToLower(s)]; ok {
		return k, true
	}
	return SortKey(s), false
}

// Next returns the sort key after k in menu order, wrapping at the end.
func (k SortKey) Next() SortKey {
	keys := AllSortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// Display returns a short label for the sort key.
func (k SortKey) Display() string {
	switch k {
	case SortDueDateAsc:
		return "due date ↑"
	case SortDueDateDesc:
		return "due date ↓"
	case SortPriorityAsc:
		return "priority (high first)"
	case SortPriorityDesc:
		return "priority (low first)"
	case SortTitleAsc:
		return "title A-Z"
	case SortTitleDesc:
		return "title Z-A"
	default:
		return "insertion order"
	}
}

package domain

import "strings"

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// AllPriorities returns all valid priority values, highest first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Rank returns the numeric rank used for ordering.
// High=3, Medium=2, Low=1; unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Icon returns the marker shown next to the priority in list views.
func (p Priority) Icon() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// ParsePriority converts user input into a Priority.
// Matching is case-insensitive and also accepts the legacy Portuguese labels.
// The second return value is false if the input is not recognized.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "alta":
		return PriorityHigh, true
	case "medium", "média", "media":
		return PriorityMedium, true
	case "low", "baixa":
		return PriorityLow, true
	default:
		return Priority(s), false
	}
}

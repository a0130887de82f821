package domain

import "strings"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "Pending"    // Created, not started
	StatusInProgress Status = "InProgress" // Being worked on
	StatusCompleted  Status = "Completed"  // Done
)

// AllStatuses returns all valid status values in cycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
	}
}

// Next returns the status that follows s in the toggle cycle.
// Flow: Pending → InProgress → Completed → Pending
// Unknown statuses restart the cycle at Pending.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus converts user input into a Status.
// Matching ignores case, spaces, dashes and underscores, and accepts the
// legacy Portuguese labels.
func ParseStatus(s string) (Status, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "pending", "pendente":
		return StatusPending, true
	case "inprogress", "emprogresso":
		return StatusInProgress, true
	case "completed", "concluída", "concluida":
		return StatusCompleted, true
	default:
		return Status(s), false
	}
}

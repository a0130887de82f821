package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO calendar date layout used for due dates.
const DateLayout = "2006-01-02"

// DaysRemaining returns the number of days between today and the due date,
// both taken at midnight in today's location, rounded up.
// The second return value is false when due is empty or not an ISO date.
func DaysRemaining(due string, today time.Time) (int, bool) {
	if due == "" {
		return 0, false
	}
	loc := today.Location()
	dueAt, err := time.ParseInLocation(DateLayout, due, loc)
	if err != nil {
		return 0, false
	}
	y, m, d := today.Date()
	todayAt := time.Date(y, m, d, 0, 0, 0, 0, loc)

	days := math.Ceil(float64(dueAt.Sub(todayAt)) / float64(24*time.Hour))
	return int(days), true
}

// FormatDaysRemaining renders a DaysRemaining result for display.
// Negative values read "Overdue by Nd"; a missing date reads "-".
func FormatDaysRemaining(days int, ok bool) string {
	if !ok {
		return "-"
	}
	if days < 0 {
		return fmt.Sprintf("Overdue by %dd", -days)
	}
	return fmt.Sprintf("%dd", days)
}

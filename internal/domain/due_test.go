package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	today := time.Date(2025, 1, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    string
		want   int
		wantOK bool
	}{
		{"today", "2025-01-07", 0, true},
		{"tomorrow", "2025-01-08", 1, true},
		{"next month", "2025-02-07", 31, true},
		{"yesterday", "2025-01-06", -1, true},
		{"last week", "2024-12-31", -7, true},
		{"empty", "", 0, false},
		{"garbage", "soon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DaysRemaining(tt.due, today)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysRemaining_UsesTodaysLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 23:00 local is already the next day in UTC; the local calendar day counts.
	today := time.Date(2025, 1, 7, 23, 0, 0, 0, loc)

	got, ok := DaysRemaining("2025-01-08", today)
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestFormatDaysRemaining(t *testing.T) {
	assert.Equal(t, "0d", FormatDaysRemaining(0, true))
	assert.Equal(t, "5d", FormatDaysRemaining(5, true))
	assert.Equal(t, "Overdue by 3d", FormatDaysRemaining(-3, true))
	assert.Equal(t, "-", FormatDaysRemaining(0, false))
}

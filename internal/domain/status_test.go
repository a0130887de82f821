package domain

import "testing"

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		name string
		from Status
		want Status
	}{
		{"pending -> in_progress", StatusPending, StatusInProgress},
		{"in_progress -> completed", StatusInProgress, StatusCompleted},
		{"completed -> pending", StatusCompleted, StatusPending},
		{"unknown -> pending", Status("Blocked"), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Next(); got != tt.want {
				t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestStatus_Next_IsThreeCycle(t *testing.T) {
	for _, s := range AllStatuses() {
		if got := s.Next().Next().Next(); got != s {
			t.Errorf("three toggles from %s = %s, want %s", s, got, s)
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("IsValid(done) = true, want false")
	}
	if Status("").IsValid() {
		t.Error("IsValid(\"\") = true, want false")
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{Status("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("Display(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{"in-progress", StatusInProgress, true},
		{"in_progress", StatusInProgress, true},
		{"In Progress", StatusInProgress, true},
		{"InProgress", StatusInProgress, true},
		{"completed", StatusCompleted, true},
		{"Pendente", StatusPending, true},
		{"Em Progresso", StatusInProgress, true},
		{"Concluída", StatusCompleted, true},
		{"blocked", Status("blocked"), false},
		{"", Status(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseStatus(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

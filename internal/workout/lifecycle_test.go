package workout

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusAssigned, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusCompleted, StatusInProgress},
		{StatusCancelled, StatusInProgress},
	}
	for _, tt := range allowed {
		if !CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusAssigned, StatusCompleted},
		{StatusAssigned, StatusCancelled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusCompleted},
		{StatusInProgress, StatusAssigned},
		{StatusCompleted, StatusAssigned},
	}
	for _, tt := range denied {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tt.from, tt.to)
		}
	}
}

func TestPrettyStatus(t *testing.T) {
	tests := []struct {
		in   Status
		want string
	}{
		{StatusAssigned, "Assigned"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{StatusCancelled, "Cancelled"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PrettyStatus(tt.in); got != tt.want {
			t.Errorf("PrettyStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

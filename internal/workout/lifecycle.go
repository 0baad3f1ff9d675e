package workout

import "strings"

// Status is the server-authoritative lifecycle state of a workout.
// Workouts are created server-side in StatusAssigned; no state is terminal.
type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// allowedTransitions mirrors the server's contract. Beginning from
// StatusAssigned additionally requires a successful checkout of the
// session lock; resuming from StatusCompleted does not re-acquire it.
var allowedTransitions = map[Status][]Status{
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusInProgress},
	StatusCancelled:  {StatusInProgress},
}

// CanTransition reports whether from → to is a permitted status change.
// The client never transitions optimistically: a failed call leaves local
// state untouched and the server's error text is shown as-is.
func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PrettyStatus renders a status for display ("in_progress" → "In Progress").
func PrettyStatus(s Status) string {
	if s == "" {
		return ""
	}
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

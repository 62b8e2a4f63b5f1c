package domain

import "strings"

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusLive       Status = "live"
	StatusInProgress Status = "in-progress"
	StatusUpcoming   Status = "upcoming"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"completed": true, "live": true, "in-progress": true, "upcoming": true,
}

// Valid reports whether s is one of the four catalog statuses.
func (s Status) Valid() bool {
	return ValidStatuses[string(s)]
}

// BadgeLabel returns the display label for the status badge.
// Unknown statuses fall back to their raw value uppercased so a malformed
// record still renders instead of crashing the view.
func (s Status) BadgeLabel() string {
	switch s {
	case StatusCompleted:
		return "COMPLETED"
	case StatusLive:
		return "LIVE"
	case StatusInProgress:
		return "IN PROGRESS"
	case StatusUpcoming:
		return "UPCOMING"
	default:
		return strings.ToUpper(string(s))
	}
}

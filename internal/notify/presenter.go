// Package notify models the ephemeral dashboard notification: at most one
// visible at a time, auto-hidden after a fixed delay, replace-and-reset on a
// new trigger.
package notify

import (
	"time"

	"github.com/aqibjaved/showcase/internal/domain"
)

// AutoHideAfter is how long a notification stays visible before expiring.
const AutoHideAfter = 3 * time.Second

type Severity string

const (
	SeverityInfo Severity = "info"
	SeverityWarn Severity = "warn"
	SeverityErr  Severity = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Message  string
	Severity Severity
}

// ForStatus selects the "cannot open" message for a record whose deploy URL
// is absent. Unknown statuses get a generic message rather than failing.
func ForStatus(s domain.Status) Notification {
	switch s {
	case domain.StatusUpcoming:
		return Notification{Message: "This project is coming soon!", Severity: SeverityInfo}
	case domain.StatusInProgress:
		return Notification{Message: "This project is still in progress. No deployment yet.", Severity: SeverityWarn}
	case domain.StatusCompleted:
		return Notification{Message: "This project is completed but not deployed.", Severity: SeverityWarn}
	default:
		return Notification{Message: "No deployment URL available for this project.", Severity: SeverityWarn}
	}
}

// Presenter is the two-state notification machine (hidden / visible).
//
// Every Show hands out a fresh token identifying that visibility interval.
// The timer scheduled for the interval carries its token back via Expire;
// a token from a replaced or dismissed notification is stale and ignored,
// so a lingering timer can never hide a newer notification early.
type Presenter struct {
	current *Notification
	token   int
}

// Show makes n the visible notification, replacing any current one, and
// returns the token the auto-hide timer must present to Expire.
func (p *Presenter) Show(n Notification) int {
	p.current = &n
	p.token++
	return p.token
}

// Dismiss hides the current notification immediately and invalidates any
// outstanding timer token.
func (p *Presenter) Dismiss() {
	p.current = nil
	p.token++
}

// Expire hides the notification if token is still current. It reports
// whether anything was hidden; stale tokens are no-ops.
func (p *Presenter) Expire(token int) bool {
	if p.current == nil || token != p.token {
		return false
	}
	p.current = nil
	return true
}

// Current returns the visible notification, if any.
func (p *Presenter) Current() (Notification, bool) {
	if p.current == nil {
		return Notification{}, false
	}
	return *p.current, true
}

package formatter

import (
	"strings"

	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/aqibjaved/showcase/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// StatusStyle returns the lipgloss style for a status badge.
// Unknown statuses render dim rather than erroring.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusLive:
		return StyleGreen
	case domain.StatusCompleted:
		return StyleBlue
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusUpcoming:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatusBadge renders the colored badge label, e.g. "● LIVE".
func StatusBadge(s domain.Status) string {
	return StatusStyle(s).Render("● " + s.BadgeLabel())
}

// Chips renders an ordered list as dim bracketed chips: "[AI] [RAG]".
// An empty list renders nothing.
func Chips(values []string) string {
	if len(values) == 0 {
		return ""
	}
	chips := make([]string, 0, len(values))
	for _, v := range values {
		chips = append(chips, Dim("["+v+"]"))
	}
	return strings.Join(chips, " ")
}

// NotificationLine renders a notification colored by severity.
func NotificationLine(n notify.Notification) string {
	switch n.Severity {
	case notify.SeverityErr:
		return StyleRed.Render("✗ " + n.Message)
	case notify.SeverityWarn:
		return StyleYellow.Render("⚠ " + n.Message)
	default:
		return StyleBlue.Render("ℹ " + n.Message)
	}
}

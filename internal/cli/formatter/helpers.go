package formatter

import (
	"fmt"
	"strings"

	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Pluralize returns "1 project" or "N projects".
func Pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// ResultsCount renders the dimmed results line under the search box.
func ResultsCount(n int) string {
	return Dim(Pluralize(n, "project") + " found")
}

// WeekHeading renders a week section heading with its project count.
func WeekHeading(week, count int) string {
	return StyleHeader.Render(fmt.Sprintf("WEEK %d", week)) +
		Dim("  "+Pluralize(count, "project"))
}

// Truncate shortens text to max visible characters with an ellipsis.
func Truncate(text string, max int) string {
	if max <= 0 || lipgloss.Width(text) <= max {
		return text
	}
	runes := []rune(text)
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// PadRight pads text with spaces up to the given visible width.
func PadRight(text string, width int) string {
	gap := width - lipgloss.Width(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// URLLabel renders a link for display. Absent URLs render as a dim dash.
func URLLabel(url string) string {
	if !domain.HasURL(url) {
		return Dim("--")
	}
	return StyleBlue.Render(url)
}

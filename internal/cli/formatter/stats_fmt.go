package formatter

import (
	"fmt"
	"strings"

	"github.com/aqibjaved/showcase/internal/catalog"
)

// StatsLine renders the one-line stats strip shown in the dashboard.
func StatsLine(s catalog.Stats) string {
	parts := []string{
		Bold(fmt.Sprintf("%d", s.Total)) + Dim(" projects"),
		StyleGreen.Render(fmt.Sprintf("%d", s.Live)) + Dim(" live"),
		StyleYellow.Render(fmt.Sprintf("%d", s.InProgress)) + Dim(" in progress"),
		Bold(fmt.Sprintf("%d", s.Weeks)) + Dim(" weeks"),
	}
	return strings.Join(parts, Dim("  ·  "))
}

// FormatStats renders the `stats` command output.
func FormatStats(s catalog.Stats) string {
	var b strings.Builder
	b.WriteString(Header("Portfolio") + "\n")
	b.WriteString(fmt.Sprintf("Projects:     %s\n", Bold(fmt.Sprintf("%d", s.Total))))
	b.WriteString(fmt.Sprintf("Live:         %s\n", StyleGreen.Render(fmt.Sprintf("%d", s.Live))))
	b.WriteString(fmt.Sprintf("In progress:  %s\n", StyleYellow.Render(fmt.Sprintf("%d", s.InProgress))))
	b.WriteString(fmt.Sprintf("Weeks:        %s\n", Bold(fmt.Sprintf("%d", s.Weeks))))
	return b.String()
}

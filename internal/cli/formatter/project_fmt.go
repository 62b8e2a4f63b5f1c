package formatter

import (
	"fmt"
	"strings"

	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/domain"
)

// FormatProjectList renders the `list` output: a table of the catalog
// grouped by week, ascending.
func FormatProjectList(grouped catalog.Grouped, query string) string {
	var b strings.Builder

	total := 0
	for _, week := range grouped.Weeks {
		total += len(grouped.ByWeek[week])
	}

	if query != "" {
		b.WriteString(Dim(fmt.Sprintf("query: %q", query)) + "\n")
	}
	b.WriteString(ResultsCount(total) + "\n")

	if total == 0 {
		b.WriteString("\n" + Dim("No projects match your search.") + "\n")
		return b.String()
	}

	headers := []string{"ID", "WEEK", "NAME", "STATUS", "TAGS", "DEPLOY"}
	rows := make([][]string, 0, total)
	for _, week := range grouped.Weeks {
		for _, rec := range grouped.ByWeek[week] {
			rows = append(rows, []string{
				Dim(fmt.Sprintf("%d", rec.ID)),
				fmt.Sprintf("%d", rec.Week),
				Bold(rec.Name),
				StatusBadge(rec.Status),
				Chips(rec.Tags),
				URLLabel(rec.DeployURL),
			})
		}
	}
	b.WriteString("\n" + RenderTable(headers, rows))
	return b.String()
}

// FormatProjectDetail renders one record in full, for `list --id`.
func FormatProjectDetail(rec *domain.ProjectRecord) string {
	var b strings.Builder
	b.WriteString(Bold(rec.Name) + "  " + StatusBadge(rec.Status) + "\n")
	b.WriteString(Dim(fmt.Sprintf("week %d · id %d", rec.Week, rec.ID)) + "\n\n")
	b.WriteString(rec.Description + "\n\n")
	if len(rec.Tags) > 0 {
		b.WriteString("Tags:   " + Chips(rec.Tags) + "\n")
	}
	if len(rec.Stack) > 0 {
		b.WriteString("Stack:  " + Chips(rec.Stack) + "\n")
	}
	b.WriteString("Deploy: " + URLLabel(rec.DeployURL) + "\n")
	b.WriteString("GitHub: " + URLLabel(rec.GithubURL) + "\n")
	return b.String()
}

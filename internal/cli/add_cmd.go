package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aqibjaved/showcase/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a project to the catalog interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				week        string
				name        string
				description string
				tags        string
				stack       string
				status      string
				deployURL   string
				githubURL   string
			)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Week").
						Placeholder("1").
						Value(&week).
						Validate(validatePositiveInt),
					huh.NewInput().
						Title("Name").
						Value(&name).
						Validate(validateRequired),
					huh.NewInput().
						Title("Description").
						Value(&description).
						Validate(validateRequired),
					huh.NewInput().
						Title("Tags (comma-separated)").
						Placeholder("AI, RAG").
						Value(&tags),
					huh.NewInput().
						Title("Stack (comma-separated)").
						Placeholder("Python, Streamlit").
						Value(&stack),
					huh.NewSelect[string]().
						Title("Status").
						Options(
							huh.NewOption("In progress", string(domain.StatusInProgress)),
							huh.NewOption("Completed", string(domain.StatusCompleted)),
							huh.NewOption("Live", string(domain.StatusLive)),
							huh.NewOption("Upcoming", string(domain.StatusUpcoming)),
						).
						Value(&status),
					huh.NewInput().
						Title("Deploy URL (blank for none)").
						Value(&deployURL),
					huh.NewInput().
						Title("GitHub URL (blank for none)").
						Value(&githubURL),
				),
			).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			ctx := context.Background()
			existing, err := app.Catalog.List(ctx)
			if err != nil {
				return err
			}
			nextID := 1
			for _, r := range existing {
				if r.ID >= nextID {
					nextID = r.ID + 1
				}
			}

			weekNum, _ := strconv.Atoi(strings.TrimSpace(week))
			rec := &domain.ProjectRecord{
				ID:          nextID,
				Week:        weekNum,
				Name:        strings.TrimSpace(name),
				Description: strings.TrimSpace(description),
				Tags:        splitCSV(tags),
				Stack:       splitCSV(stack),
				Status:      domain.Status(status),
				DeployURL:   normalizeFormURL(deployURL),
				GithubURL:   normalizeFormURL(githubURL),
			}
			if err := app.Catalog.Add(ctx, rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to week %d.\n", rec.Name, rec.Week)
			return nil
		},
	}
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeFormURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.URLAbsent
	}
	return s
}

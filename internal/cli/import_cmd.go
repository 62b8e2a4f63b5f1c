package cli

import (
	"context"
	"fmt"

	"github.com/aqibjaved/showcase/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool
	var history bool

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a catalog definition file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if history {
				runs, err := app.Import.History(ctx, 10)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, formatter.Dim("No imports yet."))
					return nil
				}
				headers := []string{"RUN", "SOURCE", "RECORDS", "MODE", "WHEN"}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					mode := "append"
					if run.Replaced {
						mode = "replace"
					}
					rows = append(rows, []string{
						formatter.Dim(truncRunID(run.ID)),
						run.Source,
						fmt.Sprintf("%d", run.Records),
						mode,
						run.CreatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprint(out, formatter.RenderTable(headers, rows))
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("import needs a catalog file (or --history)")
			}

			result, err := app.Import.ImportFile(ctx, args[0], replace)
			if err != nil {
				return err
			}
			mode := "appended"
			if result.Replaced {
				mode = "replaced catalog with"
			}
			fmt.Fprintf(out, "Imported: %s %s\n", mode, formatter.Pluralize(result.Records, "record"))
			fmt.Fprintln(out, formatter.Dim("run "+truncRunID(result.RunID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored catalog instead of appending")
	cmd.Flags().BoolVar(&history, "history", false, "Show recent import runs")

	return cmd
}

func truncRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package cli

import (
	"context"
	"fmt"

	"github.com/aqibjaved/showcase/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show portfolio totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Catalog.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}

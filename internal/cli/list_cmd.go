package cli

import (
	"context"
	"fmt"

	"github.com/aqibjaved/showcase/internal/catalog"
	"github.com/aqibjaved/showcase/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var query string
	var id int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the portfolio catalog grouped by week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if cmd.Flags().Changed("id") {
				rec, err := app.Catalog.GetByID(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectDetail(rec))
				return nil
			}

			records, err := app.Catalog.List(ctx)
			if err != nil {
				return err
			}
			grouped := catalog.GroupByWeek(catalog.Filter(records, query))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(grouped, query))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by case-insensitive substring match")
	cmd.Flags().IntVar(&id, "id", 0, "Show one project in full")

	return cmd
}

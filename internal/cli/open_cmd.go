package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aqibjaved/showcase/internal/notify"
	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	var source bool

	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Open a project's deployment in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer, got %q", args[0])
			}

			rec, err := app.Catalog.GetByID(context.Background(), id)
			if err != nil {
				return err
			}

			// The source link always navigates, placeholder included;
			// only the deploy action is status-guarded.
			if source {
				return app.Opener.Open(rec.GithubURL)
			}
			if !rec.Deployed() {
				fmt.Fprintln(cmd.OutOrStdout(), notify.ForStatus(rec.Status).Message)
				return nil
			}
			return app.Opener.Open(rec.DeployURL)
		},
	}

	cmd.Flags().BoolVar(&source, "source", false, "Open the source repository link instead of the deployment")

	return cmd
}

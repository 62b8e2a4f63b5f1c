package cli

import (
	"github.com/aqibjaved/showcase/internal/browser"
	"github.com/aqibjaved/showcase/internal/config"
	"github.com/aqibjaved/showcase/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds everything the CLI commands depend on.
type App struct {
	Catalog service.CatalogService
	Import  service.ImportService
	Opener  browser.Opener
	Config  *config.Config
	Logger  *zap.Logger

	// IsInteractive reports whether stdin is a terminal; the bare
	// "showcase" invocation launches the dashboard only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "showcase" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "showcase",
		Short:        "Bootcamp portfolio dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newListCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newAddCmd(app),
		newServeCmd(app),
		newOpenCmd(app),
	)

	return root
}

package cli

import (
	"fmt"

	"github.com/aqibjaved/showcase/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a read-only JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("host") {
				host = app.Config.Server.Host
			}
			if !cmd.Flags().Changed("port") {
				port = app.Config.Server.Port
			}

			e := server.BuildServer(app.Catalog, app.Logger)
			addr := fmt.Sprintf("%s:%d", host, port)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving portfolio API on http://%s\n", addr)
			return e.Start(addr)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Bind address")
	cmd.Flags().IntVar(&port, "port", 8080, "Bind port")

	return cmd
}

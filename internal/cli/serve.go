package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/gardens/internal/entrypoint"
)

func (a *app) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

On startup the gardens table is created if missing and, when it is empty,
seeded from SEED_FILE. Configuration comes from the environment (and a .env
file when present).`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	entrypoint.Run(a.cfg, a.version)
	return nil
}

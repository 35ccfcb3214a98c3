// Package cli implements the gardens command line: the HTTP server plus
// maintenance commands for seeding, snapshots and talking to a running API.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gardens/internal/config"
	"github.com/mrlokans/gardens/internal/logging"
)

// app carries state shared by every command of one invocation.
type app struct {
	version     string
	cfg         *config.Config
	restoreLogs func()
}

// Execute runs the command line with os.Args.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "gardens",
		Short: "Community gardens API",
		Long: `Gardens serves a REST API for community garden records backed by SQLite.

Without a subcommand it starts the HTTP server, same as "gardens serve".`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runServe,
	}

	root.AddCommand(
		a.newServeCommand(),
		a.newSeedCommand(),
		a.newExportCommand(),
		a.newRemoteCommand(),
		a.newVersionCommand(),
	)
	return root
}

// setup loads configuration and installs the global logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.NewConfig()

	_, restore, err := logging.Setup(a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	a.restoreLogs = restore
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.restoreLogs != nil {
		a.restoreLogs()
	}
	return nil
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gardens %s\n", a.version)
		},
	}
}

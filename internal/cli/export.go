package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gardens/internal/database"
	"github.com/mrlokans/gardens/internal/database/gardens"
	"github.com/mrlokans/gardens/internal/exporters"
)

type exportOptions struct {
	out    string
	dbPath string
}

func (a *app) newExportCommand() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of every garden",
		Long: `Export writes all gardens to a .json file in seed format (usable as
SEED_FILE for a fresh database) or to an .xlsx spreadsheet.

Example:
  gardens export
  gardens export --out backups/gardens.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" {
				opts.out = a.cfg.Snapshot.Path
			}
			if opts.dbPath == "" {
				opts.dbPath = a.cfg.Database.Path
			}
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "snapshot file, .json or .xlsx (default: SNAPSHOT_PATH)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "database file (default: DATABASE_PATH)")
	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	db, err := database.NewDatabase(opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := exporters.NewSnapshotExporter(gardens.NewRepository(db.DB)).Export(opts.out)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d gardens to %s\n", result.Gardens, result.Path)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gardens/internal/database"
	"github.com/mrlokans/gardens/internal/database/gardens"
	"github.com/mrlokans/gardens/internal/importers"
)

type seedOptions struct {
	file   string
	dbPath string
}

func (a *app) newSeedCommand() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the seed file into an empty database",
		Long: `Seed reads a JSON array of garden records and inserts them when the
gardens table is empty. A populated table is left untouched.

Example:
  gardens seed
  gardens seed --file data/gardens.json --db db/database.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" {
				opts.file = a.cfg.Seed.File
			}
			if opts.dbPath == "" {
				opts.dbPath = a.cfg.Database.Path
			}
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "seed file (default: SEED_FILE)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "database file (default: DATABASE_PATH)")
	return cmd
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	db, err := database.NewDatabase(opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := importers.NewSeeder(gardens.NewRepository(db.DB), opts.file).Seed()
	if err != nil {
		return fmt.Errorf("seed %s: %w", opts.file, err)
	}

	out := cmd.OutOrStdout()
	switch result.Status {
	case importers.SeedSkippedNotEmpty:
		fmt.Fprintf(out, "Skipped: table already has %d gardens\n", result.Existing)
	case importers.SeedSkippedNoFile:
		fmt.Fprintf(out, "Skipped: seed file %s not found\n", opts.file)
	default:
		fmt.Fprintf(out, "Imported %d of %d gardens (%d failed)\n",
			result.Imported, result.Processed, result.Failed)
	}
	return nil
}

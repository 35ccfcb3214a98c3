package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrlokans/gardens/internal/client"
	"github.com/mrlokans/gardens/internal/entities"
)

type remoteOptions struct {
	origin     string
	apiURL     string
	jsonOutput bool
}

func (a *app) newRemoteCommand() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running gardens API",
	}
	cmd.PersistentFlags().StringVar(&opts.origin, "origin", "http://localhost:3000",
		"page origin the API address is derived from (local hosts use "+client.DevAPIBaseURL+")")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", "", "API base URL, overrides --origin")

	list := &cobra.Command{
		Use:   "list",
		Short: "List gardens from the API",
		Long: `List fetches every garden from a running server.

Example:
  gardens remote list
  gardens remote list --origin https://gardens.example.org --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoteList(cmd, opts)
		},
	}
	list.Flags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of a table")

	cmd.AddCommand(list)
	return cmd
}

func runRemoteList(cmd *cobra.Command, opts *remoteOptions) error {
	baseURL := opts.apiURL
	if baseURL == "" {
		var err error
		if baseURL, err = client.ResolveBaseURL(opts.origin); err != nil {
			return err
		}
	}

	gardens, err := client.NewClient(baseURL).List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list gardens: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		output, err := json.MarshalIndent(gardens, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal gardens: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	printGardenTable(cmd, gardens)
	return nil
}

// printGardenTable prints gardens in a human-readable table format.
func printGardenTable(cmd *cobra.Command, gardens []entities.Garden) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tNEIGHBORHOOD\tPLOTS")
	for _, g := range gardens {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", g.ID, g.Name, g.Type, g.Neighborhood, g.PlotsAvailable)
	}
	w.Flush()
}

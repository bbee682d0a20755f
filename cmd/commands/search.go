package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/search"
)

const noMatchMessage = "No match found for the entered URL."

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		dsFlags DatasetFlags
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the dataset for URLs containing a query",
		Long: `Run a single search against the configured dataset.

Matching is a case-sensitive substring test on the URL and keeps dataset
order. The query is validated the same way the interactive form does.

Examples:
  # URLs containing a host fragment
  urlscout search example.com

  # Require a full URL and print JSON
  urlscout search --strict https://example.com/docs -o json

  # Search a SQLite dataset
  urlscout search --dataset urls.db api`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cmdCtx, provider, err := openDataset(cmd, &dsFlags)
			if err != nil {
				return err
			}
			defer cmdCtx.Close()

			if cmd.Flags().Changed("strict") {
				cmdCtx.Settings.Search.StrictURL = strict
			}

			query := args[0]
			if err := (search.Validator{Strict: cmdCtx.Settings.Search.StrictURL}).Validate(query); err != nil {
				return err
			}

			records, err := provider.Search(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if len(records) == 0 && format == string(cli.FormatText) {
				fmt.Fprintln(cmd.OutOrStdout(), noMatchMessage)
				return nil
			}
			return cli.OutputRecords(cmd.OutOrStdout(), format, records)
		},
	}

	dsFlags.Register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "Require an absolute URL with scheme and host")

	return cmd
}

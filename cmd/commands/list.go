package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var (
		dsFlags DatasetFlags
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records in the dataset",
		Long: `List every record of the configured dataset in order.

Examples:
  # List everything
  urlscout list

  # First ten records as YAML
  urlscout list --limit 10 -o yaml`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("invalid limit: %d (must be 0 or more)", limit)
			}

			cmdCtx, provider, err := openDataset(cmd, &dsFlags)
			if err != nil {
				return err
			}
			defer cmdCtx.Close()

			records, err := provider.Search(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("failed to list dataset: %w", err)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			return cli.OutputRecords(cmd.OutOrStdout(), format, records)
		},
	}

	dsFlags.Register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many records (0 for all)")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var dsFlags DatasetFlags

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single record",
		Example: `  urlscout show 7
  urlscout show 7 -o json`,
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

			record, err := findRecord(cmd, provider, args[0])
			if err != nil {
				return err
			}
			return cli.OutputRecord(cmd.OutOrStdout(), format, record)
		},
	}

	dsFlags.Register(cmd)
	return cmd
}

func findRecord(cmd *cobra.Command, provider dataset.Provider, arg string) (models.URLRecord, error) {
	id, err := cli.ParseRecordID(arg)
	if err != nil {
		return models.URLRecord{}, err
	}

	record, ok, err := dataset.FindByID(cmd.Context(), provider, id)
	if err != nil {
		return models.URLRecord{}, fmt.Errorf("failed to load dataset: %w", err)
	}
	if !ok {
		return models.URLRecord{}, fmt.Errorf("record %d not found. Run 'urlscout list' to see available records", id)
	}
	return record, nil
}

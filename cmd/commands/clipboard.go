package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	var dsFlags DatasetFlags

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a record's URL to the clipboard",
		Long: `Copy the URL of a dataset record to the system clipboard.

Examples:
  # Copy the URL of record 3
  urlscout copy 3`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "clipboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, provider, err := openDataset(cmd, &dsFlags)
			if err != nil {
				return err
			}
			defer cmdCtx.Close()

			record, err := findRecord(cmd, provider, args[0])
			if err != nil {
				return err
			}

			if err := writeClipboard(record.URL); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}

			cli.PrintSuccess("URL of record %d copied to clipboard", record.ID)
			cli.PrintInfo("URL: %s", cli.TruncateString(record.URL, cli.DefaultURLWidth))
			return nil
		},
	}

	dsFlags.Register(cmd)
	return cmd
}

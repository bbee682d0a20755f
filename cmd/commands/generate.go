package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/files"
)

var errAborted = errors.New("aborted")

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		count int
		seed  uint64
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random URL dataset",
		Long: `Generate random URL records and write them as YAML, JSON or SQLite.

The format follows the extension of --out: .yaml/.yml, .json, or
.db/.sqlite for a SQLite database. Records get sequential ids from 0 and a
random file or folder type.

Examples:
  # Replace the project dataset with 500 records
  urlscout generate --count 500 --force

  # Reproducible SQLite dataset
  urlscout generate --seed 42 --out urls.db`,
		Args:    cobra.NoArgs,
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("invalid count: %d (must be 0 or more)", count)
			}
			if out == "" {
				out = files.DatasetPath()
			}

			kind, err := cli.DatasetKindFor(out)
			if err != nil {
				return err
			}

			if _, err := os.Stat(out); err == nil && !force {
				ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", out), false)
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}

			records := dataset.Generate(count, seed)

			switch kind {
			case cli.DatasetSQLite:
				err = dataset.WriteSQLite(cmd.Context(), out, records)
			default:
				err = files.WriteDataset(out, records)
			}
			if err != nil {
				return fmt.Errorf("failed to write dataset: %w", err)
			}

			cli.PrintSuccess("Wrote %d records to %s", len(records), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", dataset.DefaultSize, "Number of records to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks a random one)")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default .urlscout/dataset.yaml)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// DatasetFlags are the dataset overrides shared by the root command and the
// one-shot commands.
type DatasetFlags struct {
	Source    string
	Path      string
	LatencyMS int
	Size      int
	Seed      uint64
}

// Register adds the dataset flags to cmd
func (f *DatasetFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Source, "source", models.SourceMemory, "Dataset source (memory, file, sqlite)")
	cmd.Flags().StringVar(&f.Path, "dataset", "", "Dataset file or database path")
	cmd.Flags().IntVar(&f.LatencyMS, "latency", 1000, "Artificial search latency in milliseconds")
	cmd.Flags().IntVar(&f.Size, "size", dataset.DefaultSize, "Number of generated records for the memory source")
	cmd.Flags().Uint64Var(&f.Seed, "seed", 0, "Seed for the generated dataset (0 picks a random one)")
}

// Apply copies explicitly set flags over settings
func (f *DatasetFlags) Apply(cmd *cobra.Command, settings *models.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("source") {
		if err := cli.ValidateSource(f.Source); err != nil {
			return err
		}
		settings.Dataset.Source = f.Source
	}
	if flags.Changed("dataset") {
		settings.Dataset.Path = f.Path
		// without --source the extension picks file or sqlite
		if !flags.Changed("source") {
			settings.Dataset.Source = sourceForPath(f.Path)
		}
	}
	if flags.Changed("latency") {
		settings.Dataset.LatencyMS = max(f.LatencyMS, 0)
	}
	if flags.Changed("size") {
		settings.Dataset.Size = f.Size
	}
	if flags.Changed("seed") {
		settings.Dataset.Seed = f.Seed
	}
	return nil
}

func sourceForPath(path string) string {
	if kind, err := cli.DatasetKindFor(path); err == nil && kind == cli.DatasetSQLite {
		return models.SourceSQLite
	}
	return models.SourceFile
}

// outputFormat reads the persistent --output flag, defaulting to text
func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText), nil
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// openDataset loads settings, applies the dataset flags and opens the
// provider. The caller closes the returned context.
func openDataset(cmd *cobra.Command, flags *DatasetFlags) (*cli.CommandContext, dataset.Provider, error) {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return nil, nil, err
	}
	if err := flags.Apply(cmd, cmdCtx.Settings); err != nil {
		return nil, nil, err
	}

	provider, err := cmdCtx.OpenProvider(cmd.Context())
	if err != nil {
		cmdCtx.Close()
		return nil, nil, err
	}
	return cmdCtx, provider, nil
}

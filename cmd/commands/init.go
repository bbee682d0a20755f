package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a urlscout project",
		Long: `Creates .urlscout/settings.yaml and a generated .urlscout/dataset.yaml in
the current directory. Existing files are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}
			cli.PrintInfo("Initializing urlscout project in %s...", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			if _, err := os.Stat(files.SettingsPath()); os.IsNotExist(err) {
				settings := models.DefaultSettings()
				settings.Dataset.Source = models.SourceFile
				settings.Dataset.Path = files.DatasetPath()
				if err := files.WriteSettings(settings); err != nil {
					return err
				}
				cli.PrintSuccess("Created %s", files.SettingsPath())
			} else {
				cli.PrintInfo("Keeping existing %s", files.SettingsPath())
			}

			if _, err := os.Stat(files.DatasetPath()); os.IsNotExist(err) {
				records := dataset.Generate(dataset.DefaultSize, seed)
				if err := files.WriteDataset(files.DatasetPath(), records); err != nil {
					return fmt.Errorf("failed to write dataset: %w", err)
				}
				cli.PrintSuccess("Created %s with %d records", files.DatasetPath(), len(records))
			} else {
				cli.PrintInfo("Keeping existing %s", files.DatasetPath())
			}

			cli.PrintInfo("Run 'urlscout' to start the interactive search.")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the generated dataset")
	return cmd
}

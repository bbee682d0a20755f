package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-cli/cmd/commands"
	"github.com/urlscout/urlscout-cli/internal/cli"
	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
	"github.com/urlscout/urlscout-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	outputFormat string
	quiet        bool
	noColor      bool
	skipConfirm  bool
)

type rootFlags struct {
	dataset    commands.DatasetFlags
	strict     bool
	debounceMS int
	watch      bool
	logFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "urlscout",
		Short: "Incremental URL search in the terminal",
		Long: `urlscout searches a URL dataset as you type. Input is validated and
debounced, stale searches are cancelled, and matches are shown as cards with
a file or folder badge.

Settings are read from .urlscout/settings.yaml when present; flags override
them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(quiet, noColor, skipConfirm)
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return cli.ValidateOutputFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")

	flags.dataset.Register(rootCmd)
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "Require an absolute URL with scheme and host")
	rootCmd.Flags().IntVar(&flags.debounceMS, "debounce", 1000, "Debounce interval in milliseconds")
	rootCmd.Flags().BoolVar(&flags.watch, "watch", false, "Reload a file dataset when it changes")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "Log file path (\"none\" disables, \"stderr\" for the terminal)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of urlscout",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urlscout version %s\n", version)
		},
	}
}

// applyRootFlags copies explicitly set flags over settings
func applyRootFlags(cmd *cobra.Command, flags *rootFlags, settings *models.Settings) error {
	if err := flags.dataset.Apply(cmd, settings); err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("strict") {
		settings.Search.StrictURL = flags.strict
	}
	if f.Changed("debounce") {
		if flags.debounceMS <= 0 {
			return fmt.Errorf("invalid debounce: %d (must be greater than 0)", flags.debounceMS)
		}
		settings.Search.DebounceMS = flags.debounceMS
	}
	if f.Changed("watch") {
		settings.Dataset.Watch = flags.watch
	}
	if f.Changed("log-file") {
		settings.Logging.File = flags.logFile
	}
	if f.Changed("log-level") {
		settings.Logging.Level = flags.logLevel
	}
	return nil
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}
	if err := applyRootFlags(cmd, flags, settings); err != nil {
		return err
	}

	cmdCtx := cli.NewCommandContextWith(settings)
	defer cmdCtx.Close()

	logger, err := cmdCtx.Logger()
	if err != nil {
		return err
	}
	provider, err := cmdCtx.OpenProvider(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("starting search",
		"source", settings.Dataset.Source,
		"debounce", settings.Search.Debounce(),
		"strict", settings.Search.StrictURL)

	app := tui.NewApp(provider, tui.Options{
		Delay:  settings.Search.Debounce(),
		Strict: settings.Search.StrictURL,
		Logger: logger,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

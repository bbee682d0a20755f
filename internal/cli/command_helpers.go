package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urlscout/urlscout-cli/internal/logging"
	"github.com/urlscout/urlscout-cli/pkg/dataset"
	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// CommandContext carries the settings, logger and dataset a command runs with
type CommandContext struct {
	Settings *models.Settings

	logger   *slog.Logger
	closeLog func() error
	closers  []func() error
}

// NewCommandContext loads settings from .urlscout/settings.yaml, falling
// back to defaults when the file is missing.
func NewCommandContext() (*CommandContext, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}
	return &CommandContext{Settings: settings}, nil
}

// NewCommandContextWith uses settings as given
func NewCommandContextWith(settings *models.Settings) *CommandContext {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &CommandContext{Settings: settings}
}

// Logger returns the logger described by the logging settings, building it
// on first use.
func (c *CommandContext) Logger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	logger, closeFn, err := logging.New(c.Settings.Logging)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	c.closeLog = closeFn
	return logger, nil
}

// OpenProvider opens the dataset named by the settings. It is released by
// Close.
func (c *CommandContext) OpenProvider(ctx context.Context) (dataset.Provider, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	provider, closeFn, err := dataset.Open(ctx, c.Settings.Dataset, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	c.closers = append(c.closers, closeFn)
	logger.Debug("dataset opened", "source", c.Settings.Dataset.Source, "path", c.Settings.Dataset.Path)
	return provider, nil
}

// Close releases the providers and then the log file
func (c *CommandContext) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.closeLog != nil {
		if err := c.closeLog(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.closeLog = nil
		c.logger = nil
	}
	return firstErr
}

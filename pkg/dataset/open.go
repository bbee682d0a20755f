package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// Open builds the provider selected by settings. The returned close func
// releases database handles and stops a dataset watcher.
func Open(ctx context.Context, settings models.DatasetSettings, logger *slog.Logger) (Provider, func() error, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	noop := func() error { return nil }

	switch settings.Source {
	case "", models.SourceMemory:
		size := settings.Size
		if size <= 0 {
			size = DefaultSize
		}
		records := Generate(size, settings.Seed)
		logger.Info("generated in-memory dataset", "records", len(records), "seed", settings.Seed)
		return NewMemoryProvider(records, settings.Latency()), noop, nil

	case models.SourceFile:
		path := settings.Path
		if path == "" {
			path = files.DatasetPath()
		}
		records, err := files.ReadDataset(path)
		if err != nil {
			return nil, nil, err
		}
		provider := NewMemoryProvider(records, settings.Latency())
		logger.Info("loaded dataset file", "path", path, "records", len(records))

		if !settings.Watch {
			return provider, noop, nil
		}

		watchCtx, cancel := context.WithCancel(ctx)
		errCh := make(chan error, 1)
		go func() {
			errCh <- Watch(watchCtx, path, logger, provider.Replace)
		}()
		return provider, func() error {
			cancel()
			return <-errCh
		}, nil

	case models.SourceSQLite:
		if settings.Path == "" {
			return nil, nil, fmt.Errorf("dataset.path is required for the sqlite source")
		}
		provider, err := OpenSQLite(ctx, settings.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return provider, provider.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown dataset source: %q (must be: memory, file or sqlite)", settings.Source)
	}
}

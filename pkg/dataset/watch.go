package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// settle gives editors time to finish writing before the file is re-read
const settle = 100 * time.Millisecond

// Watch reloads the dataset file at path whenever it changes and hands the
// new records to onChange. It blocks until ctx is done. Files that fail to
// parse are logged and skipped, leaving the previous records in place.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func([]models.URLRecord)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory so atomic renames over the file are seen
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settle):
			}

			records, err := files.ReadDataset(path)
			if err != nil {
				logger.Warn("dataset reload failed", "path", path, "error", err)
				continue
			}
			logger.Info("dataset reloaded", "path", path, "records", len(records))
			onChange(records)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("dataset watcher error", "error", err)
		}
	}
}

package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay groups bursts of writes into one analysis.
const debounceDelay = 100 * time.Millisecond

// Watch analyzes filename once, then again every time it is written,
// handing each outcome to onResult. It returns when ctx is done.
func (e *Engine) Watch(ctx context.Context, filename string, onResult func(*Result, error)) error {
	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", filename, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory so that editors replacing the file are noticed
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	onResult(e.Run(ctx, filename))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWriteTo(event, target) {
				continue
			}
			debounce = time.After(debounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("Watcher error", zap.Error(err))
		case <-debounce:
			debounce = nil
			e.logger.Debug("File changed", zap.String("file", filename))
			onResult(e.Run(ctx, filename))
		}
	}
}

func isWriteTo(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/bisub/internal/logger"
)

type implWatcher struct {
	inputDir    string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration

	// paths handled by the startup scan
	drained map[string]bool
}

// Start processes subtitles already waiting in the input directory, then
// monitors it for new ones. Files are processed sequentially.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)

	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if err := w.handleEvent(ctx, event); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handleEvent processes a newly created subtitle file. It only returns an
// error when ctx is cancelled.
func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) error {
	// Only process CREATE events
	if event.Op&fsnotify.Create != fsnotify.Create {
		return nil
	}
	if !isSubtitleFile(event.Name) {
		w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
		return nil
	}

	// Files created between Add and the initial scan are reported again here.
	if w.drained[event.Name] {
		delete(w.drained, event.Name)
		if _, err := os.Stat(event.Name); os.IsNotExist(err) {
			w.logger.Debug(ctx, "Already processed during startup scan: %s", event.Name)
			return nil
		}
	}

	w.logger.Info(ctx, "New subtitle detected: %s", event.Name)

	// Small delay to ensure file is fully written
	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	w.handle(ctx, event.Name)
	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !isSubtitleFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(w.inputDir, e.Name()))
	}
	sort.Strings(files)

	if len(files) > 0 {
		w.logger.Info(ctx, "Found %d waiting subtitle files", len(files))
	}
	for _, f := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.drained[f] = true
		w.handle(ctx, f)
	}
	return nil
}

func (w *implWatcher) handle(ctx context.Context, filePath string) {
	if err := w.handler(ctx, filePath); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
	}
}

// isSubtitleFile checks if the file has the .srt extension
func isSubtitleFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".srt"
}

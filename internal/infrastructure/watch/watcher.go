// Package watch reloads a hand-edited document file whenever it changes on
// disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

// ReloadFunc receives the new file contents.
type ReloadFunc func(data []byte) error

// FileWatcher follows one file. The parent directory is watched so editors
// that save by rename are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc
	logger   *logging.ChanneledLogger
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string, debounce time.Duration, reload ReloadFunc, logger *logging.ChanneledLogger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return &FileWatcher{path: abs, debounce: debounce, reload: reload, logger: logger}, nil
}

// relevant reports whether ev may have changed the watched file's contents.
func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Run watches until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.logger.Watch().Info("Watching document file", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Watch().Warn("File watcher error", "error", err)
		case <-fire:
			fire = nil
			w.load()
		}
	}
}

func (w *FileWatcher) load() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Watch().Warn("Failed to read watched file", "path", w.path, "error", err)
		return
	}
	if err := w.reload(data); err != nil {
		w.logger.Watch().Warn("Watched file rejected", "path", w.path, "error", err)
		return
	}
	w.logger.Watch().Info("Document reloaded from file", "path", w.path)
}

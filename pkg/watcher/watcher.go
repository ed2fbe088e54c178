package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SketchWatcher watches sketch files and reports changes after a
// debounce interval, so editors that write in several bursts trigger
// one reload instead of many.
type SketchWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
}

// New creates a sketch watcher. A nil logger discards log output.
func New(debounce time.Duration, logger *slog.Logger) (*SketchWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SketchWatcher{
		watcher:   w,
		logger:    logger,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers a file. The callback runs on the watcher goroutine
// after the file has been quiet for the debounce interval.
func (w *SketchWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := w.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.callbacks[absPath] = callback
	w.mu.Unlock()
	return nil
}

// Start processes events until the context is cancelled or the
// watcher is closed.
func (w *SketchWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					w.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
					w.handleChange(event.Name)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("watcher error", "error", err)
			}
		}
	}()
}

func (w *SketchWatcher) handleChange(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, exists := w.callbacks[file]
	if !exists {
		return
	}

	if timer, exists := w.timers[file]; exists {
		timer.Stop()
	}
	w.timers[file] = time.AfterFunc(w.debounce, func() {
		callback(file)
	})
}

// Close stops the watcher and releases its resources
func (w *SketchWatcher) Close() error {
	return w.watcher.Close()
}

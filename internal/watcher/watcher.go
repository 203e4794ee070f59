package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"meetscribe/internal/logger"
)

// supportedFormats is the fixed allow-list of recording extensions.
var supportedFormats = []string{".mp4", ".mkv", ".avi", ".mov", ".webm"}

type implWatcher struct {
	dir      string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	opts     Options
	sem      *semaphore
	inflight *inflightSet

	mu      sync.Mutex
	pending map[string]func(func())
	closed  bool
	wg      sync.WaitGroup
}

// Start runs the event loop until ctx is cancelled, then waits for running
// handlers to drain before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.dir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(supportedFormats, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.mu.Lock()
			w.closed = true
			w.mu.Unlock()
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		if !w.isVideoFile(event.Name) {
			w.logger.Debug(ctx, "Ignoring non-video event: %s", event.Name)
			return
		}
		w.logger.Info(ctx, "New recording detected: %s", filepath.Base(event.Name))
		w.logger.Info(ctx, "Waiting for file to finish writing...")
		w.touch(ctx, event.Name, true)

	case event.Op&fsnotify.Write == fsnotify.Write:
		// Writes only reset the settle window of files already seen via
		// Create; anything else is noise.
		w.touch(ctx, event.Name, false)
	}
}

// touch schedules (or reschedules) the settle timer for a path. Each
// candidate gets its own debouncer; the timer fires dispatch once the path
// has been quiet for the settle delay.
func (w *implWatcher) touch(ctx context.Context, path string, create bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	d, ok := w.pending[path]
	if !ok {
		if !create {
			return
		}
		d = debounce.New(w.opts.SettleDelay)
		w.pending[path] = d
	}
	d(func() { w.dispatch(ctx, path) })
}

// dispatch runs on the debounce timer goroutine once a path settles: claim
// the path, verify the file stopped changing, then hand it to the handler
// under the worker-pool semaphore.
func (w *implWatcher) dispatch(ctx context.Context, path string) {
	w.mu.Lock()
	delete(w.pending, path)
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	if !w.inflight.TryAdd(path) {
		w.logger.Debug(ctx, "Already processing, skipping duplicate event: %s", path)
		return
	}

	if err := w.waitForStable(ctx, path); err != nil {
		w.inflight.Remove(path)
		w.logger.Warn(ctx, "Skipping %s: %v", path, err)
		return
	}

	if err := w.sem.acquire(ctx); err != nil {
		w.inflight.Remove(path)
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.inflight.Remove(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
}

func (w *implWatcher) waitForStable(ctx context.Context, path string) error {
	return waitForStable(ctx, path, w.opts.PollInterval, w.opts.StablePolls, w.opts.StableTimeout)
}

// isVideoFile checks the fixed extension allow-list, case-insensitively.
// Directories are never video files, whatever they are named.
func (w *implWatcher) isVideoFile(path string) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

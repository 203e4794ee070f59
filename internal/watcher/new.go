package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"meetscribe/internal/logger"
)

// Options tunes event settling, the stability probe, and the worker pool.
// Zero fields fall back to reasonable defaults.
type Options struct {
	SettleDelay   time.Duration
	PollInterval  time.Duration
	StablePolls   int
	StableTimeout time.Duration
	MaxConcurrent int
}

// New creates a Watcher over a single directory (non-recursive).
func New(dir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 5 * time.Second
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	if opts.StablePolls <= 0 {
		opts.StablePolls = 3
	}
	if opts.StableTimeout <= 0 {
		opts.StableTimeout = 2 * time.Minute
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}

	return &implWatcher{
		dir:      dir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
		opts:     opts,
		sem:      newSemaphore(opts.MaxConcurrent),
		inflight: newInflightSet(),
		pending:  make(map[string]func(func())),
	}, nil
}

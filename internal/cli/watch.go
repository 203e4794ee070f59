package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"meetscribe/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Monitor the recordings directory and summarize new videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(deps)
		},
	}
}

func runWatch(deps *Dependencies) error {
	ctx := context.Background()
	cfg := deps.Config
	log := deps.Logger

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meetscribe - Meeting Recording Watcher")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Provider: %s (model: %s)", cfg.Remote.Provider, cfg.Remote.Model)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Watch.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	dir, err := filepath.Abs(cfg.Paths.Videos)
	if err != nil {
		return fmt.Errorf("resolve videos directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create videos directory %s: %w", dir, err)
	}

	w, err := watcher.New(dir, deps.Processor.Process, log, watcher.Options{
		SettleDelay:   time.Duration(cfg.Watch.SettleDelay),
		PollInterval:  time.Duration(cfg.Watch.PollInterval),
		StablePolls:   cfg.Watch.StablePolls,
		StableTimeout: time.Duration(cfg.Watch.StableTimeout),
		MaxConcurrent: cfg.Watch.MaxConcurrent,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meetscribe is ready!")
	log.Info(ctx, "Monitoring: %s", dir)
	log.Info(ctx, "Summaries are written next to each recording")
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		// Start returns once in-flight recordings have drained.
		<-done
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("watcher stopped: %w", err)
		}
	}

	log.Info(ctx, "Meetscribe stopped")
	return nil
}

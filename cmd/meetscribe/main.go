package main

import (
	"context"
	"fmt"
	"os"

	"meetscribe/internal/cli"
	"meetscribe/internal/config"
	"meetscribe/internal/logger"
	"meetscribe/internal/processor"
	"meetscribe/internal/remote"
	"meetscribe/internal/summarizer"
	"meetscribe/internal/summary"
	"meetscribe/internal/transcriber"
	"meetscribe/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "meetscribe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})

	client, err := remote.New(context.Background(), cfg.Remote, log)
	if err != nil {
		return fmt.Errorf("initializing %s client: %w", cfg.Remote.Provider, err)
	}

	trans := transcriber.New(client, cfg.Remote.Language, log)
	summ := summarizer.New(client, log)
	writer := summary.New(cfg.Output.Docx, log)
	proc := processor.New(cfg, executor.New(), trans, summ, writer, log)

	deps := &cli.Dependencies{
		Config:    cfg,
		Logger:    log,
		Processor: proc,
	}

	return cli.NewRootCmd(deps).Execute()
}

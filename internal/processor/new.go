package processor

import (
	"meetscribe/internal/config"
	"meetscribe/internal/logger"
	"meetscribe/internal/summarizer"
	"meetscribe/internal/summary"
	"meetscribe/internal/transcriber"
	"meetscribe/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	writer      summary.Writer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, trans transcriber.Transcriber, summ summarizer.Summarizer, writer summary.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: trans,
		summarizer:  summ,
		writer:      writer,
		logger:      log,
	}
}

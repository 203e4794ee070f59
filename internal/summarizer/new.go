package summarizer

import (
	"meetscribe/internal/logger"
	"meetscribe/internal/remote"
)

type implSummarizer struct {
	client remote.Client
	logger logger.Logger
}

// New creates a Summarizer over the given remote client.
func New(client remote.Client, log logger.Logger) Summarizer {
	return &implSummarizer{
		client: client,
		logger: log,
	}
}

package transcriber

import (
	"meetscribe/internal/logger"
	"meetscribe/internal/remote"
)

type implTranscriber struct {
	client   remote.Client
	language string
	logger   logger.Logger
}

// New creates a Transcriber over the given remote client.
func New(client remote.Client, language string, log logger.Logger) Transcriber {
	return &implTranscriber{
		client:   client,
		language: language,
		logger:   log,
	}
}

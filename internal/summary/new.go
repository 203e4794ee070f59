package summary

import "meetscribe/internal/logger"

type implWriter struct {
	docx   bool
	logger logger.Logger
}

// New creates a Writer. When docx is true, every summary is additionally
// exported as a .docx document.
func New(docx bool, log logger.Logger) Writer {
	return &implWriter{
		docx:   docx,
		logger: log,
	}
}

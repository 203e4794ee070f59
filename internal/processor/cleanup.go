package processor

import (
	"context"
	"os"
)

// cleanupTempFile removes the extracted audio file, logging a warning if the
// removal fails. Deferred from Process so the file never outlives its run.
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

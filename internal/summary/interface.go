package summary

import "context"

// Writer persists meeting summaries next to their source videos. Path is the
// single source of truth for where a video's summary lives; the pipeline's
// existence check and the write itself both go through it.
type Writer interface {
	Path(videoPath string) string
	Exists(videoPath string) bool
	Write(ctx context.Context, summaryHTML, videoPath string) (string, error)
}

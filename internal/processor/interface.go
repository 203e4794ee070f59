package processor

import "context"

// Processor runs the summary pipeline for a single video file.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}

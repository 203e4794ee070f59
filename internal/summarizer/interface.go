package summarizer

import "context"

// Summarizer produces the structured HTML meeting summary for a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

package transcriber

import (
	"context"

	"meetscribe/internal/remote"
)

// Transcriber turns extracted audio into a verbatim transcript via the remote
// service: Upload first, then Transcribe with the returned handle.
type Transcriber interface {
	Upload(ctx context.Context, audioPath string) (*remote.Handle, error)
	Transcribe(ctx context.Context, handle *remote.Handle) (string, error)
}

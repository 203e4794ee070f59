package remote

import "context"

// Handle references audio made available to the remote service by Upload.
// Providers with a real file store set ID/URI; providers that stream the
// local file at generation time carry the path instead.
type Handle struct {
	ID   string
	URI  string
	MIME string
	Path string
}

// Sampling pins the generation parameters for a request.
type Sampling struct {
	Temperature float32
	TopP        float32
	TopK        float32
}

// Request is a single generation call: a text instruction, optionally
// grounded on previously uploaded audio.
type Request struct {
	Instruction string
	Audio       *Handle
	Sampling    *Sampling
}

// Client is the boundary to the remote generative service. Calls are never
// retried here; failures surface to the pipeline as-is.
type Client interface {
	Upload(ctx context.Context, audioPath string) (*Handle, error)
	Generate(ctx context.Context, req Request) (string, error)
	Cleanup(ctx context.Context, h *Handle) error
}

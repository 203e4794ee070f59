package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"meetscribe/internal/config"
	"meetscribe/internal/logger"
)

type implGemini struct {
	client       *genai.Client
	model        string
	pollInterval time.Duration
	logger       logger.Logger
}

func newGeminiClient(ctx context.Context, cfg config.RemoteConfig, log logger.Logger) (*implGemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGemini{
		client:       client,
		model:        cfg.Model,
		pollInterval: time.Duration(cfg.UploadPollInterval),
		logger:       log,
	}, nil
}

// Upload pushes the audio file to the file store and waits until the service
// reports it ACTIVE. Freshly uploaded files sit in PROCESSING for a while and
// cannot be referenced by a generation call until they leave that state.
func (g *implGemini) Upload(ctx context.Context, audioPath string) (*Handle, error) {
	file, err := g.client.Files.UploadFromPath(ctx, audioPath, &genai.UploadFileConfig{
		MIMEType: "audio/wav",
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	for file.State == genai.FileStateProcessing {
		g.logger.Debug(ctx, "Waiting for remote file %s to activate...", file.Name)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.pollInterval):
		}
		file, err = g.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("poll file state: %w", err)
		}
	}
	if file.State != genai.FileStateActive {
		return nil, fmt.Errorf("uploaded file %s entered state %s", file.Name, file.State)
	}

	g.logger.Debug(ctx, "Uploaded %s as %s", audioPath, file.Name)
	return &Handle{ID: file.Name, URI: file.URI, MIME: file.MIMEType}, nil
}

func (g *implGemini) Generate(ctx context.Context, req Request) (string, error) {
	var parts []*genai.Part
	if req.Audio != nil {
		parts = append(parts, genai.NewPartFromURI(req.Audio.URI, req.Audio.MIME))
	}
	parts = append(parts, genai.NewPartFromText(req.Instruction))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var genCfg *genai.GenerateContentConfig
	if req.Sampling != nil {
		genCfg = &genai.GenerateContentConfig{
			Temperature: genai.Ptr(req.Sampling.Temperature),
			TopP:        genai.Ptr(req.Sampling.TopP),
			TopK:        genai.Ptr(req.Sampling.TopK),
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from model")
}

// Cleanup removes the uploaded file from the file store.
func (g *implGemini) Cleanup(ctx context.Context, h *Handle) error {
	if h == nil || h.ID == "" {
		return nil
	}
	if _, err := g.client.Files.Delete(ctx, h.ID, nil); err != nil {
		return fmt.Errorf("delete remote file %s: %w", h.ID, err)
	}
	return nil
}

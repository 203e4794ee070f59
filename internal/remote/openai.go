package remote

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"meetscribe/internal/config"
	"meetscribe/internal/logger"
)

type implOpenAI struct {
	client          *openai.Client
	chatModel       string
	transcribeModel string
	logger          logger.Logger
}

// newOpenAIClient targets the official API, or any OpenAI-compatible endpoint
// when base_url is set.
func newOpenAIClient(cfg config.RemoteConfig, log logger.Logger) *implOpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &implOpenAI{
		client:          openai.NewClientWithConfig(clientConfig),
		chatModel:       cfg.Model,
		transcribeModel: cfg.TranscribeModel,
		logger:          log,
	}
}

// Upload only validates the audio path. The transcription endpoint streams
// the file itself at generation time, so the handle carries the local path.
func (o *implOpenAI) Upload(ctx context.Context, audioPath string) (*Handle, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("audio path %s is a directory", audioPath)
	}

	o.logger.Debug(ctx, "Staged local audio %s (%d bytes)", audioPath, info.Size())
	return &Handle{Path: audioPath, MIME: "audio/wav"}, nil
}

func (o *implOpenAI) Generate(ctx context.Context, req Request) (string, error) {
	if req.Audio != nil {
		resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    o.transcribeModel,
			FilePath: req.Audio.Path,
		})
		if err != nil {
			return "", fmt.Errorf("create transcription: %w", err)
		}
		return resp.Text, nil
	}

	chatReq := openai.ChatCompletionRequest{
		Model: o.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Instruction},
		},
	}
	if req.Sampling != nil {
		// The chat API has no top-k knob; temperature and top-p carry over.
		chatReq.Temperature = req.Sampling.Temperature
		chatReq.TopP = req.Sampling.TopP
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// Cleanup is a no-op: nothing was stored remotely.
func (o *implOpenAI) Cleanup(ctx context.Context, h *Handle) error {
	return nil
}

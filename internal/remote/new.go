package remote

import (
	"context"
	"fmt"

	"meetscribe/internal/config"
	"meetscribe/internal/logger"
)

// New selects the provider implementation named by the remote config section.
func New(ctx context.Context, cfg config.RemoteConfig, log logger.Logger) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		return newGeminiClient(ctx, cfg, log)
	case "openai":
		return newOpenAIClient(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown remote provider %q", cfg.Provider)
	}
}

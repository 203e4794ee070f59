package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath resolves the config file location: MEETSCRIBE_CONFIG if set,
// config.yaml in the working directory otherwise.
func DefaultPath() string {
	if path := os.Getenv("MEETSCRIBE_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}

// applyEnvOverrides merges secrets from the environment. MEETSCRIBE_API_KEY
// always wins; the provider-specific variables fill an empty key so the file
// can omit credentials entirely.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("MEETSCRIBE_API_KEY"); key != "" {
		cfg.Remote.APIKey = key
	}
	if cfg.Remote.APIKey != "" {
		return
	}
	switch cfg.Remote.Provider {
	case "openai":
		cfg.Remote.APIKey = os.Getenv("OPENAI_API_KEY")
	default:
		cfg.Remote.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

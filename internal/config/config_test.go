package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths:  PathsConfig{Videos: "data/recordings"},
				Remote: RemoteConfig{APIKey: "test-key"},
			},
			wantErr: false,
		},
		{
			name: "missing videos dir",
			config: Config{
				Remote: RemoteConfig{APIKey: "test-key"},
			},
			wantErr: true,
		},
		{
			name: "missing api key",
			config: Config{
				Paths: PathsConfig{Videos: "data/recordings"},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Paths:  PathsConfig{Videos: "data/recordings"},
				Remote: RemoteConfig{APIKey: "test-key", Provider: "anthropic"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths:  PathsConfig{Videos: "data/recordings"},
		Remote: RemoteConfig{APIKey: "test-key"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Remote.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.Remote.Provider)
	}
	if cfg.Remote.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Remote.Model)
	}
	if time.Duration(cfg.Watch.SettleDelay) != 5*time.Second {
		t.Errorf("SettleDelay = %v, want 5s", time.Duration(cfg.Watch.SettleDelay))
	}
	if cfg.Watch.StablePolls != 3 {
		t.Errorf("StablePolls = %v, want 3", cfg.Watch.StablePolls)
	}
	if cfg.Watch.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Watch.MaxConcurrent)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" || cfg.FFmpeg.ProbePath != "ffprobe" {
		t.Errorf("ffmpeg binaries = %v / %v, want ffmpeg / ffprobe", cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestValidateOpenAIModelDefault(t *testing.T) {
	cfg := Config{
		Paths:  PathsConfig{Videos: "data/recordings"},
		Remote: RemoteConfig{APIKey: "test-key", Provider: "openai"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Remote.Model != "gpt-4o-mini" {
		t.Errorf("Model = %v, want gpt-4o-mini", cfg.Remote.Model)
	}
	if cfg.Remote.TranscribeModel != "whisper-1" {
		t.Errorf("TranscribeModel = %v, want whisper-1", cfg.Remote.TranscribeModel)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("MEETSCRIBE_API_KEY", "")

	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  videos: "data/recordings"

watch:
  settle_delay: "2s"
  max_concurrent: 4

remote:
  provider: "gemini"
  api_key: "test-key"
  model: "gemini-2.5-flash"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Videos != "data/recordings" {
		t.Errorf("Videos = %v, want %v", cfg.Paths.Videos, "data/recordings")
	}
	if time.Duration(cfg.Watch.SettleDelay) != 2*time.Second {
		t.Errorf("SettleDelay = %v, want 2s", time.Duration(cfg.Watch.SettleDelay))
	}
	if cfg.Watch.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %v, want 4", cfg.Watch.MaxConcurrent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}

	// Defaults fill the rest
	if time.Duration(cfg.Watch.StableTimeout) != 2*time.Minute {
		t.Errorf("StableTimeout = %v, want 2m", time.Duration(cfg.Watch.StableTimeout))
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  videos: "data/recordings"
watch:
  settle_delay: "five seconds"
remote:
  api_key: "test-key"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should reject unparseable durations")
	}
}

func TestEnvOverrides(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  videos: "data/recordings"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MEETSCRIBE_API_KEY", "env-key")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Remote.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want env-key", cfg.Remote.APIKey)
	}
}

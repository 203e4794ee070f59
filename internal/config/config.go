package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Watch   WatchConfig   `yaml:"watch"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Remote  RemoteConfig  `yaml:"remote"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type PathsConfig struct {
	Videos string `yaml:"videos"`
}

type WatchConfig struct {
	SettleDelay   Duration `yaml:"settle_delay"`
	PollInterval  Duration `yaml:"poll_interval"`
	StablePolls   int      `yaml:"stable_polls"`
	StableTimeout Duration `yaml:"stable_timeout"`
	MaxConcurrent int      `yaml:"max_concurrent"`
}

type FFmpegConfig struct {
	BinaryPath     string   `yaml:"binary_path"`
	ProbePath      string   `yaml:"probe_path"`
	ExtractTimeout Duration `yaml:"extract_timeout"`
}

type RemoteConfig struct {
	Provider           string   `yaml:"provider"`
	APIKey             string   `yaml:"api_key"`
	BaseURL            string   `yaml:"base_url"`
	Model              string   `yaml:"model"`
	TranscribeModel    string   `yaml:"transcribe_model"`
	Language           string   `yaml:"language"`
	UploadTimeout      Duration `yaml:"upload_timeout"`
	UploadPollInterval Duration `yaml:"upload_poll_interval"`
	GenerateTimeout    Duration `yaml:"generate_timeout"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Duration lets intervals be written as "5s" or "2m" in YAML. yaml.v3 only
// decodes plain integers (nanoseconds) into time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (c *Config) Validate() error {
	if c.Paths.Videos == "" {
		return fmt.Errorf("paths.videos is required")
	}
	if c.Remote.APIKey == "" {
		return fmt.Errorf("remote.api_key is required")
	}
	if c.Remote.Provider == "" {
		c.Remote.Provider = "gemini"
	}
	if c.Remote.Provider != "gemini" && c.Remote.Provider != "openai" {
		return fmt.Errorf("remote.provider must be gemini or openai, got %q", c.Remote.Provider)
	}

	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = Duration(5 * time.Second)
	}
	if c.Watch.PollInterval == 0 {
		c.Watch.PollInterval = Duration(500 * time.Millisecond)
	}
	if c.Watch.StablePolls == 0 {
		c.Watch.StablePolls = 3
	}
	if c.Watch.StableTimeout == 0 {
		c.Watch.StableTimeout = Duration(2 * time.Minute)
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.ExtractTimeout == 0 {
		c.FFmpeg.ExtractTimeout = Duration(5 * time.Minute)
	}
	if c.Remote.Model == "" {
		switch c.Remote.Provider {
		case "openai":
			c.Remote.Model = "gpt-4o-mini"
		default:
			c.Remote.Model = "gemini-2.5-flash"
		}
	}
	if c.Remote.TranscribeModel == "" {
		c.Remote.TranscribeModel = "whisper-1"
	}
	if c.Remote.Language == "" {
		c.Remote.Language = "English"
	}
	if c.Remote.UploadTimeout == 0 {
		c.Remote.UploadTimeout = Duration(2 * time.Minute)
	}
	if c.Remote.UploadPollInterval == 0 {
		c.Remote.UploadPollInterval = Duration(2 * time.Second)
	}
	if c.Remote.GenerateTimeout == 0 {
		c.Remote.GenerateTimeout = Duration(5 * time.Minute)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 28
	}

	return nil
}

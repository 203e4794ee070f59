package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// extractAudio writes the video's audio track to a temporary WAV file as
// 16-bit PCM and returns its path. The caller owns deletion of the file.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	p.logger.Info(ctx, "Extracting audio from: %s", videoPath)

	hasAudio, err := p.hasAudioStream(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("probe video: %w", err)
	}
	if !hasAudio {
		return "", ErrNoAudioStream
	}

	tmp, err := os.CreateTemp("", "meetscribe-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	audioPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp audio file: %w", err)
	}

	// -vn drops the video stream. No -ar/-ac: the source sample rate and
	// channel layout must survive extraction.
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

// hasAudioStream asks ffprobe whether the container carries at least one
// audio stream.
func (p *implProcessor) hasAudioStream(ctx context.Context, videoPath string) (bool, error) {
	out, err := p.executor.Execute(ctx, p.cfg.FFmpeg.ProbePath,
		"-v", "error",
		"-select_streams", "a",
		"-show_streams",
		"-print_format", "json",
		videoPath,
	)
	if err != nil {
		return false, err
	}

	var probe struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
		} `json:"streams"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return false, fmt.Errorf("parse ffprobe output: %w", err)
	}

	for _, s := range probe.Streams {
		if s.CodecType == "audio" {
			return true, nil
		}
	}
	return false, nil
}

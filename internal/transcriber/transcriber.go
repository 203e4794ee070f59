package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meetscribe/internal/remote"
)

// ErrEmptyTranscript reports a transcription call that returned no text.
var ErrEmptyTranscript = errors.New("empty transcript from model")

const transcribeInstruction = "Please transcribe this meeting audio word-for-word in %s."

// Upload pushes the extracted audio to the remote service and returns the
// handle Transcribe needs.
func (t *implTranscriber) Upload(ctx context.Context, audioPath string) (*remote.Handle, error) {
	t.logger.Info(ctx, "Uploading audio file...")

	handle, err := t.client.Upload(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	return handle, nil
}

// Transcribe asks the model for a word-for-word transcript of the uploaded
// audio. The remote copy is released afterwards regardless of outcome; a
// failed release only logs.
func (t *implTranscriber) Transcribe(ctx context.Context, handle *remote.Handle) (string, error) {
	t.logger.Info(ctx, "Transcribing audio...")

	defer func() {
		if err := t.client.Cleanup(ctx, handle); err != nil {
			t.logger.Warn(ctx, "Failed to delete remote audio: %v", err)
		}
	}()

	text, err := t.client.Generate(ctx, remote.Request{
		Instruction: fmt.Sprintf(transcribeInstruction, t.language),
		Audio:       handle,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	transcript := strings.TrimSpace(text)
	if transcript == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Transcript received (%d chars)", len(transcript))
	return transcript, nil
}

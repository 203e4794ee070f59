package transcriber

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meetscribe/internal/logger"
	"meetscribe/internal/remote"
)

type fakeClient struct {
	uploadErr    error
	generateText string
	generateErr  error
	lastRequest  remote.Request
	cleanups     int
}

func (f *fakeClient) Upload(ctx context.Context, audioPath string) (*remote.Handle, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &remote.Handle{ID: "files/abc123", URI: "https://files/abc123", MIME: "audio/wav"}, nil
}

func (f *fakeClient) Generate(ctx context.Context, req remote.Request) (string, error) {
	f.lastRequest = req
	return f.generateText, f.generateErr
}

func (f *fakeClient) Cleanup(ctx context.Context, h *remote.Handle) error {
	f.cleanups++
	return nil
}

func newTestTranscriber(client remote.Client) Transcriber {
	return New(client, "English", logger.New(logger.Options{Level: "error"}))
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{}

	handle, err := newTestTranscriber(fake).Upload(ctx, "/tmp/audio.wav")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if handle.ID != "files/abc123" {
		t.Errorf("handle ID = %v, want files/abc123", handle.ID)
	}
}

func TestUploadError(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{uploadErr: errors.New("quota exceeded")}

	if _, err := newTestTranscriber(fake).Upload(ctx, "/tmp/audio.wav"); err == nil {
		t.Fatal("Upload() expected error")
	}
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{generateText: "  hello world  "}
	tr := newTestTranscriber(fake)

	handle, _ := tr.Upload(ctx, "/tmp/audio.wav")
	transcript, err := tr.Transcribe(ctx, handle)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if transcript != "hello world" {
		t.Errorf("transcript = %q, want %q", transcript, "hello world")
	}

	if fake.lastRequest.Audio == nil {
		t.Fatal("request carried no audio handle")
	}
	if !strings.Contains(fake.lastRequest.Instruction, "word-for-word in English") {
		t.Errorf("instruction = %q, missing transcription directive", fake.lastRequest.Instruction)
	}
	if fake.cleanups != 1 {
		t.Errorf("remote cleanups = %d, want 1", fake.cleanups)
	}
}

func TestTranscribeEmptyResponse(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{generateText: "   \n  "}
	tr := newTestTranscriber(fake)

	handle, _ := tr.Upload(ctx, "/tmp/audio.wav")
	_, err := tr.Transcribe(ctx, handle)
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Fatalf("Transcribe() error = %v, want ErrEmptyTranscript", err)
	}
	if fake.cleanups != 1 {
		t.Errorf("remote cleanups = %d, want 1 even on failure", fake.cleanups)
	}
}

func TestTranscribeError(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{generateErr: errors.New("deadline exceeded")}
	tr := newTestTranscriber(fake)

	handle, _ := tr.Upload(ctx, "/tmp/audio.wav")
	if _, err := tr.Transcribe(ctx, handle); err == nil {
		t.Fatal("Transcribe() expected error")
	}
	if fake.cleanups != 1 {
		t.Errorf("remote cleanups = %d, want 1 even on failure", fake.cleanups)
	}
}

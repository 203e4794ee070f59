package processor

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Stage identifies the pipeline step a failure belongs to.
type Stage string

const (
	StageExtract    Stage = "extract"
	StageUpload     Stage = "upload"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageSave       Stage = "save"
)

// ErrNoAudioStream reports a video container without any audio track.
var ErrNoAudioStream = errors.New("video has no audio stream")

// StageError wraps a pipeline failure with the stage it happened in and the
// video it belongs to.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, filepath.Base(e.Path), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

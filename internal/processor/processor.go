package processor

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Process runs the full pipeline for one video: check for an existing
// summary, extract audio, upload, transcribe, summarize, save. Failures are
// wrapped in a StageError naming the stage; the extracted audio file is
// removed no matter how the run ends.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	runID := uuid.NewString()[:8]
	filename := filepath.Base(videoPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Processing: %s", runID, filename)
	p.logger.Info(ctx, "========================================")

	// A summary next to the video means this recording is already done.
	if p.writer.Exists(videoPath) {
		p.logger.Info(ctx, "[%s] Summary already exists, skipping: %s", runID, p.writer.Path(videoPath))
		return nil
	}

	extractCtx, cancelExtract := context.WithTimeout(ctx, time.Duration(p.cfg.FFmpeg.ExtractTimeout))
	defer cancelExtract()
	audioPath, err := p.extractAudio(extractCtx, videoPath)
	if err != nil {
		return &StageError{Stage: StageExtract, Path: videoPath, Err: err}
	}
	defer p.cleanupTempFile(ctx, audioPath)

	uploadCtx, cancelUpload := context.WithTimeout(ctx, time.Duration(p.cfg.Remote.UploadTimeout))
	defer cancelUpload()
	handle, err := p.transcriber.Upload(uploadCtx, audioPath)
	if err != nil {
		return &StageError{Stage: StageUpload, Path: videoPath, Err: err}
	}

	transcribeCtx, cancelTranscribe := context.WithTimeout(ctx, time.Duration(p.cfg.Remote.GenerateTimeout))
	defer cancelTranscribe()
	transcript, err := p.transcriber.Transcribe(transcribeCtx, handle)
	if err != nil {
		return &StageError{Stage: StageTranscribe, Path: videoPath, Err: err}
	}

	summarizeCtx, cancelSummarize := context.WithTimeout(ctx, time.Duration(p.cfg.Remote.GenerateTimeout))
	defer cancelSummarize()
	summaryHTML, err := p.summarizer.Summarize(summarizeCtx, transcript)
	if err != nil {
		return &StageError{Stage: StageSummarize, Path: videoPath, Err: err}
	}

	outputPath, err := p.writer.Write(ctx, summaryHTML, videoPath)
	if err != nil {
		return &StageError{Stage: StageSave, Path: videoPath, Err: err}
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Successfully processed: %s", runID, filename)
	p.logger.Info(ctx, "[%s] Summary: %s", runID, outputPath)
	p.logger.Info(ctx, "[%s] Processing time: %s", runID, duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

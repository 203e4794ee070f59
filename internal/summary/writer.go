package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func stem(videoPath string) string {
	return strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
}

// Path returns `<stem>_summary.html` in the video's directory.
func (w *implWriter) Path(videoPath string) string {
	return filepath.Join(filepath.Dir(videoPath), stem(videoPath)+"_summary.html")
}

// Exists reports whether a summary is already present for the video.
func (w *implWriter) Exists(videoPath string) bool {
	_, err := os.Stat(w.Path(videoPath))
	return err == nil
}

// Write persists the summary next to the video and returns the output path.
// The file starts with a plain-text title and generation timestamp, followed
// by the HTML body. An existing summary is overwritten.
func (w *implWriter) Write(ctx context.Context, summaryHTML, videoPath string) (string, error) {
	outputPath := w.Path(videoPath)
	title := "Meeting Summary: " + stem(videoPath)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(summaryHTML)

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	w.logger.Info(ctx, "Summary saved: %s", outputPath)

	if w.docx {
		docxPath := strings.TrimSuffix(outputPath, ".html") + ".docx"
		if err := htmlToDocx(title, summaryHTML, docxPath); err != nil {
			w.logger.Warn(ctx, "Failed to export docx %s: %v", docxPath, err)
		} else {
			w.logger.Info(ctx, "Docx exported: %s", docxPath)
		}
	}

	return outputPath, nil
}

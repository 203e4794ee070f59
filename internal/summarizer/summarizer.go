package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meetscribe/internal/remote"
)

// ErrEmptySummary reports a summarization call that returned no text.
var ErrEmptySummary = errors.New("empty summary from model")

// summaryPrompt pins the section structure of every summary. The transcript
// is appended under the "Meeting Transcript:" marker.
const summaryPrompt = `You are an expert meeting summarizer.
Your task: generate a **structured meeting summary** in **pure HTML**, not Markdown.

Formatting Rules:
- Use only valid HTML tags (<h2>, <ul>, <li>, <p>, <strong>).
- Do NOT use Markdown (** or ## or * or ---).
- Do NOT include <html> or <body> tags — return only the summary content.
- Keep formatting clean and readable.

Structure the HTML output exactly as below:

<h2>Meeting Overview</h2>
<p>[Provide a concise summary of the meeting’s purpose, date, and context]</p>

<h2>Key Topics Discussed</h2>
<ul>
  <li>[Topic 1 summary]</li>
  <li>[Topic 2 summary]</li>
  <li>[Topic 3 summary]</li>
</ul>

<h2>Decisions Made</h2>
<ul>
  <li>[Decision 1]</li>
  <li>[Decision 2]</li>
</ul>

<h2>Action Items / Next Steps</h2>
<ul>
  <li>[Action item 1 with responsible person and deadline if available]</li>
  <li>[Action item 2]</li>
</ul>

<h2>Participant Contributions</h2>
<ul>
  <li><strong>[Participant Name]</strong>: [Their key input or contribution]</li>
</ul>
`

var summarySampling = remote.Sampling{Temperature: 0.3, TopP: 1, TopK: 40}

// Summarize sends the transcript to the model and returns the cleaned HTML
// summary.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Generating summary...")

	raw, err := s.client.Generate(ctx, remote.Request{
		Instruction: summaryPrompt + "\nMeeting Transcript:\n" + transcript,
		Sampling:    &summarySampling,
	})
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}

	summary := strings.TrimSpace(raw)
	if summary == "" {
		return "", ErrEmptySummary
	}

	// The model occasionally ignores the no-Markdown rule; strip the markers
	// unconditionally.
	summary = strings.ReplaceAll(summary, "**", "")
	summary = strings.ReplaceAll(summary, "##", "")

	return summary, nil
}

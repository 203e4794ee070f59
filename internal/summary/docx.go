package summary

import (
	"html"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reH2     = regexp.MustCompile(`^<h2>(.+?)</h2>$`)
	reLi     = regexp.MustCompile(`^<li>(.+?)</li>$`)
	reP      = regexp.MustCompile(`^<p>(.+?)</p>$`)
	reStrong = regexp.MustCompile(`<strong>(.+?)</strong>`)
	reAnyTag = regexp.MustCompile(`<[^>]+>`)
)

// htmlToDocx renders the constrained summary markup (h2/ul/li/p/strong) into
// a styled docx file.
func htmlToDocx(title, htmlBody, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(htmlBody, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "<ul>" || trimmed == "</ul>" {
			continue
		}

		if m := reH2.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[1], true, 15)
			continue
		}

		if m := reLi.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if m := reP.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), m[1])
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText writes text with <strong> spans rendered as bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reStrong.Split(text, -1)
	matches := reStrong.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if clean := cleanInline(part); clean != "" {
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			if clean := cleanInline(matches[i][1]); clean != "" {
				p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
			}
		}
	}
}

// cleanInline drops any leftover tags and decodes HTML entities.
func cleanInline(s string) string {
	return html.UnescapeString(reAnyTag.ReplaceAllString(s, ""))
}

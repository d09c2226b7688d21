package exporter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const (
	fontName = "Arial"
	fontSize = 12
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// DOCX writes the scripts to outputPath, one slide per page. Markdown the
// model sometimes emits (headings, bullets, bold) is turned into styling.
func (e *implExporter) DOCX(scripts models.Scripts, outputPath string) error {
	if len(scripts) == 0 {
		return fmt.Errorf("%w: nothing to export", models.ErrInvalidInput)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrRender, err)
	}

	addRun(doc.AddParagraph(""), e.title, 16, true)

	for i, s := range scripts {
		if i > 0 {
			doc.AddPageBreak()
		}
		addRun(doc.AddParagraph(""), models.SlideLabel(s.Key()), 14, true)

		for _, line := range strings.Split(s.Text, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || trimmed == "---" {
				continue
			}

			if m := reHeading.FindStringSubmatch(trimmed); m != nil {
				addRun(doc.AddParagraph(""), m[2], headingSize(len(m[1])), true)
				continue
			}
			if m := reBullet.FindStringSubmatch(trimmed); m != nil {
				addRichText(doc.AddParagraph(""), "• "+m[1])
				continue
			}
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func headingSize(level int) uint64 {
	if level <= 2 {
		return 14
	}
	return 13
}

// addRichText renders **bold** spans inside a body paragraph.
func addRichText(p *docx.Paragraph, text string) {
	last := 0
	for _, m := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			addRun(p, text[last:m[0]], fontSize, false)
		}
		addRun(p, text[m[2]:m[3]], fontSize, true)
		last = m[1]
	}
	if last < len(text) {
		addRun(p, text[last:], fontSize, false)
	}
}

func addRun(p *docx.Paragraph, text string, size uint64, bold bool) {
	run := p.AddText(stripInlineMarks(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

var inlineMarks = strings.NewReplacer("**", "", "__", "", "`", "")

func stripInlineMarks(s string) string {
	return inlineMarks.Replace(s)
}

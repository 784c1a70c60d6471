// Package transcript renders a bilingual subtitle file as a Word document.
package transcript

import (
	"fmt"
	"io"
	"os"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/bisub/internal/srt"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// skipLines are caption lines that carry no dialogue.
var skipLines = map[string]bool{
	srt.NoTranslation: true,
}

// Write converts the subtitle file at srtPath into a transcript at docxPath.
// Sequence numbers and timestamps are dropped; each cue becomes a bold first
// line followed by its paired line.
func Write(title, srtPath, docxPath string) error {
	f, err := os.Open(srtPath)
	if err != nil {
		return fmt.Errorf("open subtitles: %w", err)
	}
	defer f.Close()

	cues, err := Lines(f)
	if err != nil {
		return err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, cue := range cues {
		for i, line := range cue {
			addStyledRun(doc.AddParagraph(""), line, i == 0, fontSize)
		}
	}

	if err := doc.SaveTo(docxPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Lines returns the caption lines of every cue in r, minus placeholder text.
func Lines(r io.Reader) ([][]string, error) {
	scanner := srt.NewScanner(r)

	var cues [][]string
	for scanner.Scan() {
		var lines []string
		for _, line := range scanner.Block().TextLines() {
			if skipLines[line] {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			cues = append(cues, lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	return cues, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

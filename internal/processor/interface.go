package processor

import (
	"context"
	"io"
)

// Processor turns a subtitle file into a bilingual one
type Processor interface {
	// TranslateStream runs the parse and translate pass from r into w.
	// Index lines written to w are placeholders until renumbered.
	TranslateStream(ctx context.Context, r io.Reader, w io.Writer) (Stats, error)
	// Process translates inputPath and writes the renumbered result to outputPath
	Process(ctx context.Context, inputPath, outputPath string) (Stats, error)
	// HandleFile processes a file dropped into the input folder and archives it
	HandleFile(ctx context.Context, inputPath string) error
}

// Stats summarizes one translation pass.
type Stats struct {
	Blocks       int // cue blocks written
	Translated   int // cues with a successful translation
	Failed       int // cues whose translation request failed
	Untranslated int // cues with both or neither script
	Fragments    int // blank-terminated blocks shorter than three lines
	Unterminated int // lines of a final block never followed by a blank line
}

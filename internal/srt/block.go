// Package srt reads SubRip cue blocks and repairs their sequence numbering.
package srt

// MinBlockLines is the smallest block (index, timing, text) that is kept.
const MinBlockLines = 3

// TimingSeparator separates start and end times on a timing line.
const TimingSeparator = "-->"

// Block is one cue as read from the input, every line already trimmed.
type Block struct {
	Lines []string
}

func (b Block) Index() string {
	return b.Lines[0]
}

func (b Block) Timing() string {
	return b.Lines[1]
}

// Text returns the first caption line. Later caption lines are ignored by the pipeline.
func (b Block) Text() string {
	return b.Lines[2]
}

// TextLines returns every caption line of the block.
func (b Block) TextLines() []string {
	return b.Lines[2:]
}

// NoTranslation is written under a caption that was not sent for translation.
const NoTranslation = "NO TRANSLATION AVAILABLE"

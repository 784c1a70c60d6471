package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nguyentantai21042004/bisub/internal/script"
	"github.com/nguyentantai21042004/bisub/internal/srt"
	"github.com/nguyentantai21042004/bisub/internal/translator"
)

// TranslateStream reads cue blocks from r and writes bilingual cues to w.
// Only the first caption line of each block is classified and kept.
func (p *implProcessor) TranslateStream(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	scanner := srt.NewScanner(r)
	out := bufio.NewWriter(w)

	seq := 1
	for scanner.Scan() {
		block := scanner.Block()

		first, second := p.pairLines(ctx, block, &stats)
		if _, err := fmt.Fprintf(out, "%d\n%s\n%s\n%s\n\n", seq, block.Timing(), first, second); err != nil {
			return stats, fmt.Errorf("write cue %d: %w", seq, err)
		}
		seq++
		stats.Blocks++

		if err := p.wait(ctx); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read subtitles: %w", err)
	}

	stats.Fragments = scanner.Fragments()
	stats.Unterminated = scanner.Unterminated()
	if stats.Unterminated > 0 {
		p.logger.Debug(ctx, "Dropped unterminated final block (%d lines)", stats.Unterminated)
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}
	return stats, nil
}

// pairLines returns the two caption lines of a bilingual cue, primary language first.
func (p *implProcessor) pairLines(ctx context.Context, block srt.Block, stats *Stats) (string, string) {
	text := block.Text()
	primary, secondary := p.cfg.Languages.Primary, p.cfg.Languages.Secondary

	switch p.classifier.Classify(text) {
	case script.PrimaryOnly:
		return text, p.translate(ctx, block, primary, secondary, stats)
	case script.SecondaryOnly:
		return p.translate(ctx, block, secondary, primary, stats), text
	default:
		stats.Untranslated++
		return text, srt.NoTranslation
	}
}

func (p *implProcessor) translate(ctx context.Context, block srt.Block, source, target string, stats *Stats) string {
	translated, err := p.translator.Translate(ctx, block.Text(), source, target)
	if err != nil {
		stats.Failed++
		p.logger.Warn(ctx, "Translation failed for cue %s (%s -> %s): %v", block.Index(), source, target, err)
		return translator.FailureText(err)
	}

	stats.Translated++
	p.logger.Debug(ctx, "Cue %s translated %s -> %s", block.Index(), source, target)
	return translated
}

// wait pauses between cues to respect the translation service rate limit
func (p *implProcessor) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

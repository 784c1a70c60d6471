package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/bisub/internal/srt"
	"github.com/nguyentantai21042004/bisub/internal/transcript"
)

// Process runs both passes: translate into a temporary file, then renumber into outputPath
func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting subtitle translation: %s", inputPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Parse and translate into an intermediate file
	intermediate, stats, err := p.translateToTemp(ctx, inputPath)
	if intermediate != "" {
		defer p.cleanupTempFile(ctx, intermediate)
	}
	if err != nil {
		return stats, fmt.Errorf("translate: %w", err)
	}

	// Step 2: Repair sequence numbers
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return stats, fmt.Errorf("create output dir: %w", err)
	}
	renumbered, err := srt.RenumberFile(intermediate, outputPath)
	if err != nil {
		return stats, fmt.Errorf("renumber: %w", err)
	}

	// Step 3: Optional transcript export
	if p.cfg.Pipeline.ExportDocx {
		docxPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		if err := transcript.Write(title, outputPath, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export transcript: %v", err)
		} else {
			p.logger.Info(ctx, "Transcript written: %s", docxPath)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Translation completed: %d cues (%d translated, %d failed, %d without translation)",
		renumbered, stats.Translated, stats.Failed, stats.Untranslated)
	if stats.Fragments > 0 || stats.Unterminated > 0 {
		p.logger.Info(ctx, "Dropped: %d short blocks, %d trailing lines", stats.Fragments, stats.Unterminated)
	}
	p.logger.Info(ctx, "Output subtitle: %s", outputPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return stats, nil
}

// translateToTemp writes the first pass into a temp file and returns its path.
// The path is returned whenever the file was created, even on error.
func (p *implProcessor) translateToTemp(ctx context.Context, inputPath string) (path string, stats Stats, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return "", stats, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", stats, fmt.Errorf("create temp dir: %w", err)
	}
	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "*_translated.srt")
	if err != nil {
		return "", stats, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if cerr := tmp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close temp file: %w", cerr)
		}
	}()

	stats, err = p.TranslateStream(ctx, in, tmp)
	return tmp.Name(), stats, err
}

// HandleFile processes a file from the input folder into the output folder,
// then moves the original to the archived folder
func (p *implProcessor) HandleFile(ctx context.Context, inputPath string) error {
	outputPath := OutputPath(p.cfg.Paths.Output, inputPath)

	if _, err := p.Process(ctx, inputPath, outputPath); err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, inputPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}
	return nil
}

// OutputPath returns where the bilingual version of inputPath is written inside dir
func OutputPath(dir, inputPath string) string {
	name := filepath.Base(inputPath)
	return filepath.Join(dir, strings.TrimSuffix(name, filepath.Ext(name))+"_bilingual.srt")
}

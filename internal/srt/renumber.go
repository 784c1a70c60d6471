package srt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Renumber copies r to w, replacing every index line with a counter that
// starts at 1. Timing and caption lines pass through byte for byte, and
// whitespace-only lines become a single newline. It returns the number of
// index lines rewritten.
func Renumber(r io.Reader, w io.Writer) (int, error) {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	count := 0
	for {
		raw, err := in.ReadString('\n')
		if raw != "" {
			if werr := renumberLine(out, raw, &count); werr != nil {
				return count, fmt.Errorf("write line: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read line: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return count, fmt.Errorf("flush: %w", err)
	}
	return count, nil
}

func renumberLine(w *bufio.Writer, raw string, count *int) error {
	line := strings.TrimSpace(raw)

	switch {
	case isIndexLine(line):
		*count++
		_, err := fmt.Fprintf(w, "%d\n", *count)
		return err
	case strings.Contains(line, TimingSeparator):
		_, err := w.WriteString(raw)
		return err
	case line == "":
		_, err := w.WriteString("\n")
		return err
	default:
		_, err := w.WriteString(raw)
		return err
	}
}

// isIndexLine reports whether line is non-empty and made only of digits.
func isIndexLine(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// RenumberFile renumbers inputPath into outputPath.
func RenumberFile(inputPath, outputPath string) (n int, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return Renumber(in, out)
}

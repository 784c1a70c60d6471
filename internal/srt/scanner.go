package srt

import (
	"bufio"
	"io"
	"strings"
)

const maxLineBytes = 1 << 20

// Scanner groups input lines into cue blocks separated by blank lines.
//
// A block is only produced once a blank line terminates it and it holds at
// least MinBlockLines lines. Shorter fragments are skipped, and a block still
// open at end of input is dropped rather than flushed.
type Scanner struct {
	lines *bufio.Scanner
	block Block
	err   error

	fragments    int
	unterminated int
}

// NewScanner creates a Scanner reading from r
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{lines: lines}
}

// Scan advances to the next complete block. It returns false at end of input or on error.
func (s *Scanner) Scan() bool {
	var buf []string
	for s.lines.Scan() {
		line := strings.TrimSpace(s.lines.Text())
		if line != "" {
			buf = append(buf, line)
			continue
		}

		if len(buf) >= MinBlockLines {
			s.block = Block{Lines: buf}
			return true
		}
		if len(buf) > 0 {
			s.fragments++
		}
		buf = nil
	}

	s.err = s.lines.Err()
	s.unterminated = len(buf)
	s.block = Block{}
	return false
}

// Block returns the block produced by the last successful Scan.
func (s *Scanner) Block() Block {
	return s.block
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Fragments returns how many blank-terminated blocks were too short to keep.
func (s *Scanner) Fragments() int {
	return s.fragments
}

// Unterminated returns the number of lines left in the final block that
// was never followed by a blank line. Those lines are discarded.
func (s *Scanner) Unterminated() int {
	return s.unterminated
}

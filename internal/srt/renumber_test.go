package srt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func renumber(t *testing.T, input string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	n, err := Renumber(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Renumber() error = %v", err)
	}
	return out.String(), n
}

func TestRenumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		count int
	}{
		{
			name:  "repairs gaps and duplicates",
			input: "5\n00:00:01,000 --> 00:00:02,000\na\n\n5\n00:00:03,000 --> 00:00:04,000\nb\n\n9\n00:00:05,000 --> 00:00:06,000\nc\n\n",
			want:  "1\n00:00:01,000 --> 00:00:02,000\na\n\n2\n00:00:03,000 --> 00:00:04,000\nb\n\n3\n00:00:05,000 --> 00:00:06,000\nc\n\n",
			count: 3,
		},
		{
			name:  "whitespace lines become blank",
			input: "7\n00:00:01,000 --> 00:00:02,000\na\n   \n",
			want:  "1\n00:00:01,000 --> 00:00:02,000\na\n\n",
			count: 1,
		},
		{
			name:  "crlf passthrough lines keep their endings",
			input: " 12 \r\n00:00:01,000 --> 00:00:02,000\r\ntext\r\n\r\n",
			want:  "1\n00:00:01,000 --> 00:00:02,000\r\ntext\r\n\n",
			count: 1,
		},
		{
			name:  "fallback marker untouched",
			input: "3\n00:00:01,000 --> 00:00:02,000\nhello\nNO TRANSLATION AVAILABLE\n\n",
			want:  "1\n00:00:01,000 --> 00:00:02,000\nhello\nNO TRANSLATION AVAILABLE\n\n",
			count: 1,
		},
		{
			name:  "last line without newline",
			input: "2\n00:00:01,000 --> 00:00:02,000\ntail",
			want:  "1\n00:00:01,000 --> 00:00:02,000\ntail",
			count: 1,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := renumber(t, tt.input)
			if got != tt.want {
				t.Errorf("Renumber() = %q, want %q", got, tt.want)
			}
			if n != tt.count {
				t.Errorf("Renumber() count = %d, want %d", n, tt.count)
			}
		})
	}
}

func TestRenumberIdempotent(t *testing.T) {
	input := "9\n00:00:01,000 --> 00:00:02,000\n안녕\nสวัสดี\n\n4\n00:00:03,000 --> 00:00:04,000\nhi\nNO TRANSLATION AVAILABLE\n\n"

	first, n1 := renumber(t, input)
	second, n2 := renumber(t, first)

	if first != second {
		t.Errorf("second pass changed output:\n%q\n%q", first, second)
	}
	if n1 != n2 || n1 != 2 {
		t.Errorf("counts = %d, %d, want 2, 2", n1, n2)
	}
}

func TestIsIndexLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1", true},
		{"0042", true},
		{"", false},
		{"1a", false},
		{"-1", false},
		{"1 2", false},
	}

	for _, tt := range tests {
		if got := isIndexLine(tt.line); got != tt.want {
			t.Errorf("isIndexLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestRenumberFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.srt")
	out := filepath.Join(dir, "out.srt")

	if err := os.WriteFile(in, []byte("3\n00:00:01,000 --> 00:00:02,000\nx\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := RenumberFile(in, out)
	if err != nil {
		t.Fatalf("RenumberFile() error = %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "1\n") {
		t.Errorf("output = %q, want leading index 1", data)
	}
}

func TestRenumberFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := RenumberFile(filepath.Join(dir, "missing.srt"), filepath.Join(dir, "out.srt")); err == nil {
		t.Error("RenumberFile() should fail for a missing input")
	}
}

package transcript

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const bilingual = "1\n00:00:01,000 --> 00:00:02,000\n안녕하세요\nสวัสดี\n\n" +
	"2\n00:00:03,000 --> 00:00:04,000\nOK\nNO TRANSLATION AVAILABLE\n\n"

func TestLines(t *testing.T) {
	got, err := Lines(strings.NewReader(bilingual))
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}

	want := [][]string{{"안녕하세요", "สวัสดี"}, {"OK"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	srtPath := filepath.Join(dir, "episode.srt")
	docxPath := filepath.Join(dir, "episode.docx")

	if err := os.WriteFile(srtPath, []byte(bilingual), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write("episode", srtPath, docxPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("transcript is empty")
	}
}

func TestWriteMissingInput(t *testing.T) {
	dir := t.TempDir()
	if err := Write("x", filepath.Join(dir, "missing.srt"), filepath.Join(dir, "x.docx")); err == nil {
		t.Error("Write() should fail for a missing subtitle file")
	}
}

package texts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitLinesCapsWordsPerLine(t *testing.T) {
	para := "one two three four five six seven eight nine ten eleven twelve"
	lines := SplitLines(para, 5)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "one two three four five" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[2] != "eleven twelve" {
		t.Fatalf("unexpected last line: %q", lines[2])
	}
	for _, line := range lines {
		if n := len(strings.Fields(line)); n > 5 {
			t.Fatalf("line %q exceeds 5 words", line)
		}
	}
}

func TestSplitLinesNormalizesWhitespace(t *testing.T) {
	lines := SplitLines("  a   b\tc  ", 2)
	if len(lines) != 2 || lines[0] != "a b" || lines[1] != "c" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestSplitLinesEmptyParagraph(t *testing.T) {
	if lines := SplitLines("", 10); lines != nil {
		t.Fatalf("expected nil for empty paragraph, got %v", lines)
	}
}

func TestSplitLinesDefaultsInvalidMax(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = "w"
	}
	lines := SplitLines(strings.Join(words, " "), 0)
	if len(lines) != 3 {
		t.Fatalf("expected default word cap of %d, got lines %v", DefaultLineWords, lines)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	lib := Load(filepath.Join(t.TempDir(), "missing.json"))
	if len(lib.Phrases) == 0 || len(lib.Paragraphs) == 0 {
		t.Fatal("expected built-in corpus fallback")
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	lib := Load(path)
	if len(lib.Paragraphs) != len(defaultParagraphs) {
		t.Fatal("expected fallback corpus for corrupt file")
	}
}

func TestLoadPartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	data := `{"phrases": ["only phrases"], "paragraphs": []}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	lib := Load(path)
	if len(lib.Phrases) == 1 {
		t.Fatal("expected partial file to be rejected")
	}
}

func TestLoadCompleteFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.json")
	data := `{"phrases": ["custom phrase"], "paragraphs": ["custom paragraph"]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	lib := Load(path)
	if len(lib.Phrases) != 1 || lib.Phrases[0] != "custom phrase" {
		t.Fatalf("expected override phrases, got %v", lib.Phrases)
	}
	if len(lib.Paragraphs) != 1 || lib.Paragraphs[0] != "custom paragraph" {
		t.Fatalf("expected override paragraphs, got %v", lib.Paragraphs)
	}
}

func TestPickerReturnsLibraryEntries(t *testing.T) {
	lib := Library{Phrases: []string{"p1", "p2"}, Paragraphs: []string{"a", "b", "c"}}
	picker := NewPicker(lib)
	for i := 0; i < 20; i++ {
		para := picker.Paragraph()
		if para != "a" && para != "b" && para != "c" {
			t.Fatalf("unexpected paragraph %q", para)
		}
		phrase := picker.Phrase()
		if phrase != "p1" && phrase != "p2" {
			t.Fatalf("unexpected phrase %q", phrase)
		}
	}
}

func TestPickerEmptyLibrary(t *testing.T) {
	picker := NewPicker(Library{})
	if picker.Paragraph() != "" || picker.Phrase() != "" {
		t.Fatal("expected empty strings from an empty library")
	}
}

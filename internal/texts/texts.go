// Package texts supplies the practice corpus and line splitting.
package texts

import (
	"encoding/json"
	"math/rand"
	"os"
	"strings"
	"time"
)

// DefaultLineWords is the default maximum number of words per line.
const DefaultLineWords = 10

// Library holds the phrase and paragraph banks.
type Library struct {
	Phrases    []string `json:"phrases"`
	Paragraphs []string `json:"paragraphs"`
}

// Load reads a texts file, falling back to the built-in corpus when the
// file is missing, unreadable, or incomplete. A file only overrides the
// built-ins when both lists are non-empty.
func Load(path string) Library {
	fallback := Library{Phrases: defaultPhrases, Paragraphs: defaultParagraphs}
	if path == "" {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return fallback
	}
	if len(lib.Phrases) == 0 || len(lib.Paragraphs) == 0 {
		return fallback
	}
	return lib
}

// SplitLines splits a paragraph into lines of at most maxWords words each.
func SplitLines(paragraph string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultLineWords
	}
	words := strings.Fields(paragraph)
	var lines []string
	for len(words) > 0 {
		n := maxWords
		if n > len(words) {
			n = len(words)
		}
		lines = append(lines, strings.Join(words[:n], " "))
		words = words[n:]
	}
	return lines
}

// Picker selects random paragraphs from a library.
type Picker struct {
	lib Library
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker(lib Library) *Picker {
	return &Picker{lib: lib, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Paragraph returns a random paragraph from the library.
func (p *Picker) Paragraph() string {
	if len(p.lib.Paragraphs) == 0 {
		return ""
	}
	return p.lib.Paragraphs[p.rnd.Intn(len(p.lib.Paragraphs))]
}

// Phrase returns a random phrase from the library.
func (p *Picker) Phrase() string {
	if len(p.lib.Phrases) == 0 {
		return ""
	}
	return p.lib.Phrases[p.rnd.Intn(len(p.lib.Phrases))]
}

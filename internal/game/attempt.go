package game

import "strings"

// TypeResult describes the effect of one keystroke on an attempt.
type TypeResult int

// Keystroke outcomes.
const (
	TypedIgnored TypeResult = iota
	TypedChar
	TypedLineDone
	TypedTextDone
)

// CharClass classifies a target character for rendering.
type CharClass int

// Character classes.
const (
	CharPending CharClass = iota
	CharCorrect
	CharIncorrect
)

// CompletedLine archives one finished line of an attempt.
type CompletedLine struct {
	Target   string
	Typed    string
	Mistakes map[int]struct{}
}

// Attempt tracks typed input against target lines for one test.
//
// Mistakes are counted once per character position: a position that was
// ever mistyped stays counted even after backspace and correction. The
// per-line position set is archived with the line, so the attempt-wide
// mistake count only ever grows.
type Attempt struct {
	lines     []string
	lineIndex int
	target    []rune
	typed     []rune
	mistakes  map[int]struct{}

	mistakeCount   int
	charsTyped     int
	wordsTyped     int
	linesCompleted int
	history        []CompletedLine

	currentStreak int
	bestStreak    int
}

// NewAttempt starts a fresh attempt over the given lines.
func NewAttempt(lines []string) *Attempt {
	a := &Attempt{lines: lines, mistakes: map[int]struct{}{}}
	if len(lines) > 0 {
		a.target = []rune(lines[0])
	}
	return a
}

// Type processes one printable rune and reports what happened.
func (a *Attempt) Type(r rune) TypeResult {
	if len(a.target) == 0 {
		return TypedIgnored
	}
	// Space grace: a space at the start of a line is the natural word
	// separator carried over from the previous line, not a mistake.
	if r == ' ' && len(a.typed) == 0 && a.target[0] != ' ' {
		return TypedIgnored
	}
	if len(a.typed) >= len(a.target) {
		return TypedIgnored
	}

	pos := len(a.typed)
	a.typed = append(a.typed, r)
	a.charsTyped++

	if r != a.target[pos] {
		if _, seen := a.mistakes[pos]; !seen {
			a.mistakes[pos] = struct{}{}
			a.mistakeCount++
		}
		a.currentStreak = 0
	} else {
		a.currentStreak++
		if a.currentStreak > a.bestStreak {
			a.bestStreak = a.currentStreak
		}
	}

	if len(a.typed) == len(a.target) {
		return a.archiveLine()
	}
	return TypedChar
}

// Backspace removes the last typed rune. Counted mistakes stay counted.
func (a *Attempt) Backspace() bool {
	if len(a.typed) == 0 {
		return false
	}
	a.typed = a.typed[:len(a.typed)-1]
	return true
}

func (a *Attempt) archiveLine() TypeResult {
	a.history = append(a.history, CompletedLine{
		Target:   string(a.target),
		Typed:    string(a.typed),
		Mistakes: a.mistakes,
	})
	a.linesCompleted++
	a.wordsTyped += len(strings.Fields(string(a.target)))

	if a.lineIndex < len(a.lines)-1 {
		a.lineIndex++
		a.target = []rune(a.lines[a.lineIndex])
		a.typed = nil
		a.mistakes = map[int]struct{}{}
		return TypedLineDone
	}
	a.target = nil
	a.typed = nil
	a.mistakes = map[int]struct{}{}
	return TypedTextDone
}

// Refill replaces the remaining lines with a new text, keeping totals.
// Used by the timed mode when a paragraph runs out before the clock.
func (a *Attempt) Refill(lines []string) {
	a.lines = lines
	a.lineIndex = 0
	a.typed = nil
	a.mistakes = map[int]struct{}{}
	a.target = nil
	if len(lines) > 0 {
		a.target = []rune(lines[0])
	}
}

// ArchivePartial archives the current line if anything was typed on it,
// so a test cut short by the clock still shows its last line.
func (a *Attempt) ArchivePartial() {
	if len(a.typed) == 0 {
		return
	}
	a.history = append(a.history, CompletedLine{
		Target:   string(a.target),
		Typed:    string(a.typed),
		Mistakes: a.mistakes,
	})
	a.typed = nil
	a.mistakes = map[int]struct{}{}
}

// ClassifyAt classifies the target character at index i on the current line.
func (a *Attempt) ClassifyAt(i int) CharClass {
	if i >= len(a.typed) {
		return CharPending
	}
	if a.typed[i] == a.target[i] {
		return CharCorrect
	}
	return CharIncorrect
}

// Cursor returns the index of the next character to type.
func (a *Attempt) Cursor() int { return len(a.typed) }

// Target returns the current line's target text.
func (a *Attempt) Target() string { return string(a.target) }

// TargetRunes returns the current line's target runes.
func (a *Attempt) TargetRunes() []rune { return a.target }

// PreviewLines returns up to n upcoming lines after the current one.
func (a *Attempt) PreviewLines(n int) []string {
	start := a.lineIndex + 1
	if start >= len(a.lines) || n <= 0 {
		return nil
	}
	end := start + n
	if end > len(a.lines) {
		end = len(a.lines)
	}
	return a.lines[start:end]
}

// RemainingLines returns the lines never reached, for the results view.
func (a *Attempt) RemainingLines() []string {
	if len(a.history) >= len(a.lines) {
		return nil
	}
	return a.lines[len(a.history):]
}

// History returns the archived lines.
func (a *Attempt) History() []CompletedLine { return a.history }

// CharsTyped returns the total characters typed, right or wrong.
func (a *Attempt) CharsTyped() int { return a.charsTyped }

// WordsTyped returns the words accumulated from archived lines.
func (a *Attempt) WordsTyped() int { return a.wordsTyped }

// Mistakes returns the count of first-time mistake positions.
func (a *Attempt) Mistakes() int { return a.mistakeCount }

// LinesCompleted returns the number of archived full lines.
func (a *Attempt) LinesCompleted() int { return a.linesCompleted }

// LineIndex returns the index of the current line.
func (a *Attempt) LineIndex() int { return a.lineIndex }

// LineCount returns the number of lines in the current text.
func (a *Attempt) LineCount() int { return len(a.lines) }

// CurrentStreak returns the running correct-character streak.
func (a *Attempt) CurrentStreak() int { return a.currentStreak }

// BestStreak returns the best correct-character streak so far.
func (a *Attempt) BestStreak() int { return a.bestStreak }

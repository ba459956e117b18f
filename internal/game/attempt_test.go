package game

import "testing"

func typeString(a *Attempt, s string) {
	for _, r := range s {
		a.Type(r)
	}
}

func TestMistakeCountedOncePerPosition(t *testing.T) {
	a := NewAttempt([]string{"the quick fox"})
	typeString(a, "the qkick")
	if a.Mistakes() != 1 {
		t.Fatalf("expected 1 mistake, got %d", a.Mistakes())
	}

	// Correct the 6th character and retype the rest.
	for i := 0; i < 4; i++ {
		a.Backspace()
	}
	typeString(a, "uick fox")
	if a.Mistakes() != 1 {
		t.Fatalf("expected mistake to stay counted once, got %d", a.Mistakes())
	}
	if len(a.History()) != 1 {
		t.Fatalf("expected line to be archived, got %d history entries", len(a.History()))
	}
}

func TestRepeatedMistypeSamePositionCountsOnce(t *testing.T) {
	a := NewAttempt([]string{"abc"})
	for i := 0; i < 5; i++ {
		a.Type('x')
		a.Backspace()
	}
	if a.Mistakes() != 1 {
		t.Fatalf("expected 1 mistake after repeated mistypes, got %d", a.Mistakes())
	}
}

func TestLineCompletesExactlyAtTargetLength(t *testing.T) {
	a := NewAttempt([]string{"ab", "cd"})
	if res := a.Type('a'); res != TypedChar {
		t.Fatalf("expected TypedChar, got %v", res)
	}
	if res := a.Type('b'); res != TypedLineDone {
		t.Fatalf("expected TypedLineDone, got %v", res)
	}
	if a.LineIndex() != 1 || a.Target() != "cd" {
		t.Fatalf("expected advance to second line, got index %d target %q", a.LineIndex(), a.Target())
	}
	if res := a.Type('c'); res != TypedChar {
		t.Fatalf("expected TypedChar on new line, got %v", res)
	}
	if res := a.Type('d'); res != TypedTextDone {
		t.Fatalf("expected TypedTextDone, got %v", res)
	}
}

func TestWrongCharacterStillAdvancesLine(t *testing.T) {
	a := NewAttempt([]string{"ab"})
	a.Type('a')
	if res := a.Type('x'); res != TypedTextDone {
		t.Fatalf("expected line to complete at full length even with mistakes, got %v", res)
	}
	if a.Mistakes() != 1 {
		t.Fatalf("expected 1 mistake, got %d", a.Mistakes())
	}
}

func TestSpaceGraceAtLineStart(t *testing.T) {
	a := NewAttempt([]string{"word"})
	if res := a.Type(' '); res != TypedIgnored {
		t.Fatalf("expected leading space to be ignored, got %v", res)
	}
	if a.CharsTyped() != 0 {
		t.Fatalf("expected ignored space not to count, got %d chars", a.CharsTyped())
	}
	a.Type('w')
	if res := a.Type(' '); res == TypedIgnored {
		t.Fatalf("expected mid-line space to count as a keystroke")
	}
}

func TestNoGraceWhenTargetStartsWithSpace(t *testing.T) {
	a := NewAttempt([]string{" ab"})
	if res := a.Type(' '); res != TypedChar {
		t.Fatalf("expected space to match a leading space target, got %v", res)
	}
}

func TestInputIgnoredAfterTextDone(t *testing.T) {
	a := NewAttempt([]string{"a"})
	a.Type('a')
	if res := a.Type('b'); res != TypedIgnored {
		t.Fatalf("expected input after completion to be ignored, got %v", res)
	}
	if a.CharsTyped() != 1 {
		t.Fatalf("expected chars typed to stay at 1, got %d", a.CharsTyped())
	}
}

func TestBackspaceOnEmptyLine(t *testing.T) {
	a := NewAttempt([]string{"ab"})
	if a.Backspace() {
		t.Fatal("expected backspace on empty input to be a no-op")
	}
}

func TestWordsAccumulateFromArchivedLines(t *testing.T) {
	a := NewAttempt([]string{"one two", "three"})
	typeString(a, "one two")
	if a.WordsTyped() != 2 {
		t.Fatalf("expected 2 words after first line, got %d", a.WordsTyped())
	}
	typeString(a, "three")
	if a.WordsTyped() != 3 {
		t.Fatalf("expected 3 words total, got %d", a.WordsTyped())
	}
	if a.LinesCompleted() != 2 {
		t.Fatalf("expected 2 completed lines, got %d", a.LinesCompleted())
	}
}

func TestHistoryKeepsMistakePositions(t *testing.T) {
	a := NewAttempt([]string{"ab"})
	a.Type('x')
	a.Backspace()
	typeString(a, "ab")
	hist := a.History()
	if len(hist) != 1 {
		t.Fatalf("expected 1 archived line, got %d", len(hist))
	}
	if _, ok := hist[0].Mistakes[0]; !ok {
		t.Fatal("expected position 0 to stay flagged in the archived line")
	}
	if hist[0].Typed != "ab" {
		t.Fatalf("expected archived typed text %q, got %q", "ab", hist[0].Typed)
	}
}

func TestStreaks(t *testing.T) {
	a := NewAttempt([]string{"abcd"})
	typeString(a, "ab")
	if a.CurrentStreak() != 2 || a.BestStreak() != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", a.CurrentStreak(), a.BestStreak())
	}
	a.Type('x')
	if a.CurrentStreak() != 0 {
		t.Fatalf("expected streak reset on mistake, got %d", a.CurrentStreak())
	}
	if a.BestStreak() != 2 {
		t.Fatalf("expected best streak to survive, got %d", a.BestStreak())
	}
}

func TestRefillKeepsTotals(t *testing.T) {
	a := NewAttempt([]string{"ab"})
	typeString(a, "ab")
	a.Refill([]string{"cd"})
	if a.Target() != "cd" {
		t.Fatalf("expected refill target %q, got %q", "cd", a.Target())
	}
	if a.CharsTyped() != 2 || a.WordsTyped() != 1 {
		t.Fatalf("expected totals to survive refill, got chars %d words %d", a.CharsTyped(), a.WordsTyped())
	}
	if len(a.History()) != 1 {
		t.Fatalf("expected history to survive refill, got %d", len(a.History()))
	}
}

func TestArchivePartial(t *testing.T) {
	a := NewAttempt([]string{"abcdef"})
	typeString(a, "abc")
	a.ArchivePartial()
	hist := a.History()
	if len(hist) != 1 {
		t.Fatalf("expected partial line archived, got %d entries", len(hist))
	}
	if hist[0].Typed != "abc" || hist[0].Target != "abcdef" {
		t.Fatalf("unexpected archive: %+v", hist[0])
	}
	// Nothing typed means nothing to archive.
	a.ArchivePartial()
	if len(a.History()) != 1 {
		t.Fatalf("expected no extra archive entry, got %d", len(a.History()))
	}
}

func TestPreviewAndRemainingLines(t *testing.T) {
	a := NewAttempt([]string{"a", "b", "c", "d"})
	preview := a.PreviewLines(2)
	if len(preview) != 2 || preview[0] != "b" || preview[1] != "c" {
		t.Fatalf("unexpected preview: %v", preview)
	}
	typeString(a, "a")
	rem := a.RemainingLines()
	if len(rem) != 3 || rem[0] != "b" {
		t.Fatalf("unexpected remaining lines: %v", rem)
	}
}

func TestClassifyAt(t *testing.T) {
	a := NewAttempt([]string{"abc"})
	a.Type('a')
	a.Type('x')
	if a.ClassifyAt(0) != CharCorrect {
		t.Fatal("expected position 0 correct")
	}
	if a.ClassifyAt(1) != CharIncorrect {
		t.Fatal("expected position 1 incorrect")
	}
	if a.ClassifyAt(2) != CharPending {
		t.Fatal("expected position 2 pending")
	}
}

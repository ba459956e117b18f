package game

import (
	"math"
	"testing"
	"time"

	"github.com/keydrill/keydrill/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWPMTimed(t *testing.T) {
	// 150 chars in a 30 second window is 30 words over half a minute.
	got := WPM(model.ModeTimed, 150, 0, 30*time.Second, 30*time.Second)
	if !almostEqual(got, 60) {
		t.Fatalf("expected 60 WPM, got %f", got)
	}
}

func TestWPMTimedUsesFixedDuration(t *testing.T) {
	// The elapsed value must not affect the timed formula.
	a := WPM(model.ModeTimed, 100, 0, 30*time.Second, 30*time.Second)
	b := WPM(model.ModeTimed, 100, 0, 30*time.Second, 45*time.Second)
	if !almostEqual(a, b) {
		t.Fatalf("expected identical WPM, got %f and %f", a, b)
	}
}

func TestWPMSprint(t *testing.T) {
	// 30 words in 40 seconds.
	got := WPM(model.ModeSprint, 999, 30, 0, 40*time.Second)
	if !almostEqual(got, 45) {
		t.Fatalf("expected 45 WPM, got %f", got)
	}
}

func TestWPMFree(t *testing.T) {
	// 100 chars in 60 seconds is 20 words per minute.
	got := WPM(model.ModeFree, 100, 0, 0, time.Minute)
	if !almostEqual(got, 20) {
		t.Fatalf("expected 20 WPM, got %f", got)
	}
}

func TestWPMZeroTime(t *testing.T) {
	if got := WPM(model.ModeFree, 100, 0, 0, 0); got != 0 {
		t.Fatalf("expected 0 WPM with no elapsed time, got %f", got)
	}
	if got := WPM(model.ModeTimed, 100, 0, 0, time.Second); got != 0 {
		t.Fatalf("expected 0 WPM with no duration, got %f", got)
	}
	if got := LiveWPM(100, 0); got != 0 {
		t.Fatalf("expected 0 live WPM with no elapsed time, got %f", got)
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		chars, mistakes int
		want            float64
	}{
		{100, 0, 100},
		{100, 5, 95},
		{100, 100, 0},
		{100, 150, 0},
		{0, 0, 0},
		{-1, 0, 0},
	}
	for _, tc := range cases {
		got := Accuracy(tc.chars, tc.mistakes)
		if !almostEqual(got, tc.want) {
			t.Fatalf("Accuracy(%d, %d) = %f, want %f", tc.chars, tc.mistakes, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Accuracy(%d, %d) = %f out of range", tc.chars, tc.mistakes, got)
		}
	}
}

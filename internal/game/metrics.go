package game

import (
	"time"

	"github.com/keydrill/keydrill/internal/model"
)

// WPM computes words per minute for a finished test.
//
// The word and time basis depends on the mode: the timed mode divides
// characters-typed/5 by the fixed duration, the sprint divides the word
// goal by the elapsed time, and free practice divides characters-typed/5
// by the elapsed time.
func WPM(mode model.Mode, charsTyped, wordGoal int, duration, elapsed time.Duration) float64 {
	var words, minutes float64
	switch mode {
	case model.ModeTimed:
		words = float64(charsTyped) / 5.0
		minutes = duration.Minutes()
	case model.ModeSprint:
		words = float64(wordGoal)
		minutes = elapsed.Minutes()
	default:
		words = float64(charsTyped) / 5.0
		minutes = elapsed.Minutes()
	}
	if minutes <= 0 {
		return 0
	}
	return words / minutes
}

// LiveWPM computes the in-flight words per minute over the elapsed time.
func LiveWPM(charsTyped int, elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return (float64(charsTyped) / 5.0) / minutes
}

// Accuracy returns the percentage of characters typed without a counted
// mistake. Always within [0, 100]; 0 when nothing was typed.
func Accuracy(charsTyped, mistakes int) float64 {
	if charsTyped <= 0 {
		return 0
	}
	if mistakes > charsTyped {
		mistakes = charsTyped
	}
	return float64(charsTyped-mistakes) / float64(charsTyped) * 100
}

// Package model defines shared data structures.
package model

import "time"

// Mode identifies a game mode.
type Mode int

// Game modes.
const (
	ModeNone Mode = iota
	ModeTimed
	ModeSprint
	ModeFree
)

// String returns the persistent identifier for a mode.
func (m Mode) String() string {
	switch m {
	case ModeTimed:
		return "timed"
	case ModeSprint:
		return "sprint"
	case ModeFree:
		return "free"
	default:
		return "none"
	}
}

// Label returns the human-readable mode name.
func (m Mode) Label() string {
	switch m {
	case ModeTimed:
		return "Timed Challenge"
	case ModeSprint:
		return "Word Sprint"
	case ModeFree:
		return "Free Practice"
	default:
		return "No Mode"
	}
}

// ParseMode maps a persistent identifier back to a mode.
func ParseMode(s string) Mode {
	switch s {
	case "timed":
		return ModeTimed
	case "sprint":
		return ModeSprint
	case "free":
		return ModeFree
	default:
		return ModeNone
	}
}

// Config defines resolved game settings.
type Config struct {
	Theme     string
	Duration  time.Duration
	WordGoal  int
	TextsPath string
	LineWords int
}

// Profile holds cumulative counters for one user.
type Profile struct {
	TestsCompleted int     `json:"tests_completed"`
	TotalWPM       float64 `json:"total_wpm"`
	BestWPM        float64 `json:"best_wpm"`
	TotalAccuracy  float64 `json:"total_accuracy"`
	BestAccuracy   float64 `json:"best_accuracy"`
}

// AvgWPM returns the average WPM across completed tests.
func (p Profile) AvgWPM() float64 {
	if p.TestsCompleted == 0 {
		return 0
	}
	return p.TotalWPM / float64(p.TestsCompleted)
}

// AvgAccuracy returns the average accuracy across completed tests.
func (p Profile) AvgAccuracy() float64 {
	if p.TestsCompleted == 0 {
		return 0
	}
	return p.TotalAccuracy / float64(p.TestsCompleted)
}

// Result captures a completed typing test.
type Result struct {
	Mode       Mode
	User       string
	StartedAt  time.Time
	EndedAt    time.Time
	WPM        float64
	Accuracy   float64
	CharsTyped int
	WordsTyped int
	Mistakes   int
	BestStreak int
	DurationMs int64
}

// SessionRecord is one row of the session history.
type SessionRecord struct {
	ID         int64
	EndedAt    time.Time
	Mode       Mode
	User       string
	WPM        float64
	Accuracy   float64
	CharsTyped int
	WordsTyped int
	Mistakes   int
	BestStreak int
	DurationMs int64
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Mode        Mode
	User        string
	Last        int
	CurveWindow int
}

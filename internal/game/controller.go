package game

import (
	"time"

	"github.com/keydrill/keydrill/internal/model"
)

// RefillFunc supplies a fresh set of lines when a text runs out before
// the mode's completion condition is met.
type RefillFunc func() []string

// Controller drives one attempt according to the selected mode: it owns
// the clock, the completion condition, and paragraph cycling.
type Controller struct {
	mode     model.Mode
	duration time.Duration
	wordGoal int
	refill   RefillFunc

	attempt *Attempt

	started    bool
	done       bool
	startedAt  time.Time
	finishedAt time.Time

	now func() time.Time
}

// NewController builds a controller for one test.
func NewController(mode model.Mode, duration time.Duration, wordGoal int, lines []string, refill RefillFunc) *Controller {
	return &Controller{
		mode:     mode,
		duration: duration,
		wordGoal: wordGoal,
		refill:   refill,
		attempt:  NewAttempt(lines),
		now:      time.Now,
	}
}

// Attempt exposes the underlying attempt for rendering.
func (c *Controller) Attempt() *Attempt { return c.attempt }

// Mode returns the controller's mode.
func (c *Controller) Mode() model.Mode { return c.mode }

// Started reports whether the clock is running.
func (c *Controller) Started() bool { return c.started }

// Done reports whether the test has completed.
func (c *Controller) Done() bool { return c.done }

// Type feeds one printable rune to the attempt. The clock starts on the
// first accepted keystroke. Returns true when this keystroke completed
// the test. Keystrokes after completion are ignored.
func (c *Controller) Type(r rune) bool {
	if c.done {
		return false
	}
	res := c.attempt.Type(r)
	if res == TypedIgnored {
		return false
	}
	if !c.started {
		c.started = true
		c.startedAt = c.now()
	}
	switch res {
	case TypedLineDone, TypedTextDone:
		if c.mode == model.ModeSprint && c.attempt.WordsTyped() >= c.wordGoal {
			c.finish()
			return true
		}
		if res == TypedTextDone {
			switch c.mode {
			case model.ModeFree:
				c.finish()
				return true
			default:
				// Timed keeps going on a fresh paragraph; a sprint
				// short of its goal does the same.
				if c.refill != nil {
					c.attempt.Refill(c.refill())
				}
			}
		}
	}
	return false
}

// Backspace forwards a backspace to the attempt.
func (c *Controller) Backspace() {
	if c.done {
		return
	}
	c.attempt.Backspace()
}

// Tick advances the clock. For the timed mode it completes the test when
// the countdown reaches zero; it never touches typing-outcome state.
// Returns true when this tick completed the test.
func (c *Controller) Tick() bool {
	if c.done || !c.started || c.mode != model.ModeTimed {
		return false
	}
	if c.now().Sub(c.startedAt) >= c.duration {
		c.finish()
		return true
	}
	return false
}

func (c *Controller) finish() {
	c.done = true
	c.finishedAt = c.now()
	c.attempt.ArchivePartial()
}

// Elapsed returns time since the first keystroke, frozen at completion.
func (c *Controller) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	if c.done {
		return c.finishedAt.Sub(c.startedAt)
	}
	return c.now().Sub(c.startedAt)
}

// Remaining returns the countdown left in timed mode, never negative.
func (c *Controller) Remaining() time.Duration {
	rem := c.duration - c.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}

// LiveWPM returns the in-flight WPM for the live stats bar.
func (c *Controller) LiveWPM() float64 {
	return LiveWPM(c.attempt.CharsTyped(), c.Elapsed())
}

// LiveAccuracy returns the in-flight accuracy for the live stats bar.
func (c *Controller) LiveAccuracy() float64 {
	return Accuracy(c.attempt.CharsTyped(), c.attempt.Mistakes())
}

// Result summarizes the completed test.
func (c *Controller) Result(user string) model.Result {
	elapsed := c.Elapsed()
	return model.Result{
		Mode:       c.mode,
		User:       user,
		StartedAt:  c.startedAt,
		EndedAt:    c.finishedAt,
		WPM:        WPM(c.mode, c.attempt.CharsTyped(), c.wordGoal, c.duration, elapsed),
		Accuracy:   Accuracy(c.attempt.CharsTyped(), c.attempt.Mistakes()),
		CharsTyped: c.attempt.CharsTyped(),
		WordsTyped: c.attempt.WordsTyped(),
		Mistakes:   c.attempt.Mistakes(),
		BestStreak: c.attempt.BestStreak(),
		DurationMs: elapsed.Milliseconds(),
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/keydrill/keydrill/internal/game"
	"github.com/keydrill/keydrill/internal/model"
)

const (
	progressBarWidth = 40
	previewLineCount = 2
	leaderboardSize  = 5
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch {
	case m.showStats:
		body = m.viewStats()
	case m.userMenu:
		body = m.viewUserMenu()
	default:
		switch m.session.State() {
		case game.StateUserSetup:
			body = m.viewUserSetup()
		case game.StateUserSelect:
			body = m.viewUserSelect()
		case game.StateMenu:
			body = m.viewMenu()
		case game.StateReady:
			body = m.viewReady()
		case game.StateInTest:
			body = m.viewTest()
		case game.StateComplete:
			body = m.viewComplete()
		}
	}
	if m.notice != "" {
		body = m.theme().Accent.Render(m.notice) + "\n\n" + body
	}
	if m.errMsg != "" {
		body = body + "\n" + m.theme().Incorrect.Render(m.errMsg)
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) viewUserSetup() string {
	t := m.theme()
	var b strings.Builder
	b.WriteString(t.Accent.Bold(true).Render("Welcome to keydrill!"))
	b.WriteString("\n\n")
	b.WriteString("To get started, please enter your username.\n\n")
	b.WriteString(m.nameInput.View())
	return boxStyle(t).Render(b.String())
}

func (m *Model) viewUserSelect() string {
	t := m.theme()
	var b strings.Builder
	if m.creating {
		b.WriteString(t.Accent.Bold(true).Render("Create New User"))
		b.WriteString("\n\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(t.Dim.Render("Esc back"))
		return boxStyle(t).Render(b.String())
	}
	b.WriteString(t.Accent.Bold(true).Render("Select Your User"))
	b.WriteString("\n\n")
	for i, name := range m.profiles.Names() {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("1-9 select · c create new user"))
	return boxStyle(t).Render(b.String())
}

func (m *Model) viewMenu() string {
	t := m.theme()
	var b strings.Builder
	b.WriteString(t.Accent.Bold(true).Render("KEYDRILL"))
	b.WriteString("  ")
	b.WriteString(t.Dim.Render(fmt.Sprintf("user: %s", m.session.User())))
	b.WriteString("\n\n")
	if m.session.Mode() == model.ModeNone {
		b.WriteString("Select your challenge:\n\n")
		b.WriteString(m.modeLine("1", model.ModeTimed, fmt.Sprintf("Race the clock: %d seconds.", int(m.cfg.Duration.Seconds()))))
		b.WriteString(m.modeLine("2", model.ModeSprint, fmt.Sprintf("Finish %d words as fast as you can.", m.cfg.WordGoal)))
		b.WriteString(m.modeLine("3", model.ModeFree, "Type the whole text at your own pace."))
	} else {
		b.WriteString(fmt.Sprintf("Mode selected: %s\n\n", t.Accent.Bold(true).Render(m.session.Mode().Label())))
		b.WriteString(t.Correct.Render("Press Enter to ready up"))
		b.WriteString("\n")
		b.WriteString(t.Dim.Render("1/2/3 pick a different mode"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("u users · s stats · tab theme · esc quit"))
	return b.String()
}

func (m *Model) modeLine(key string, mode model.Mode, desc string) string {
	t := m.theme()
	return fmt.Sprintf("  %s %s — %s\n", t.Accent.Bold(true).Render(key), mode.Label(), t.Dim.Render(desc))
}

func (m *Model) viewReady() string {
	t := m.theme()
	var b strings.Builder
	b.WriteString(t.Correct.Render("READY! Start typing when ready..."))
	b.WriteString("\n\n")
	if m.ctrl != nil {
		b.WriteString(m.renderCurrentLine())
		b.WriteString("\n")
		b.WriteString(m.renderPreview())
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("Start typing to begin · Enter cancel"))
	return b.String()
}

func (m *Model) viewTest() string {
	t := m.theme()
	a := m.ctrl.Attempt()
	var b strings.Builder

	b.WriteString(m.renderLiveStats())
	b.WriteString("\n\n")
	b.WriteString(m.renderHistory(true))
	b.WriteString(boxStyle(t).Render(m.renderCurrentLine()))
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")

	switch m.ctrl.Mode() {
	case model.ModeTimed:
		total := m.cfg.Duration.Seconds()
		left := m.ctrl.Remaining().Seconds()
		progress := 0.0
		if total > 0 {
			progress = (total - left) / total
		}
		b.WriteString(fmt.Sprintf("Time: %s  %.1fs left\n", m.progressBar(progress), left))
		b.WriteString(t.Dim.Render(fmt.Sprintf("Words: %d · Chars: %d", a.WordsTyped(), a.CharsTyped())))
	case model.ModeSprint:
		progress := float64(a.WordsTyped()) / float64(m.cfg.WordGoal)
		if progress > 1 {
			progress = 1
		}
		left := m.cfg.WordGoal - a.WordsTyped()
		if left < 0 {
			left = 0
		}
		b.WriteString(fmt.Sprintf("Progress: %s  %d words left\n", m.progressBar(progress), left))
		b.WriteString(t.Dim.Render(fmt.Sprintf("Elapsed: %.1fs", m.ctrl.Elapsed().Seconds())))
	default:
		b.WriteString(fmt.Sprintf("Lines: %d/%d · Time: %.1fs · Words: %d",
			a.LineIndex(), a.LineCount(), m.ctrl.Elapsed().Seconds(), a.WordsTyped()))
	}
	b.WriteString("\n\n")
	b.WriteString(t.Dim.Render("Esc cancel test"))
	return b.String()
}

func (m *Model) viewComplete() string {
	t := m.theme()
	var b strings.Builder
	b.WriteString(t.Correct.Bold(true).Render("★ ★ ★  COMPLETE!  ★ ★ ★"))
	b.WriteString("\n\n")
	b.WriteString(m.renderHistory(false))
	if rem := m.ctrl.Attempt().RemainingLines(); len(rem) > 0 {
		for _, line := range rem {
			b.WriteString(t.Dim.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if m.result != nil {
		res := *m.result
		var r strings.Builder
		r.WriteString(t.Accent.Bold(true).Render("FINAL RESULTS"))
		r.WriteString("\n\n")
		r.WriteString(fmt.Sprintf("Words Per Minute:  %s%s\n", t.Correct.Bold(true).Render(fmt.Sprintf("%.1f", res.WPM)), wpmStars(res.WPM)))
		r.WriteString(fmt.Sprintf("Accuracy:          %s\n", t.Correct.Bold(true).Render(fmt.Sprintf("%.1f%%", res.Accuracy))))
		r.WriteString(fmt.Sprintf("Best Streak:       %d", res.BestStreak))
		b.WriteString(boxStyle(t).Render(r.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("n new · r retry · u users · s stats · m/esc menu"))
	return b.String()
}

func (m *Model) viewStats() string {
	t := m.theme()
	var b strings.Builder
	b.WriteString(t.Accent.Bold(true).Render("STATISTICS & LEADERBOARD"))
	b.WriteString("\n\n")

	cur := m.profiles.CurrentUser
	if p, ok := m.profiles.Users[cur]; ok {
		b.WriteString(fmt.Sprintf("Your stats — %s\n", t.Correct.Bold(true).Render(cur)))
		b.WriteString(fmt.Sprintf("  Tests completed: %d\n", p.TestsCompleted))
		if p.TestsCompleted > 0 {
			b.WriteString(fmt.Sprintf("  WPM      avg %.1f · best %.1f%s\n", p.AvgWPM(), p.BestWPM, wpmStars(p.BestWPM)))
			b.WriteString(fmt.Sprintf("  Accuracy avg %.1f%% · best %.1f%%\n", p.AvgAccuracy(), p.BestAccuracy))
		} else {
			b.WriteString(t.Dim.Render("  No tests completed yet. Start typing to build your stats!"))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(t.Dim.Render("No user selected."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Top %d by best WPM\n", leaderboardSize))
	for i, name := range m.profiles.Leaderboard(leaderboardSize) {
		p := m.profiles.Users[name]
		marker := "  "
		style := t.Pending
		if name == cur {
			marker = "► "
			style = t.Correct
		}
		b.WriteString(fmt.Sprintf("  #%d %s%s  WPM %.1f · Acc %.1f%% · Tests %d\n",
			i+1, marker, style.Render(padName(name, 16)), p.BestWPM, p.BestAccuracy, p.TestsCompleted))
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("Esc back"))
	return boxStyle(t).Render(b.String())
}

func (m *Model) viewUserMenu() string {
	t := m.theme()
	var b strings.Builder
	if m.creating {
		b.WriteString(t.Accent.Bold(true).Render("Create New User"))
		b.WriteString("\n\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(t.Dim.Render("Esc back"))
		return boxStyle(t).Render(b.String())
	}
	b.WriteString(t.Accent.Bold(true).Render("USER MANAGEMENT"))
	b.WriteString("\n\n")
	cur := m.profiles.CurrentUser
	if cur == "" {
		cur = "None"
	}
	b.WriteString(fmt.Sprintf("Current user: %s\n\n", t.Correct.Bold(true).Render(cur)))
	for i, name := range m.profiles.Names() {
		if name == m.profiles.CurrentUser {
			b.WriteString(t.Correct.Render(fmt.Sprintf("  ► %d. %s (active)\n", i+1, name)))
		} else {
			b.WriteString(fmt.Sprintf("    %d. %s\n", i+1, name))
		}
	}
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("1-9 switch · c create · d delete current · esc back"))
	return boxStyle(t).Render(b.String())
}

// renderCurrentLine paints the current line per character: typed chars in
// correct/incorrect, the cursor cell when the blink is on, pending dim.
func (m *Model) renderCurrentLine() string {
	t := m.theme()
	a := m.ctrl.Attempt()
	target := a.TargetRunes()
	if len(target) == 0 {
		return ""
	}
	cursor := a.Cursor()
	var b strings.Builder
	for i, r := range target {
		s := string(r)
		switch {
		case i < cursor:
			if a.ClassifyAt(i) == game.CharCorrect {
				b.WriteString(t.Correct.Render(s))
			} else {
				b.WriteString(t.Incorrect.Render(s))
			}
		case i == cursor && m.blinkOn && !m.ctrl.Done():
			b.WriteString(t.Cursor.Render(s))
		default:
			b.WriteString(t.Pending.Render(s))
		}
	}
	return b.String()
}

// renderHistory paints archived lines with their recorded correctness,
// dimmed while a test is still running.
func (m *Model) renderHistory(dim bool) string {
	t := m.theme()
	var b strings.Builder
	for _, line := range m.ctrl.Attempt().History() {
		target := []rune(line.Target)
		typed := []rune(line.Typed)
		for i, r := range target {
			s := string(r)
			switch {
			case i >= len(typed):
				b.WriteString(t.Dim.Render(s))
			case typed[i] == r:
				if dim {
					b.WriteString(t.Dim.Render(s))
				} else {
					b.WriteString(t.Correct.Render(s))
				}
			default:
				b.WriteString(t.Incorrect.Faint(dim).Render(s))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderPreview() string {
	t := m.theme()
	var b strings.Builder
	for _, line := range m.ctrl.Attempt().PreviewLines(previewLineCount) {
		b.WriteString(t.Dim.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderLiveStats() string {
	t := m.theme()
	a := m.ctrl.Attempt()
	line := fmt.Sprintf("WPM: %.1f │ Accuracy: %.1f%% │ Streak: %d (Best: %d)",
		m.ctrl.LiveWPM(), m.ctrl.LiveAccuracy(), a.CurrentStreak(), a.BestStreak())
	return t.Accent.Render(line)
}

func (m *Model) progressBar(progress float64) string {
	t := m.theme()
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * progressBarWidth)
	empty := progressBarWidth - filled
	var b strings.Builder
	b.WriteString(t.Accent.Render("▐" + strings.Repeat("█", filled)))
	b.WriteString(t.Dim.Render(strings.Repeat("░", empty)))
	b.WriteString(t.Accent.Render("▌"))
	b.WriteString(fmt.Sprintf(" %.0f%%", progress*100))
	return b.String()
}

func boxStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(t.Accent.GetForeground()).
		Padding(1, 2)
}

func wpmStars(wpm float64) string {
	switch {
	case wpm >= 80:
		return "  ★★★"
	case wpm >= 60:
		return "  ★★"
	case wpm >= 40:
		return "  ★"
	default:
		return ""
	}
}

func padName(name string, width int) string {
	w := runewidth.StringWidth(name)
	if w >= width {
		return name
	}
	return name + strings.Repeat(" ", width-w)
}

// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keydrill/keydrill/internal/game"
	"github.com/keydrill/keydrill/internal/history"
	"github.com/keydrill/keydrill/internal/model"
	"github.com/keydrill/keydrill/internal/profile"
	"github.com/keydrill/keydrill/internal/texts"
)

const (
	blinkInterval  = 500 * time.Millisecond
	tickInterval   = 100 * time.Millisecond
	noticeDuration = 1500 * time.Millisecond
)

type blinkMsg time.Time

type tickMsg time.Time

// Model implements the Bubble Tea game UI. All game state lives on the
// session object and the controller; the model only routes input and
// renders.
type Model struct {
	cfg      model.Config
	session  *game.Session
	ctrl     *game.Controller
	profiles *profile.Store
	history  *history.Store
	picker   *texts.Picker

	paragraph string

	width  int
	height int

	themeIndex   int
	notice       string
	noticeExpiry time.Time

	nameInput textinput.Model
	creating  bool

	showStats bool
	userMenu  bool

	blinkOn bool
	result  *model.Result
	errMsg  string
}

// NewModel constructs the game model routed to the correct entry state.
func NewModel(cfg model.Config, profiles *profile.Store, hist *history.Store, picker *texts.Picker) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Type your name and press Enter..."
	nameInput.CharLimit = 24
	nameInput.Focus()

	m := &Model{
		cfg:        cfg,
		session:    game.NewSession(profiles.CurrentUser, !profiles.Empty()),
		profiles:   profiles,
		history:    hist,
		picker:     picker,
		themeIndex: ThemeIndex(cfg.Theme),
		nameInput:  nameInput,
		blinkOn:    true,
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(blinkCmd(), tickCmd(), textinput.Blink)
}

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg { return blinkMsg(t) })
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case blinkMsg:
		m.blinkOn = !m.blinkOn
		if m.notice != "" && time.Now().After(m.noticeExpiry) {
			m.notice = ""
		}
		return m, blinkCmd()
	case tickMsg:
		if m.ctrl != nil && m.session.State() == game.StateInTest && m.ctrl.Tick() {
			m.finishTest()
		}
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showStats {
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			m.showStats = false
		}
		return m, nil
	}
	if m.userMenu {
		return m.handleUserMenuKey(msg)
	}

	switch m.session.State() {
	case game.StateUserSetup, game.StateUserSelect:
		return m.handleGateKey(msg)
	case game.StateMenu:
		return m.handleMenuKey(msg)
	case game.StateReady:
		return m.handleReadyKey(msg)
	case game.StateInTest:
		return m.handleTestKey(msg)
	case game.StateComplete:
		return m.handleCompleteKey(msg)
	}
	return m, nil
}

// handleGateKey serves both entry gates. The gates cannot be escaped:
// the session reaches the menu only once a user resolves.
func (m *Model) handleGateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.State() == game.StateUserSelect && !m.creating {
		switch {
		case msg.String() == "c":
			m.creating = true
			m.nameInput.Reset()
			return m, textinput.Blink
		case len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
			names := m.profiles.Names()
			idx := int(msg.Runes[0] - '1')
			if idx < len(names) {
				m.selectUser(names[idx])
			}
			return m, nil
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		name := trimmedName(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		if err := m.profiles.Create(name); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.session.ResolveUser(name)
		m.creating = false
		m.nameInput.Reset()
		return m, nil
	case tea.KeyEsc:
		// Creating from the select gate can back out; the setup gate
		// has nothing to go back to.
		if m.creating && !m.profiles.Empty() {
			m.creating = false
			m.nameInput.Reset()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.chooseMode(model.ModeTimed)
	case "2":
		m.chooseMode(model.ModeSprint)
	case "3":
		m.chooseMode(model.ModeFree)
	case "tab":
		m.cycleTheme()
	case "u":
		m.userMenu = true
	case "s":
		m.showStats = true
	case "enter":
		if m.session.ReadyUp() {
			m.prepareTest(false)
		}
	case "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.session.CancelReady()
		m.ctrl = nil
		return m, nil
	case tea.KeyTab:
		m.cycleTheme()
		return m, nil
	case tea.KeySpace:
		m.startTyping(' ')
		return m, nil
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			m.startTyping(msg.Runes[0])
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleTestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.session.CancelTest()
		m.ctrl = nil
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.ctrl.Backspace()
		return m, nil
	case tea.KeySpace:
		m.typeRune(' ')
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.session.State() != game.StateInTest {
				break
			}
			m.typeRune(r)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCompleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		if m.session.Again() {
			m.prepareTest(false)
		}
	case "r":
		if m.session.Again() {
			m.prepareTest(true)
		}
	case "m", "esc":
		m.session.ToMenu()
		m.ctrl = nil
		m.result = nil
	case "tab":
		m.cycleTheme()
	case "u":
		m.userMenu = true
	case "s":
		m.showStats = true
	}
	return m, nil
}

func (m *Model) handleUserMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.creating {
		switch msg.Type {
		case tea.KeyEnter:
			name := trimmedName(m.nameInput.Value())
			if name != "" {
				if err := m.profiles.Create(name); err != nil {
					m.errMsg = err.Error()
				} else {
					m.session.ResolveUser(name)
				}
				m.creating = false
				m.nameInput.Reset()
			}
			return m, nil
		case tea.KeyEsc:
			m.creating = false
			m.nameInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Type == tea.KeyEsc:
		m.userMenu = false
		// Deleting the current user drops the session back to a gate.
		if m.session.User() == "" || m.profiles.CurrentUser == "" {
			m.session.ClearUser(!m.profiles.Empty())
		}
	case msg.String() == "c":
		m.creating = true
		m.nameInput.Reset()
		return m, textinput.Blink
	case msg.String() == "d":
		if cur := m.profiles.CurrentUser; cur != "" {
			if err := m.profiles.Delete(cur); err != nil {
				m.errMsg = err.Error()
			}
		}
	case len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		names := m.profiles.Names()
		idx := int(msg.Runes[0] - '1')
		if idx < len(names) {
			m.selectUser(names[idx])
			m.userMenu = false
		}
	}
	return m, nil
}

func (m *Model) selectUser(name string) {
	if err := m.profiles.SetCurrent(name); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.session.ResolveUser(name)
}

func (m *Model) chooseMode(mode model.Mode) {
	if m.session.SelectMode(mode) {
		m.paragraph = m.picker.Paragraph()
	}
}

// prepareTest builds a fresh controller. Retry keeps the paragraph.
func (m *Model) prepareTest(samePara bool) {
	if !samePara || m.paragraph == "" {
		m.paragraph = m.picker.Paragraph()
	}
	lines := texts.SplitLines(m.paragraph, m.cfg.LineWords)
	refill := func() []string {
		m.paragraph = m.picker.Paragraph()
		return texts.SplitLines(m.paragraph, m.cfg.LineWords)
	}
	m.ctrl = game.NewController(m.session.Mode(), m.cfg.Duration, m.cfg.WordGoal, lines, refill)
	m.result = nil
}

func (m *Model) startTyping(r rune) {
	if m.ctrl == nil {
		return
	}
	m.session.Begin()
	m.typeRune(r)
}

func (m *Model) typeRune(r rune) {
	if m.ctrl.Type(r) {
		m.finishTest()
	}
}

func (m *Model) finishTest() {
	if !m.session.Finish() {
		return
	}
	res := m.ctrl.Result(m.session.User())
	m.result = &res
	if err := m.profiles.Record(res.User, res.WPM, res.Accuracy); err != nil {
		m.errMsg = err.Error()
	}
	if m.history != nil {
		if _, err := m.history.InsertResult(context.Background(), res); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
}

func (m *Model) cycleTheme() {
	m.themeIndex = (m.themeIndex + 1) % len(themes)
	m.notice = fmt.Sprintf("Theme: %s", themes[m.themeIndex].Name)
	m.noticeExpiry = time.Now().Add(noticeDuration)
}

func (m *Model) theme() Theme {
	return themes[m.themeIndex]
}

func trimmedName(s string) string {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the semantic roles of the game to lipgloss styles.
type Theme struct {
	Name      string
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Pending   lipgloss.Style
	Cursor    lipgloss.Style
	Accent    lipgloss.Style
	Dim       lipgloss.Style
}

var themes = []Theme{
	{
		Name:      "Dark",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	},
	{
		Name:      "Light",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("88")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
	},
	{
		Name:      "Ocean",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("18")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Faint(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Faint(true),
	},
	{
		Name:      "Retro",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true),
	},
}

// ThemeIndex resolves a theme name to its index, defaulting to the first.
func ThemeIndex(name string) int {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return 0
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

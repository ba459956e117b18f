// Package main provides the CLI entrypoint for keydrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/keydrill/keydrill/internal/config"
	"github.com/keydrill/keydrill/internal/history"
	"github.com/keydrill/keydrill/internal/model"
	"github.com/keydrill/keydrill/internal/profile"
	"github.com/keydrill/keydrill/internal/stats"
	"github.com/keydrill/keydrill/internal/texts"
	"github.com/keydrill/keydrill/internal/tui"
)

const (
	defaultTheme       = "Dark"
	defaultDuration    = 30
	defaultWordGoal    = 30
	defaultLineWords   = 10
	defaultCurveWindow = 10
)

var (
	gameTheme     string
	gameDuration  int
	gameWordGoal  int
	gameTextsPath string
	gameLineWords int

	statsMode        string
	statsUser        string
	statsLast        int
	statsCurveWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keydrill",
		Short:         "Terminal typing-speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameTheme, "theme", defaultTheme, "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	rootCmd.Flags().IntVar(&gameDuration, "duration", defaultDuration, "timed mode duration in seconds")
	rootCmd.Flags().IntVar(&gameWordGoal, "words", defaultWordGoal, "sprint mode word goal")
	rootCmd.Flags().StringVar(&gameTextsPath, "texts", "", "path to a texts.json override")
	rootCmd.Flags().IntVar(&gameLineWords, "line-words", defaultLineWords, "maximum words per line")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "theme", &gameTheme, fileCfg.Game.Theme)
	applyIntConfig(cmd, "duration", &gameDuration, fileCfg.Game.Duration)
	applyIntConfig(cmd, "words", &gameWordGoal, fileCfg.Game.WordGoal)
	applyStringConfig(cmd, "texts", &gameTextsPath, fileCfg.Game.TextsPath)
	applyIntConfig(cmd, "line-words", &gameLineWords, fileCfg.Game.LineWords)

	if gameTextsPath == "" {
		gameTextsPath = config.DefaultTextsPath()
	}
	cfg := model.Config{
		Theme:     gameTheme,
		Duration:  time.Duration(gameDuration) * time.Second,
		WordGoal:  gameWordGoal,
		TextsPath: gameTextsPath,
		LineWords: gameLineWords,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	profiles := profile.Load(config.DefaultProfilePath())
	picker := texts.NewPicker(texts.Load(cfg.TextsPath))

	hist, err := history.Open(config.DefaultHistoryPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		hist = nil
	}
	defer func() {
		if hist == nil {
			return
		}
		if cerr := hist.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	model := tui.NewModel(cfg, profiles, hist, picker)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session stats and leaderboard",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter (timed, sprint, free)")
	cmd.Flags().StringVar(&statsUser, "user", "", "user filter")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	mode := model.ModeNone
	if statsMode != "" {
		mode = model.ParseMode(statsMode)
		if mode == model.ModeNone {
			return fmt.Errorf("unknown mode %q (timed, sprint, free)", statsMode)
		}
	}
	cfg := model.StatsConfig{
		Mode:        mode,
		User:        statsUser,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	hist, err := history.Open(config.DefaultHistoryPath())
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer func() {
		if cerr := hist.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	sessions, err := hist.ListSessions(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderCurve(out, sessions, cfg.CurveWindow, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	profiles := profile.Load(config.DefaultProfilePath())
	order := profiles.Leaderboard(5)
	if err := stats.RenderLeaderboard(out, profiles.Users, order, profiles.CurrentUser); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keydrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# theme = %q          # Color theme (%s)
# duration = %d         # Timed mode duration in seconds
# words = %d            # Sprint mode word goal
# texts = ""            # Path to a texts.json override
# line-words = %d       # Maximum words per line
`,
		defaultTheme,
		strings.Join(tui.ThemeNames(), ", "),
		defaultDuration,
		defaultWordGoal,
		defaultLineWords,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.WordGoal <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.LineWords <= 0 {
		return fmt.Errorf("--line-words must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

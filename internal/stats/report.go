// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/keydrill/keydrill/internal/model"
)

// RenderSummary prints aggregate numbers for the listed sessions.
func RenderSummary(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalAcc, bestWPM float64
	for _, s := range sessions {
		totalWPM += s.WPM
		totalAcc += s.Accuracy
		if s.WPM > bestWPM {
			bestWPM = s.WPM
		}
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", totalAcc/count); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderCurve prints a WPM sparkline over the sessions, smoothed with a
// moving average and resampled to the given width.
func RenderCurve(w io.Writer, sessions []model.SessionRecord, window, width int) error {
	if len(sessions) < 2 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = s.WPM
	}
	wpms = MovingAverage(wpms, window)
	wpms = Resample(wpms, width)
	if _, err := fmt.Fprintln(w, "WPM Curve"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(wpms)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderLeaderboard prints the top profiles ordered by best WPM.
func RenderLeaderboard(w io.Writer, users map[string]model.Profile, order []string, current string) error {
	if len(order) == 0 {
		_, err := fmt.Fprintln(w, "No users found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Leaderboard"); err != nil {
		return err
	}
	headers := []string{"#", "User", "Best WPM", "Best Acc", "Tests"}
	rows := make([][]string, 0, len(order))
	for i, name := range order {
		p := users[name]
		label := name
		if name == current {
			label = name + " *"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			label,
			fmt.Sprintf("%.1f", p.BestWPM),
			fmt.Sprintf("%.1f%%", p.BestAccuracy),
			fmt.Sprintf("%d", p.TestsCompleted),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

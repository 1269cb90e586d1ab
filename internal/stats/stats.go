package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/speedtyper/internal/model"
)

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// RenderSummary prints a summary for stored sessions.
func RenderSummary(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalAcc float64
	bestWPM, words := 0, 0
	for _, s := range sessions {
		totalWPM += float64(s.WPM)
		totalAcc += s.Accuracy
		bestWPM = max(bestWPM, s.WPM)
		words += s.Score
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Words: %d", words),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/count),
		fmt.Sprintf("Best WPM: %d", bestWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", totalAcc/count),
		"",
	}
	return writeLines(w, lines)
}

// RenderCurves plots WPM and accuracy over the sessions, smoothed with a
// moving average, sized to totalWidth terminal columns.
func RenderCurves(w io.Writer, sessions []model.SessionRecord, window, totalWidth, height int, forceColor bool) error {
	if len(sessions) == 0 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = float64(s.WPM)
		accs[i] = s.Accuracy
	}
	title := fmt.Sprintf("Learning Curves (moving average over %d)", max(window, 1))
	return PlotSeriesWithColor(w, title, []Series{
		{Name: "WPM", Values: MovingAverage(wpms, window)},
		{Name: "Accuracy", Values: MovingAverage(accs, window)},
	}, PlotWidthFor(totalWidth), height, forceColor)
}

// RenderByDifficulty prints one row per difficulty with history totals and high score.
func RenderByDifficulty(w io.Writer, sessions []model.SessionRecord, high model.HighScores) error {
	type agg struct {
		count   int
		wpmSum  int
		bestWPM int
	}
	byDiff := make(map[model.Difficulty]*agg, len(model.Difficulties))
	for _, d := range model.Difficulties {
		byDiff[d] = &agg{}
	}
	for _, s := range sessions {
		a, ok := byDiff[s.Difficulty]
		if !ok {
			continue
		}
		a.count++
		a.wpmSum += s.WPM
		a.bestWPM = max(a.bestWPM, s.WPM)
	}

	headers := []string{"Difficulty", "Sessions", "Avg WPM", "Best WPM", "High Score"}
	rows := make([][]string, 0, len(model.Difficulties))
	for _, d := range model.Difficulties {
		a := byDiff[d]
		avg := 0.0
		if a.count > 0 {
			avg = float64(a.wpmSum) / float64(a.count)
		}
		rows = append(rows, []string{
			d.Label(),
			fmt.Sprintf("%d", a.count),
			fmt.Sprintf("%.1f", avg),
			fmt.Sprintf("%d", a.bestWPM),
			fmt.Sprintf("%d", high[d]),
		})
	}
	lines := append([]string{"By Difficulty"}, FormatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})...)
	return writeLines(w, append(lines, ""))
}

// RenderLifetime prints the lifetime aggregate.
func RenderLifetime(w io.Writer, st model.LifetimeStats) error {
	lines := []string{
		"Lifetime",
		fmt.Sprintf("Games played: %d", st.TotalGamesPlayed),
		fmt.Sprintf("Words typed: %d", st.TotalWordsTyped),
		fmt.Sprintf("Average WPM: %d", st.AverageWPM),
		fmt.Sprintf("Best WPM: %d", st.BestWPM),
		fmt.Sprintf("Time played: %ds", st.TotalTimePlayed),
		"",
	}
	return writeLines(w, lines)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

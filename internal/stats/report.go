package stats

import (
	"context"
	"io"
	"time"

	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/persist"
)

// ReportConfig selects which sessions a report covers.
type ReportConfig struct {
	Difficulty  model.Difficulty
	Mode        model.GameMode
	Days        int
	Last        int
	CurveWindow int
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions    []model.SessionRecord
	Lifetime    model.LifetimeStats
	HighScores  model.HighScores
	CurveWindow int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, lister persist.SessionLister, cfg ReportConfig, now time.Time) (Report, error) {
	filter := persist.HistoryFilter{
		Difficulty: cfg.Difficulty,
		Mode:       cfg.Mode,
		Last:       cfg.Last,
	}
	if cfg.Days > 0 {
		since := now.AddDate(0, 0, -cfg.Days)
		filter.Since = &since
	}
	sessions, err := lister.ListSessions(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	return Report{Sessions: sessions, CurveWindow: cfg.CurveWindow}, nil
}

// Render writes every report section. totalWidth is the terminal width
// the curves are fitted to.
func (r Report) Render(w io.Writer, totalWidth int) error {
	if err := RenderLifetime(w, r.Lifetime); err != nil {
		return err
	}
	if err := RenderSummary(w, r.Sessions); err != nil {
		return err
	}
	if len(r.Sessions) == 0 {
		return nil
	}
	if err := RenderByDifficulty(w, r.Sessions, r.HighScores); err != nil {
		return err
	}
	return RenderCurves(w, r.Sessions, r.CurveWindow, totalWidth, defaultPlotHeight, false)
}

package stats

import (
	"testing"

	"github.com/verte-zerg/speedtyper/internal/model"
)

func TestFoldFirstSession(t *testing.T) {
	got := Fold(model.LifetimeStats{}, 12, 40, 15)
	want := model.LifetimeStats{
		TotalGamesPlayed: 1,
		TotalWordsTyped:  12,
		AverageWPM:       40,
		BestWPM:          40,
		TotalTimePlayed:  15,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFoldRunningAverageRounds(t *testing.T) {
	old := model.LifetimeStats{TotalGamesPlayed: 2, AverageWPM: 30, BestWPM: 35, TotalWordsTyped: 20, TotalTimePlayed: 20}
	got := Fold(old, 5, 31, 10)
	// (30*2 + 31) / 3 = 30.33
	if got.AverageWPM != 30 {
		t.Fatalf("expected average 30, got %d", got.AverageWPM)
	}
	if got.BestWPM != 35 {
		t.Fatalf("expected best to stay 35, got %d", got.BestWPM)
	}
	if got.TotalGamesPlayed != 3 || got.TotalWordsTyped != 25 || got.TotalTimePlayed != 30 {
		t.Fatalf("unexpected totals: %+v", got)
	}

	got = Fold(got, 5, 60, 10)
	if got.BestWPM != 60 {
		t.Fatalf("expected best 60, got %d", got.BestWPM)
	}
	// (30*3 + 60) / 4 = 37.5 -> 38
	if got.AverageWPM != 38 {
		t.Fatalf("expected average 38, got %d", got.AverageWPM)
	}
}

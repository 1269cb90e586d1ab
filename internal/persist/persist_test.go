package persist

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/model"
)

func newRepo() (*Repository, *memoryKV) {
	mem := newMemoryKV()
	return NewRepository(mem, zerolog.Nop()), mem
}

func TestMissingKeysUseDefaults(t *testing.T) {
	repo, _ := newRepo()
	ctx := context.Background()
	if st := repo.LoadStats(ctx); st != (model.LifetimeStats{}) {
		t.Fatalf("expected zero stats, got %+v", st)
	}
	if a := repo.LoadAchievements(ctx); a == nil || len(a) != 0 {
		t.Fatalf("expected empty achievements map, got %v", a)
	}
	if hs := repo.LoadHighScores(ctx); hs == nil || len(hs) != 0 {
		t.Fatalf("expected empty high scores, got %v", hs)
	}
	if lb := repo.LoadLeaderboard(ctx); len(lb) != 0 {
		t.Fatalf("expected empty leaderboard, got %v", lb)
	}
	if name := repo.LoadPlayerName(ctx, "player"); name != "player" {
		t.Fatalf("expected default name, got %q", name)
	}
}

func TestRoundTripEachKey(t *testing.T) {
	repo, mem := newRepo()
	ctx := context.Background()

	st := model.LifetimeStats{TotalGamesPlayed: 3, TotalWordsTyped: 41, AverageWPM: 33, BestWPM: 48, TotalTimePlayed: 45}
	if err := repo.SaveStats(ctx, st); err != nil {
		t.Fatalf("save stats: %v", err)
	}
	if got := repo.LoadStats(ctx); got != st {
		t.Fatalf("stats round trip: %+v != %+v", got, st)
	}

	flags := map[string]bool{"speed_demon": true, "marathon": false}
	if err := repo.SaveAchievements(ctx, flags); err != nil {
		t.Fatalf("save achievements: %v", err)
	}
	gotFlags := repo.LoadAchievements(ctx)
	if len(gotFlags) != 2 || !gotFlags["speed_demon"] || gotFlags["marathon"] {
		t.Fatalf("achievements round trip: %v", gotFlags)
	}

	hs := model.HighScores{model.Easy: 12, model.Hard: 3}
	if err := repo.SaveHighScores(ctx, hs); err != nil {
		t.Fatalf("save high scores: %v", err)
	}
	gotHS := repo.LoadHighScores(ctx)
	if gotHS[model.Easy] != 12 || gotHS[model.Hard] != 3 || len(gotHS) != 2 {
		t.Fatalf("high scores round trip: %v", gotHS)
	}

	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	lb := []model.PlayerScore{
		{Name: "ada", WPM: 72, Accuracy: 98.5, Difficulty: model.Medium, Date: date},
		{Name: "bob", WPM: 40, Accuracy: 91, Difficulty: model.Easy, Date: date},
	}
	if err := repo.SaveLeaderboard(ctx, lb); err != nil {
		t.Fatalf("save leaderboard: %v", err)
	}
	gotLB := repo.LoadLeaderboard(ctx)
	if len(gotLB) != 2 || gotLB[0].Name != "ada" || !gotLB[0].Date.Equal(date) || gotLB[1].Accuracy != 91 {
		t.Fatalf("leaderboard round trip: %+v", gotLB)
	}

	if err := repo.SavePlayerName(ctx, "zed"); err != nil {
		t.Fatalf("save name: %v", err)
	}
	if got := repo.LoadPlayerName(ctx, "player"); got != "zed" {
		t.Fatalf("name round trip: %q", got)
	}

	if keys := mem.Keys(); len(keys) != 5 {
		t.Fatalf("expected five independent keys, got %v", keys)
	}
}

func TestCorruptValueUsesDefaults(t *testing.T) {
	repo, mem := newRepo()
	ctx := context.Background()
	if err := mem.Set(ctx, KeyStats, []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := mem.Set(ctx, KeyAchievements, []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if st := repo.LoadStats(ctx); st != (model.LifetimeStats{}) {
		t.Fatalf("expected defaults for corrupt stats, got %+v", st)
	}
	if a := repo.LoadAchievements(ctx); len(a) != 0 {
		t.Fatalf("expected defaults for corrupt achievements, got %v", a)
	}
}

func TestRecordSessionWithoutHistoryIsNoop(t *testing.T) {
	repo, mem := newRepo()
	if err := repo.RecordSession(context.Background(), model.SessionOutcome{Score: 3}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(mem.Keys()) != 0 {
		t.Fatalf("memory store must not gain keys from history")
	}
}

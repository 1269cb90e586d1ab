// Package persist stores game state behind a small key-value boundary.
package persist

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/model"
)

// ErrNotFound is returned by KV.Get for a missing key.
var ErrNotFound = errors.New("key not found")

// Keys used by the repository. They are independent of each other.
const (
	KeyStats        = "typing-stats"
	KeyAchievements = "typing-achievements"
	KeyLeaderboard  = "typing-leaderboard"
	KeyPlayerName   = "typing-player-name"
	KeyHighScores   = "typing-high-scores"
)

// KV is a raw key-value store holding JSON documents.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// HistoryRecorder stores finished sessions. Backends without history
// support simply do not implement it.
type HistoryRecorder interface {
	InsertSession(ctx context.Context, outcome model.SessionOutcome) (int64, error)
}

// HistoryFilter narrows a session history listing.
type HistoryFilter struct {
	Difficulty model.Difficulty
	Mode       model.GameMode
	Since      *time.Time
	Last       int
}

// SessionLister reads stored session history, oldest first.
type SessionLister interface {
	ListSessions(ctx context.Context, filter HistoryFilter) ([]model.SessionRecord, error)
}

// Repository maps typed game state onto a KV.
type Repository struct {
	kv     KV
	logger zerolog.Logger
}

// NewRepository wraps kv.
func NewRepository(kv KV, logger zerolog.Logger) *Repository {
	return &Repository{kv: kv, logger: logger}
}

// Load decodes key into a value of type T. Missing keys, read errors and
// malformed JSON all yield def; the latter two are logged.
func Load[T any](ctx context.Context, r *Repository, key string, def T) T {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn().Err(err).Str("key", key).Msg("failed to read persisted value; using defaults")
		}
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("corrupt persisted value; using defaults")
		return def
	}
	return v
}

// Save encodes v as JSON under key.
func Save[T any](ctx context.Context, r *Repository, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, key, raw)
}

// LoadStats returns lifetime stats, zero-valued if absent.
func (r *Repository) LoadStats(ctx context.Context) model.LifetimeStats {
	return Load(ctx, r, KeyStats, model.LifetimeStats{})
}

// SaveStats stores lifetime stats.
func (r *Repository) SaveStats(ctx context.Context, st model.LifetimeStats) error {
	return Save(ctx, r, KeyStats, st)
}

// LoadAchievements returns unlock flags keyed by achievement ID.
func (r *Repository) LoadAchievements(ctx context.Context) map[string]bool {
	flags := Load(ctx, r, KeyAchievements, map[string]bool{})
	if flags == nil {
		flags = map[string]bool{}
	}
	return flags
}

// SaveAchievements stores unlock flags.
func (r *Repository) SaveAchievements(ctx context.Context, unlocked map[string]bool) error {
	return Save(ctx, r, KeyAchievements, unlocked)
}

// LoadHighScores returns per-difficulty high scores.
func (r *Repository) LoadHighScores(ctx context.Context) model.HighScores {
	hs := Load(ctx, r, KeyHighScores, model.HighScores{})
	if hs == nil {
		hs = model.HighScores{}
	}
	return hs
}

// SaveHighScores stores per-difficulty high scores.
func (r *Repository) SaveHighScores(ctx context.Context, hs model.HighScores) error {
	return Save(ctx, r, KeyHighScores, hs)
}

// LoadLeaderboard returns the stored entries in stored order.
func (r *Repository) LoadLeaderboard(ctx context.Context) []model.PlayerScore {
	return Load(ctx, r, KeyLeaderboard, []model.PlayerScore(nil))
}

// SaveLeaderboard stores entries.
func (r *Repository) SaveLeaderboard(ctx context.Context, entries []model.PlayerScore) error {
	return Save(ctx, r, KeyLeaderboard, entries)
}

// LoadPlayerName returns the stored display name or def.
func (r *Repository) LoadPlayerName(ctx context.Context, def string) string {
	name := Load(ctx, r, KeyPlayerName, def)
	if name == "" {
		return def
	}
	return name
}

// SavePlayerName stores the display name.
func (r *Repository) SavePlayerName(ctx context.Context, name string) error {
	return Save(ctx, r, KeyPlayerName, name)
}

// RecordSession appends outcome to history when the backend supports it.
func (r *Repository) RecordSession(ctx context.Context, outcome model.SessionOutcome) error {
	rec, ok := r.kv.(HistoryRecorder)
	if !ok {
		return nil
	}
	_, err := rec.InsertSession(ctx, outcome)
	return err
}

package game

import (
	"github.com/verte-zerg/speedtyper/internal/achievement"
	"github.com/verte-zerg/speedtyper/internal/model"
)

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	State         State
	Difficulty    model.Difficulty
	Mode          model.GameMode
	CurrentWord   string
	NextWord      string
	Input         string
	Chars         []CharState
	Remaining     int
	WordsLeft     int
	Score         int
	WrongAttempts int
	Accuracy      float64
	WPM           int
	Playing       bool
	Loading       bool
	CanStart      bool
	CanStop       bool
	// Endless is set while playing a mode that only ends on stop.
	Endless      bool
	SoundEnabled bool
	PlayerName   string
	HighScores   model.HighScores
	Stats        model.LifetimeStats
	Achievements []achievement.Status
	Leaderboard  []model.PlayerScore

	// Last is the most recent finished session, nil before the first one.
	Last         *model.SessionOutcome
	LastReason   EndReason
	LastUnlocked []string
}

// Snapshot returns the current view. Slices and maps are copies.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:         c.state,
		Difficulty:    c.difficulty,
		Mode:          c.mode,
		CurrentWord:   c.current,
		NextWord:      c.seq.Peek(),
		Input:         c.input,
		Chars:         Classify(c.input, c.current),
		Remaining:     c.clock.Remaining(),
		WordsLeft:     c.clock.WordsLeft(),
		Score:         c.tracker.Score(),
		WrongAttempts: c.tracker.WrongAttempts(),
		Accuracy:      c.tracker.Accuracy(),
		WPM:           c.tracker.WPM(),
		Playing:       c.state == Playing,
		Loading:       c.source.Loading(c.difficulty),
		CanStart:      c.CanStart(),
		CanStop:       c.state == Playing && c.clock.Stoppable(),
		Endless:       c.state == Playing && !c.clock.AutoEnds(),
		SoundEnabled:  c.soundEnabled,
		PlayerName:    c.playerName,
		HighScores:    c.highScores.Clone(),
		Stats:         c.stats,
		Achievements:  achievement.List(c.achievements),
		Leaderboard:   append([]model.PlayerScore(nil), c.leaderboard...),
		LastReason:    c.lastReason,
		LastUnlocked:  append([]string(nil), c.lastUnlocked...),
	}
	if c.last != nil {
		last := *c.last
		snap.Last = &last
	}
	return snap
}

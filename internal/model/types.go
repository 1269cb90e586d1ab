// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty selects word length and time pressure.
type Difficulty string

// Difficulty values.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Label returns the menu label, e.g. "Easy (15s)".
func (d Difficulty) Label() string {
	s := SettingsFor(d)
	return fmt.Sprintf("%s (%ds)", d.Title(), s.TimeLimit)
}

// Title returns the capitalized name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// DifficultySettings is the immutable configuration of a difficulty.
type DifficultySettings struct {
	TimeLimit  int
	WordLength int
	WordCount  int
	Desc       string
}

var difficultySettings = map[Difficulty]DifficultySettings{
	Easy:   {TimeLimit: 15, WordLength: 5, WordCount: 100, Desc: "Short Words"},
	Medium: {TimeLimit: 10, WordLength: 8, WordCount: 100, Desc: "Medium Words"},
	Hard:   {TimeLimit: 5, WordLength: 12, WordCount: 100, Desc: "Long Words"},
}

// SettingsFor returns a copy of the settings for d. Unknown values map to Easy.
func SettingsFor(d Difficulty) DifficultySettings {
	if s, ok := difficultySettings[d]; ok {
		return s
	}
	return difficultySettings[Easy]
}

// GameMode governs how a session is paced and when it ends.
type GameMode string

// GameMode values.
const (
	ModeTime  GameMode = "time"
	ModeWords GameMode = "words"
	ModeZen   GameMode = "zen"
)

// GameModes lists every mode in display order.
var GameModes = []GameMode{ModeTime, ModeWords, ModeZen}

// ParseGameMode converts a case-insensitive name into a GameMode.
func ParseGameMode(s string) (GameMode, error) {
	m := GameMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeTime, ModeWords, ModeZen:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want time, words or zen)", s)
}

// Title returns the capitalized name.
func (m GameMode) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// LifetimeStats accumulates results across sessions.
type LifetimeStats struct {
	TotalGamesPlayed int `json:"totalGamesPlayed"`
	TotalWordsTyped  int `json:"totalWordsTyped"`
	AverageWPM       int `json:"averageWpm"`
	BestWPM          int `json:"bestWpm"`
	TotalTimePlayed  int `json:"totalTimePlayed"`
}

// HighScores holds the best in-session score per difficulty.
type HighScores map[Difficulty]int

// Clone returns an independent copy.
func (h HighScores) Clone() HighScores {
	out := make(HighScores, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// PlayerScore is a leaderboard entry.
type PlayerScore struct {
	Name       string     `json:"name" validate:"required,max=32"`
	WPM        int        `json:"wpm" validate:"gte=0"`
	Accuracy   float64    `json:"accuracy" validate:"gte=0,lte=100"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	Date       time.Time  `json:"date"`
}

// SessionOutcome is the immutable result of a finished session.
type SessionOutcome struct {
	Difficulty    Difficulty
	Mode          GameMode
	Score         int
	WrongAttempts int
	WPM           int
	Accuracy      float64
	StartedAt     time.Time
	EndedAt       time.Time
}

// SessionRecord is a stored session history row.
type SessionRecord struct {
	ID            int64
	Difficulty    Difficulty
	Mode          GameMode
	Score         int
	WrongAttempts int
	WPM           int
	Accuracy      float64
	StartedAt     time.Time
	EndedAt       time.Time
}

// Package achievement evaluates the fixed achievement rule set.
package achievement

import "github.com/verte-zerg/speedtyper/internal/model"

// Input is the immutable data the predicates see.
type Input struct {
	Stats    model.LifetimeStats
	WPM      int
	Score    int
	Accuracy float64
}

// Achievement is one rule.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Predicate   func(Input) bool
}

// Status is an achievement with its unlock flag.
type Status struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// Achievement IDs.
const (
	SpeedDemon = "speed_demon"
	Perfect10  = "perfect_10"
	Marathon   = "marathon"
)

// Rules is the fixed rule set in display order.
var Rules = []Achievement{
	{
		ID:          SpeedDemon,
		Title:       "Speed Demon",
		Description: "Reach 50 WPM",
		Predicate: func(in Input) bool {
			return in.Stats.BestWPM >= 50 || in.WPM >= 50
		},
	},
	{
		ID:          Perfect10,
		Title:       "Perfect 10",
		Description: "Type 10 words in one game with 100% accuracy",
		Predicate: func(in Input) bool {
			return in.Score >= 10 && in.Accuracy == 100
		},
	},
	{
		ID:          Marathon,
		Title:       "Marathon",
		Description: "Play 10 games",
		Predicate: func(in Input) bool {
			return in.Stats.TotalGamesPlayed >= 10
		},
	},
}

// Evaluate returns a new unlock map. A flag that is already set stays set.
func Evaluate(unlocked map[string]bool, in Input) map[string]bool {
	out := make(map[string]bool, len(Rules))
	for id, ok := range unlocked {
		if ok {
			out[id] = true
		}
	}
	for _, a := range Rules {
		if out[a.ID] {
			continue
		}
		if a.Predicate(in) {
			out[a.ID] = true
		}
	}
	return out
}

// List returns every rule with its unlock flag.
func List(unlocked map[string]bool) []Status {
	out := make([]Status, 0, len(Rules))
	for _, a := range Rules {
		out = append(out, Status{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    unlocked[a.ID],
		})
	}
	return out
}

// Newly returns the IDs unlocked in after but not in before.
func Newly(before, after map[string]bool) []string {
	var ids []string
	for _, a := range Rules {
		if after[a.ID] && !before[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

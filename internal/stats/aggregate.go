// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"

	"github.com/verte-zerg/speedtyper/internal/model"
)

// Fold returns lifetime stats updated with one finished session.
func Fold(old model.LifetimeStats, score, wpm, timeLimit int) model.LifetimeStats {
	games := old.TotalGamesPlayed + 1
	avg := math.Round(float64(old.AverageWPM*old.TotalGamesPlayed+wpm) / float64(games))
	best := old.BestWPM
	if wpm > best {
		best = wpm
	}
	return model.LifetimeStats{
		TotalGamesPlayed: games,
		TotalWordsTyped:  old.TotalWordsTyped + score,
		AverageWPM:       int(avg),
		BestWPM:          best,
		TotalTimePlayed:  old.TotalTimePlayed + timeLimit,
	}
}

package game

import (
	"math"
	"time"
)

// Tracker accumulates score, accuracy and WPM for the active session.
// totalWordsTyped is a lifetime counter and survives Begin.
type Tracker struct {
	score           int
	totalWordsTyped int
	wrongAttempts   int
	accuracy        float64
	wpm             int
	startedAt       time.Time
}

// NewTracker seeds the lifetime word counter.
func NewTracker(totalWordsTyped int) Tracker {
	return Tracker{totalWordsTyped: totalWordsTyped, accuracy: 100}
}

// Begin resets the session counters.
func (t *Tracker) Begin(now time.Time) {
	t.score = 0
	t.wrongAttempts = 0
	t.accuracy = 100
	t.wpm = 0
	t.startedAt = now
}

// Complete records a correct word and returns the new score.
func (t *Tracker) Complete(now time.Time) int {
	t.score++
	t.totalWordsTyped++
	t.wpm = wordsPerMinute(t.score, now.Sub(t.startedAt))
	return t.score
}

// Mismatch records a wrong attempt. The ratio mixes the lifetime word
// counter with the session wrong-attempt counter.
func (t *Tracker) Mismatch() {
	t.accuracy = round1(float64(t.totalWordsTyped*100) / float64(t.totalWordsTyped+t.wrongAttempts+1))
	t.wrongAttempts++
}

// Score returns correct words this session.
func (t *Tracker) Score() int { return t.score }

// TotalWordsTyped returns the lifetime correct-word counter.
func (t *Tracker) TotalWordsTyped() int { return t.totalWordsTyped }

// WrongAttempts returns mismatches this session.
func (t *Tracker) WrongAttempts() int { return t.wrongAttempts }

// Accuracy returns the accuracy percentage in [0,100].
func (t *Tracker) Accuracy() float64 { return t.accuracy }

// WPM returns the words-per-minute estimate.
func (t *Tracker) WPM() int { return t.wpm }

// StartedAt returns the session start time.
func (t *Tracker) StartedAt() time.Time { return t.startedAt }

func wordsPerMinute(score int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / minutes))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

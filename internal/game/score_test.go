package game

import (
	"testing"
	"time"
)

func TestTrackerWPMZeroElapsed(t *testing.T) {
	tr := NewTracker(0)
	now := time.Unix(100, 0)
	tr.Begin(now)
	tr.Complete(now)
	if tr.WPM() != 0 {
		t.Fatalf("expected 0 wpm for zero elapsed, got %d", tr.WPM())
	}
}

func TestTrackerWPMRounds(t *testing.T) {
	tr := NewTracker(0)
	start := time.Unix(0, 0)
	tr.Begin(start)
	tr.Complete(start.Add(20 * time.Second))
	tr.Complete(start.Add(40 * time.Second))
	// 2 words / (40/60) min = 3
	if tr.WPM() != 3 {
		t.Fatalf("expected 3 wpm, got %d", tr.WPM())
	}
	if tr.Score() != 2 || tr.TotalWordsTyped() != 2 {
		t.Fatalf("unexpected counters: score=%d total=%d", tr.Score(), tr.TotalWordsTyped())
	}
}

func TestTrackerAccuracyBounded(t *testing.T) {
	tr := NewTracker(0)
	tr.Begin(time.Unix(0, 0))
	for i := 0; i < 5; i++ {
		tr.Mismatch()
		if a := tr.Accuracy(); a < 0 || a > 100 {
			t.Fatalf("accuracy out of range: %v", a)
		}
	}
	if tr.Accuracy() != 0 {
		t.Fatalf("expected 0 accuracy with no words typed, got %v", tr.Accuracy())
	}

	tr = NewTracker(2)
	tr.Begin(time.Unix(0, 0))
	tr.Mismatch()
	tr.Mismatch()
	// 2*100 / (2+1+1) = 50
	if tr.Accuracy() != 50 {
		t.Fatalf("expected 50, got %v", tr.Accuracy())
	}
	tr.Mismatch()
	// 200 / 5 = 40
	if tr.Accuracy() != 40 {
		t.Fatalf("expected 40, got %v", tr.Accuracy())
	}
}

func TestTrackerAccuracyRoundsToOneDecimal(t *testing.T) {
	tr := NewTracker(1)
	tr.Begin(time.Unix(0, 0))
	tr.Mismatch()
	tr.Mismatch()
	// 100/3 = 33.33 -> 33.3
	if tr.Accuracy() != 33.3 {
		t.Fatalf("expected 33.3, got %v", tr.Accuracy())
	}
}

func TestTrackerBeginKeepsLifetimeTotal(t *testing.T) {
	tr := NewTracker(7)
	tr.Begin(time.Unix(0, 0))
	tr.Complete(time.Unix(60, 0))
	tr.Begin(time.Unix(100, 0))
	if tr.TotalWordsTyped() != 8 || tr.Score() != 0 {
		t.Fatalf("unexpected counters: total=%d score=%d", tr.TotalWordsTyped(), tr.Score())
	}
}

package leaderboard

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/speedtyper/internal/model"
)

func entry(name string, wpm int, acc float64, d model.Difficulty) model.PlayerScore {
	return model.PlayerScore{Name: name, WPM: wpm, Accuracy: acc, Difficulty: d, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
}

func TestSortedByWPMDescending(t *testing.T) {
	b := New([]model.PlayerScore{
		entry("slow", 20, 99, model.Easy),
		entry("fast", 80, 90, model.Hard),
		entry("mid", 50, 95, model.Medium),
	})
	sorted := b.Sorted()
	if sorted[0].Name != "fast" || sorted[1].Name != "mid" || sorted[2].Name != "slow" {
		t.Fatalf("unexpected order %+v", sorted)
	}
	if b.Entries()[0].Name != "slow" {
		t.Fatalf("expected insertion order preserved in Entries")
	}
}

func TestSortedTieBreaks(t *testing.T) {
	b := New([]model.PlayerScore{
		entry("a", 40, 90, model.Easy),
		entry("b", 40, 95, model.Easy),
		entry("c", 40, 95, model.Easy),
	})
	sorted := b.Sorted()
	if sorted[0].Name != "b" || sorted[1].Name != "c" || sorted[2].Name != "a" {
		t.Fatalf("unexpected tie order %+v", sorted)
	}
}

func TestAddValidates(t *testing.T) {
	b := New(nil)
	if err := b.Add(entry("  ", 10, 50, model.Easy)); err == nil {
		t.Fatalf("expected blank name to be rejected")
	}
	if err := b.Add(entry("ada", 10, 120, model.Easy)); err == nil {
		t.Fatalf("expected accuracy above 100 to be rejected")
	}
	if err := b.Add(entry("ada", 10, 50, model.Difficulty("insane"))); err == nil {
		t.Fatalf("expected unknown difficulty to be rejected")
	}
	if err := b.Add(entry(" ada ", 10, 50, model.Easy)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := b.Entries(); len(got) != 1 || got[0].Name != "ada" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestTopFiltersAndLimits(t *testing.T) {
	b := New([]model.PlayerScore{
		entry("e1", 30, 90, model.Easy),
		entry("h1", 70, 90, model.Hard),
		entry("e2", 60, 90, model.Easy),
		entry("e3", 10, 90, model.Easy),
	})
	top := b.Top(2, model.Easy)
	if len(top) != 2 || top[0].Name != "e2" || top[1].Name != "e1" {
		t.Fatalf("unexpected top %+v", top)
	}
	if all := b.Top(0, ""); len(all) != 4 {
		t.Fatalf("expected no limit, got %d", len(all))
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, []model.PlayerScore{entry("ada", 75, 98.5, model.Medium)}); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	for _, want := range []string{"1", "ada", "75", "98.5%", "Medium", "2024-02-01"} {
		if !strings.Contains(lines[1], want) {
			t.Fatalf("row missing %q: %q", want, lines[1])
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No leaderboard entries") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

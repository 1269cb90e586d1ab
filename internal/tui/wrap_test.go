package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/speedtyper/internal/game"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	st := newStyles(Themes[0])
	chars := game.Classify("a", "ab")

	runes := buildStyledRunes(st, "ab", chars, cursorFor(chars), "")
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != st.correct.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != st.cursor.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesMistype(t *testing.T) {
	st := newStyles(Themes[0])
	chars := game.Classify("ax", "ab")

	runes := buildStyledRunes(st, "ab", chars, cursorFor(chars), "")
	if runes[1].s != st.wrong.Render("b") {
		t.Fatalf("expected wrong style for second rune")
	}
	if cursorFor(chars) != -1 {
		t.Fatalf("expected no cursor when every rune is typed")
	}
}

func TestBuildStyledRunesNextWordPreview(t *testing.T) {
	st := newStyles(Themes[0])
	chars := game.Classify("", "one")

	runes := buildStyledRunes(st, "one", chars, cursorFor(chars), "two")
	if len(runes) != 7 {
		t.Fatalf("expected 7 runes, got %d", len(runes))
	}
	if !runes[3].isSpace {
		t.Fatalf("expected separator space before next word")
	}
	if runes[4].s != st.next.Render("t") {
		t.Fatalf("expected next-word style for preview")
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	st := newStyles(Themes[0])
	chars := game.Classify("", "alpha")
	runes := buildStyledRunes(st, "alpha", chars, -1, "beta")

	out := wrapStyledRunes(runes, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
}

func TestWrapStyledRunesHardBreak(t *testing.T) {
	runes := []styledRune{{s: "a", width: 1}, {s: "b", width: 1}, {s: "c", width: 1}}
	if out := wrapStyledRunes(runes, 2); out != "ab\nc" {
		t.Fatalf("unexpected wrap %q", out)
	}
	if out := wrapStyledRunes(runes, 0); out != "abc" {
		t.Fatalf("expected no wrap for zero width, got %q", out)
	}
}

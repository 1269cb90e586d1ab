package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/speedtyper/internal/game"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes styles the current word by character state, marks the
// cursor, and appends the next word as a dimmed preview.
func buildStyledRunes(st styles, current string, chars []game.CharState, cursorIndex int, next string) []styledRune {
	target := []rune(current)
	out := make([]styledRune, 0, len(target)+len(next)+1)
	for i, r := range target {
		style := st.pending
		if i < len(chars) {
			switch chars[i] {
			case game.CharCorrect:
				style = st.correct
			case game.CharWrong:
				style = st.wrong
			}
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{s: style.Render(string(r)), width: runewidth.RuneWidth(r)})
	}
	if next == "" {
		return out
	}
	out = append(out, styledRune{s: " ", width: 1, isSpace: true})
	for _, r := range next {
		out = append(out, styledRune{s: st.next.Render(string(r)), width: runewidth.RuneWidth(r)})
	}
	return out
}

// cursorFor returns the index of the first pending character or -1.
func cursorFor(chars []game.CharState) int {
	for i, c := range chars {
		if c == game.CharPending {
			return i
		}
	}
	return -1
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

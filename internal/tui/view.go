package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speedtyper/internal/game"
	"github.com/verte-zerg/speedtyper/internal/model"
)

const minContentWidth = 20

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Snapshot()
	sections := []string{
		m.renderHeader(snap),
		m.renderSelectors(snap),
	}
	switch {
	case snap.Playing:
		sections = append(sections, m.renderSession(snap))
	case snap.Loading:
		sections = append(sections, m.st.muted.Render("Loading words..."))
	default:
		sections = append(sections, m.renderIdle(snap)...)
	}
	sections = append(sections, m.renderFooter(snap))
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHeader(snap game.Snapshot) string {
	title := m.st.title.Render("Speed Typer")
	if snap.PlayerName == "" {
		return title + "\n"
	}
	return title + m.st.muted.Render("  "+snap.PlayerName) + "\n"
}

func (m *Model) renderSelectors(snap game.Snapshot) string {
	diffs := make([]string, 0, len(model.Difficulties))
	for i, d := range model.Difficulties {
		label := fmt.Sprintf("%d %s", i+1, d.Label())
		if d == snap.Difficulty {
			diffs = append(diffs, m.st.selected.Render("["+label+"]"))
			continue
		}
		diffs = append(diffs, m.st.muted.Render(" "+label+" "))
	}
	modes := make([]string, 0, len(model.GameModes))
	for _, mode := range model.GameModes {
		if mode == snap.Mode {
			modes = append(modes, m.st.selected.Render("["+mode.Title()+"]"))
			continue
		}
		modes = append(modes, m.st.muted.Render(" "+mode.Title()+" "))
	}
	desc := m.st.muted.Render(model.SettingsFor(snap.Difficulty).Desc)
	return strings.Join(diffs, " ") + "\n" + strings.Join(modes, " ") + "  " + desc + "\n"
}

func (m *Model) renderSession(snap game.Snapshot) string {
	status := fmt.Sprintf("%s   Score: %d", counterLabel(snap), snap.Score)
	runes := buildStyledRunes(m.st, snap.CurrentWord, snap.Chars, cursorFor(snap.Chars), snap.NextWord)
	word := wrapStyledRunes(runes, m.contentWidth())
	panel := m.st.panel
	if m.flashing {
		panel = m.st.flash
	}
	wordPanel := panel.Render(m.st.muted.Render("Type this word:") + "\n" + word)
	metrics := m.st.muted.Render(fmt.Sprintf("WPM: %d   Accuracy: %.1f%%   Wrong: %d", snap.WPM, snap.Accuracy, snap.WrongAttempts))
	lines := []string{m.st.text.Render(status), wordPanel, m.input.View(), metrics}
	if snap.CanStop {
		lines = append(lines, m.st.muted.Render("esc to stop"))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderIdle(snap game.Snapshot) []string {
	out := []string{}
	if snap.CanStart {
		out = append(out, m.st.text.Render("Press enter to start")+"\n")
	}
	if snap.Last != nil && snap.Last.Score > 0 {
		out = append(out, m.st.panel.Render(renderPrevious(snap)))
	}
	if len(snap.LastUnlocked) > 0 {
		out = append(out, m.st.unlocked.Render("Unlocked: "+strings.Join(titlesFor(snap, snap.LastUnlocked), ", ")))
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.st.panel.Render(renderBest(snap.HighScores)),
		m.st.panel.Render(renderLifetime(snap.Stats)),
		m.st.panel.Render(m.renderAchievements(snap)),
	)
	return append(out, panels)
}

func (m *Model) renderFooter(snap game.Snapshot) string {
	sound := "off"
	if snap.SoundEnabled {
		sound = "on"
	}
	status := m.st.muted.Render(fmt.Sprintf("sound %s · theme %s", sound, m.theme.Name))
	return "\n" + m.help.View(m.keys) + "\n" + status
}

func (m *Model) renderAchievements(snap game.Snapshot) string {
	lines := []string{"Achievements"}
	for _, a := range snap.Achievements {
		if a.Unlocked {
			lines = append(lines, m.st.unlocked.Render("✓ "+a.Title)+m.st.muted.Render("  "+a.Description))
			continue
		}
		lines = append(lines, m.st.muted.Render("· "+a.Title+"  "+a.Description))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(minContentWidth, int(float64(m.width)*0.7))
}

func counterLabel(snap game.Snapshot) string {
	switch {
	case snap.Endless:
		return fmt.Sprintf("Words typed: %d", snap.Score)
	case snap.Mode == model.ModeWords:
		return fmt.Sprintf("Words left: %d", snap.WordsLeft)
	default:
		return fmt.Sprintf("Time left: %ds", snap.Remaining)
	}
}

func reasonLabel(r game.EndReason) string {
	switch r {
	case game.EndTimeout:
		return "Time's up"
	case game.EndWordLimit:
		return "All words done"
	default:
		return "Stopped"
	}
}

func renderPrevious(snap game.Snapshot) string {
	last := snap.Last
	return strings.Join([]string{
		"Previous Score",
		reasonLabel(snap.LastReason),
		fmt.Sprintf("Words: %d", last.Score),
		fmt.Sprintf("WPM: %d", last.WPM),
		fmt.Sprintf("Accuracy: %.1f%%", last.Accuracy),
		fmt.Sprintf("Wrong: %d", last.WrongAttempts),
	}, "\n")
}

func renderBest(high model.HighScores) string {
	lines := []string{"Best"}
	for _, d := range model.Difficulties {
		lines = append(lines, fmt.Sprintf("%s: %d", d.Title(), high[d]))
	}
	return strings.Join(lines, "\n")
}

func renderLifetime(st model.LifetimeStats) string {
	return strings.Join([]string{
		"Lifetime",
		fmt.Sprintf("Games: %d", st.TotalGamesPlayed),
		fmt.Sprintf("Words: %d", st.TotalWordsTyped),
		fmt.Sprintf("Avg WPM: %d", st.AverageWPM),
		fmt.Sprintf("Best WPM: %d", st.BestWPM),
		fmt.Sprintf("Time: %ds", st.TotalTimePlayed),
	}, "\n")
}

func titlesFor(snap game.Snapshot, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, a := range snap.Achievements {
			if a.ID == id {
				out = append(out, a.Title)
			}
		}
	}
	return out
}

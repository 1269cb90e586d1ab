package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/game"
	"github.com/verte-zerg/speedtyper/internal/generator"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/wordsource"
)

func newTestModel(t *testing.T, opts Options) (*Model, *game.Controller, *Ticker) {
	t.Helper()
	gen := generator.NewSeeded(7)
	fetcher := wordsource.NewListFetcher([]string{"apple", "berry", "cider", "delta"}, gen)
	src := wordsource.New(fetcher, zerolog.Nop())
	tk := NewTicker()
	ctrl := game.NewController(game.Deps{
		Source:    src,
		Generator: gen,
		Scheduler: tk,
		Logger:    zerolog.Nop(),
	}, game.Initial{Difficulty: model.Easy, Mode: model.ModeTime, Sound: true, PlayerName: "ada"})
	m := NewModel(ctrl, tk, opts)
	if cmd := m.selectDifficulty(model.Easy); cmd != nil {
		m.Update(cmd())
	}
	if ctrl.State() != game.Ready {
		t.Fatalf("expected ready after load, got %s", ctrl.State())
	}
	return m, ctrl, tk
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestStartAndCompleteWord(t *testing.T) {
	m, ctrl, tk := newTestModel(t, Options{})
	if cmd := press(m, tea.KeyEnter); cmd == nil {
		t.Fatalf("expected focus and tick commands on start")
	}
	if ctrl.State() != game.Playing {
		t.Fatalf("expected playing, got %s", ctrl.State())
	}
	if tk.Active() != 1 {
		t.Fatalf("expected one tick task, got %d", tk.Active())
	}

	word := ctrl.Snapshot().CurrentWord
	typeRunes(m, word)
	snap := ctrl.Snapshot()
	if snap.Score != 1 {
		t.Fatalf("expected score 1, got %d", snap.Score)
	}
	if m.input.Value() != "" || snap.Input != "" {
		t.Fatalf("expected cleared input, got %q / %q", m.input.Value(), snap.Input)
	}
	if !m.flashing {
		t.Fatalf("expected success flash")
	}
	m.Update(flashDoneMsg{seq: m.flashSeq})
	if m.flashing {
		t.Fatalf("expected flash to clear")
	}
}

func TestLettersDuringPlayGoToInput(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	typeRunes(m, "qtm1")
	if ctrl.State() != game.Playing {
		t.Fatalf("expected letters not to trigger idle bindings")
	}
	if m.input.Value() != "qtm1" {
		t.Fatalf("expected input to hold typed runes, got %q", m.input.Value())
	}
	if m.theme.Name != "default" || ctrl.Snapshot().Mode != model.ModeTime {
		t.Fatalf("expected theme and mode unchanged while playing")
	}
}

func TestUnchangedInputDoesNotCountMistake(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	typeRunes(m, "#")
	if got := ctrl.Snapshot().WrongAttempts; got != 1 {
		t.Fatalf("expected 1 wrong attempt, got %d", got)
	}
	press(m, tea.KeyLeft)
	if got := ctrl.Snapshot().WrongAttempts; got != 1 {
		t.Fatalf("expected cursor movement to be ignored, got %d", got)
	}
}

func TestTicksEndTimeSession(t *testing.T) {
	m, ctrl, tk := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	typeRunes(m, ctrl.Snapshot().CurrentWord)
	for i := 0; i < model.SettingsFor(model.Easy).TimeLimit; i++ {
		m.Update(tickMsg{id: 0})
	}
	if ctrl.State() != game.Idle {
		t.Fatalf("expected idle after timeout, got %s", ctrl.State())
	}
	if tk.Active() != 0 {
		t.Fatalf("expected tick task cancelled")
	}
	if _, cmd := m.Update(tickMsg{id: 0}); cmd != nil {
		t.Fatalf("expected cancelled tick not to rearm")
	}
	view := m.View()
	if !strings.Contains(view, "Previous Score") || !strings.Contains(view, "Time's up") {
		t.Fatalf("expected previous score panel with end reason:\n%s", view)
	}
}

func TestEscStopsWordsSession(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	press(m, tea.KeyTab)
	if ctrl.Snapshot().Mode != model.ModeWords {
		t.Fatalf("expected words mode, got %s", ctrl.Snapshot().Mode)
	}
	press(m, tea.KeyEnter)
	if !strings.Contains(m.View(), "Words left: 10") {
		t.Fatalf("expected words counter:\n%s", m.View())
	}
	typeRunes(m, ctrl.Snapshot().CurrentWord)
	press(m, tea.KeyEsc)
	if ctrl.State() != game.Idle {
		t.Fatalf("expected idle after stop, got %s", ctrl.State())
	}
	if m.input.Focused() {
		t.Fatalf("expected input blurred after stop")
	}
	if !strings.Contains(m.View(), "Stopped") {
		t.Fatalf("expected stop reason in previous score panel:\n%s", m.View())
	}
}

func TestEscIgnoredInTimeMode(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	press(m, tea.KeyEsc)
	if ctrl.State() != game.Playing {
		t.Fatalf("expected time session to keep running")
	}
}

func TestDifficultyKeyStartsLoad(t *testing.T) {
	m, ctrl, _ := newTestModel(t, Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if cmd == nil {
		t.Fatalf("expected load command")
	}
	if ctrl.State() != game.Loading {
		t.Fatalf("expected loading, got %s", ctrl.State())
	}
	if !strings.Contains(m.View(), "Loading words...") {
		t.Fatalf("expected loading notice")
	}
	m.Update(cmd())
	snap := ctrl.Snapshot()
	if snap.Difficulty != model.Hard || snap.State != game.Ready {
		t.Fatalf("expected hard ready, got %s %s", snap.Difficulty, snap.State)
	}
}

func TestThemeCycleAndSoundToggle(t *testing.T) {
	var picked string
	m, ctrl, _ := newTestModel(t, Options{OnTheme: func(name string) { picked = name }})
	typeRunes(m, "t")
	if m.theme.Name != "neon" || picked != "neon" {
		t.Fatalf("expected neon theme, got %s / %s", m.theme.Name, picked)
	}
	press(m, tea.KeyCtrlS)
	if ctrl.Snapshot().SoundEnabled {
		t.Fatalf("expected sound off")
	}
	if !strings.Contains(m.View(), "sound off") {
		t.Fatalf("expected sound status in footer")
	}
}

func TestIdleViewPanels(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	view := m.View()
	for _, want := range []string{"Speed Typer", "ada", "Easy (15s)", "Press enter to start", "Best", "Lifetime", "Achievements", "Speed Demon"} {
		if !strings.Contains(view, want) {
			t.Fatalf("idle view missing %q:\n%s", want, view)
		}
	}
}

func TestQuitClosesController(t *testing.T) {
	m, _, tk := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	cmd := press(m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
	if tk.Active() != 0 {
		t.Fatalf("expected tick cancelled on quit")
	}
}

func TestCounterLabels(t *testing.T) {
	cases := []struct {
		snap game.Snapshot
		want string
	}{
		{game.Snapshot{Mode: model.ModeTime, Remaining: 7}, "Time left: 7s"},
		{game.Snapshot{Mode: model.ModeWords, WordsLeft: 3}, "Words left: 3"},
		{game.Snapshot{Mode: model.ModeZen, Endless: true, Score: 12}, "Words typed: 12"},
	}
	for _, tc := range cases {
		if got := counterLabel(tc.snap); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestBellRingsOnWrongOnly(t *testing.T) {
	var buf bytes.Buffer
	b := Bell{W: &buf}
	b.Notify(game.EventCorrect)
	b.Notify(game.EventWrong)
	if buf.String() != "\a" {
		t.Fatalf("expected single bell, got %q", buf.String())
	}
}

func TestTickerDrainAndCancel(t *testing.T) {
	tk := NewTicker()
	calls := 0
	cancel := tk.Every(0, func() { calls++ })
	if tk.drain() == nil {
		t.Fatalf("expected drain to arm the task")
	}
	if tk.drain() != nil {
		t.Fatalf("expected second drain to be empty")
	}
	if tk.fire(0) == nil || calls != 1 {
		t.Fatalf("expected fire to run and rearm")
	}
	cancel()
	if tk.fire(0) != nil || calls != 1 {
		t.Fatalf("expected cancelled task to stay quiet")
	}
}

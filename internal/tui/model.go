// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/game"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/wordsource"
)

const flashDuration = 500 * time.Millisecond

type poolLoadedMsg struct {
	req   wordsource.Request
	words []string
}

type flashDoneMsg struct {
	seq int
}

// Options configure a Model.
type Options struct {
	Theme  string
	Logger zerolog.Logger
	// OnTheme is called after the player cycles the theme.
	OnTheme func(name string)
}

// Model implements the Bubble Tea typing UI on top of a game.Controller.
type Model struct {
	ctrl   *game.Controller
	ticker *Ticker
	logger zerolog.Logger

	keys  keyMap
	help  help.Model
	input textinput.Model

	theme   Theme
	st      styles
	onTheme func(string)

	width  int
	height int

	flashing bool
	flashSeq int
}

// NewModel constructs a typing TUI model. ticker must be the scheduler the
// controller was built with.
func NewModel(ctrl *game.Controller, ticker *Ticker, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type here"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)

	theme := ThemeByName(opts.Theme)
	m := &Model{
		ctrl:    ctrl,
		ticker:  ticker,
		logger:  opts.Logger,
		keys:    newKeyMap(),
		help:    help.New(),
		input:   input,
		theme:   theme,
		st:      newStyles(theme),
		onTheme: opts.OnTheme,
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.selectDifficulty(m.ctrl.Snapshot().Difficulty))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case poolLoadedMsg:
		if !m.ctrl.PoolLoaded(msg.req, msg.words) {
			m.logger.Debug().Uint64("request", msg.req.ID).Msg("dropped stale word pool")
		}
	case tickMsg:
		cmd = m.ticker.fire(msg.id)
		m.afterSession()
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashing = false
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	m.syncKeys()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Sound):
		on := m.ctrl.ToggleSound()
		m.logger.Debug().Bool("sound", on).Msg("sound toggled")
		return nil
	}
	if m.ctrl.State() == game.Playing {
		return m.handlePlayingKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Easy):
		return m.selectDifficulty(model.Easy)
	case key.Matches(msg, m.keys.Medium):
		return m.selectDifficulty(model.Medium)
	case key.Matches(msg, m.keys.Hard):
		return m.selectDifficulty(model.Hard)
	case key.Matches(msg, m.keys.Mode):
		m.ctrl.SelectMode(nextMode(m.ctrl.Snapshot().Mode))
	case key.Matches(msg, m.keys.Theme):
		m.theme = nextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		if m.onTheme != nil {
			m.onTheme(m.theme.Name)
		}
	case key.Matches(msg, m.keys.Start):
		if !m.ctrl.Start() {
			return nil
		}
		m.input.Reset()
		m.flashing = false
		return tea.Batch(m.input.Focus(), m.ticker.drain())
	}
	return nil
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Stop) {
		m.ctrl.Stop()
		m.afterSession()
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	verdict, ok := m.ctrl.UpdateInput(m.input.Value())
	if !ok {
		return cmd
	}
	if verdict == game.Complete {
		m.input.Reset()
		m.afterSession()
		return tea.Batch(cmd, m.flash())
	}
	return cmd
}

// afterSession releases the input once the controller left Playing.
func (m *Model) afterSession() {
	if m.ctrl.State() == game.Playing {
		return
	}
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) selectDifficulty(d model.Difficulty) tea.Cmd {
	job, ok := m.ctrl.SelectDifficulty(d)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return poolLoadedMsg{req: job.Request, words: job.Run()}
	}
}

func (m *Model) flash() tea.Cmd {
	m.flashing = true
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m *Model) syncKeys() {
	snap := m.ctrl.Snapshot()
	m.keys.playing(snap.Playing, snap.CanStop)
}

func nextMode(current model.GameMode) model.GameMode {
	for i, mode := range model.GameModes {
		if mode == current {
			return model.GameModes[(i+1)%len(model.GameModes)]
		}
	}
	return model.GameModes[0]
}

// Bell rings the terminal bell for wrong input.
type Bell struct {
	W io.Writer
}

// Notify implements game.Notifier.
func (b Bell) Notify(e game.Event) {
	if e != game.EventWrong || b.W == nil {
		return
	}
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		// Best-effort bell.
		_ = err
	}
}

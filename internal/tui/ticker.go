package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	id int
}

type tickTask struct {
	interval time.Duration
	fn       func()
}

// Ticker implements game.Scheduler on top of tea.Tick so every task runs
// inside Update. Tasks registered during an Update are armed by drain.
type Ticker struct {
	tasks   map[int]tickTask
	next    int
	pending []int
}

// NewTicker returns an empty Ticker.
func NewTicker() *Ticker {
	return &Ticker{tasks: map[int]tickTask{}}
}

// Every implements game.Scheduler.
func (t *Ticker) Every(interval time.Duration, fn func()) func() {
	id := t.next
	t.next++
	t.tasks[id] = tickTask{interval: interval, fn: fn}
	t.pending = append(t.pending, id)
	return func() { delete(t.tasks, id) }
}

// drain returns commands for tasks registered since the last call.
func (t *Ticker) drain() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.pending))
	for _, id := range t.pending {
		if task, ok := t.tasks[id]; ok {
			cmds = append(cmds, tickAfter(id, task.interval))
		}
	}
	t.pending = t.pending[:0]
	return tea.Batch(cmds...)
}

// fire runs a task and rearms it unless it was cancelled meanwhile.
func (t *Ticker) fire(id int) tea.Cmd {
	task, ok := t.tasks[id]
	if !ok {
		return nil
	}
	task.fn()
	if _, ok := t.tasks[id]; !ok {
		return nil
	}
	return tickAfter(id, task.interval)
}

// Active returns the number of live tasks.
func (t *Ticker) Active() int {
	return len(t.tasks)
}

func tickAfter(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

package game

import "github.com/verte-zerg/speedtyper/internal/model"

const (
	// WordsModeCount is the number of words a Words-mode session asks for.
	WordsModeCount = 10
	// Unlimited is the display value for modes without a countdown.
	Unlimited = 999
)

// Rules holds the per-mode clock behavior. The boolean results report
// whether the session must end.
type Rules interface {
	OnStart(c *Clock)
	OnTick(c *Clock) bool
	OnWordComplete(c *Clock) bool
	// AutoEnds reports whether the mode can end without an explicit stop.
	AutoEnds() bool
	// Stoppable reports whether the player may end the session early.
	Stoppable() bool
}

// RulesFor returns the rules of mode. Unknown modes behave like Time.
func RulesFor(mode model.GameMode) Rules {
	switch mode {
	case model.ModeWords:
		return wordsRules{}
	case model.ModeZen:
		return zenRules{}
	default:
		return timeRules{}
	}
}

type timeRules struct{}

func (timeRules) OnStart(c *Clock) { c.remaining = c.timeLimit }

func (timeRules) OnTick(c *Clock) bool {
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining == 0
}

func (timeRules) OnWordComplete(c *Clock) bool {
	c.remaining = c.timeLimit
	return false
}

func (timeRules) AutoEnds() bool  { return true }
func (timeRules) Stoppable() bool { return false }

type wordsRules struct{}

func (wordsRules) OnStart(c *Clock) {
	c.wordsLeft = WordsModeCount
	c.remaining = Unlimited
}

func (wordsRules) OnTick(*Clock) bool { return false }

func (wordsRules) OnWordComplete(c *Clock) bool {
	if c.wordsLeft > 0 {
		c.wordsLeft--
	}
	return c.wordsLeft == 0
}

func (wordsRules) AutoEnds() bool  { return true }
func (wordsRules) Stoppable() bool { return true }

type zenRules struct{}

func (zenRules) OnStart(c *Clock)           { c.remaining = Unlimited }
func (zenRules) OnTick(*Clock) bool         { return false }
func (zenRules) OnWordComplete(*Clock) bool { return false }
func (zenRules) AutoEnds() bool             { return false }
func (zenRules) Stoppable() bool            { return true }

// Clock tracks the remaining seconds or words of a session.
type Clock struct {
	rules     Rules
	timeLimit int
	remaining int
	wordsLeft int
}

// Start initializes the clock for mode at difficulty d.
func (c *Clock) Start(mode model.GameMode, d model.Difficulty) {
	c.rules = RulesFor(mode)
	c.timeLimit = model.SettingsFor(d).TimeLimit
	c.remaining = 0
	c.wordsLeft = 0
	c.rules.OnStart(c)
}

// Tick advances one second and reports whether the session timed out.
func (c *Clock) Tick() bool {
	if c.rules == nil {
		return false
	}
	return c.rules.OnTick(c)
}

// WordCompleted applies the mode effect of a correct word and reports
// whether the word limit was reached.
func (c *Clock) WordCompleted() bool {
	if c.rules == nil {
		return false
	}
	return c.rules.OnWordComplete(c)
}

// Stoppable reports whether the active mode accepts an explicit stop.
func (c *Clock) Stoppable() bool {
	return c.rules != nil && c.rules.Stoppable()
}

// AutoEnds reports whether the active mode can finish without a stop.
func (c *Clock) AutoEnds() bool {
	return c.rules != nil && c.rules.AutoEnds()
}

// Remaining returns seconds left (Unlimited outside Time mode).
func (c *Clock) Remaining() int { return c.remaining }

// WordsLeft returns words left in Words mode.
func (c *Clock) WordsLeft() int { return c.wordsLeft }

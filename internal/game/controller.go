// Package game implements the typing session state machine and scoring.
//
// A Controller is not safe for concurrent use. Every command, tick and
// pool-load completion must be delivered from one goroutine; only
// LoadJob.Run may execute elsewhere.
package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/achievement"
	"github.com/verte-zerg/speedtyper/internal/generator"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/stats"
	"github.com/verte-zerg/speedtyper/internal/wordsource"
)

// State is a controller state.
type State int

// State values. Ended is transient: the controller passes through it
// while folding results and rests in Idle.
const (
	Idle State = iota
	Loading
	Ready
	Playing
	Ended
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// EndReason says why a session finished.
type EndReason int

// EndReason values.
const (
	EndTimeout EndReason = iota
	EndWordLimit
	EndStopped
)

func (r EndReason) String() string {
	switch r {
	case EndWordLimit:
		return "word_limit"
	case EndStopped:
		return "stopped"
	default:
		return "timeout"
	}
}

// Persister receives the fire-and-forget writes of a finished session.
type Persister interface {
	SaveStats(ctx context.Context, st model.LifetimeStats) error
	SaveAchievements(ctx context.Context, unlocked map[string]bool) error
	SaveHighScores(ctx context.Context, hs model.HighScores) error
	RecordSession(ctx context.Context, outcome model.SessionOutcome) error
}

// Deps are the collaborators of a Controller. Nil Notifier and
// Persister are allowed.
type Deps struct {
	Source    *wordsource.Source
	Generator *generator.Generator
	Scheduler Scheduler
	Notifier  Notifier
	Persister Persister
	Logger    zerolog.Logger
	Now       func() time.Time
}

// Initial is restored state handed to a new Controller.
type Initial struct {
	Difficulty   model.Difficulty
	Mode         model.GameMode
	Sound        bool
	PlayerName   string
	Stats        model.LifetimeStats
	Achievements map[string]bool
	HighScores   model.HighScores
	Leaderboard  []model.PlayerScore
}

// LoadJob is a pending word-pool load. Run performs the I/O and may be
// called from any goroutine; its result goes back through PoolLoaded.
type LoadJob struct {
	Request wordsource.Request
	ctx     context.Context
	source  *wordsource.Source
}

// Run fetches the pool.
func (j LoadJob) Run() []string {
	return j.source.Load(j.ctx, j.Request)
}

// Controller drives a typing session.
type Controller struct {
	source    *wordsource.Source
	seq       *generator.Sequencer
	sched     Scheduler
	notifier  Notifier
	persister Persister
	logger    zerolog.Logger
	now       func() time.Time

	state        State
	difficulty   model.Difficulty
	mode         model.GameMode
	soundEnabled bool
	playerName   string
	cancelLoad   context.CancelFunc
	cancelTick   func()

	current string
	input   string
	clock   Clock
	tracker Tracker

	stats        model.LifetimeStats
	achievements map[string]bool
	highScores   model.HighScores
	leaderboard  []model.PlayerScore
	last         *model.SessionOutcome
	lastReason   EndReason
	lastUnlocked []string
}

// NewController returns an Idle controller.
func NewController(deps Deps, init Initial) *Controller {
	c := &Controller{
		source:       deps.Source,
		seq:          generator.NewSequencer(deps.Generator),
		sched:        deps.Scheduler,
		notifier:     deps.Notifier,
		persister:    deps.Persister,
		logger:       deps.Logger,
		now:          deps.Now,
		state:        Idle,
		difficulty:   init.Difficulty,
		mode:         init.Mode,
		soundEnabled: init.Sound,
		playerName:   init.PlayerName,
		stats:        init.Stats,
		achievements: copyFlags(init.Achievements),
		highScores:   init.HighScores.Clone(),
		leaderboard:  append([]model.PlayerScore(nil), init.Leaderboard...),
		tracker:      NewTracker(init.Stats.TotalWordsTyped),
	}
	if c.difficulty == "" {
		c.difficulty = model.Easy
	}
	if c.mode == "" {
		c.mode = model.ModeTime
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	for _, d := range model.Difficulties {
		if _, ok := c.highScores[d]; !ok {
			c.highScores[d] = 0
		}
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// SelectDifficulty switches difficulty and starts a pool load. Any load
// still in flight for the previous selection is cancelled. Rejected
// while playing.
func (c *Controller) SelectDifficulty(d model.Difficulty) (LoadJob, bool) {
	if c.state == Playing {
		return LoadJob{}, false
	}
	c.abortLoad()
	c.difficulty = d
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelLoad = cancel
	req := c.source.Begin(d)
	c.state = Loading
	c.logger.Debug().Str("difficulty", string(d)).Uint64("request", req.ID).Msg("loading word pool")
	return LoadJob{Request: req, ctx: ctx, source: c.source}, true
}

func (c *Controller) abortLoad() {
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.source.Cancel(c.difficulty)
}

// PoolLoaded applies a finished load. Stale results are ignored.
func (c *Controller) PoolLoaded(req wordsource.Request, words []string) bool {
	if req.Difficulty != c.difficulty {
		return false
	}
	if !c.source.Complete(req, words) {
		return false
	}
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	if c.state == Loading {
		c.state = Ready
	}
	c.logger.Debug().Str("difficulty", string(req.Difficulty)).Int("words", len(words)).Msg("word pool ready")
	return true
}

// SelectMode switches game mode. Rejected while playing.
func (c *Controller) SelectMode(m model.GameMode) bool {
	if c.state == Playing {
		return false
	}
	c.mode = m
	return true
}

// ToggleSound flips sound notifications and returns the new value.
func (c *Controller) ToggleSound() bool {
	c.soundEnabled = !c.soundEnabled
	return c.soundEnabled
}

// CanStart reports whether Start would be accepted.
func (c *Controller) CanStart() bool {
	if c.state == Playing || c.state == Loading {
		return false
	}
	return c.source.Ready(c.difficulty) && len(c.source.Pool(c.difficulty)) > 0
}

// Start begins a session. It is a no-op returning false when the pool
// for the active difficulty is not ready or empty.
func (c *Controller) Start() bool {
	if !c.CanStart() {
		return false
	}
	pool := c.source.Pool(c.difficulty)
	c.tracker.Begin(c.now())
	c.input = ""
	c.lastUnlocked = nil
	c.seq.Reset()
	c.current = c.seq.Next(pool)
	c.clock.Start(c.mode, c.difficulty)
	c.state = Playing
	if c.sched != nil {
		c.cancelTick = c.sched.Every(time.Second, c.Tick)
	}
	c.logger.Info().
		Str("difficulty", string(c.difficulty)).
		Str("mode", string(c.mode)).
		Msg("session started")
	return true
}

// Tick advances the session clock by one second.
func (c *Controller) Tick() {
	if c.state != Playing {
		return
	}
	if c.clock.Tick() {
		c.end(EndTimeout)
	}
}

// UpdateInput replaces the input buffer and evaluates it.
func (c *Controller) UpdateInput(input string) (Verdict, bool) {
	if c.state != Playing {
		return Progressing, false
	}
	c.input = input
	v := Evaluate(input, c.current)
	switch v {
	case Complete:
		c.completeWord()
	case Mismatch:
		c.tracker.Mismatch()
		c.notify(EventWrong)
	}
	return v, true
}

func (c *Controller) completeWord() {
	c.notify(EventCorrect)
	score := c.tracker.Complete(c.now())
	c.input = ""
	c.current = c.seq.Next(c.source.Pool(c.difficulty))
	if score > c.highScores[c.difficulty] {
		c.highScores[c.difficulty] = score
	}
	if c.clock.WordCompleted() {
		c.end(EndWordLimit)
	}
}

// Stop ends a Words or Zen session. Time sessions only end by timeout.
func (c *Controller) Stop() bool {
	if c.state != Playing || !c.clock.Stoppable() {
		return false
	}
	c.end(EndStopped)
	return true
}

// Close cancels the tick and any pending load.
func (c *Controller) Close() {
	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
}

func (c *Controller) end(reason EndReason) {
	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
	c.state = Ended
	outcome := model.SessionOutcome{
		Difficulty:    c.difficulty,
		Mode:          c.mode,
		Score:         c.tracker.Score(),
		WrongAttempts: c.tracker.WrongAttempts(),
		WPM:           c.tracker.WPM(),
		Accuracy:      c.tracker.Accuracy(),
		StartedAt:     c.tracker.StartedAt(),
		EndedAt:       c.now(),
	}
	c.last = &outcome
	c.lastReason = reason
	c.logger.Info().
		Str("reason", reason.String()).
		Int("score", outcome.Score).
		Int("wpm", outcome.WPM).
		Float64("accuracy", outcome.Accuracy).
		Msg("session ended")
	if outcome.Score > 0 {
		c.fold(outcome)
	}
	c.input = ""
	c.state = Idle
}

func (c *Controller) fold(outcome model.SessionOutcome) {
	c.stats = stats.Fold(c.stats, outcome.Score, outcome.WPM, model.SettingsFor(outcome.Difficulty).TimeLimit)
	before := c.achievements
	c.achievements = achievement.Evaluate(before, achievement.Input{
		Stats:    c.stats,
		WPM:      outcome.WPM,
		Score:    outcome.Score,
		Accuracy: outcome.Accuracy,
	})
	c.lastUnlocked = achievement.Newly(before, c.achievements)
	for _, id := range c.lastUnlocked {
		c.logger.Info().Str("achievement", id).Msg("achievement unlocked")
	}
	c.persist(outcome)
}

func (c *Controller) persist(outcome model.SessionOutcome) {
	if c.persister == nil {
		return
	}
	ctx := context.Background()
	if err := c.persister.SaveStats(ctx, c.stats); err != nil {
		c.logger.Error().Err(err).Msg("failed to save stats")
	}
	if err := c.persister.SaveAchievements(ctx, c.achievements); err != nil {
		c.logger.Error().Err(err).Msg("failed to save achievements")
	}
	if err := c.persister.SaveHighScores(ctx, c.highScores); err != nil {
		c.logger.Error().Err(err).Msg("failed to save high scores")
	}
	if err := c.persister.RecordSession(ctx, outcome); err != nil {
		c.logger.Error().Err(err).Msg("failed to record session")
	}
}

func (c *Controller) notify(e Event) {
	if c.soundEnabled {
		c.notifier.Notify(e)
	}
}

func copyFlags(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Package wordsource supplies per-difficulty word pools.
//
// Each difficulty owns an independent cache entry. A load is split into
// Begin (on the control goroutine), Load (pure I/O, safe to run elsewhere)
// and Complete (back on the control goroutine). Complete drops responses
// whose request is no longer the latest for that difficulty, so a slow
// fetch can never overwrite a newer pool.
package wordsource

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/speedtyper/internal/model"
)

var fallbackWords = []string{"error", "loading", "retry", "please", "wait"}

// FallbackWords returns the list used when fetching fails.
func FallbackWords() []string {
	return append([]string(nil), fallbackWords...)
}

// Request identifies one pool load.
type Request struct {
	ID         uint64
	Difficulty model.Difficulty
}

type entry struct {
	words   []string
	loaded  bool
	pending uint64
}

// Source caches word pools keyed by difficulty. Only Load may be called
// off the control goroutine.
type Source struct {
	fetcher Fetcher
	logger  zerolog.Logger
	entries map[model.Difficulty]*entry
	seq     uint64
}

// New returns a Source backed by fetcher.
func New(fetcher Fetcher, logger zerolog.Logger) *Source {
	return &Source{
		fetcher: fetcher,
		logger:  logger,
		entries: map[model.Difficulty]*entry{},
	}
}

func (s *Source) entry(d model.Difficulty) *entry {
	e, ok := s.entries[d]
	if !ok {
		e = &entry{}
		s.entries[d] = e
	}
	return e
}

// Begin marks d as loading and returns the request that will own the result.
func (s *Source) Begin(d model.Difficulty) Request {
	s.seq++
	s.entry(d).pending = s.seq
	return Request{ID: s.seq, Difficulty: d}
}

// Load fetches words for req. Fetch errors are logged and replaced with
// the fallback list.
func (s *Source) Load(ctx context.Context, req Request) []string {
	settings := model.SettingsFor(req.Difficulty)
	words, err := s.fetcher.FetchWords(ctx, settings.WordLength, settings.WordCount)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("difficulty", string(req.Difficulty)).
			Uint64("request", req.ID).
			Msg("word fetch failed; using fallback list")
		return FallbackWords()
	}
	return words
}

// Complete stores words for req. It reports false and leaves the cache
// untouched when req has been superseded or cancelled.
func (s *Source) Complete(req Request, words []string) bool {
	e := s.entry(req.Difficulty)
	if e.pending != req.ID {
		s.logger.Debug().
			Str("difficulty", string(req.Difficulty)).
			Uint64("request", req.ID).
			Msg("discarding stale word pool")
		return false
	}
	e.words = append([]string(nil), words...)
	e.loaded = true
	e.pending = 0
	return true
}

// Cancel abandons any in-flight load for d.
func (s *Source) Cancel(d model.Difficulty) {
	if e, ok := s.entries[d]; ok {
		e.pending = 0
	}
}

// Refresh runs a full load for d synchronously.
func (s *Source) Refresh(ctx context.Context, d model.Difficulty) {
	req := s.Begin(d)
	s.Complete(req, s.Load(ctx, req))
}

// Pool returns a copy of the cached pool for d, empty if not loaded.
func (s *Source) Pool(d model.Difficulty) []string {
	e, ok := s.entries[d]
	if !ok || !e.loaded {
		return nil
	}
	return append([]string(nil), e.words...)
}

// Loading reports whether a load for d is in flight.
func (s *Source) Loading(d model.Difficulty) bool {
	e, ok := s.entries[d]
	return ok && e.pending != 0
}

// Ready reports whether d has a loaded pool and no load in flight.
func (s *Source) Ready(d model.Difficulty) bool {
	e, ok := s.entries[d]
	return ok && e.loaded && e.pending == 0
}

// Package generator draws words for typing.
package generator

import (
	"math/rand"
	"sync"
	"time"
)

// Generator produces random word draws. It is safe for concurrent use, so a
// fetcher sampling off the UI goroutine may share it with a Sequencer.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly drawn word, or "" for an empty pool.
func (g *Generator) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return pool[g.rnd.Intn(len(pool))]
}

// Sample draws count words uniformly with replacement.
func (g *Generator) Sample(pool []string, count int) []string {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.Pick(pool))
	}
	return result
}

// Sequencer hands out words with one word of lookahead.
type Sequencer struct {
	gen  *Generator
	peek string
}

// NewSequencer wraps gen.
func NewSequencer(gen *Generator) *Sequencer {
	return &Sequencer{gen: gen}
}

// Next returns the buffered lookahead (or a fresh draw when none is buffered)
// and immediately draws a new lookahead. An empty pool yields "".
func (s *Sequencer) Next(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	word := s.peek
	if word == "" {
		word = s.gen.Pick(pool)
	}
	s.peek = s.gen.Pick(pool)
	return word
}

// Peek returns the word coming up next.
func (s *Sequencer) Peek() string {
	return s.peek
}

// Reset drops the buffered lookahead.
func (s *Sequencer) Reset() {
	s.peek = ""
}

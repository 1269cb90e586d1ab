package generator

import "testing"

func TestSequencerLookahead(t *testing.T) {
	seq := NewSequencer(NewSeeded(1))
	pool := []string{"alpha", "bravo", "charlie", "delta"}

	first := seq.Next(pool)
	if first == "" {
		t.Fatalf("expected a word")
	}
	peek := seq.Peek()
	if peek == "" {
		t.Fatalf("expected lookahead after Next")
	}
	for i := 0; i < 20; i++ {
		got := seq.Next(pool)
		if got != peek {
			t.Fatalf("draw %d: expected buffered %q, got %q", i, peek, got)
		}
		peek = seq.Peek()
	}
}

func TestSequencerEmptyPool(t *testing.T) {
	seq := NewSequencer(NewSeeded(1))
	if got := seq.Next(nil); got != "" {
		t.Fatalf("expected empty word, got %q", got)
	}
	if seq.Peek() != "" {
		t.Fatalf("expected no lookahead for empty pool")
	}
}

func TestSequencerSingleWordRepeats(t *testing.T) {
	seq := NewSequencer(NewSeeded(7))
	pool := []string{"apple"}
	for i := 0; i < 3; i++ {
		if got := seq.Next(pool); got != "apple" {
			t.Fatalf("expected apple, got %q", got)
		}
	}
}

func TestSampleStaysInPool(t *testing.T) {
	gen := NewSeeded(3)
	pool := []string{"a", "b", "c"}
	got := gen.Sample(pool, 50)
	if len(got) != 50 {
		t.Fatalf("expected 50 words, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, w := range got {
		seen[w] = true
		if w != "a" && w != "b" && w != "c" {
			t.Fatalf("unexpected word %q", w)
		}
	}
	if len(seen) < 2 {
		t.Fatalf("expected repeated draws to cover the pool, saw %v", seen)
	}
}

func TestGeneratorConcurrentDraws(t *testing.T) {
	gen := NewSeeded(3)
	pool := []string{"alpha", "bravo", "charlie"}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if len(gen.Sample(pool, 50)) != 50 {
				t.Errorf("expected 50 samples")
				return
			}
		}
	}()
	seq := NewSequencer(gen)
	for i := 0; i < 2000; i++ {
		if seq.Next(pool) == "" {
			t.Fatalf("expected a word")
		}
	}
	<-done
}

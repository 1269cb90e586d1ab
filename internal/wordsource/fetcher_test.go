package wordsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/verte-zerg/speedtyper/internal/generator"
)

func TestAPIFetcherQueryAndDecode(t *testing.T) {
	var gotLength, gotNumber string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.URL.Query().Get("length")
		gotNumber = r.URL.Query().Get("number")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["apple","grape"]`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.URL+"/word", time.Second)
	words, err := f.FetchWords(context.Background(), 5, 100)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotLength != "5" || gotNumber != "100" {
		t.Fatalf("unexpected query length=%q number=%q", gotLength, gotNumber)
	}
	if len(words) != 2 || words[1] != "grape" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestAPIFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.URL, time.Second)
	if _, err := f.FetchWords(context.Background(), 5, 10); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestAPIFetcherBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.URL, time.Second)
	if _, err := f.FetchWords(context.Background(), 5, 10); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestListFetcherFiltersByLength(t *testing.T) {
	f := NewListFetcher([]string{"apple", "kiwi", "grape", "absolute"}, generator.NewSeeded(1))
	words, err := f.FetchWords(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected both five-letter words, got %v", words)
	}
	if _, err := f.FetchWords(context.Background(), 12, 10); err == nil {
		t.Fatalf("expected error when no words match")
	}
}

func TestListFetcherCapsCount(t *testing.T) {
	f := NewListFetcher([]string{"apple", "grape", "melon", "lemon"}, generator.NewSeeded(1))
	words, err := f.FetchWords(context.Background(), 5, 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %v", words)
	}
}

func TestBuiltinFetcherCoversDifficulties(t *testing.T) {
	f, err := NewBuiltinFetcher(generator.NewSeeded(1))
	if err != nil {
		t.Fatalf("builtin fetcher: %v", err)
	}
	for _, length := range []int{5, 8, 12} {
		words, err := f.FetchWords(context.Background(), length, 100)
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		if len(words) == 0 {
			t.Fatalf("length %d: expected words", length)
		}
	}
}

package wordsource

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/verte-zerg/speedtyper/internal/generator"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/wordlist"
)

// Fetcher obtains candidate words of a given length.
// Implementations may return fewer than count words.
type Fetcher interface {
	FetchWords(ctx context.Context, length, count int) ([]string, error)
}

// APIFetcher queries a random-word HTTP API:
// GET {URL}?length=N&number=M returning a JSON array of strings.
type APIFetcher struct {
	URL    string
	Client *http.Client
}

// NewAPIFetcher returns an APIFetcher with a bounded client timeout.
func NewAPIFetcher(endpoint string, timeout time.Duration) *APIFetcher {
	return &APIFetcher{URL: endpoint, Client: &http.Client{Timeout: timeout}}
}

// FetchWords implements Fetcher.
func (f *APIFetcher) FetchWords(ctx context.Context, length, count int) ([]string, error) {
	u, err := url.Parse(f.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid words url: %w", err)
	}
	q := u.Query()
	q.Set("length", strconv.Itoa(length))
	q.Set("number", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected words status: %s", resp.Status)
	}
	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}
	return words, nil
}

// ListFetcher draws from an in-memory word list, keeping words of the
// requested length.
type ListFetcher struct {
	words []string
	gen   *generator.Generator
}

// NewListFetcher returns a fetcher over words.
func NewListFetcher(words []string, gen *generator.Generator) *ListFetcher {
	return &ListFetcher{words: words, gen: gen}
}

// NewFileFetcher loads a one-word-per-line file.
func NewFileFetcher(path string, gen *generator.Generator) (*ListFetcher, error) {
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, err
	}
	return NewListFetcher(words, gen), nil
}

// FetchWords implements Fetcher.
func (f *ListFetcher) FetchWords(_ context.Context, length, count int) ([]string, error) {
	matching := wordlist.Keep(f.words, wordlist.ByLength(length))
	if len(matching) == 0 {
		return nil, fmt.Errorf("no words of length %d", length)
	}
	if len(matching) <= count {
		return matching, nil
	}
	return f.gen.Sample(matching, count), nil
}

//go:embed builtin/*.txt
var builtinFS embed.FS

// NewBuiltinFetcher returns a fetcher over the embedded per-difficulty lists.
func NewBuiltinFetcher(gen *generator.Generator) (*ListFetcher, error) {
	var all []string
	for _, d := range model.Difficulties {
		f, err := builtinFS.Open("builtin/" + string(d) + ".txt")
		if err != nil {
			return nil, fmt.Errorf("open builtin %s list: %w", d, err)
		}
		words, err := wordlist.ReadWords(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read builtin %s list: %w", d, err)
		}
		all = append(all, words...)
	}
	return NewListFetcher(all, gen), nil
}

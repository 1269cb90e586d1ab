// Package leaderboard orders and renders player score entries.
package leaderboard

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/stats"
)

// DefaultLimit caps the number of rendered rows.
const DefaultLimit = 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// Board holds entries in insertion order.
type Board struct {
	entries []model.PlayerScore
}

// New returns a board seeded with a copy of entries.
func New(entries []model.PlayerScore) *Board {
	return &Board{entries: append([]model.PlayerScore(nil), entries...)}
}

// Add validates and appends an entry.
func (b *Board) Add(entry model.PlayerScore) error {
	entry.Name = strings.TrimSpace(entry.Name)
	if err := validate.Struct(entry); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid leaderboard entry: %s failed %s", strings.ToLower(fe.Field()), fe.Tag())
		}
		return err
	}
	b.entries = append(b.entries, entry)
	return nil
}

// Entries returns a copy in insertion order.
func (b *Board) Entries() []model.PlayerScore {
	return append([]model.PlayerScore(nil), b.entries...)
}

// Sorted returns entries ordered by WPM descending, then accuracy
// descending, then earlier date. Ties keep insertion order.
func (b *Board) Sorted() []model.PlayerScore {
	out := b.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WPM != out[j].WPM {
			return out[i].WPM > out[j].WPM
		}
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy > out[j].Accuracy
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Top returns at most n sorted entries, optionally limited to one difficulty.
func (b *Board) Top(n int, d model.Difficulty) []model.PlayerScore {
	sorted := b.Sorted()
	out := make([]model.PlayerScore, 0, len(sorted))
	for _, e := range sorted {
		if d != "" && e.Difficulty != d {
			continue
		}
		out = append(out, e)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Render prints ranked entries as an aligned table.
func Render(w io.Writer, entries []model.PlayerScore) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No leaderboard entries yet.")
		return err
	}
	headers := []string{"#", "Name", "WPM", "Accuracy", "Difficulty", "Date"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.WPM),
			fmt.Sprintf("%.1f%%", e.Accuracy),
			e.Difficulty.Title(),
			date,
		})
	}
	for _, line := range stats.FormatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/persist"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	driverName = "sqlite"
	// Fixed-width UTC timestamps keep TEXT comparison chronological.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Store wraps SQLite access for key-value state and session history.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			difficulty TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			wrong_attempts INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_difficulty ON sessions(difficulty);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get implements persist.KV.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Set implements persist.KV.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), formatTime(time.Now()))
	return err
}

// InsertSession stores a finished session.
func (s *Store) InsertSession(ctx context.Context, outcome model.SessionOutcome) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (difficulty, mode, score, wrong_attempts, wpm, accuracy, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(outcome.Difficulty),
		string(outcome.Mode),
		outcome.Score,
		outcome.WrongAttempts,
		outcome.WPM,
		outcome.Accuracy,
		formatTime(outcome.StartedAt),
		formatTime(outcome.EndedAt),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

type sessionRow struct {
	ID            int64   `db:"id"`
	Difficulty    string  `db:"difficulty"`
	Mode          string  `db:"mode"`
	Score         int     `db:"score"`
	WrongAttempts int     `db:"wrong_attempts"`
	WPM           int     `db:"wpm"`
	Accuracy      float64 `db:"accuracy"`
	StartedAt     string  `db:"started_at"`
	EndedAt       string  `db:"ended_at"`
}

// ListSessions returns stored sessions oldest first.
func (s *Store) ListSessions(ctx context.Context, filter persist.HistoryFilter) ([]model.SessionRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(filter.Mode))
	}
	if filter.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	query := fmt.Sprintf(`SELECT id, difficulty, mode, score, wrong_attempts, wpm, accuracy, started_at, ended_at
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))

	var rows []sessionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(rows) > filter.Last {
		rows = rows[len(rows)-filter.Last:]
	}

	records := make([]model.SessionRecord, 0, len(rows))
	for _, row := range rows {
		started, err := time.Parse(timeLayout, row.StartedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(timeLayout, row.EndedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, model.SessionRecord{
			ID:            row.ID,
			Difficulty:    model.Difficulty(row.Difficulty),
			Mode:          model.GameMode(row.Mode),
			Score:         row.Score,
			WrongAttempts: row.WrongAttempts,
			WPM:           row.WPM,
			Accuracy:      row.Accuracy,
			StartedAt:     started,
			EndedAt:       ended,
		})
	}
	return records, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

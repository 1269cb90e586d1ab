// Package redisstore keeps game state in Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/persist"
)

// DefaultPrefix namespaces every key written by Store.
const DefaultPrefix = "speedtyper:"

// Store implements persist.KV and session history on top of a Redis client.
type Store struct {
	client *redis.Client
	prefix string
}

// New wraps an existing client.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Dial connects to addr and verifies the server answers.
func Dial(ctx context.Context, addr string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return New(client, DefaultPrefix), nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get implements persist.KV.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, persist.ErrNotFound
	}
	return raw, err
}

// Set implements persist.KV. Values never expire.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

// InsertSession appends outcome to the history list.
func (s *Store) InsertSession(ctx context.Context, outcome model.SessionOutcome) (int64, error) {
	id, err := s.client.Incr(ctx, s.key("session-seq")).Result()
	if err != nil {
		return 0, err
	}
	raw, err := json.Marshal(sessionFrom(id, outcome))
	if err != nil {
		return 0, err
	}
	if err := s.client.RPush(ctx, s.key("sessions"), raw).Err(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSessions returns history entries oldest first.
func (s *Store) ListSessions(ctx context.Context, filter persist.HistoryFilter) ([]model.SessionRecord, error) {
	items, err := s.client.LRange(ctx, s.key("sessions"), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	records := make([]model.SessionRecord, 0, len(items))
	for _, item := range items {
		var sess session
		if err := json.Unmarshal([]byte(item), &sess); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		rec := sess.record()
		if filter.Difficulty != "" && rec.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Mode != "" && rec.Mode != filter.Mode {
			continue
		}
		if filter.Since != nil && rec.EndedAt.Before(*filter.Since) {
			continue
		}
		records = append(records, rec)
	}
	if filter.Last > 0 && len(records) > filter.Last {
		records = records[len(records)-filter.Last:]
	}
	return records, nil
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

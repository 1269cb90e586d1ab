package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/speedtyper/internal/config"
	"github.com/verte-zerg/speedtyper/internal/generator"
	"github.com/verte-zerg/speedtyper/internal/persist"
	"github.com/verte-zerg/speedtyper/internal/redisstore"
	"github.com/verte-zerg/speedtyper/internal/store"
	"github.com/verte-zerg/speedtyper/internal/wordsource"
)

type backend interface {
	persist.KV
	persist.SessionLister
	io.Closer
}

// loadSettings resolves defaults, env, config file and flags, in rising precedence.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	if err := config.LoadEnv(config.DefaultEnvPath()); err != nil {
		return config.Settings{}, err
	}
	settings := config.DefaultSettings()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := settings.Apply(fileCfg); err != nil {
		return config.Settings{}, err
	}

	applyStringFlag(cmd, "difficulty", &settings.Difficulty, playDifficulty)
	applyStringFlag(cmd, "mode", &settings.Mode, playMode)
	applyStringFlag(cmd, "theme", &settings.Theme, playTheme)
	applyStringFlag(cmd, "name", &settings.Name, playName)
	applyStringFlag(cmd, "source", &settings.WordSource, playSource)
	applyStringFlag(cmd, "words-file", &settings.WordsFile, playWordsFile)
	applyStringFlag(cmd, "backend", &settings.Backend, storageBackend)
	applyStringFlag(cmd, "db", &settings.DBPath, storagePath)
	applyStringFlag(cmd, "redis-addr", &settings.RedisAddr, redisAddr)
	applyStringFlag(cmd, "log-level", &settings.LogLevel, logLevel)
	if cmd.Flags().Changed("no-sound") {
		settings.Sound = !playNoSound
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func openBackend(ctx context.Context, s config.Settings) (backend, error) {
	switch s.Backend {
	case "redis":
		st, err := redisstore.Dial(ctx, s.RedisAddr, s.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return st, nil
	default:
		st, err := store.Open(s.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		return st, nil
	}
}

func newFetcher(s config.Settings, gen *generator.Generator) (wordsource.Fetcher, error) {
	switch s.WordSource {
	case "file":
		f, err := wordsource.NewFileFetcher(s.WordsFile, gen)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		return f, nil
	case "builtin":
		f, err := wordsource.NewBuiltinFetcher(gen)
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in words: %w", err)
		}
		return f, nil
	default:
		return wordsource.NewAPIFetcher(s.WordsURL, s.Timeout), nil
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

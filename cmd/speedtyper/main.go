// Package main provides the CLI entrypoint for speedtyper.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/speedtyper/internal/config"
	"github.com/verte-zerg/speedtyper/internal/game"
	"github.com/verte-zerg/speedtyper/internal/generator"
	"github.com/verte-zerg/speedtyper/internal/logging"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/persist"
	"github.com/verte-zerg/speedtyper/internal/tui"
	"github.com/verte-zerg/speedtyper/internal/wordsource"
)

var (
	playDifficulty string
	playMode       string
	playTheme      string
	playName       string
	playNoSound    bool
	playSource     string
	playWordsFile  string

	storageBackend string
	storagePath    string
	redisAddr      string
	logLevel       string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speedtyper",
		Short:         "Terminal speed typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", config.DefaultDifficulty, "easy, medium or hard")
	rootCmd.Flags().StringVar(&playMode, "mode", config.DefaultMode, "time, words or zen")
	rootCmd.Flags().StringVar(&playTheme, "theme", config.DefaultTheme, "default, neon, retro or dark")
	rootCmd.Flags().StringVar(&playName, "name", "", "player display name (stored)")
	rootCmd.Flags().BoolVar(&playNoSound, "no-sound", false, "start with sound off")
	rootCmd.Flags().StringVar(&playSource, "source", config.DefaultWordSource, "word source: api, file or builtin")
	rootCmd.Flags().StringVar(&playWordsFile, "words-file", "", "word list file for --source file")

	rootCmd.PersistentFlags().StringVar(&storageBackend, "backend", config.DefaultBackend, "storage backend: sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&storagePath, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.File(config.DefaultLogPath(), settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	be, err := openBackend(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := be.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close storage")
		}
	}()
	repo := persist.NewRepository(be, logger)

	name := repo.LoadPlayerName(ctx, settings.Name)
	if cmd.Flags().Changed("name") {
		name = settings.Name
		if err := repo.SavePlayerName(ctx, name); err != nil {
			logger.Error().Err(err).Msg("failed to save player name")
		}
	}

	gen := generator.New()
	fetcher, err := newFetcher(settings, generator.New())
	if err != nil {
		return err
	}
	difficulty, err := model.ParseDifficulty(settings.Difficulty)
	if err != nil {
		return err
	}
	mode, err := model.ParseGameMode(settings.Mode)
	if err != nil {
		return err
	}

	ticker := tui.NewTicker()
	ctrl := game.NewController(game.Deps{
		Source:    wordsource.New(fetcher, logger),
		Generator: gen,
		Scheduler: ticker,
		Notifier:  tui.Bell{W: os.Stderr},
		Persister: repo,
		Logger:    logger,
	}, game.Initial{
		Difficulty:   difficulty,
		Mode:         mode,
		Sound:        settings.Sound,
		PlayerName:   name,
		Stats:        repo.LoadStats(ctx),
		Achievements: repo.LoadAchievements(ctx),
		HighScores:   repo.LoadHighScores(ctx),
		Leaderboard:  repo.LoadLeaderboard(ctx),
	})
	defer ctrl.Close()

	logger.Info().
		Str("difficulty", string(difficulty)).
		Str("mode", string(mode)).
		Str("source", settings.WordSource).
		Str("backend", settings.Backend).
		Msg("starting game")

	m := tui.NewModel(ctrl, ticker, tui.Options{
		Theme:  settings.Theme,
		Logger: logger,
		OnTheme: func(name string) {
			logger.Debug().Str("theme", name).Msg("theme changed")
		},
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

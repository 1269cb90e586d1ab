package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speedtyper/internal/achievement"
	"github.com/verte-zerg/speedtyper/internal/config"
	"github.com/verte-zerg/speedtyper/internal/leaderboard"
	"github.com/verte-zerg/speedtyper/internal/logging"
	"github.com/verte-zerg/speedtyper/internal/model"
	"github.com/verte-zerg/speedtyper/internal/persist"
	"github.com/verte-zerg/speedtyper/internal/stats"
)

const (
	defaultCurveWindow  = 10
	terminalWidthBackup = 80
)

var (
	statsDifficulty  string
	statsMode        string
	statsDays        int
	statsLast        int
	statsCurveWindow int

	boardDifficulty string
	boardLimit      int
)

// withRepo resolves settings, opens the backend with a console logger and
// hands both to fn.
func withRepo(cmd *cobra.Command, fn func(ctx context.Context, be backend, repo *persist.Repository, logger zerolog.Logger) error) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.Console(settings.LogLevel)
	if err != nil {
		return err
	}
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
	return fn(ctx, be, persist.NewRepository(be, logger), logger)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime stats and session history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsDifficulty, "difficulty", "", "difficulty filter")
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().IntVar(&statsDays, "days", 0, "limit to sessions from the last N days")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg := stats.ReportConfig{
		Days:        statsDays,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}
	if statsDifficulty != "" {
		d, err := model.ParseDifficulty(statsDifficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty = d
	}
	if statsMode != "" {
		m, err := model.ParseGameMode(statsMode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	if cfg.Days < 0 || cfg.Last < 0 {
		return fmt.Errorf("--days and --last must be >= 0")
	}

	return withRepo(cmd, func(ctx context.Context, be backend, repo *persist.Repository, _ zerolog.Logger) error {
		report, err := stats.BuildReport(ctx, be, cfg, time.Now())
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		report.Lifetime = repo.LoadStats(ctx)
		report.HighScores = repo.LoadHighScores(ctx)
		return report.Render(cmd.OutOrStdout(), terminalWidth())
	})
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show leaderboard entries ranked by WPM",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().StringVar(&boardDifficulty, "difficulty", "", "difficulty filter")
	cmd.Flags().IntVar(&boardLimit, "limit", leaderboard.DefaultLimit, "number of rows (0 for all)")
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	var d model.Difficulty
	if boardDifficulty != "" {
		parsed, err := model.ParseDifficulty(boardDifficulty)
		if err != nil {
			return err
		}
		d = parsed
	}
	return withRepo(cmd, func(ctx context.Context, _ backend, repo *persist.Repository, logger zerolog.Logger) error {
		board := leaderboard.New(nil)
		for _, entry := range repo.LoadLeaderboard(ctx) {
			if err := board.Add(entry); err != nil {
				logger.Warn().Err(err).Str("name", entry.Name).Msg("skipping stored leaderboard entry")
			}
		}
		return leaderboard.Render(cmd.OutOrStdout(), board.Top(boardLimit, d))
	})
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and their unlock state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepo(cmd, func(ctx context.Context, _ backend, repo *persist.Repository, _ zerolog.Logger) error {
				return renderAchievements(cmd.OutOrStdout(), achievement.List(repo.LoadAchievements(ctx)))
			})
		},
	}
}

func renderAchievements(w io.Writer, list []achievement.Status) error {
	headers := []string{"", "Achievement", "Description"}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		mark := "[ ]"
		if a.Unlocked {
			mark = "[x]"
		}
		rows = append(rows, []string{mark, a.Title, a.Description})
	}
	for _, line := range stats.FormatTable(headers, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name [display-name]",
		Short: "Show or set the player display name",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runNameCmd,
	}
}

func runNameCmd(cmd *cobra.Command, args []string) error {
	return withRepo(cmd, func(ctx context.Context, _ backend, repo *persist.Repository, logger zerolog.Logger) error {
		if len(args) == 0 {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), repo.LoadPlayerName(ctx, config.DefaultName))
			return err
		}
		name := strings.TrimSpace(args[0])
		if err := validator.New().Var(name, "required,max=32"); err != nil {
			return fmt.Errorf("invalid name %q: must be 1-32 characters", args[0])
		}
		if err := repo.SavePlayerName(ctx, name); err != nil {
			return fmt.Errorf("failed to save name: %w", err)
		}
		logger.Info().Str("name", name).Msg("player name saved")
		return nil
	})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speedtyper configuration
# Uncomment a value to enable it. CLI flags override config values,
# config values override the environment (.env included).

[game]
# difficulty = %q         # easy, medium or hard
# mode = %q               # time, words or zen
# sound = true
# theme = %q          # default, neon, retro or dark
# name = %q

[words]
# source = %q              # api, file or builtin
# url = %q
# file = "/path/to/words.txt"
# timeout = %q

[storage]
# backend = %q          # sqlite or redis
# path = %q
# redis-addr = %q
# redis-db = 0

[log]
# level = %q
`,
		config.DefaultDifficulty,
		config.DefaultMode,
		config.DefaultTheme,
		config.DefaultName,
		config.DefaultWordSource,
		config.DefaultWordsURL,
		config.DefaultTimeout.String(),
		config.DefaultBackend,
		config.DefaultDBPath(),
		config.DefaultRedisAddr,
		config.DefaultLogLevel,
	)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return terminalWidthBackup
}

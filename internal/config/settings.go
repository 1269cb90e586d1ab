package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults used when neither flags, config nor environment set a value.
const (
	DefaultDifficulty = "easy"
	DefaultMode       = "time"
	DefaultTheme      = "default"
	DefaultName       = "player"
	DefaultWordSource = "api"
	DefaultWordsURL   = "https://random-word-api.herokuapp.com/word"
	DefaultTimeout    = 10 * time.Second
	DefaultBackend    = "sqlite"
	DefaultRedisAddr  = "127.0.0.1:6379"
	DefaultLogLevel   = "info"
)

// Settings is the fully resolved runtime configuration.
type Settings struct {
	Difficulty string `validate:"oneof=easy medium hard"`
	Mode       string `validate:"oneof=time words zen"`
	Sound      bool
	Theme      string        `validate:"oneof=default neon retro dark"`
	Name       string        `validate:"required,max=32"`
	WordSource string        `validate:"oneof=api file builtin"`
	WordsURL   string        `validate:"required_if=WordSource api"`
	WordsFile  string        `validate:"required_if=WordSource file"`
	Timeout    time.Duration `validate:"gt=0"`
	Backend    string        `validate:"oneof=sqlite redis"`
	DBPath     string        `validate:"required_if=Backend sqlite"`
	RedisAddr  string        `validate:"required_if=Backend redis"`
	RedisDB    int           `validate:"gte=0"`
	LogLevel   string        `validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// DefaultSettings returns settings populated from the environment and built-in defaults.
// Env keys: SPEEDTYPER_DIFFICULTY, SPEEDTYPER_MODE, SPEEDTYPER_NAME,
// SPEEDTYPER_WORD_SOURCE, SPEEDTYPER_WORDS_URL, SPEEDTYPER_BACKEND,
// SPEEDTYPER_REDIS_ADDR, LOG_LEVEL.
func DefaultSettings() Settings {
	return Settings{
		Difficulty: getEnv("SPEEDTYPER_DIFFICULTY", DefaultDifficulty),
		Mode:       getEnv("SPEEDTYPER_MODE", DefaultMode),
		Sound:      true,
		Theme:      DefaultTheme,
		Name:       getEnv("SPEEDTYPER_NAME", DefaultName),
		WordSource: getEnv("SPEEDTYPER_WORD_SOURCE", DefaultWordSource),
		WordsURL:   getEnv("SPEEDTYPER_WORDS_URL", DefaultWordsURL),
		Timeout:    DefaultTimeout,
		Backend:    getEnv("SPEEDTYPER_BACKEND", DefaultBackend),
		DBPath:     DefaultDBPath(),
		RedisAddr:  getEnv("SPEEDTYPER_REDIS_ADDR", DefaultRedisAddr),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
	}
}

// LoadEnv loads KEY=VALUE pairs from path into the process environment.
// Already-set variables win. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Apply overlays values present in the file config.
func (s *Settings) Apply(fc FileConfig) error {
	setString(&s.Difficulty, fc.Game.Difficulty)
	setString(&s.Mode, fc.Game.Mode)
	if fc.Game.Sound != nil {
		s.Sound = *fc.Game.Sound
	}
	setString(&s.Theme, fc.Game.Theme)
	setString(&s.Name, fc.Game.Name)
	setString(&s.WordSource, fc.Words.Source)
	setString(&s.WordsURL, fc.Words.URL)
	setString(&s.WordsFile, fc.Words.File)
	if fc.Words.Timeout != nil {
		d, err := time.ParseDuration(*fc.Words.Timeout)
		if err != nil {
			return fmt.Errorf("invalid words.timeout: %w", err)
		}
		s.Timeout = d
	}
	setString(&s.Backend, fc.Storage.Backend)
	setString(&s.DBPath, fc.Storage.Path)
	setString(&s.RedisAddr, fc.Storage.RedisAddr)
	if fc.Storage.RedisDB != nil {
		s.RedisDB = *fc.Storage.RedisDB
	}
	if fc.Log.Level != nil {
		s.LogLevel = strings.ToLower(*fc.Log.Level)
	}
	return nil
}

// Validate checks settings against their constraints.
func (s Settings) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s %q (%s)", strings.ToLower(fe.Field()), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return err
	}
	return nil
}

func setString(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

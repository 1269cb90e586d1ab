package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Words   WordsConfig   `toml:"words"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// GameConfig maps gameplay settings.
type GameConfig struct {
	Difficulty *string `toml:"difficulty"`
	Mode       *string `toml:"mode"`
	Sound      *bool   `toml:"sound"`
	Theme      *string `toml:"theme"`
	Name       *string `toml:"name"`
}

// WordsConfig maps word source settings.
type WordsConfig struct {
	Source  *string `toml:"source"`
	URL     *string `toml:"url"`
	File    *string `toml:"file"`
	Timeout *string `toml:"timeout"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	Backend   *string `toml:"backend"`
	Path      *string `toml:"path"`
	RedisAddr *string `toml:"redis-addr"`
	RedisDB   *int    `toml:"redis-db"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Package config resolves speedtyper settings from defaults, the
// environment, the TOML config file and CLI flags.
package config

import (
	"os"
	"path/filepath"
)

const appName = "speedtyper"

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string { return xdgHome("XDG_CONFIG_HOME", ".config") }

// XDGDataHome returns $XDG_DATA_HOME or ~/.local/share.
func XDGDataHome() string { return xdgHome("XDG_DATA_HOME", ".local", "share") }

func xdgHome(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func dataFile(name string) string   { return filepath.Join(XDGDataHome(), appName, name) }
func configFile(name string) string { return filepath.Join(XDGConfigHome(), appName, name) }

// DefaultDBPath returns the SQLite database path.
func DefaultDBPath() string { return dataFile(appName + ".db") }

// DefaultLogPath returns the log file used while the TUI owns the terminal.
func DefaultLogPath() string { return dataFile(appName + ".log") }

// DefaultConfigPath returns the TOML config path.
func DefaultConfigPath() string { return configFile("config.toml") }

// DefaultEnvPath returns the optional .env file next to the config.
func DefaultEnvPath() string { return configFile(".env") }

package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/core/config"
	"github.com/colonyops/starters/internal/core/i18n"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store persists agents using the configured backend
	Store agent.Store

	// Localizer resolves UI labels for the configured locale
	Localizer *i18n.Localizer
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "starters", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "starters")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/starters/starters.log
// On Linux: $XDG_STATE_HOME/starters/starters.log (defaults to ~/.local/state/starters/starters.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "starters", "starters.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "starters", "starters.log")
	}

	return filepath.Join(home, ".local", "state", "starters", "starters.log")
}

package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/starters/internal/core/i18n"
	"github.com/colonyops/starters/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("starters.max_count", c.Starters.MaxCount, positive),
		criterio.Run("starters.max_length", c.Starters.MaxLength, positive),
		criterio.Run("store.backend", c.Store.Backend, knownBackend),
		c.validateDatabase(),
		criterio.Run("locale", c.Locale, knownLocale),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

func (c *Config) validateDatabase() error {
	if c.Store.Backend != BackendSQLite {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	if c.Database.MaxOpenConns < 1 {
		errs = errs.Append("database.max_open_conns", fmt.Errorf("must be at least 1"))
	}
	if c.Database.MaxIdleConns < 0 {
		errs = errs.Append("database.max_idle_conns", fmt.Errorf("must not be negative"))
	}
	if c.Database.BusyTimeout < 0 {
		errs = errs.Append("database.busy_timeout", fmt.Errorf("must not be negative"))
	}
	return errs.ToError()
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

func knownBackend(b string) error {
	switch b {
	case BackendJSON, BackendSQLite:
		return nil
	}
	return fmt.Errorf("unknown backend %q (want %s or %s)", b, BackendJSON, BackendSQLite)
}

func knownLocale(locale string) error {
	if !i18n.Default().HasLocale(locale) {
		return fmt.Errorf("unsupported locale %q (available: %v)", locale, i18n.Default().Locales())
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// isDirectoryOrNotExist accepts a path that is missing or is a directory.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

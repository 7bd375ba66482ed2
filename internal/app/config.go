package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"keycalc/internal/logger"
	"keycalc/internal/store"
)

// ConfigFilename is the config file looked up inside the home directory.
const ConfigFilename = "config.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        `toml:"-"` // config directory, e.g. $HOME/.keycalc
	History HistoryConfig `toml:"history"`
	Logging logger.Config `toml:"logging"`
}

// HistoryConfig controls the commit log.
type HistoryConfig struct {
	Enabled     bool `toml:"enabled"`
	NewestFirst bool `toml:"newest_first"`
	Limit       int  `toml:"limit"` // 0 keeps every entry
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		History: HistoryConfig{
			Enabled:     true,
			NewestFirst: true,
		},
		Logging: logger.DefaultConfig(),
	}
}

// DefaultHome returns ~/.keycalc.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".keycalc"), nil
}

// ConfigPath returns the config file path inside home.
func ConfigPath(home string) string {
	return filepath.Join(home, ConfigFilename)
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := store.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if b == nil {
		return cfg, nil
	}

	md, err := toml.Decode(string(b), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("parse config file: unknown keys %s", strings.Join(keys, ", "))
	}
	if cfg.History.Limit < 0 {
		return Config{}, fmt.Errorf("history.limit must not be negative, got %d", cfg.History.Limit)
	}
	return cfg, nil
}

// Save writes c as TOML to path, replacing any existing file.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := store.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

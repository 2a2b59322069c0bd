package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/angrycuban13/TPDbCollectionMaker/internal/scrape"
)

// Config holds the persisted defaults for the CLI. Flags override whatever
// is loaded from disk.
type Config struct {
	// AlwaysQuote wraps every emitted title in quotes, matching the
	// --always-quote flag.
	AlwaysQuote bool `json:"always_quote"`

	// PosterSelector and TitleSelector override the CSS selectors used to
	// locate poster entries, for when the TPDb page markup changes.
	PosterSelector string `json:"poster_selector"`
	TitleSelector  string `json:"title_selector"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		AlwaysQuote:    false,
		PosterSelector: scrape.DefaultPosterSelector,
		TitleSelector:  scrape.DefaultTitleSelector,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tpdb-collection-maker", "config.json"), nil
}

// Load reads the configuration from disk. A missing file is not an error;
// the defaults are returned instead. Missing fields are backfilled with
// their defaults so partial config files keep working.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.PosterSelector == "" {
		cfg.PosterSelector = defaults.PosterSelector
	}
	if cfg.TitleSelector == "" {
		cfg.TitleSelector = defaults.TitleSelector
	}
	return &cfg, nil
}

// Save writes the configuration to disk, creating the config directory if
// needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPath returns the path of the user config file,
// ~/.config/panes/config.json.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "panes-config.json")
	}
	return filepath.Join(home, ".config", "panes", "config.json")
}

// SessionsDir resolves where tab sessions live: the configured override or
// a "sessions" directory next to the config file.
func (c *Config) SessionsDir() string {
	if c.Tabs.SessionsDir != "" {
		return c.Tabs.SessionsDir
	}
	return filepath.Join(filepath.Dir(ConfigPath()), "sessions")
}

// Load reads the config from the default location. A missing file yields
// the defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config from an explicit path, layering the file over
// the defaults so absent fields keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Keymap.Overrides == nil {
		cfg.Keymap.Overrides = make(map[string]string)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary: pointer booleans keep a
// saved file distinguishable from one that simply omits a field.
type saveConfig struct {
	Panels savePanelsConfig `json:"panels"`
	Tabs   saveTabsConfig   `json:"tabs"`
	Keymap KeymapConfig     `json:"keymap"`
	UI     UIConfig         `json:"ui"`
}

type savePanelsConfig struct {
	Format          string `json:"format,omitempty"`
	ScrollPolicy    string `json:"scrollPolicy,omitempty"`
	QuickSearchCase string `json:"quickSearchCase,omitempty"`
	MarkMovesDown   *bool  `json:"markMovesDown,omitempty"`
	SmartHomeEnd    *bool  `json:"smartHomeEnd,omitempty"`
	ShowHidden      *bool  `json:"showHidden,omitempty"`
	DirsFirst       *bool  `json:"dirsFirst,omitempty"`
	CaseSensitive   *bool  `json:"caseSensitiveSort,omitempty"`
}

type saveTabsConfig struct {
	InsertDirection   string `json:"insertDirection,omitempty"`
	HighlightInactive *bool  `json:"highlightInactive,omitempty"`
	HideSingleStrip   *bool  `json:"hideSingleStrip,omitempty"`
	MaxTitleLength    *int   `json:"maxTitleLength,omitempty"`
	SessionsDir       string `json:"sessionsDir,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Panels: savePanelsConfig{
			Format:          cfg.Panels.Format,
			ScrollPolicy:    cfg.Panels.ScrollPolicy,
			QuickSearchCase: cfg.Panels.QuickSearchCase,
			MarkMovesDown:   &cfg.Panels.MarkMovesDown,
			SmartHomeEnd:    &cfg.Panels.SmartHomeEnd,
			ShowHidden:      &cfg.Panels.ShowHidden,
			DirsFirst:       &cfg.Panels.DirsFirst,
			CaseSensitive:   &cfg.Panels.CaseSensitive,
		},
		Tabs: saveTabsConfig{
			InsertDirection:   cfg.Tabs.InsertDirection,
			HighlightInactive: &cfg.Tabs.HighlightInactive,
			HideSingleStrip:   &cfg.Tabs.HideSingleStrip,
			MaxTitleLength:    &cfg.Tabs.MaxTitleLength,
			SessionsDir:       cfg.Tabs.SessionsDir,
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config to ~/.config/panes/config.json.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to an explicit path, creating the directory.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

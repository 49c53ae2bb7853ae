package config

// Config is the root configuration structure.
type Config struct {
	Panels PanelsConfig `json:"panels"`
	Tabs   TabsConfig   `json:"tabs"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// PanelsConfig configures listing behavior shared by both panels.
type PanelsConfig struct {
	// Format is the listing format string; a bad value falls back to the
	// built-in default at startup.
	Format string `json:"format"`
	// ScrollPolicy is "minimal", "pages", or "center".
	ScrollPolicy string `json:"scrollPolicy"`
	// QuickSearchCase is "from-sort", "sensitive", or "insensitive".
	QuickSearchCase string `json:"quickSearchCase"`
	MarkMovesDown   bool   `json:"markMovesDown"`
	SmartHomeEnd    bool   `json:"smartHomeEnd"`
	ShowHidden      bool   `json:"showHidden"`
	DirsFirst       bool   `json:"dirsFirst"`
	CaseSensitive   bool   `json:"caseSensitiveSort"`
}

// TabsConfig configures tab behavior.
type TabsConfig struct {
	// InsertDirection is where new tabs land: "next", "prev", "first",
	// "last".
	InsertDirection   string `json:"insertDirection"`
	HighlightInactive bool   `json:"highlightInactive"`
	// HideSingleStrip drops the tab strip while both panels hold a
	// single tab.
	HideSingleStrip bool `json:"hideSingleStrip"`
	MaxTitleLength  int  `json:"maxTitleLength"`
	// SessionsDir overrides where tab sessions are stored; empty means
	// a "sessions" directory next to the config file.
	SessionsDir string `json:"sessionsDir,omitempty"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowMiniStatus bool        `json:"showMiniStatus"`
	ShowFreeSpace  bool        `json:"showFreeSpace"`
	Theme          ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Panels: PanelsConfig{
			Format:          "half type name | size | mtime",
			ScrollPolicy:    "minimal",
			QuickSearchCase: "insensitive",
			MarkMovesDown:   true,
			SmartHomeEnd:    false,
			ShowHidden:      false,
			DirsFirst:       true,
			CaseSensitive:   false,
		},
		Tabs: TabsConfig{
			InsertDirection:   "next",
			HighlightInactive: true,
			HideSingleStrip:   true,
			MaxTitleLength:    32,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowMiniStatus: true,
			ShowFreeSpace:  true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate checks the configuration for errors and normalizes enum fields
// back to their defaults when they hold unknown values.
func (c *Config) Validate() error {
	switch c.Panels.ScrollPolicy {
	case "minimal", "pages", "center":
	default:
		c.Panels.ScrollPolicy = "minimal"
	}
	switch c.Panels.QuickSearchCase {
	case "from-sort", "sensitive", "insensitive":
	default:
		c.Panels.QuickSearchCase = "insensitive"
	}
	switch c.Tabs.InsertDirection {
	case "next", "prev", "first", "last":
	default:
		c.Tabs.InsertDirection = "next"
	}
	if c.Tabs.MaxTitleLength <= 0 {
		c.Tabs.MaxTitleLength = 32
	}
	if c.Panels.Format == "" {
		c.Panels.Format = Default().Panels.Format
	}
	return nil
}

package styles

import (
	"regexp"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSelection string `json:"textSelection"`

	BgPrimary   string `json:"bgPrimary"`
	BgSelection string `json:"bgSelection"`

	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	// Listing colors
	Directory  string `json:"directory"`
	Executable string `json:"executable"`
	Symlink    string `json:"symlink"`
	StaleLink  string `json:"staleLink"`
	Marked     string `json:"marked"`

	// Tab strip colors
	TabActive       string `json:"tabActive"`
	TabTextInactive string `json:"tabTextInactive"`

	ScrollbarTrack string `json:"scrollbarTrack"`
	ScrollbarThumb string `json:"scrollbarThumb"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	// DefaultTheme is the dark theme.
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED",
			Accent:  "#F59E0B",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSelection: "#F9FAFB",

			BgPrimary:   "#111827",
			BgSelection: "#374151",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			Directory:  "#60A5FA",
			Executable: "#10B981",
			Symlink:    "#22D3EE",
			StaleLink:  "#EF4444",
			Marked:     "#FBBF24",

			TabActive:       "#F9FAFB",
			TabTextInactive: "#6B7280",

			ScrollbarTrack: "#374151",
			ScrollbarThumb: "#6B7280",
		},
	}

	// LightTheme is a light variant.
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary: "#6D28D9",
			Accent:  "#B45309",

			Success: "#047857",
			Warning: "#B45309",
			Error:   "#B91C1C",

			TextPrimary:   "#111827",
			TextSecondary: "#4B5563",
			TextMuted:     "#9CA3AF",
			TextSelection: "#111827",

			BgPrimary:   "#F9FAFB",
			BgSelection: "#E5E7EB",

			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			Directory:  "#1D4ED8",
			Executable: "#047857",
			Symlink:    "#0E7490",
			StaleLink:  "#B91C1C",
			Marked:     "#B45309",

			TabActive:       "#111827",
			TabTextInactive: "#9CA3AF",

			ScrollbarTrack: "#D1D5DB",
			ScrollbarThumb: "#9CA3AF",
		},
	}
)

var currentTheme = DefaultTheme

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme, true
	case "light":
		return LightTheme, true
	}
	return Theme{}, false
}

// SetTheme switches the active theme. Unknown names keep the default.
func SetTheme(name string) {
	t, ok := ThemeByName(name)
	if !ok {
		t = DefaultTheme
	}
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// ApplyOverrides patches individual palette colors. Values that are not
// valid hex colors are ignored.
func ApplyOverrides(overrides map[string]string) {
	themeMu.Lock()
	defer themeMu.Unlock()
	for key, val := range overrides {
		if !hexColorRegex.MatchString(val) {
			continue
		}
		switch key {
		case "primary":
			currentTheme.Colors.Primary = val
		case "accent":
			currentTheme.Colors.Accent = val
		case "directory":
			currentTheme.Colors.Directory = val
		case "executable":
			currentTheme.Colors.Executable = val
		case "symlink":
			currentTheme.Colors.Symlink = val
		case "staleLink":
			currentTheme.Colors.StaleLink = val
		case "marked":
			currentTheme.Colors.Marked = val
		case "bgSelection":
			currentTheme.Colors.BgSelection = val
		case "borderActive":
			currentTheme.Colors.BorderActive = val
		}
	}
}

// Current returns the active theme's palette.
func Current() ColorPalette {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme.Colors
}

// Color shorthands read by the widget styles below.
func color(hex string) lipgloss.Color { return lipgloss.Color(hex) }

// PanelBorder styles a panel frame; active panels get the accent border.
func PanelBorder(active bool) lipgloss.Style {
	c := Current()
	border := c.BorderNormal
	if active {
		border = c.BorderActive
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(border))
}

// Row styles one listing line.
func Row(selected, marked bool) lipgloss.Style {
	c := Current()
	s := lipgloss.NewStyle().Foreground(color(c.TextPrimary))
	if marked {
		s = s.Foreground(color(c.Marked))
	}
	if selected {
		s = s.Background(color(c.BgSelection)).Foreground(color(c.TextSelection))
		if marked {
			s = s.Foreground(color(c.Marked))
		}
	}
	return s
}

// Header styles the column title line.
func Header() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(Current().Accent)).Bold(true)
}

// MiniStatus styles the summary line under the listing.
func MiniStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(Current().TextSecondary))
}

// TabTitle styles one tab strip title.
func TabTitle(active bool) lipgloss.Style {
	c := Current()
	if active {
		return lipgloss.NewStyle().Foreground(color(c.TabActive)).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(color(c.TabTextInactive))
}

// StripOverflow styles the "more tabs" edge markers.
func StripOverflow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(Current().TextMuted))
}

// ErrorText styles user-visible error lines.
func ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(Current().Error))
}

// Prompt styles input prompt labels.
func Prompt() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color(Current().Primary)).Bold(true)
}

// ScrollbarTrackColor and ScrollbarThumbColor feed the scrollbar widget.
func ScrollbarTrackColor() lipgloss.Color { return color(Current().ScrollbarTrack) }
func ScrollbarThumbColor() lipgloss.Color { return color(Current().ScrollbarThumb) }

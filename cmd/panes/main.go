package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/panes/internal/app"
	"github.com/wilbur182/panes/internal/config"
	"github.com/wilbur182/panes/internal/keymap"
	"github.com/wilbur182/panes/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("panes version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "panes requires an interactive terminal")
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	styles.SetTheme(cfg.UI.Theme.Name)
	styles.ApplyOverrides(cfg.UI.Theme.Overrides)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	leftDir, rightDir, err := startDirs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve directory: %v\n", err)
		os.Exit(1)
	}

	model := app.New(logger, cfg, km, leftDir, rightDir).
		SetConfigPath(effectiveConfigPath(*configPath))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// startDirs resolves the optional positional arguments into the two panes'
// starting directories. With one argument both panes open there; with none
// both open in the working directory.
func startDirs(args []string) (left, right string, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	left, right = cwd, cwd
	if len(args) > 0 {
		if left, err = filepath.Abs(args[0]); err != nil {
			return "", "", err
		}
		right = left
	}
	if len(args) > 1 {
		if right, err = filepath.Abs(args[1]); err != nil {
			return "", "", err
		}
	}
	return left, right, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveConfigPath resolves where quit-time option changes are saved:
// the -config override or the default location.
func effectiveConfigPath(path string) string {
	if path != "" {
		return path
	}
	return config.ConfigPath()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panes [options] [dir] [dir2]\n\n")
		fmt.Fprintf(os.Stderr, "A dual-pane terminal file manager.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}

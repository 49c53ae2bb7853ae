// Package app wires the two listing panels, the tab manager, and the
// keymap into the root Bubble Tea model.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/panes/internal/config"
	"github.com/wilbur182/panes/internal/keymap"
	"github.com/wilbur182/panes/internal/panel"
	"github.com/wilbur182/panes/internal/tabs"
	"github.com/wilbur182/panes/internal/vfs"
)

const toastDuration = 3 * time.Second

// Message types
type (
	tickMsg time.Time
	// dirChangedMsg arrives from a panel's directory watcher.
	dirChangedMsg struct{ panel int }
	// commandMsg carries a dispatched keymap command ID back into Update.
	commandMsg struct{ id string }
)

// promptKind selects what the bottom-line input is collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptRenameTab
	promptSelectGlob
	promptUnselectGlob
	promptSaveSession
	promptLoadSession
)

// pane binds one screen position to its panel model. The tab manager
// holds the position, so swapping the two panel models under it is safe.
type pane struct {
	p *panel.Panel
}

func (s *pane) Dir() string                { return s.p.Dir }
func (s *pane) ChangeDir(dir string) error { return s.p.ChangeDir(dir) }

// Model is the root Bubble Tea model for the panes application.
type Model struct {
	log *slog.Logger
	cfg *config.Config

	// Keymap
	keymap        *keymap.Registry
	activeContext string

	// Panels and tabs. Index 0 is the left pane, 1 the right.
	panes [2]*pane
	tabs  *tabs.Manager

	// Directory watchers, one per pane. A nil watcher means the
	// filesystem does not support watching; reloads stay manual.
	watchers  [2]*panel.Watcher
	watchDirs [2]string

	sessionsDir string
	// configPath is where runtime-changed options are written on quit.
	// Empty disables persistence.
	configPath string

	// UI state
	width, height int
	ready         bool

	// Bottom-line prompt
	prompt      promptKind
	promptLabel string
	promptInput textinput.Model

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// New creates the application model with one panel per pane, each seeded
// with its starting directory already loaded.
func New(log *slog.Logger, cfg *config.Config, km *keymap.Registry, leftDir, rightDir string) Model {
	opts := panelOptions(cfg)
	provider := vfs.Local{}

	m := Model{
		log:           log,
		cfg:           cfg,
		keymap:        km,
		activeContext: keymap.ContextPanel,
		sessionsDir:   cfg.SessionsDir(),
	}

	for i, dir := range []string{leftDir, rightDir} {
		p := panel.New(log, provider, dir, cfg.Panels.Format, opts)
		if err := p.Load(); err != nil {
			log.Warn("initial load failed", "dir", dir, "error", err)
		}
		m.panes[i] = &pane{p: p}

		w, err := panel.NewWatcher(p.Dir)
		if err != nil {
			log.Warn("directory watcher unavailable", "dir", p.Dir, "error", err)
			continue
		}
		m.watchers[i] = w
		m.watchDirs[i] = p.Dir
	}

	m.tabs = tabs.NewManager(log, m.panes[0], m.panes[1], tabOptions(cfg))
	registerCommands(km)
	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	for i, w := range m.watchers {
		if w != nil {
			cmds = append(cmds, watchCmd(i, w.Events()))
		}
	}
	return tea.Batch(cmds...)
}

// SetConfigPath points the model at the file quit-time state is saved to.
func (m Model) SetConfigPath(path string) Model {
	m.configPath = path
	return m
}

// active returns the focused pane's panel.
func (m Model) active() *panel.Panel {
	return m.panes[m.tabs.Focused].p
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(toastDuration)
	m.statusIsError = false
}

// ShowError displays a temporary error message.
func (m *Model) ShowError(err error) {
	m.statusMsg = err.Error()
	m.statusExpiry = time.Now().Add(toastDuration)
	m.statusIsError = true
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchCmd blocks on one watcher's event channel and re-arms from Update.
func watchCmd(idx int, events <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return dirChangedMsg{panel: idx}
	}
}

// panelOptions translates the config enums into panel options.
func panelOptions(cfg *config.Config) panel.Options {
	opts := panel.Options{
		MarkMovesDown: cfg.Panels.MarkMovesDown,
		SmartHomeEnd:  cfg.Panels.SmartHomeEnd,
		ShowHidden:    cfg.Panels.ShowHidden,
		DirsFirst:     cfg.Panels.DirsFirst,
		CaseSensitive: cfg.Panels.CaseSensitive,
	}
	switch cfg.Panels.ScrollPolicy {
	case "pages":
		opts.ScrollPolicy = panel.ScrollPages
	case "center":
		opts.ScrollPolicy = panel.ScrollCenter
	default:
		opts.ScrollPolicy = panel.ScrollMinimal
	}
	switch cfg.Panels.QuickSearchCase {
	case "sensitive":
		opts.SearchCase = panel.SearchCaseSensitive
	case "from-sort":
		opts.SearchCase = panel.SearchCaseFromSort
	default:
		opts.SearchCase = panel.SearchCaseInsensitive
	}
	return opts
}

// tabOptions translates the config enums into tab manager options.
func tabOptions(cfg *config.Config) tabs.Options {
	opts := tabs.Options{
		HighlightInactive: cfg.Tabs.HighlightInactive,
		MaxTitleLength:    cfg.Tabs.MaxTitleLength,
	}
	switch cfg.Tabs.InsertDirection {
	case "prev":
		opts.InsertDirection = tabs.Prev
	case "first":
		opts.InsertDirection = tabs.First
	case "last":
		opts.InsertDirection = tabs.Last
	default:
		opts.InsertDirection = tabs.Next
	}
	return opts
}

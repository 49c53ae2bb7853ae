// Package panel implements the file-listing pane: navigation, sorting,
// quick-search, marking, and row rendering over a directory listing.
package panel

import (
	"log/slog"
	"path/filepath"

	"github.com/wilbur182/panes/internal/listfmt"
	"github.com/wilbur182/panes/internal/vfs"
)

// ScrollPolicy selects how the viewport follows the cursor.
type ScrollPolicy int

const (
	// ScrollMinimal moves the viewport only far enough to keep the cursor
	// visible.
	ScrollMinimal ScrollPolicy = iota
	// ScrollPages jumps half a page when the cursor steps past the edge.
	ScrollPages
	// ScrollCenter keeps the cursor near the middle of the viewport.
	ScrollCenter
)

// SearchCase selects quick-search case sensitivity.
type SearchCase int

const (
	// SearchCaseFromSort inherits the sort collation's sensitivity.
	SearchCaseFromSort SearchCase = iota
	SearchCaseSensitive
	SearchCaseInsensitive
)

// Options are the behavior knobs a panel reads. They come from config and
// stay stable while the panel runs.
type Options struct {
	ScrollPolicy  ScrollPolicy
	SearchCase    SearchCase
	MarkMovesDown bool
	SmartHomeEnd  bool
	ShowHidden    bool
	DirsFirst     bool
	CaseSensitive bool
}

// SortState is the active sort key plus direction.
type SortState struct {
	Field   string
	Reverse bool
}

// Panel is one listing pane. All methods run on the UI goroutine; the only
// concurrent input is the directory watcher, which posts events through the
// bubbletea program rather than touching the panel directly.
type Panel struct {
	log      *slog.Logger
	provider vfs.Provider
	opts     Options

	Dir     string
	Entries vfs.List

	// Viewport state. Selected and Top are entry indexes; Shift is the
	// horizontal name-column offset, -1 when inactive.
	Selected int
	Top      int
	Shift    int

	maxShift      int
	maxShiftValid bool

	Format    *listfmt.Format
	formatStr string
	width     int
	height    int

	Sort SortState

	// Marking summary, maintained incrementally by mark.go.
	MarkedCount int
	MarkedDirs  int
	MarkedTotal int64

	// Quick-search state.
	Searching    bool
	SearchBuffer string
	prevSearch   string

	history *History
	free    *FreeSpaceCache

	Dirty bool
}

// New builds a panel rooted at dir with the default format compiled. A bad
// format string falls back to the built-in default.
func New(log *slog.Logger, provider vfs.Provider, dir string, format string, opts Options) *Panel {
	p := &Panel{
		log:      log,
		provider: provider,
		opts:     opts,
		Dir:      filepath.Clean(dir),
		Shift:    -1,
		Sort:     SortState{Field: "name"},
		history:  NewHistory(),
		free:     NewFreeSpaceCache(),
	}
	p.SetFormat(format)
	return p
}

// Opts returns the panel's behavior options.
func (p *Panel) Opts() Options { return p.opts }

// SetOptions replaces the behavior options, used when config is reloaded.
func (p *Panel) SetOptions(opts Options) {
	p.opts = opts
	p.Dirty = true
}

// SetFormat recompiles the listing format. On error the previous format is
// kept if there is one, otherwise the default is compiled; the error is
// returned either way so the caller can surface it.
func (p *Panel) SetFormat(format string) error {
	f, err := listfmt.Compile(format)
	if err != nil {
		p.log.Warn("bad listing format", "format", format, "error", err)
		if p.Format == nil {
			f, _ = listfmt.Compile(listfmt.DefaultFormat)
			p.Format = f
			p.formatStr = listfmt.DefaultFormat
			p.solve()
		}
		return err
	}
	p.Format = f
	p.formatStr = format
	p.solve()
	p.invalidateShift()
	p.Dirty = true
	return nil
}

// FormatString returns the format string currently in effect.
func (p *Panel) FormatString() string { return p.formatStr }

// Resize records the widget geometry and re-runs the layout solver.
func (p *Panel) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.solve()
	p.invalidateShift()
	p.adjustTop()
	p.Dirty = true
}

func (p *Panel) solve() {
	if p.Format == nil || p.width == 0 {
		return
	}
	p.Format.Solve(listfmt.UsableWidth(p.width, p.Format.ListCols))
}

// ItemsPerPage is how many entries one viewport page holds.
func (p *Panel) ItemsPerPage() int {
	cols := 1
	if p.Format != nil {
		cols = p.Format.ListCols
	}
	return listfmt.ItemsPerPage(p.height, cols)
}

// Current returns the selected entry, or nil on an empty listing.
func (p *Panel) Current() *vfs.Entry {
	if p.Selected < 0 || p.Selected >= len(p.Entries) {
		return nil
	}
	return p.Entries[p.Selected]
}

// CurrentPath returns the absolute path of the selected entry.
func (p *Panel) CurrentPath() string {
	e := p.Current()
	if e == nil {
		return p.Dir
	}
	if e.IsDotDot() {
		return filepath.Dir(p.Dir)
	}
	return filepath.Join(p.Dir, e.Name)
}

// History exposes the directory history for the app's history menu.
func (p *Panel) History() *History { return p.history }

// FreeSpace returns cached filesystem usage for the panel's directory.
func (p *Panel) FreeSpace() (free, total uint64, ok bool) {
	return p.free.Get(p.Dir)
}

package tabs

import (
	"log/slog"
)

// DirHost is the panel surface the tab manager drives: it reads the live
// working directory when snapshotting a tab and changes directory when a
// tab becomes current.
type DirHost interface {
	Dir() string
	ChangeDir(dir string) error
}

// Options are the tab behavior knobs from config.
type Options struct {
	// InsertDirection is where newly created or transplanted tabs land
	// relative to the current tab.
	InsertDirection Direction
	// HighlightInactive marks the current tab of the unfocused panel.
	HighlightInactive bool
	// MaxTitleLength caps a single tab title before the strip budget does.
	MaxTitleLength int
}

// Manager owns both panels' tab rings. Panel identity is an index, 0 or 1;
// Focused names the panel that has keyboard focus.
type Manager struct {
	log     *slog.Logger
	rings   [2]*Ring
	hosts   [2]DirHost
	opts    Options
	Focused int
}

// NewManager builds a manager over the two panel hosts, seeding each ring
// with one unnamed tab for the host's starting directory.
func NewManager(log *slog.Logger, first, second DirHost, opts Options) *Manager {
	m := &Manager{
		log:   log,
		rings: [2]*Ring{NewRing(), NewRing()},
		hosts: [2]DirHost{first, second},
		opts:  opts,
	}
	m.rings[0].Insert(&Tab{Path: first.Dir()}, Next)
	m.rings[1].Insert(&Tab{Path: second.Dir()}, Next)
	return m
}

// Ring exposes a panel's ring for rendering.
func (m *Manager) Ring(panel int) *Ring { return m.rings[panel] }

// Host returns a panel's directory host.
func (m *Manager) Host(panel int) DirHost { return m.hosts[panel] }

// Opts returns the manager's options.
func (m *Manager) Opts() Options { return m.opts }

func (m *Manager) other(panel int) int { return 1 - panel }

// snapshot stores the panel's live directory into its current tab, so the
// outgoing tab remembers where it was.
func (m *Manager) snapshot(panel int) {
	if t := m.rings[panel].Current(); t != nil {
		t.Path = m.hosts[panel].Dir()
	}
}

// activate changes the panel's directory to the new current tab's stored
// path. A tab that was never visited has no path and triggers no change.
func (m *Manager) activate(panel int) {
	t := m.rings[panel].Current()
	if t == nil || t.Path == "" {
		return
	}
	if err := m.hosts[panel].ChangeDir(t.Path); err != nil {
		m.log.Warn("tab directory unavailable", "dir", t.Path, "error", err)
	}
}

// NewTab creates a fresh tab next to the current one and switches to it.
// The new tab inherits the panel's current directory.
func (m *Manager) NewTab(panel int) {
	r := m.rings[panel]
	m.snapshot(panel)
	t := &Tab{Path: m.hosts[panel].Dir()}
	r.Insert(t, m.opts.InsertDirection)
	r.SetCurrent(r.IndexOf(t))
}

// Change switches the panel to another tab by direction.
func (m *Manager) Change(panel int, dir Direction) {
	if m.rings[panel].Len() < 2 {
		return
	}
	m.snapshot(panel)
	m.rings[panel].Advance(dir)
	m.activate(panel)
}

// GotoTab switches the panel to the tab at a ring position.
func (m *Manager) GotoTab(panel, i int) {
	r := m.rings[panel]
	if i < 0 || i >= r.Len() || i == r.CurrentIndex() {
		return
	}
	m.snapshot(panel)
	r.SetCurrent(i)
	m.activate(panel)
}

// Close removes the panel's current tab. The ring switches to the previous
// tab before the close, so the panel never shows a dead tab.
func (m *Manager) Close(panel int) error {
	r := m.rings[panel]
	if r.Len() <= 1 {
		return ErrLastTab
	}
	closing := r.CurrentIndex()
	m.Change(panel, Prev)
	r.Remove(closing)
	return nil
}

// Rename sets the current tab's explicit name; an empty name reverts the
// title to path derivation.
func (m *Manager) Rename(panel int, name string) {
	if t := m.rings[panel].Current(); t != nil {
		t.Name = name
	}
}

// CopyToOther duplicates the current tab's name and path into the other
// panel's ring and switches the other panel to the copy.
func (m *Manager) CopyToOther(panel int) {
	cur := m.rings[panel].Current()
	if cur == nil {
		return
	}
	o := m.other(panel)
	r := m.rings[o]
	m.snapshot(panel)
	m.snapshot(o)
	t := &Tab{Name: cur.Name, Path: m.hosts[panel].Dir()}
	r.Insert(t, m.opts.InsertDirection)
	r.SetCurrent(r.IndexOf(t))
	m.activate(o)
}

// MoveToOther transplants the current tab into the other panel's ring,
// switches this panel to its previous tab, switches the other panel to the
// transplanted tab, and moves focus with it. The last tab of a ring cannot
// move.
func (m *Manager) MoveToOther(panel int) error {
	r := m.rings[panel]
	if r.Len() <= 1 {
		return ErrLastTab
	}
	m.snapshot(panel)
	moved := r.Current()
	moving := r.CurrentIndex()
	m.Change(panel, Prev)
	r.Remove(moving)

	o := m.other(panel)
	m.snapshot(o)
	or := m.rings[o]
	or.Insert(moved, m.opts.InsertDirection)
	or.SetCurrent(or.IndexOf(moved))
	m.activate(o)
	m.Focused = o
	return nil
}

// Swap exchanges the current tab between the two rings, preserving each
// ring's order and head, then points both panels at their new current
// tab's directory. When both rings hold a single tab the swap returns
// swapPanels=true and the caller exchanges the panels outright instead.
func (m *Manager) Swap() (swapPanels bool) {
	if m.rings[0].Len() == 1 && m.rings[1].Len() == 1 {
		return true
	}
	m.snapshot(0)
	m.snapshot(1)
	a, b := m.rings[0], m.rings[1]
	a.tabs[a.current], b.tabs[b.current] = b.tabs[b.current], a.tabs[a.current]
	m.activate(0)
	m.activate(1)
	m.Focused = m.other(m.Focused)
	return false
}

// TabIndex returns the 1-based position of the panel's current tab, for the
// status display.
func (m *Manager) TabIndex(panel int) int {
	return m.rings[panel].CurrentIndex() + 1
}

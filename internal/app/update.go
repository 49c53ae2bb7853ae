package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/panes/internal/listfmt"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case tickMsg:
		m.ClearToast()
		return m, tickCmd()

	case dirChangedMsg:
		p := m.panes[msg.panel].p
		if err := p.Load(); err != nil {
			m.log.Warn("reload after change failed", "dir", p.Dir, "error", err)
		}
		if w := m.watchers[msg.panel]; w != nil {
			return m, watchCmd(msg.panel, w.Events())
		}
		return m, nil

	case commandMsg:
		return m.runCommand(msg.id)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// wheelStep is how many rows one wheel notch moves the cursor.
const wheelStep = 3

// handleMouse routes wheel and click presses to the pane under the cursor.
// The wheel scrolls without stealing focus; a left click focuses the pane,
// then either activates the clicked strip tab or moves the cursor to the
// clicked row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.prompt != promptNone || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	idx, paneX, paneW := m.paneAt(msg.X)
	p := m.panes[idx].p

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		for range wheelStep {
			p.MoveUp()
		}
	case tea.MouseButtonWheelDown:
		for range wheelStep {
			p.MoveDown()
		}
	case tea.MouseButtonLeft:
		m.tabs.Focused = idx
		if m.showStrip() && msg.Y == 0 {
			if t := m.tabs.TabAt(idx, paneW, paneX); t >= 0 {
				m.tabs.GotoTab(idx, t)
			}
		} else if i := m.listingIndex(idx, paneX, paneW, msg.Y); i >= 0 {
			p.Select(i)
		}
		m.refresh()
	}
	return m, nil
}

// paneAt resolves a window column to the pane drawn there, the column
// relative to that pane, and the pane's width.
func (m Model) paneAt(x int) (idx, paneX, paneW int) {
	if m.fullFrame() {
		return m.tabs.Focused, x, m.width
	}
	lw := m.width / 2
	if x < lw {
		return 0, x, lw
	}
	return 1, x - lw, m.width - lw
}

// listingIndex maps a click inside a pane to the entry index under it, or
// -1 when the click lands on the strip, border, header, or empty space.
func (m Model) listingIndex(idx, paneX, paneW, y int) int {
	p := m.panes[idx].p
	top := 2 // border + header
	if m.showStrip() {
		top++
	}
	row := y - top
	cols := 1
	if p.Format != nil {
		cols = p.Format.ListCols
	}
	perCol := p.ItemsPerPage() / cols
	if perCol < 1 {
		perCol = 1
	}
	if row < 0 || row >= perCol {
		return -1
	}
	col := 0
	if cols > 1 && paneX > 1 {
		col = (paneX - 1) * cols / (paneW - 2)
		if col >= cols {
			col = cols - 1
		}
	}
	i := p.Top + col*perCol + row
	if i >= len(p.Entries) {
		return -1
	}
	return i
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}
	if m.active().Searching {
		return m.handleSearchKey(msg)
	}
	return m, m.keymap.Handle(msg, m.activeContext)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.prompt = promptNone
		return m, nil
	case tea.KeyEnter:
		return m.acceptPrompt()
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// handleSearchKey feeds printable keys into the quick-search buffer.
// Anything the search does not consume stops it and dispatches normally,
// so cursor movement and tab commands work straight out of a search.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.active()

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if !msg.Alt {
			runes := msg.Runes
			if len(runes) == 0 && msg.Type == tea.KeySpace {
				runes = []rune{' '}
			}
			for _, r := range runes {
				p.SearchAdd(r)
			}
			return m, nil
		}
	case tea.KeyBackspace:
		p.SearchBackspace()
		return m, nil
	case tea.KeyEscape:
		p.StopSearch()
		return m, nil
	case tea.KeyCtrlS:
		p.StartSearch()
		return m, nil
	}

	p.StopSearch()
	return m, m.keymap.Handle(msg, m.activeContext)
}

// showStrip reports whether the tab strips are drawn. With the hide-single
// option set they only appear once either pane holds more than one tab.
func (m Model) showStrip() bool {
	if !m.cfg.Tabs.HideSingleStrip {
		return true
	}
	return m.tabs.Ring(0).Len() > 1 || m.tabs.Ring(1).Len() > 1
}

// fullFrame reports whether the focused panel's listing claims the whole
// window. The unfocused pane is hidden while it does.
func (m *Model) fullFrame() bool {
	p := m.active()
	return p.Format != nil && p.Format.Frame == listfmt.FrameFull
}

// layout distributes the window between the two panes. The window loses one
// line to the bottom line and, when shown, one to the tab strips.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	lw := m.width / 2
	rw := m.width - lw
	ph := m.height - 1
	if m.showStrip() {
		ph--
	}
	chrome := 1 // header row inside the border
	if m.cfg.UI.ShowMiniStatus {
		chrome++
	}
	// One column is held back from each pane for its scrollbar.
	if m.fullFrame() {
		m.panes[m.tabs.Focused].p.Resize(m.width-1, ph-chrome)
		m.panes[1-m.tabs.Focused].p.Resize(lw-1, ph-chrome)
		return
	}
	m.panes[0].p.Resize(lw-1, ph-chrome)
	m.panes[1].p.Resize(rw-1, ph-chrome)
}

// refresh re-runs the layout and watcher sync after a command that may
// have changed tab counts or directories.
func (m *Model) refresh() {
	m.layout()
	m.syncWatchers()
}

// syncWatchers re-points each pane's watcher after any operation that may
// have changed its directory.
func (m *Model) syncWatchers() {
	for i, s := range m.panes {
		w := m.watchers[i]
		if w == nil || m.watchDirs[i] == s.p.Dir {
			continue
		}
		if err := w.SetDir(s.p.Dir); err != nil {
			m.log.Warn("watcher re-point failed", "dir", s.p.Dir, "error", err)
			continue
		}
		m.watchDirs[i] = s.p.Dir
	}
}

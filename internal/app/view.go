package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wilbur182/panes/internal/panel"
	"github.com/wilbur182/panes/internal/styles"
	"github.com/wilbur182/panes/internal/ui"
)

// View renders the two panes side by side with the bottom line under them.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.fullFrame() {
		// A full-frame listing takes the whole window; the other pane
		// stays live but hidden until the mode cycles back.
		body := m.renderPane(m.tabs.Focused, m.width)
		return lipgloss.JoinVertical(lipgloss.Left, body, m.renderBottomLine())
	}

	lw := m.width / 2
	rw := m.width - lw
	left := m.renderPane(0, lw)
	right := m.renderPane(1, rw)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderBottomLine())
}

// renderPane draws one pane: tab strip, then the bordered listing with its
// header, rows, scrollbar column, and mini status.
func (m Model) renderPane(idx, width int) string {
	p := m.panes[idx].p
	active := idx == m.tabs.Focused
	inner := width - 2

	var strip string
	if m.showStrip() {
		strip = m.renderStrip(idx, width)
	}

	rows := p.Rows()
	visible := p.ItemsPerPage()
	cols := 1
	if p.Format != nil {
		cols = p.Format.ListCols
	}
	perCol := visible / cols
	if perCol < 1 {
		perCol = 1
	}

	// Entries run down each column before wrapping to the next one. Row
	// text is already solved to the column width, so no per-row clipping.
	blocks := make([]string, 0, cols)
	for c := range cols {
		var col strings.Builder
		for i := range perCol {
			if i > 0 {
				col.WriteString("\n")
			}
			if k := c*perCol + i; k < len(rows) {
				col.WriteString(rowStyle(rows[k]).Render(rows[k].Text))
			}
		}
		blocks = append(blocks, lipgloss.NewStyle().Height(perCol).Render(col.String()))
	}

	bar := ui.RenderScrollbar(ui.ScrollbarParams{
		TotalItems:   len(p.Entries),
		ScrollOffset: p.Top,
		VisibleItems: visible,
		TrackHeight:  perCol,
	})
	listing := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	listing = lipgloss.NewStyle().Width(inner - 1).Render(listing)
	body := lipgloss.JoinHorizontal(lipgloss.Top, listing, bar)

	header := styles.Header().Render(ansi.Truncate(p.HeaderRow(), inner, ""))
	parts := []string{header, body}
	if m.cfg.UI.ShowMiniStatus {
		parts = append(parts, styles.MiniStatus().Render(ansi.Truncate(p.MiniStatus(), inner, "…")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	box := styles.PanelBorder(active).Width(inner).Render(content)

	if strip == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, box)
}

// renderStrip draws one pane's tab strip with markers on any edge the
// window clips. Strip already holds back one cell per edge for them.
func (m Model) renderStrip(idx, width int) string {
	w := m.tabs.Strip(idx, width)
	left, right := " ", " "
	if w.MoreLeft {
		left = styles.StripOverflow().Render("<")
	}
	if w.MoreRight {
		right = styles.StripOverflow().Render(">")
	}
	line := styles.TabTitle(idx == m.tabs.Focused).Render(m.tabs.StripLine(idx, width))
	return left + line + right
}

// rowStyle picks the listing style for one row. Directory and stale-link
// colors only apply while the row is neither selected nor marked, so the
// cursor and mark colors always win.
func rowStyle(r panel.Row) lipgloss.Style {
	s := styles.Row(r.Selected, r.Marked)
	if r.Selected || r.Marked {
		return s
	}
	c := styles.Current()
	if r.Stale {
		return s.Foreground(lipgloss.Color(c.StaleLink))
	}
	if r.IsDir {
		return s.Foreground(lipgloss.Color(c.Directory))
	}
	return s
}

// renderBottomLine draws the prompt when one is open, an unexpired toast
// otherwise, and a summary of the focused pane's state as the fallback.
func (m Model) renderBottomLine() string {
	if m.prompt != promptNone {
		line := styles.Prompt().Render(m.promptLabel) + " " + m.promptInput.View()
		return ansi.Truncate(line, m.width, "…")
	}
	if m.statusMsg != "" {
		st := styles.MiniStatus()
		if m.statusIsError {
			st = styles.ErrorText()
		}
		return st.Render(ansi.Truncate(m.statusMsg, m.width, "…"))
	}

	p := m.active()
	f := m.tabs.Focused
	order := "asc"
	if p.Sort.Reverse {
		order = "desc"
	}
	line := fmt.Sprintf("sort %s %s  tab %d/%d", p.Sort.Field, order,
		m.tabs.TabIndex(f), m.tabs.Ring(f).Len())
	if m.cfg.UI.ShowFreeSpace {
		if free := p.FreeSpaceStatus(); free != "" {
			line += "  " + free
		}
	}
	return styles.MiniStatus().Render(ansi.Truncate(line, m.width, "…"))
}

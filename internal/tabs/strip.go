package tabs

import "strings"

// StripWindow is the solved visible slice of a panel's tab strip.
type StripWindow struct {
	// StartTab and EndTab are ring positions of the first and last visible
	// tabs.
	StartTab int
	EndTab   int
	// StartTrunc is how many leading characters of the first visible
	// wrapped title fall outside the window; 0 means fully visible.
	// EndTrunc is the same for the trailing end of the last visible title.
	StartTrunc int
	EndTrunc   int
	// MoreLeft / MoreRight report tabs (or title remainders) beyond the
	// window edges.
	MoreLeft  bool
	MoreRight bool
}

// wrappedTitles renders every tab title in ring order, each padded with one
// leading and trailing space, the way the strip paints them.
func (m *Manager) wrappedTitles(panel, stripWidth int) []string {
	r := m.rings[panel]
	out := make([]string, r.Len())
	for i := range out {
		out[i] = " " + m.TabTitle(panel, i, stripWidth) + " "
	}
	return out
}

// Strip computes the visible window of the panel's tab strip. The window
// starts exactly over the current tab's title and grows one character at a
// time, left first then alternating, until it fills the strip or covers
// the whole ring. The current tab is therefore always fully visible and
// context is preferred evenly on both sides.
func (m *Manager) Strip(panel, stripWidth int) StripWindow {
	titles := m.wrappedTitles(panel, stripWidth)
	r := m.rings[panel]

	starts := make([]int, len(titles)+1)
	for i, t := range titles {
		starts[i+1] = starts[i] + len([]rune(t))
	}
	total := starts[len(titles)]

	maxLen := stripWidth - 2
	if maxLen < 1 {
		maxLen = 1
	}

	cur := r.CurrentIndex()
	winStart := starts[cur]
	winEnd := starts[cur+1]
	if winEnd-winStart > maxLen {
		winEnd = winStart + maxLen
	}

	left := true
	for winEnd-winStart < maxLen && (winStart > 0 || winEnd < total) {
		switch {
		case left && winStart > 0:
			winStart--
		case winEnd < total:
			winEnd++
		default:
			winStart--
		}
		left = !left
	}

	w := StripWindow{MoreLeft: winStart > 0, MoreRight: winEnd < total}
	for i := 0; i < len(titles); i++ {
		if winStart >= starts[i] && winStart < starts[i+1] {
			w.StartTab = i
			w.StartTrunc = winStart - starts[i]
		}
		if winEnd > starts[i] && winEnd <= starts[i+1] {
			w.EndTab = i
			w.EndTrunc = starts[i+1] - winEnd
		}
	}
	return w
}

// TabAt maps a strip column to the ring position of the tab drawn there.
// Column 0 is the left overflow marker cell; the titles start at 1, the
// way the strip is painted. Returns -1 for columns past the last title.
func (m *Manager) TabAt(panel, stripWidth, x int) int {
	if m.rings[panel].Len() == 0 {
		return -1
	}
	titles := m.wrappedTitles(panel, stripWidth)
	w := m.Strip(panel, stripWidth)

	col := x - 1
	if col < 0 {
		return -1
	}
	for i := w.StartTab; i <= w.EndTab; i++ {
		n := len([]rune(titles[i]))
		if i == w.StartTab {
			n -= w.StartTrunc
		}
		if i == w.EndTab {
			n -= w.EndTrunc
		}
		if col < n {
			return i
		}
		col -= n
	}
	return -1
}

// StripLine renders the visible strip as one line of text, with the edge
// titles truncated per the window.
func (m *Manager) StripLine(panel, stripWidth int) string {
	if m.rings[panel].Len() == 0 {
		return ""
	}
	titles := m.wrappedTitles(panel, stripWidth)
	w := m.Strip(panel, stripWidth)

	var b strings.Builder
	for i := w.StartTab; i <= w.EndTab; i++ {
		rs := []rune(titles[i])
		if i == w.StartTab && w.StartTrunc > 0 {
			rs = rs[w.StartTrunc:]
		}
		if i == w.EndTab && w.EndTrunc > 0 {
			rs = rs[:len(rs)-w.EndTrunc]
		}
		b.WriteString(string(rs))
	}
	return b.String()
}

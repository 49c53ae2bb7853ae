package tabs

import (
	"path/filepath"
)

// markerCurrent flags the current tab of the unfocused panel in the strip.
const markerCurrent = "*"

// cutTitle truncates a title to budget runes, overwriting the last three
// with dots so the cut is visible.
func cutTitle(s string, budget int) string {
	rs := []rune(s)
	if budget <= 0 || len(rs) <= budget {
		return s
	}
	rs = rs[:budget]
	for i := len(rs) - 1; i >= 0 && i >= len(rs)-3; i-- {
		rs[i] = '.'
	}
	return string(rs)
}

// pathTitle derives a display title from a tab path.
func pathTitle(path string) string {
	if path == "" {
		return "Error"
	}
	if base := filepath.Base(path); base != string(filepath.Separator) {
		return base
	}
	return "/"
}

// TabTitle renders one tab's strip title: the explicit name or the last
// path segment, truncated to the strip budget, plus one marker column. The
// current tab reads the live directory; others use their stored path.
func (m *Manager) TabTitle(panel, idx, stripWidth int) string {
	r := m.rings[panel]
	t := r.At(idx)
	if t == nil {
		return ""
	}

	budget := m.opts.MaxTitleLength
	if max := stripWidth - 5; budget <= 0 || max < budget {
		budget = max
	}
	budget-- // marker column

	var title string
	switch {
	case t.Name != "":
		title = cutTitle(t.Name, budget)
	case idx == r.CurrentIndex():
		title = cutTitle(pathTitle(m.hosts[panel].Dir()), budget)
	default:
		title = cutTitle(pathTitle(t.Path), budget)
	}

	marker := " "
	if idx == r.CurrentIndex() && panel != m.Focused && m.opts.HighlightInactive {
		marker = markerCurrent
	}
	return title + marker
}

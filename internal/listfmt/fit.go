package listfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fit truncates and pads text to exactly width terminal cells, honoring the
// column's justification.
func Fit(s string, width int, j Justify) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "")
	}
	pad := width - w
	switch j {
	case JustifyRight:
		return strings.Repeat(" ", pad) + s
	case JustifyCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// ShiftTruncate renders text into a window of width cells starting shift
// runes into the string. It is the name-column primitive behind horizontal
// content scrolling; shift <= 0 behaves like a plain truncate.
func ShiftTruncate(s string, width, shift int) string {
	if shift > 0 {
		rs := []rune(s)
		if shift >= len(rs) {
			s = ""
		} else {
			s = string(rs[shift:])
		}
	}
	return Fit(s, width, JustifyLeft)
}

// Overhang reports how many cells of text do not fit into width, which is
// what horizontal scrolling needs to know per row. Zero means it fits.
func Overhang(s string, width int) int {
	w := runewidth.StringWidth(s)
	if w <= width {
		return 0
	}
	return w - width
}

package panel

import (
	"github.com/wilbur182/panes/internal/match"
	"github.com/wilbur182/panes/internal/vfs"
)

func (p *Panel) resetSummary() {
	p.MarkedCount = 0
	p.MarkedDirs = 0
	p.MarkedTotal = 0
}

// setMark flips one entry's mark and keeps the summary incremental: sizes
// are added on mark and subtracted on unmark, directories only when their
// recursive size has actually been computed. The parent entry never marks.
func (p *Panel) setMark(e *vfs.Entry, mark bool) {
	if e == nil || e.Marked == mark || e.IsDotDot() {
		return
	}
	e.Marked = mark

	delta := int64(0)
	if !e.IsDir() || e.DirSizeComputed {
		delta = e.Size
	}
	if mark {
		p.MarkedCount++
		p.MarkedTotal += delta
		if e.IsDir() {
			p.MarkedDirs++
		}
	} else {
		p.MarkedCount--
		p.MarkedTotal -= delta
		if e.IsDir() {
			p.MarkedDirs--
		}
	}
	p.Dirty = true
}

// ToggleMark flips the mark on the selected entry and, when configured,
// moves the cursor down one row.
func (p *Panel) ToggleMark() {
	e := p.Current()
	if e == nil {
		return
	}
	p.setMark(e, !e.Marked)
	if p.opts.MarkMovesDown {
		p.MoveDown()
	}
}

// RecalculateSummary rebuilds the marking totals by unmarking and remarking
// every flagged entry through the incremental path, so there is only one
// place that computes sizes.
func (p *Panel) RecalculateSummary() {
	marked := make([]*vfs.Entry, 0, p.MarkedCount)
	for _, e := range p.Entries {
		if e.Marked {
			marked = append(marked, e)
		}
	}
	p.resetSummary()
	for _, e := range marked {
		e.Marked = false
		p.setMark(e, true)
	}
}

// MarkForward sweeps one page downward, applying the toggle state of the
// first entry to every entry it passes over.
func (p *Panel) MarkForward() {
	p.markSweep(1)
}

// MarkBackward sweeps one page upward.
func (p *Panel) MarkBackward() {
	p.markSweep(-1)
}

func (p *Panel) markSweep(dir int) {
	e := p.Current()
	if e == nil {
		return
	}
	state := !e.Marked
	if e.IsDotDot() {
		state = true
	}
	for i := 0; i < p.ItemsPerPage(); i++ {
		p.setMark(p.Current(), state)
		if dir > 0 {
			if p.Selected+1 >= len(p.Entries) {
				break
			}
			p.MoveDown()
		} else {
			if p.Selected == 0 {
				break
			}
			p.MoveUp()
		}
	}
	p.Dirty = true
}

// MarkPattern marks (or unmarks) every entry whose name matches the
// pattern. filesOnly skips directories, matching the classic select dialog.
func (p *Panel) MarkPattern(m *match.Matcher, mark, filesOnly bool) int {
	n := 0
	for _, e := range p.Entries {
		if e.IsDotDot() {
			continue
		}
		if filesOnly && e.IsDir() {
			continue
		}
		if !m.Match(e.Name) {
			continue
		}
		if e.Marked != mark {
			p.setMark(e, mark)
			n++
		}
	}
	return n
}

// InvertMarks flips every entry's mark; filesOnly leaves directories alone.
func (p *Panel) InvertMarks(filesOnly bool) {
	for _, e := range p.Entries {
		if e.IsDotDot() {
			continue
		}
		if filesOnly && e.IsDir() {
			continue
		}
		p.setMark(e, !e.Marked)
	}
}

// UnmarkAll clears every mark.
func (p *Panel) UnmarkAll() {
	for _, e := range p.Entries {
		if e.Marked {
			p.setMark(e, false)
		}
	}
}

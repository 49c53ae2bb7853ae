package panel

import (
	"github.com/wilbur182/panes/internal/listfmt"
)

// invalidateShift schedules a max-shift recompute. Called on reload, format
// change, and resize, since all three change how much of a name fits.
func (p *Panel) invalidateShift() {
	p.maxShiftValid = false
}

// maxContentShift is the largest tail overhang among currently visible
// names, computed lazily against the solved name-column width.
func (p *Panel) maxContentShift() int {
	if p.maxShiftValid {
		return p.maxShift
	}
	width := p.nameColumnWidth()
	max := 0
	end := p.Top + p.ItemsPerPage()
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	for i := p.Top; i < end && i >= 0; i++ {
		if over := listfmt.Overhang(p.Entries[i].Name, width); over > max {
			max = over
		}
	}
	p.maxShift = max
	p.maxShiftValid = true
	return max
}

func (p *Panel) nameColumnWidth() int {
	if p.Format == nil {
		return 0
	}
	for _, c := range p.Format.Columns {
		if c.Kind == listfmt.KindName {
			return c.Width
		}
	}
	return 0
}

// ScrollContentLeft shifts the name column back toward the start; -1 means
// the shift is inactive and names render from their first character.
func (p *Panel) ScrollContentLeft() {
	if p.Shift <= -1 {
		return
	}
	if max := p.maxContentShift(); p.Shift > max {
		p.Shift = max
	}
	p.Shift--
	p.Dirty = true
}

// ScrollContentRight shifts the name column further into long names, up to
// the largest visible overhang.
func (p *Panel) ScrollContentRight() {
	if p.Shift < 0 || p.Shift < p.maxContentShift() {
		p.Shift++
		p.Dirty = true
	}
}

package panel

// adjustTop clamps the selection into the list and the viewport onto the
// selection. Every mutating operation ends with this pass, which is what
// keeps the invariants (selection visible, no blank page past the end).
func (p *Panel) adjustTop() {
	n := len(p.Entries)
	if n == 0 {
		p.Selected = 0
		p.Top = 0
		return
	}
	if p.Selected >= n {
		p.Selected = n - 1
	}
	if p.Selected < 0 {
		p.Selected = 0
	}

	items := p.ItemsPerPage()
	if n <= items {
		p.Top = 0
		return
	}
	if p.Top < 0 {
		p.Top = 0
	}
	if p.Top < p.Selected-items+1 {
		p.Top = p.Selected - items + 1
	}
	if p.Top > n-items {
		p.Top = n - items
	}
	if p.Top > p.Selected {
		p.Top = p.Selected
	}
}

// MoveDown steps the cursor one row down; at the bottom it is a no-op.
func (p *Panel) MoveDown() {
	if p.Selected+1 >= len(p.Entries) {
		return
	}
	p.Selected++
	items := p.ItemsPerPage()
	switch {
	case p.opts.ScrollPolicy == ScrollPages && p.Selected-p.Top == items:
		p.Top += items / 2
	case p.opts.ScrollPolicy == ScrollCenter && p.Selected-p.Top > items/2:
		p.Top++
	}
	p.adjustTop()
	p.Dirty = true
}

// MoveUp steps the cursor one row up; at the top it is a no-op.
func (p *Panel) MoveUp() {
	if p.Selected == 0 {
		return
	}
	p.Selected--
	items := p.ItemsPerPage()
	switch {
	case p.opts.ScrollPolicy == ScrollPages && p.Selected < p.Top:
		p.Top -= items / 2
	case p.opts.ScrollPolicy == ScrollCenter && p.Selected-p.Top < items/2 && p.Top > 0:
		p.Top--
	}
	p.adjustTop()
	p.Dirty = true
}

// NextPage moves selection and viewport down by one page, or by the
// remaining distance when less than a page is left.
func (p *Panel) NextPage() {
	n := len(p.Entries)
	if n == 0 || p.Selected == n-1 {
		return
	}
	items := p.ItemsPerPage()
	if p.Selected+items > n-1 {
		items = n - 1 - p.Selected
	}
	p.Selected += items
	p.Top += items
	p.adjustTop()
	p.Dirty = true
}

// PrevPage moves selection and viewport up by one page.
func (p *Panel) PrevPage() {
	if p.Selected == 0 {
		return
	}
	items := p.ItemsPerPage()
	if items > p.Selected {
		items = p.Selected
	}
	p.Selected -= items
	p.Top -= items
	p.adjustTop()
	p.Dirty = true
}

// MoveHome jumps toward the first entry. In smart mode the jump is staged:
// from below the viewport midpoint it stops at the midpoint, from there at
// the viewport top, and only then at the true first entry.
func (p *Panel) MoveHome() {
	if p.Selected == 0 {
		return
	}
	if p.opts.SmartHomeEnd {
		middle := p.Top + p.ItemsPerPage()/2
		if middle > len(p.Entries)-1 {
			middle = len(p.Entries) - 1
		}
		if p.Selected > middle {
			p.setSelected(middle)
			return
		}
		if p.Selected != p.Top {
			p.setSelected(p.Top)
			return
		}
	}
	p.setSelected(0)
}

// MoveEnd jumps toward the last entry, staged symmetrically to MoveHome.
func (p *Panel) MoveEnd() {
	n := len(p.Entries)
	if n == 0 || p.Selected == n-1 {
		return
	}
	if p.opts.SmartHomeEnd {
		items := p.ItemsPerPage()
		middle := p.Top + items/2
		bottom := p.Top + items - 1
		if bottom > n-1 {
			bottom = n - 1
		}
		if middle > n-1 {
			middle = n - 1
		}
		if p.Selected < middle {
			p.setSelected(middle)
			return
		}
		if p.Selected != bottom {
			p.setSelected(bottom)
			return
		}
	}
	p.setSelected(n - 1)
}

// MoveViewTop puts the cursor on the first visible row.
func (p *Panel) MoveViewTop() {
	p.setSelected(p.Top)
}

// MoveViewMiddle puts the cursor on the middle visible row.
func (p *Panel) MoveViewMiddle() {
	i := p.Top + p.ItemsPerPage()/2
	if i > len(p.Entries)-1 {
		i = len(p.Entries) - 1
	}
	p.setSelected(i)
}

// MoveViewBottom puts the cursor on the last visible row.
func (p *Panel) MoveViewBottom() {
	i := p.Top + p.ItemsPerPage() - 1
	if i > len(p.Entries)-1 {
		i = len(p.Entries) - 1
	}
	p.setSelected(i)
}

// Select moves the cursor to an absolute index, clamped.
func (p *Panel) Select(i int) {
	p.setSelected(i)
}

func (p *Panel) setSelected(i int) {
	p.Selected = i
	p.adjustTop()
	p.Dirty = true
}

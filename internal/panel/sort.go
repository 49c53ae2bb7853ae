package panel

import (
	"github.com/wilbur182/panes/internal/listfmt"
)

// ReSort reorders the listing under the current sort state, keeps the
// cursor on the same file, and centers the viewport on it.
func (p *Panel) ReSort() {
	name := ""
	if e := p.Current(); e != nil {
		name = e.Name
	}
	p.sortInPlace()
	if name != "" {
		if i := p.Entries.IndexOf(name); i >= 0 {
			p.Selected = i
		}
	}
	p.Top = p.Selected - p.ItemsPerPage()/2
	p.adjustTop()
	p.Dirty = true
}

// SetSortField switches the sort key. Selecting the already-active field
// reverses the direction instead. "unsorted" forces a reload because load
// order cannot be recovered from a sorted array.
func (p *Panel) SetSortField(field string) error {
	if field == p.Sort.Field {
		p.Sort.Reverse = !p.Sort.Reverse
	} else {
		p.Sort.Field = field
		p.Sort.Reverse = false
	}
	if field == "unsorted" {
		name := ""
		if e := p.Current(); e != nil {
			name = e.Name
		}
		if err := p.reload(); err != nil {
			return err
		}
		p.trySelect(name)
		return nil
	}
	p.ReSort()
	return nil
}

// NextSortField cycles to the next sortable field, wrapping around.
func (p *Panel) NextSortField() {
	p.cycleSortField(1)
}

// PrevSortField cycles to the previous sortable field.
func (p *Panel) PrevSortField() {
	p.cycleSortField(-1)
}

// sortableInFormat returns the sort keys whose columns appear in the
// compiled format, in declaration order. A format without any sortable
// column falls back to the full list so cycling never dead-ends.
func (p *Panel) sortableInFormat() []string {
	all := listfmt.SortableFields()
	if p.Format == nil {
		return all
	}
	out := make([]string, 0, len(all))
	for _, id := range all {
		for _, c := range p.Format.Columns {
			if c.ID == id {
				out = append(out, id)
				break
			}
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func (p *Panel) cycleSortField(dir int) {
	ids := p.sortableInFormat()
	cur := 0
	for i, id := range ids {
		if id == p.Sort.Field {
			cur = i
			break
		}
	}
	next := (cur + dir + len(ids)) % len(ids)
	p.Sort.Field = ids[next]
	p.Sort.Reverse = false
	if p.Sort.Field == "unsorted" {
		name := ""
		if e := p.Current(); e != nil {
			name = e.Name
		}
		if err := p.reload(); err == nil {
			p.trySelect(name)
		}
		return
	}
	p.ReSort()
}

// ToggleReverse flips the sort direction in place.
func (p *Panel) ToggleReverse() {
	p.Sort.Reverse = !p.Sort.Reverse
	p.ReSort()
}

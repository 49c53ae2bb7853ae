package listfmt

// maxExpand caps how many columns share expansion surplus. Only the first
// four expandable columns participate.
const maxExpand = 4

// UsableWidth derives the width the solver may distribute from the widget's
// total width: two frame cells, then an even split across list columns with
// one separator cell per extra column.
func UsableWidth(total, listCols int) int {
	usable := total - 2
	if listCols < 1 {
		listCols = 1
	}
	usable /= listCols
	if listCols > 1 {
		usable--
	}
	return usable
}

// Solve assigns final widths to every column. The sum of final widths never
// exceeds usable unless every column is already at the floor of 1 cell; no
// column ever reaches 0.
func (f *Format) Solve(usable int) {
	total := 0
	expandable := 0
	for _, c := range f.Columns {
		c.Width = c.RequestedWidth
		total += c.Width
		if c.Expands && expandable < maxExpand {
			expandable++
		}
	}

	for total > usable {
		shrunk := false
		for _, c := range f.Columns {
			if total <= usable {
				break
			}
			if c.Width > 1 {
				c.Width--
				total--
				shrunk = true
			}
		}
		if !shrunk {
			break
		}
	}

	if total < usable && expandable > 0 {
		surplus := usable - total
		share := surplus / expandable
		rem := surplus % expandable
		seen := 0
		for _, c := range f.Columns {
			if !c.Expands || seen >= maxExpand {
				continue
			}
			c.Width += share
			if seen == 0 {
				c.Width += rem
			}
			seen++
		}
	}
}

// TotalWidth sums the solved widths.
func (f *Format) TotalWidth() int {
	total := 0
	for _, c := range f.Columns {
		total += c.Width
	}
	return total
}

// ItemsPerPage converts the widget height into visible rows per column page.
// Two frame rows are reserved; multi-column listings multiply the rest.
func ItemsPerPage(height, listCols int) int {
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	if listCols < 1 {
		listCols = 1
	}
	return rows * listCols
}

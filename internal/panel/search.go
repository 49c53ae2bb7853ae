package panel

import (
	"github.com/wilbur182/panes/internal/match"
)

// StartSearch enters quick-search mode. Invoked while already searching it
// advances past the current match (wrapping from the last entry) and, with
// an empty buffer, recalls the previous session's pattern.
func (p *Panel) StartSearch() {
	if p.Searching {
		if p.Selected+1 == len(p.Entries) {
			p.setSelected(0)
		} else {
			p.MoveDown()
		}
		if p.SearchBuffer == "" {
			p.SearchBuffer = p.prevSearch
		}
		p.searchAgain()
		return
	}
	p.Searching = true
	p.SearchBuffer = ""
	p.Dirty = true
}

// SearchAdd appends one character to the search buffer. If the grown
// pattern no longer matches anything, the character is rolled back and the
// selection stays on the prior match.
func (p *Panel) SearchAdd(r rune) {
	if !p.Searching {
		return
	}
	p.SearchBuffer += string(r)
	if !p.searchAgain() {
		rs := []rune(p.SearchBuffer)
		p.SearchBuffer = string(rs[:len(rs)-1])
	}
	p.Dirty = true
}

// SearchBackspace removes the last character and re-searches. Unlike a
// failed add, a failing shorter pattern keeps the buffer as-is.
func (p *Panel) SearchBackspace() {
	if !p.Searching || p.SearchBuffer == "" {
		return
	}
	rs := []rune(p.SearchBuffer)
	p.SearchBuffer = string(rs[:len(rs)-1])
	p.searchAgain()
	p.Dirty = true
}

// StopSearch leaves quick-search mode, remembering the buffer for recall.
func (p *Panel) StopSearch() {
	if !p.Searching {
		return
	}
	if p.SearchBuffer != "" {
		p.prevSearch = p.SearchBuffer
	}
	p.Searching = false
	p.SearchBuffer = ""
	p.Dirty = true
}

func (p *Panel) stopSearchSilent() {
	if !p.Searching {
		return
	}
	if p.SearchBuffer != "" {
		p.prevSearch = p.SearchBuffer
	}
	p.Searching = false
	p.SearchBuffer = ""
}

// searchAgain matches buffer+"*" against entry names starting at the
// current selection, wrapping once. A hit moves the selection and reports
// true.
func (p *Panel) searchAgain() bool {
	if len(p.Entries) == 0 {
		return false
	}
	m, err := match.Compile(p.SearchBuffer+"*", match.Options{
		Kind:          match.Glob,
		WholeLine:     true,
		CaseSensitive: p.searchCaseSensitive(),
	})
	if err != nil {
		return false
	}
	n := len(p.Entries)
	for off := 0; off < n; off++ {
		i := (p.Selected + off) % n
		if m.Match(p.Entries[i].Name) {
			p.setSelected(i)
			return true
		}
	}
	return false
}

func (p *Panel) searchCaseSensitive() bool {
	switch p.opts.SearchCase {
	case SearchCaseSensitive:
		return true
	case SearchCaseInsensitive:
		return false
	default:
		return p.opts.CaseSensitive
	}
}

// Package tabs implements per-panel tab rings, the tab-strip layout, and
// tab session persistence.
package tabs

import "errors"

// ErrLastTab is returned when an operation would leave a panel without any
// tab.
var ErrLastTab = errors.New("cannot close the last tab")

// ErrCorruptSession is returned when a session file fails structural
// validation.
var ErrCorruptSession = errors.New("corrupt tab session")

// Direction positions a new or target tab relative to the current one.
type Direction int

const (
	Next Direction = iota
	Prev
	First
	Last
)

// Tab is one saved place: an optional user-given name and the directory the
// tab was last showing. An empty path means the tab was never visited.
type Tab struct {
	Name string
	Path string
}

// Ring is a circular tab list backed by a slice. Index 0 is the ring head;
// slice order is ring order starting at the head.
type Ring struct {
	tabs    []*Tab
	current int
}

// NewRing returns an empty ring.
func NewRing() *Ring {
	return &Ring{}
}

// Len returns the number of tabs.
func (r *Ring) Len() int { return len(r.tabs) }

// Current returns the current tab, or nil for an empty ring.
func (r *Ring) Current() *Tab {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[r.current]
}

// CurrentIndex returns the current tab's ring position.
func (r *Ring) CurrentIndex() int { return r.current }

// At returns the tab at a ring position, or nil when out of range.
func (r *Ring) At(i int) *Tab {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	return r.tabs[i]
}

// Tabs returns the tabs in ring order from the head.
func (r *Ring) Tabs() []*Tab {
	out := make([]*Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Insert places a tab adjacent to the current one without changing which
// tab is current. Inserting into an empty ring makes the tab both head and
// current.
func (r *Ring) Insert(t *Tab, dir Direction) {
	if len(r.tabs) == 0 {
		r.tabs = []*Tab{t}
		r.current = 0
		return
	}
	var at int
	switch dir {
	case Prev:
		at = r.current
	case First:
		at = 0
	case Last:
		at = len(r.tabs)
	default:
		at = r.current + 1
	}
	r.tabs = append(r.tabs, nil)
	copy(r.tabs[at+1:], r.tabs[at:])
	r.tabs[at] = t
	if at <= r.current {
		r.current++
	}
}

// Advance moves the current pointer per direction, wrapping circularly, and
// returns the new current tab.
func (r *Ring) Advance(dir Direction) *Tab {
	n := len(r.tabs)
	if n == 0 {
		return nil
	}
	switch dir {
	case Prev:
		r.current = (r.current - 1 + n) % n
	case First:
		r.current = 0
	case Last:
		r.current = n - 1
	default:
		r.current = (r.current + 1) % n
	}
	return r.tabs[r.current]
}

// SetCurrent moves the current pointer to an absolute ring position.
func (r *Ring) SetCurrent(i int) *Tab {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	r.current = i
	return r.tabs[i]
}

// Remove unlinks the tab at position i. The current pointer follows its
// tab; removing the current tab leaves current on the tab that took its
// slot (wrapping back from the end). Removing the head makes the next tab
// the head, which is what the slice shift does on its own.
func (r *Ring) Remove(i int) *Tab {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	t := r.tabs[i]
	r.tabs = append(r.tabs[:i], r.tabs[i+1:]...)
	if r.current > i || r.current >= len(r.tabs) {
		r.current--
	}
	if r.current < 0 {
		r.current = 0
	}
	return t
}

// IndexOf returns the ring position of a tab, or -1.
func (r *Ring) IndexOf(t *Tab) int {
	for i, x := range r.tabs {
		if x == t {
			return i
		}
	}
	return -1
}

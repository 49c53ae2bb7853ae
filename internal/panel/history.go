package panel

// History is the panel's visited-directory list, newest last, without
// consecutive duplicates.
type History struct {
	dirs []string
	max  int
}

// NewHistory returns an empty history bounded to a sane depth.
func NewHistory() *History {
	return &History{max: 64}
}

// Push records a visited directory.
func (h *History) Push(dir string) {
	if dir == "" {
		return
	}
	if n := len(h.dirs); n > 0 && h.dirs[n-1] == dir {
		return
	}
	h.dirs = append(h.dirs, dir)
	if len(h.dirs) > h.max {
		h.dirs = h.dirs[len(h.dirs)-h.max:]
	}
}

// Pop removes and returns the most recent directory, or "" when empty.
func (h *History) Pop() string {
	n := len(h.dirs)
	if n == 0 {
		return ""
	}
	dir := h.dirs[n-1]
	h.dirs = h.dirs[:n-1]
	return dir
}

// All returns the history oldest first.
func (h *History) All() []string {
	out := make([]string, len(h.dirs))
	copy(out, h.dirs)
	return out
}

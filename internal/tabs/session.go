package tabs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	headerCurrent = "[Current Panel]"
	headerOther   = "[Other Panel]"
	nullName      = "(null)"
)

// Save writes both panels' tab rings. The focused panel is written as the
// current-panel section; each current tab's path is snapshotted from the
// live directory first.
func (m *Manager) Save(w io.Writer) error {
	m.snapshot(0)
	m.snapshot(1)

	bw := bufio.NewWriter(w)
	writePanel := func(header string, panel int) {
		r := m.rings[panel]
		fmt.Fprintln(bw, header)
		fmt.Fprintln(bw, panel)
		fmt.Fprintln(bw, r.CurrentIndex())
		for _, t := range r.Tabs() {
			name := t.Name
			if name == "" {
				name = nullName
			}
			fmt.Fprintln(bw, name)
			fmt.Fprintln(bw, t.Path)
		}
		fmt.Fprintln(bw)
	}
	writePanel(headerCurrent, m.Focused)
	writePanel(headerOther, m.other(m.Focused))
	return bw.Flush()
}

// sessionSection is one parsed and validated panel section, not yet
// applied.
type sessionSection struct {
	panel   int
	current int
	tabs    []*Tab
	skip    bool
}

// Restore reads a session and applies each panel section independently: a
// ring is only replaced after its whole section validates, so a corrupt
// current-panel section still lets the other panel restore, and vice
// versa. The input is split on the header lines up front, which keeps a
// structurally broken section from swallowing the other section's lines.
func (m *Manager) Restore(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	sections := splitSections(lines)

	var errs []error
	apply := func(header string) {
		body, found := sections[header]
		sec, err := parseSection(body, found, header)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if sec.skip {
			return
		}
		r := m.rings[sec.panel]
		r.tabs = sec.tabs
		r.current = sec.current
		if header == headerCurrent {
			m.Focused = sec.panel
		}
		m.activate(sec.panel)
	}
	apply(headerCurrent)
	apply(headerOther)
	return errors.Join(errs...)
}

// splitSections groups the body lines under each header line. Lines before
// the first header are dropped.
func splitSections(lines []string) map[string][]string {
	out := make(map[string][]string)
	current := ""
	for _, line := range lines {
		if line == headerCurrent || line == headerOther {
			current = line
			if _, ok := out[current]; !ok {
				out[current] = []string{}
			}
			continue
		}
		if current != "" {
			out[current] = append(out[current], line)
		}
	}
	return out
}

func parseSection(lines []string, found bool, header string) (*sessionSection, error) {
	if !found {
		return nil, fmt.Errorf("%w: missing %s header", ErrCorruptSession, header)
	}
	i := 0
	next := func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	}

	line, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing panel index", ErrCorruptSession, header)
	}
	panel, err := strconv.Atoi(line)
	if err != nil || panel < 0 || panel > 1 {
		return nil, fmt.Errorf("%w: %s: bad panel index %q", ErrCorruptSession, header, line)
	}
	line, ok = next()
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing tab index", ErrCorruptSession, header)
	}
	current, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: bad tab index %q", ErrCorruptSession, header, line)
	}

	sec := &sessionSection{panel: panel, current: current}
	if current == -1 {
		// The panel was not a listing view when saved; leave the live
		// ring alone.
		sec.skip = true
	}

	for {
		name, ok := next()
		if !ok || name == "" {
			break
		}
		path, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: %s: tab %q has no path", ErrCorruptSession, header, name)
		}
		if name == nullName {
			name = ""
		}
		sec.tabs = append(sec.tabs, &Tab{Name: name, Path: path})
	}
	if sec.skip {
		return sec, nil
	}
	if len(sec.tabs) == 0 {
		return nil, fmt.Errorf("%w: %s: no tabs", ErrCorruptSession, header)
	}
	if current < 0 || current >= len(sec.tabs) {
		return nil, fmt.Errorf("%w: %s: tab index %d out of range", ErrCorruptSession, header, current)
	}
	return sec, nil
}

// SessionPath maps a session name to its file in the sessions directory.
func SessionPath(dir, name string) string {
	return filepath.Join(dir, name+".tabs")
}

// SaveFile writes the session to the sessions directory, creating it if
// needed.
func (m *Manager) SaveFile(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}
	path := SessionPath(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("write session %s: %w", name, err)
	}
	return f.Close()
}

// RestoreFile loads a named session.
func (m *Manager) RestoreFile(dir, name string) error {
	f, err := os.Open(SessionPath(dir, name))
	if err != nil {
		return fmt.Errorf("open session %s: %w", name, err)
	}
	defer f.Close()
	return m.Restore(f)
}

// ListSessions returns the saved session names in the sessions directory.
func ListSessions(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}
	var out []string
	for _, de := range des {
		if name, ok := strings.CutSuffix(de.Name(), ".tabs"); ok && !de.IsDir() {
			out = append(out, name)
		}
	}
	return out, nil
}

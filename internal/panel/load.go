package panel

import (
	"path/filepath"

	"github.com/wilbur182/panes/internal/vfs"
)

// Load reads the panel's directory from the provider and re-sorts. The
// previously selected name is reselected when it survives the reload;
// otherwise the selection clamps in place.
func (p *Panel) Load() error {
	prev := ""
	if e := p.Current(); e != nil {
		prev = e.Name
	}
	if err := p.reload(); err != nil {
		return err
	}
	p.trySelect(prev)
	return nil
}

// ChangeDir moves the panel to dir. Entering the parent directory reselects
// the directory we came from, the way every orthodox file manager does.
func (p *Panel) ChangeDir(dir string) error {
	dir = filepath.Clean(dir)
	if dir == p.Dir {
		return p.Load()
	}

	fromChild := ""
	if filepath.Dir(p.Dir) == dir {
		fromChild = filepath.Base(p.Dir)
	}

	old := p.Dir
	p.Dir = dir
	if err := p.reload(); err != nil {
		p.Dir = old
		return err
	}

	p.history.Push(old)
	p.Selected = 0
	p.Top = 0
	if fromChild != "" {
		p.trySelect(fromChild)
	}
	p.stopSearchSilent()
	return nil
}

// EnterSelected descends into the selected directory (or ascends for the
// parent entry). Non-directories are left to the caller.
func (p *Panel) EnterSelected() (bool, error) {
	e := p.Current()
	if e == nil || !e.IsDir() {
		return false, nil
	}
	if e.IsDotDot() {
		return true, p.ChangeDir(filepath.Dir(p.Dir))
	}
	return true, p.ChangeDir(filepath.Join(p.Dir, e.Name))
}

func (p *Panel) reload() error {
	list, err := p.provider.ReadDir(p.Dir, p.opts.ShowHidden)
	if err != nil {
		p.log.Warn("directory read failed", "dir", p.Dir, "error", err)
		return err
	}
	p.Entries = list
	p.resetSummary()
	p.sortInPlace()
	p.invalidateShift()
	p.Shift = -1
	p.free.Invalidate()
	p.Dirty = true
	return nil
}

// trySelect moves the selection to name when present, centering the
// viewport on it, and leaves a clamped selection otherwise.
func (p *Panel) trySelect(name string) {
	if name != "" {
		if i := p.Entries.IndexOf(name); i >= 0 {
			p.Selected = i
			p.Top = p.Selected - p.ItemsPerPage()/2
		}
	}
	p.adjustTop()
	p.Dirty = true
}

func (p *Panel) sortInPlace() {
	cmp, ok := vfs.ComparatorFor(p.Sort.Field)
	if !ok {
		cmp, _ = vfs.ComparatorFor("name")
	}
	p.Entries.Sort(cmp, vfs.SortOptions{
		CaseSensitive: p.opts.CaseSensitive,
		DirsFirst:     p.opts.DirsFirst,
		Reverse:       p.Sort.Reverse,
	})
}

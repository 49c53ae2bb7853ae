package vfs

import (
	"path/filepath"
	"sort"
	"strings"
)

// SortOptions mirror the panel's sort settings.
type SortOptions struct {
	CaseSensitive bool
	DirsFirst     bool
	Reverse       bool
}

// Comparator is a total order over two entries. A nil comparator means
// "unsorted": keep the order of the last directory read.
type Comparator func(a, b *Entry, opt SortOptions) int

// ComparatorFor returns the comparator registered for a sortable field id.
// The "unsorted" field returns (nil, true): load order is not recoverable
// by re-sorting, the caller must reload instead.
func ComparatorFor(field string) (Comparator, bool) {
	switch field {
	case "unsorted":
		return nil, true
	case "name":
		return CompareName, true
	case "version":
		return CompareVersion, true
	case "extension":
		return CompareExtension, true
	case "size", "bsize":
		return CompareSize, true
	case "mtime":
		return CompareMTime, true
	case "atime":
		return CompareATime, true
	case "ctime":
		return CompareCTime, true
	case "inode":
		return CompareInode, true
	default:
		return nil, false
	}
}

// Sort orders the list with the given comparator. The dotdot entry stays
// first regardless of order; Reverse flips everything else.
func (l List) Sort(cmp Comparator, opt SortOptions) {
	if cmp == nil {
		return
	}
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i], l[j]
		if a.IsDotDot() || b.IsDotDot() {
			return a.IsDotDot() && !b.IsDotDot()
		}
		r := cmp(a, b, opt)
		if opt.Reverse {
			r = -r
		}
		return r < 0
	})
}

func classOf(e *Entry, opt SortOptions) int {
	if opt.DirsFirst && e.IsDir() {
		return 0
	}
	return 1
}

func compareNames(a, b string, caseSensitive bool) int {
	if caseSensitive {
		return strings.Compare(a, b)
	}
	if r := strings.Compare(strings.ToLower(a), strings.ToLower(b)); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// CompareName orders by file name with the configured collation.
func CompareName(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareVersion orders by name, comparing embedded digit runs numerically
// so "file2" sorts before "file10".
func CompareVersion(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	if r := versionCompare(a.Name, b.Name); r != 0 {
		return r
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

func versionCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if r := strings.Compare(na, nb); r != 0 {
				return r
			}
			continue
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
		i++
		j++
	}
	return (len(a) - i) - (len(b) - j)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// CompareExtension orders by extension, then by name.
func CompareExtension(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	ea := strings.TrimPrefix(filepath.Ext(a.Name), ".")
	eb := strings.TrimPrefix(filepath.Ext(b.Name), ".")
	if r := compareNames(ea, eb, opt.CaseSensitive); r != 0 {
		return r
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareSize orders by size, ties broken by name.
func CompareSize(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	switch {
	case a.Size < b.Size:
		return -1
	case a.Size > b.Size:
		return 1
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareMTime orders by modification time, ties broken by name.
func CompareMTime(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	switch {
	case a.MTime.Before(b.MTime):
		return -1
	case a.MTime.After(b.MTime):
		return 1
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareATime orders by access time, ties broken by name.
func CompareATime(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	switch {
	case a.ATime.Before(b.ATime):
		return -1
	case a.ATime.After(b.ATime):
		return 1
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareCTime orders by change time, ties broken by name.
func CompareCTime(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	switch {
	case a.CTime.Before(b.CTime):
		return -1
	case a.CTime.After(b.CTime):
		return 1
	}
	return compareNames(a.Name, b.Name, opt.CaseSensitive)
}

// CompareInode orders by inode number.
func CompareInode(a, b *Entry, opt SortOptions) int {
	if c := classOf(a, opt) - classOf(b, opt); c != 0 {
		return c
	}
	switch {
	case a.Inode < b.Inode:
		return -1
	case a.Inode > b.Inode:
		return 1
	}
	return 0
}

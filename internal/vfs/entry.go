package vfs

import (
	"io/fs"
	"time"
)

// DotDot is the synthetic parent-directory entry name.
const DotDot = ".."

// Entry is one directory entry with cached stat data. The panel core only
// flips the Marked flag; everything else is read-only after ReadDir.
type Entry struct {
	Name string

	Mode   fs.FileMode
	Size   int64
	Blocks int64
	MTime  time.Time
	ATime  time.Time
	CTime  time.Time

	UID   uint32
	GID   uint32
	Owner string
	Group string
	Nlink uint64
	Inode uint64
	Dev   uint64

	// LinkTarget is set for symlinks; StaleLink means the target is gone.
	LinkTarget string
	StaleLink  bool

	Marked bool

	// DirSizeComputed is true when Size holds a recursively computed
	// directory size rather than the raw stat size.
	DirSizeComputed bool
}

// IsDir reports whether the entry is a directory, following symlinks that
// point at directories the way the listing treats them.
func (e *Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// IsDotDot reports whether this is the synthetic ".." entry.
func (e *Entry) IsDotDot() bool {
	return e.Name == DotDot
}

// IsLink reports whether the entry is a symbolic link.
func (e *Entry) IsLink() bool {
	return e.Mode&fs.ModeSymlink != 0
}

// IsExecutable reports whether any execute bit is set on a regular file.
func (e *Entry) IsExecutable() bool {
	return e.Mode.IsRegular() && e.Mode.Perm()&0o111 != 0
}

// List is the ordered, mutable entry array a panel operates on.
type List []*Entry

// Len returns the number of entries.
func (l List) Len() int { return len(l) }

// IndexOf returns the position of the entry with the given name, or -1.
func (l List) IndexOf(name string) int {
	for i, e := range l {
		if e.Name == name {
			return i
		}
	}
	return -1
}

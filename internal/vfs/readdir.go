package vfs

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Provider supplies directory listings. The local filesystem implementation
// is the default; tests substitute their own.
type Provider interface {
	ReadDir(path string, showHidden bool) (List, error)
}

// Local reads directories from the host filesystem.
type Local struct{}

// ReadDir lists path, prepending the synthetic ".." entry unless path is the
// filesystem root. Entries that fail lstat are skipped; a failure to open the
// directory itself is returned wrapped.
func (Local) ReadDir(path string, showHidden bool) (List, error) {
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}

	list := make(List, 0, len(des)+1)
	if parent := filepath.Dir(path); parent != path {
		if e, err := statEntry(path, DotDot); err == nil {
			list = append(list, e)
		} else {
			list = append(list, &Entry{Name: DotDot, Mode: os.ModeDir})
		}
	}

	for _, de := range des {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		e, err := statEntry(path, name)
		if err != nil {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

func statEntry(dir, name string) (*Entry, error) {
	full := filepath.Join(dir, name)
	fi, err := os.Lstat(full)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Name:  name,
		Mode:  fi.Mode(),
		Size:  fi.Size(),
		MTime: fi.ModTime(),
	}

	applySys(e, fi)

	if e.IsLink() {
		if target, err := os.Readlink(full); err == nil {
			e.LinkTarget = target
		}
		if tfi, err := os.Stat(full); err != nil {
			e.StaleLink = true
		} else if tfi.IsDir() {
			// Links to directories navigate like directories.
			e.Mode |= os.ModeDir
		}
	}
	return e, nil
}

var (
	ownerMu    sync.Mutex
	ownerCache = map[uint32]string{}
	groupCache = map[uint32]string{}
)

func lookupOwner(uid uint32) string {
	ownerMu.Lock()
	defer ownerMu.Unlock()
	if name, ok := ownerCache[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	ownerCache[uid] = name
	return name
}

func lookupGroup(gid uint32) string {
	ownerMu.Lock()
	defer ownerMu.Unlock()
	if name, ok := groupCache[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	groupCache[gid] = name
	return name
}

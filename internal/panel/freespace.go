package panel

import (
	"time"

	"github.com/wilbur182/panes/internal/vfs"
)

// freeSpaceTTL bounds how stale the mini-status free-space figure may get.
const freeSpaceTTL = 10 * time.Second

// FreeSpaceCache memoizes statfs results per directory so every repaint
// does not hit the filesystem.
type FreeSpaceCache struct {
	dir     string
	free    uint64
	total   uint64
	ok      bool
	fetched time.Time

	statfs func(string) (uint64, uint64, error)
	now    func() time.Time
}

// NewFreeSpaceCache returns a cache backed by the real statfs call.
func NewFreeSpaceCache() *FreeSpaceCache {
	return &FreeSpaceCache{statfs: vfs.FreeSpace, now: time.Now}
}

// Get returns the free/total bytes for dir, refreshing when the directory
// changed or the entry expired.
func (c *FreeSpaceCache) Get(dir string) (free, total uint64, ok bool) {
	if c.dir == dir && c.now().Sub(c.fetched) < freeSpaceTTL {
		return c.free, c.total, c.ok
	}
	c.dir = dir
	c.fetched = c.now()
	f, t, err := c.statfs(dir)
	c.free, c.total, c.ok = f, t, err == nil
	return c.free, c.total, c.ok
}

// Invalidate drops the cached entry; the next Get refetches.
func (c *FreeSpaceCache) Invalidate() {
	c.dir = ""
}

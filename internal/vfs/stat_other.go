//go:build !linux

package vfs

import "os"

func applySys(e *Entry, fi os.FileInfo) {
	// Extended stat fields (owner, inode, link count) are only populated on
	// platforms with a known Stat_t layout.
}

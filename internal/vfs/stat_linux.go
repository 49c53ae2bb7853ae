//go:build linux

package vfs

import (
	"os"
	"syscall"
	"time"
)

func applySys(e *Entry, fi os.FileInfo) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	e.UID = st.Uid
	e.GID = st.Gid
	e.Nlink = uint64(st.Nlink)
	e.Inode = st.Ino
	e.Dev = uint64(st.Dev)
	e.Blocks = st.Blocks
	e.ATime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	e.CTime = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	e.Owner = lookupOwner(st.Uid)
	e.Group = lookupGroup(st.Gid)
}

//go:build !unix

package vfs

import "errors"

// FreeSpace is unsupported on this platform.
func FreeSpace(path string) (free, total uint64, err error) {
	return 0, 0, errors.New("free space: unsupported platform")
}

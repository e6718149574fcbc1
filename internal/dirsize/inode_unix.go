//go:build unix

package dirsize

import (
	"io/fs"
	"syscall"
)

// identify returns the device and inode of info, if the platform exposes them.
func identify(info fs.FileInfo) (fileID, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileID{}, false
	}

	//nolint:unconvert,gosec // Field widths differ between platforms
	return fileID{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true
}

//go:build linux || freebsd || darwin
// +build linux freebsd darwin

package stat

import (
	"fmt"
	"os"
	"syscall"
)

func stat(file *os.File) (Key, error) {
	fi, err := file.Stat()
	if err != nil {
		return Key{}, err
	}
	sys, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return Key{}, fmt.Errorf("samefile: unexpected FileInfo.Sys() type. name %s, type %T", file.Name(), fi.Sys())
	}
	if sys == nil {
		return Key{}, fmt.Errorf("samefile: FileInfo.Sys() returns nil. name %s", file.Name())
	}
	return Key{Dev: uint64(sys.Dev), Ino: uint64(sys.Ino)}, nil
}

// Key is an os specific file identity.
// Two Keys are equal iff, at the moment each was captured, both files
// had the same inode on the same device.
type Key struct {
	// Dev is the device number
	Dev uint64
	// Ino is the inode number
	Ino uint64
}

// See
// - https://github.com/golang/go/blob/release-branch.go1.12/src/os/types_unix.go

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Dev, k.Ino)
}

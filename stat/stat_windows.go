package stat

import (
	"fmt"
	"os"
	"syscall"
)

// See
// - https://github.com/golang/go/blob/release-branch.go1.12/src/os/types_windows.go

// porting from os.newFileStatFromGetFileInformationByHandle
func stat(file *os.File) (Key, error) {
	h := syscall.Handle(file.Fd())
	var d syscall.ByHandleFileInformation
	if err := syscall.GetFileInformationByHandle(h, &d); err != nil {
		return Key{}, &os.PathError{Op: "GetFileInformationByHandle", Path: file.Name(), Err: err}
	}
	return Key{
		Vol:   d.VolumeSerialNumber,
		IdxHi: d.FileIndexHigh,
		IdxLo: d.FileIndexLow,
	}, nil
}

// Key is an os specific file identity.
// Two Keys are equal iff, at the moment each was captured, both files
// had the same file index on the same volume.
type Key struct {
	// Vol is the volume serial number
	Vol uint32
	// IdxHi and IdxLo are the high and low parts of the file index
	IdxHi uint32
	IdxLo uint32
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Vol, uint64(k.IdxHi)<<32|uint64(k.IdxLo))
}

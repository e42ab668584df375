// Package samefile answers whether two open file references refer to
// the same underlying file on disk.
//
// Path strings are insufficient for this: symlinks, hardlinks, bind
// mounts and handle duplication all let different paths or descriptor
// values reach identical file content. A Handle owns an open file,
// captures its identity key once at construction, and compares by that
// key alone.
package samefile

import (
	"os"

	"github.com/kei2100/samefile/file"
	"github.com/kei2100/samefile/logger"
	"github.com/kei2100/samefile/stat"
)

// origin records who owns the underlying descriptor.
// It is consulted exactly once, at Close.
type origin int

const (
	// originOwned means the Handle owns the descriptor and closes it.
	originOwned origin = iota
	// originStdStream means the descriptor is one of the process
	// standard streams. Close detaches without closing it.
	originStdStream
)

// Handle owns an open file and its identity key.
//
// Equality of Handles is defined solely by the key, never by the
// descriptor value or the path used to open it. A Handle must not be
// shared across goroutines; duplicate the descriptor at the OS level
// and wrap each duplicate in its own Handle instead.
type Handle struct {
	file   *os.File
	origin origin
	key    stat.Key
}

// FromPath opens the named file for reading and returns its Handle.
// Open errors are returned verbatim. If key derivation fails after a
// successful open, the file is closed before the error is returned.
func FromPath(name string) (*Handle, error) {
	f, err := file.Open(name)
	if err != nil {
		return nil, err
	}
	return FromFile(f)
}

// FromFile takes ownership of the already-open f and returns its
// Handle. On error f is closed; construction never leaks a descriptor.
func FromFile(f *os.File) (*Handle, error) {
	key, err := stat.Stat(f)
	if err != nil {
		if cErr := f.Close(); cErr != nil {
			logger.Printf("samefile: an error occurred while closing the file %s: %+v", f.Name(), cErr)
		}
		return nil, err
	}
	return &Handle{file: f, origin: originOwned, key: key}, nil
}

// FromStd wraps one of the process standard streams. The descriptor
// stays owned by the process: it is not closed on error here, and not
// closed by Close.
func FromStd(f *os.File) (*Handle, error) {
	key, err := stat.Stat(f)
	if err != nil {
		return nil, err
	}
	return &Handle{file: f, origin: originStdStream, key: key}, nil
}

// Stdin returns a Handle wrapping the process standard input.
func Stdin() (*Handle, error) {
	return FromStd(os.Stdin)
}

// Stdout returns a Handle wrapping the process standard output.
func Stdout() (*Handle, error) {
	return FromStd(os.Stdout)
}

// Stderr returns a Handle wrapping the process standard error.
func Stderr() (*Handle, error) {
	return FromStd(os.Stderr)
}

// File returns the owned open file for I/O.
// It returns nil only after Close.
func (h *Handle) File() *os.File {
	return h.file
}

// Key returns a standalone copy of the identity key, usable as a map
// key for deduplication without retaining the open file.
func (h *Handle) Key() stat.Key {
	return h.key
}

// Equal reports whether h and other refer to the same file
func (h *Handle) Equal(other *Handle) bool {
	return stat.SameFile(h.key, other.key)
}

// Close releases the Handle. For a Handle constructed via FromPath or
// FromFile the descriptor is closed exactly once. For a standard
// stream Handle the reference is dropped without closing, since
// descriptors 0/1/2 outlive any Handle. Close is idempotent; a closed
// Handle cannot be reused.
func (h *Handle) Close() error {
	f := h.file
	if f == nil {
		return nil
	}
	h.file = nil
	if h.origin == originStdStream {
		return nil
	}
	return f.Close()
}

// SamePath reports whether name1 and name2 refer to the same
// underlying file. Both paths are opened for reading; the first open
// or derivation error is returned.
func SamePath(name1, name2 string) (bool, error) {
	h1, err := FromPath(name1)
	if err != nil {
		return false, err
	}
	defer h1.Close()
	h2, err := FromPath(name2)
	if err != nil {
		return false, err
	}
	defer h2.Close()
	return h1.Equal(h2), nil
}

// Package stat derives file identity keys from open files.
//
// A Key identifies a file within the set of currently mounted volumes.
// It is a snapshot taken from the open file reference, never from the
// path, so it reflects the file actually held even if the path has
// since been renamed or replaced.
package stat

import "os"

// Stat returns the identity Key of the open file
func Stat(file *os.File) (Key, error) {
	return stat(file)
}

// SameFile reports whether k1 and k2 represent the same file
func SameFile(k1, k2 Key) bool {
	return k1 == k2
}

package file

import "os"

// Open opens the named file for reading.
// Read access is all that identity derivation needs, so comparison
// works on read-only files.
func Open(name string) (*os.File, error) {
	return openFile(name, os.O_RDONLY, 0)
}

package file

import (
	"os"

	"github.com/kei2100/filesharedelete"
)

// Open with FILE_SHARE_DELETE so that holding a handle for identity
// inspection does not block deletion or rename of the file.
func openFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return filesharedelete.OpenFile(name, flag, perm)
}

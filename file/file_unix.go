//go:build linux || freebsd || darwin
// +build linux freebsd darwin

package file

import "os"

func openFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

package testutil

import (
	"os"
	"path/filepath"

	"github.com/kei2100/samefile/stat"
)

// Stat return the identity Key by name
func Stat(name string) stat.Key {
	f, err := os.Open(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	k, err := stat.Stat(f)
	if err != nil {
		panic(err)
	}
	return k
}

// CreateTempDir creates a temp dir for testing
func CreateTempDir() *TempDir {
	d, err := os.MkdirTemp("", "samefile-test")
	if err != nil {
		panic(err)
	}
	return &TempDir{Path: d}
}

// TempDir for testing
type TempDir struct {
	Path string
}

// RemoveAll removes temp dir and files
func (d *TempDir) RemoveAll() {
	os.RemoveAll(d.Path)
}

// CreateFile creates a file in the temp dir
func (d *TempDir) CreateFile(name string) (*os.File, stat.Key) {
	f, err := os.OpenFile(filepath.Join(d.Path, name), os.O_CREATE|os.O_WRONLY|os.O_SYNC, 0600)
	if err != nil {
		panic(err)
	}
	k, err := stat.Stat(f)
	if err != nil {
		panic(err)
	}
	return f, k
}

// CreateHardlink creates a hardlink to oldname in the temp dir
func (d *TempDir) CreateHardlink(oldname, newname string) string {
	link := filepath.Join(d.Path, newname)
	if err := os.Link(filepath.Join(d.Path, oldname), link); err != nil {
		panic(err)
	}
	return link
}

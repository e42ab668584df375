package file_test

import (
	"os"
	"testing"

	"github.com/kei2100/samefile/file"
	"github.com/kei2100/samefile/internal/testutil"
)

func TestOpenReadOnly(t *testing.T) {
	td := testutil.CreateTempDir()
	defer td.RemoveAll()

	f, _ := td.CreateFile("foo-file")
	f.WriteString("foo")
	f.Close()

	r, err := file.Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.WriteString("bar"); err == nil {
		t.Error("write succeeded, want read-only open")
	}
	b := make([]byte, 3)
	if _, err := r.Read(b); err != nil {
		t.Errorf("read failed: %+v", err)
	}
	if string(b) != "foo" {
		t.Errorf("read %s, want foo", b)
	}
}

func TestOpenNotExist(t *testing.T) {
	td := testutil.CreateTempDir()
	defer td.RemoveAll()

	_, err := file.Open(td.Path + "/no-such-file")
	if !os.IsNotExist(err) {
		t.Errorf("got %+v, want not exist error", err)
	}
}

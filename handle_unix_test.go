//go:build linux || freebsd || darwin
// +build linux freebsd darwin

package samefile_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kei2100/samefile"
	"github.com/kei2100/samefile/internal/testutil"
)

func TestDevIno(t *testing.T) {
	td := testutil.CreateTempDir()
	defer td.RemoveAll()

	f, _ := td.CreateFile("a.txt")
	f.Close()

	h, err := samefile.FromPath(f.Name())
	require.NoError(t, err)
	defer h.Close()

	var sys syscall.Stat_t
	require.NoError(t, syscall.Stat(f.Name(), &sys))

	assert.Equal(t, uint64(sys.Dev), h.Dev())
	assert.Equal(t, uint64(sys.Ino), h.Ino())
	assert.Equal(t, h.Key().Dev, h.Dev())
	assert.Equal(t, h.Key().Ino, h.Ino())
}

package keymap_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kei2100/samefile/internal/testutil"
	"github.com/kei2100/samefile/keymap"
	"github.com/kei2100/samefile/stat"
)

func TestInMemory(t *testing.T) {
	td := testutil.CreateTempDir()
	defer td.RemoveAll()

	a, aKey := td.CreateFile("a.txt")
	a.Close()
	b := td.CreateHardlink("a.txt", "b.txt")
	c, cKey := td.CreateFile("c.txt")
	c.Close()

	km := keymap.InMemory()
	defer km.Close()

	require.NoError(t, km.Add(aKey, a.Name()))
	require.NoError(t, km.Add(testutil.Stat(b), b))
	require.NoError(t, km.Add(cKey, c.Name()))

	assert.Equal(t, 2, km.Len())
	assert.Equal(t, []string{a.Name(), b}, km.Paths(aKey))
	assert.Equal(t, []string{c.Name()}, km.Paths(cKey))
}

func TestAddSamePathTwice(t *testing.T) {
	km := keymap.InMemory()
	defer km.Close()

	k := stat.Key{}
	require.NoError(t, km.Add(k, "a.txt"))
	require.NoError(t, km.Add(k, "a.txt"))

	assert.Equal(t, []string{"a.txt"}, km.Paths(k))
}

func TestPathsIsACopy(t *testing.T) {
	km := keymap.InMemory()
	defer km.Close()

	k := stat.Key{}
	require.NoError(t, km.Add(k, "a.txt"))

	ps := km.Paths(k)
	ps[0] = "mutated"
	assert.Equal(t, []string{"a.txt"}, km.Paths(k))
}

func TestFileBacked(t *testing.T) {
	td := testutil.CreateTempDir()
	defer td.RemoveAll()

	a, aKey := td.CreateFile("a.txt")
	a.Close()
	b := td.CreateHardlink("a.txt", "b.txt")

	name := filepath.Join(td.Path, "index")

	km, err := keymap.Open(name)
	require.NoError(t, err)
	require.NoError(t, km.Add(aKey, a.Name()))
	require.NoError(t, km.Close())

	// recorded entries accumulate across runs
	km, err = keymap.Open(name)
	require.NoError(t, err)
	defer km.Close()
	require.NoError(t, km.Add(testutil.Stat(b), b))

	assert.Equal(t, 1, km.Len())
	assert.Equal(t, []string{a.Name(), b}, km.Paths(aKey))
	assert.Equal(t, []stat.Key{aKey}, km.Keys())
}

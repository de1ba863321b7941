package service

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverBinariesExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	out, err := DiscoverBinaries([]string{f}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{f}, out)
}

func TestDiscoverBinariesWalksDirectoryWithGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.so"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.so"), []byte("x"), 0o644))

	out, err := DiscoverBinaries([]string{dir}, []string{"**/*.so"})
	require.NoError(t, err)
	sort.Strings(out)
	require.Len(t, out, 2)
	assert.Equal(t, filepath.Join(dir, "a.so"), out[0])
	assert.Equal(t, filepath.Join(dir, "sub", "c.so"), out[1])
}

func TestDiscoverBinariesMissingPathErrors(t *testing.T) {
	_, err := DiscoverBinaries([]string{"/nonexistent/path/xyz"}, nil)
	assert.Error(t, err)
}

func TestDiscoverBinariesDefaultGlobMatchesEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), []byte("x"), 0o644))

	out, err := DiscoverBinaries([]string{dir}, nil)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

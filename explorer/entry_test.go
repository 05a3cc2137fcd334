package explorer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func lower(s string) string {
	return strings.ToLower(s)
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// TestListReturnsSnapshot verifies listing returns one record per entry
// with size, kind and extension filled in.
func TestListReturnsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	file := byName["a.txt"]
	assert.False(t, file.IsDir)
	assert.Equal(t, int64(5), file.Size)
	assert.Equal(t, ".txt", file.Extension)
	assert.Equal(t, filepath.Join(dir, "a.txt"), file.Path)

	sub := byName["sub"]
	assert.True(t, sub.IsDir)
}

func TestListEmptyDirectory(t *testing.T) {
	entries, err := List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "vanished"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	_, err := List(locked)
	assert.ErrorIs(t, err, ErrAccess)
}

func TestListSortByNameIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zebra.txt", "Apple.txt", "mango.txt", "banana.txt"} {
		writeFile(t, dir, name, "x")
	}

	entries, err := List(dir)
	require.NoError(t, err)
	Sort(entries, SortByName, true)

	got := names(entries)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, lower(got[i-1]), lower(got[i]),
			"names must be non-decreasing after sorting by name ascending")
	}
}

func TestHiddenFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".secret", "x")
	writeFile(t, dir, "plain", "x")

	entries, err := List(dir)
	require.NoError(t, err)

	for _, e := range entries {
		assert.Equal(t, e.Name == ".secret", e.Hidden)
	}
}

func TestStatMissing(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyFileKeepsSource: copying x.txt (10 bytes) from d1 to d2 shows the
// copy in d2 with the same size while d1 still has the original.
func TestCopyFileKeepsSource(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	src := writeFile(t, d1, "x.txt", "0123456789")

	require.NoError(t, Copy(src, filepath.Join(d2, "x.txt"), false))

	entries, err := List(d2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x.txt", entries[0].Name)
	assert.Equal(t, int64(10), entries[0].Size)

	original, err := Stat(src)
	require.NoError(t, err)
	assert.Equal(t, int64(10), original.Size)
}

func TestCopyMissingSource(t *testing.T) {
	err := Copy(filepath.Join(t.TempDir(), "ghost"), filepath.Join(t.TempDir(), "out"), false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCopyCollisionWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt", "new content")
	dst := writeFile(t, dir, "b.txt", "old")

	err := Copy(src, dst, false)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Destination must be untouched after the refused copy.
	data, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(data))
}

func TestCopyCollisionWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt", "new content")
	dst := writeFile(t, dir, "b.txt", "old")

	require.NoError(t, Copy(src, dst, true))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))
}

func TestCopyDirectoryRecursive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "top.txt", "1")
	require.NoError(t, os.Mkdir(filepath.Join(src, "nested"), 0755))
	writeFile(t, filepath.Join(src, "nested"), "deep.txt", "22")

	dst := filepath.Join(t.TempDir(), "clone")
	require.NoError(t, Copy(src, dst, false))

	deep, err := Stat(filepath.Join(dst, "nested", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deep.Size)
}

func TestMoveRemovesSource(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	src := writeFile(t, d1, "m.txt", "move me")
	dst := filepath.Join(d2, "m.txt")

	require.NoError(t, Move(src, dst, false))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	moved, err := Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, int64(7), moved.Size)
}

func TestMoveCollisionWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.txt", "a")
	dst := writeFile(t, dir, "b.txt", "b")

	assert.ErrorIs(t, Move(src, dst, false), ErrAlreadyExists)
}

// TestRenameReplacesNameInListing: after renaming a.txt to b.txt the
// listing contains b.txt and no longer contains a.txt.
func TestRenameReplacesNameInListing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x")

	newPath, err := Rename(path, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.txt"), newPath)

	entries, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, names(entries))
}

func TestRenameToExistingName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.txt", "y")

	_, err := Rename(path, "b.txt")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRenameMissing(t *testing.T) {
	_, err := Rename(filepath.Join(t.TempDir(), "ghost.txt"), "b.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestDeleteNonEmptyWithoutRecursive: the directory and its contents stay
// unchanged and the call reports ErrNotEmpty.
func TestDeleteNonEmptyWithoutRecursive(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "full")
	require.NoError(t, os.Mkdir(target, 0755))
	writeFile(t, target, "keep.txt", "safe")

	err := Delete(target, false)
	assert.ErrorIs(t, err, ErrNotEmpty)

	kept, statErr := Stat(filepath.Join(target, "keep.txt"))
	require.NoError(t, statErr)
	assert.Equal(t, int64(4), kept.Size)
}

func TestDeleteNonEmptyRecursive(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "full")
	require.NoError(t, os.Mkdir(target, 0755))
	writeFile(t, target, "gone.txt", "x")

	require.NoError(t, Delete(target, true))

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "x")

	require.NoError(t, Delete(path, false))

	entries, err := List(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteMissing(t *testing.T) {
	assert.ErrorIs(t, Delete(filepath.Join(t.TempDir(), "ghost"), false), ErrNotFound)
}

func TestMkdirAndCollision(t *testing.T) {
	dir := t.TempDir()

	path, err := Mkdir(dir, "fresh")
	require.NoError(t, err)

	made, err := Stat(path)
	require.NoError(t, err)
	assert.True(t, made.IsDir)

	_, err = Mkdir(dir, "fresh")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateFileAndCollision(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateFile(dir, "new.txt")
	require.NoError(t, err)

	created, err := Stat(path)
	require.NoError(t, err)
	assert.False(t, created.IsDir)
	assert.Zero(t, created.Size)

	_, err = CreateFile(dir, "new.txt")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

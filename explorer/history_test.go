package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryStartsAtInitialPath(t *testing.T) {
	h := NewHistory("/home")

	assert.Equal(t, "/home", h.Current())
	assert.False(t, h.CanBack())
	assert.False(t, h.CanForward())
}

func TestHistoryBackForward(t *testing.T) {
	h := NewHistory("/home")
	h.Open("/home/docs")
	h.Open("/home/docs/work")

	path, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/home/docs", path)

	path, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/home", path)

	_, ok = h.Back()
	assert.False(t, ok)

	path, ok = h.Forward()
	assert.True(t, ok)
	assert.Equal(t, "/home/docs", path)
}

// TestHistoryOpenTruncatesForwardTail: opening a new directory after going
// back discards the forward part of the history.
func TestHistoryOpenTruncatesForwardTail(t *testing.T) {
	h := NewHistory("/a")
	h.Open("/b")
	h.Open("/c")
	h.Back()
	h.Open("/d")

	assert.Equal(t, "/d", h.Current())
	assert.False(t, h.CanForward())

	path, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/b", path)
}

func TestHistoryReopenCurrentIsNoop(t *testing.T) {
	h := NewHistory("/a")
	h.Open("/b")
	h.Open("/b")

	h.Back()
	assert.Equal(t, "/a", h.Current())
	assert.False(t, h.CanBack())
}

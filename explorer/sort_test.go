package explorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleEntries() []Entry {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Entry{
		{Name: "notes.txt", Extension: ".txt", Size: 300, Modified: base.Add(2 * time.Hour)},
		{Name: "archive.zip", Extension: ".zip", Size: 100, Modified: base},
		{Name: "photos", IsDir: true, Modified: base.Add(time.Hour)},
		{Name: "Backup.tar", Extension: ".tar", Size: 200, Modified: base.Add(3 * time.Hour)},
	}
}

func TestSortByNameAscending(t *testing.T) {
	entries := sampleEntries()
	Sort(entries, SortByName, true)

	// Directories group first, files follow in case-folded name order.
	assert.Equal(t, []string{"photos", "archive.zip", "Backup.tar", "notes.txt"}, names(entries))
}

func TestSortByNameDescending(t *testing.T) {
	entries := sampleEntries()
	Sort(entries, SortByName, false)

	assert.Equal(t, []string{"photos", "notes.txt", "Backup.tar", "archive.zip"}, names(entries))
}

func TestSortBySize(t *testing.T) {
	entries := sampleEntries()
	Sort(entries, SortBySize, true)

	assert.Equal(t, []string{"photos", "archive.zip", "Backup.tar", "notes.txt"}, names(entries))
}

func TestSortByDate(t *testing.T) {
	entries := sampleEntries()
	Sort(entries, SortByDate, false)

	assert.Equal(t, []string{"photos", "Backup.tar", "notes.txt", "archive.zip"}, names(entries))
}

func TestSortByType(t *testing.T) {
	entries := sampleEntries()
	Sort(entries, SortByType, true)

	assert.Equal(t, []string{"photos", "Backup.tar", "notes.txt", "archive.zip"}, names(entries))
}

// TestSortIsStable checks that entries with equal keys keep the original
// enumeration order.
func TestSortIsStable(t *testing.T) {
	entries := []Entry{
		{Name: "c.txt", Size: 10},
		{Name: "a.txt", Size: 10},
		{Name: "b.txt", Size: 10},
	}
	Sort(entries, SortBySize, true)

	assert.Equal(t, []string{"c.txt", "a.txt", "b.txt"}, names(entries))
}

func TestSortEmpty(t *testing.T) {
	var entries []Entry
	Sort(entries, SortByName, true)
	assert.Empty(t, entries)
}

func TestParseSortKeyRoundTrip(t *testing.T) {
	for _, key := range []SortKey{SortByName, SortByType, SortBySize, SortByDate} {
		assert.Equal(t, key, ParseSortKey(key.String()))
	}
	assert.Equal(t, SortByName, ParseSortKey("unknown"))
}

package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []Entry {
	return []Entry{
		{Name: "report.txt"},
		{Name: "Summary.TXT"},
		{Name: "photo.png"},
		{Name: "data_2024.csv"},
		{Name: "readme.md"},
	}
}

// TestFilterEmptyQueryIsIdentity: the empty query returns the identical
// sequence, same order and same elements.
func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	entries := filterFixture()
	got := Filter(entries, "", MatchSubstring)

	assert.Equal(t, names(entries), names(got))
}

func TestFilterSubstringIsCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), "TXT", MatchSubstring)

	assert.Equal(t, []string{"report.txt", "Summary.TXT"}, names(got))
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(filterFixture(), "a", MatchSubstring)

	assert.Equal(t, []string{"Summary.TXT", "data_2024.csv", "readme.md"}, names(got))
}

// TestFilterIsIdempotent: applying the same filter twice returns the same
// subsequence.
func TestFilterIsIdempotent(t *testing.T) {
	once := Filter(filterFixture(), "txt", MatchSubstring)
	twice := Filter(once, "txt", MatchSubstring)

	assert.Equal(t, names(once), names(twice))
}

func TestFilterGlob(t *testing.T) {
	got := Filter(filterFixture(), "*.txt", MatchGlob)
	assert.Equal(t, []string{"report.txt", "Summary.TXT"}, names(got))

	got = Filter(filterFixture(), "data_*.csv", MatchGlob)
	assert.Equal(t, []string{"data_2024.csv"}, names(got))
}

func TestFilterFuzzy(t *testing.T) {
	got := Filter(filterFixture(), "rprt", MatchFuzzy)
	assert.Contains(t, names(got), "report.txt")

	got = Filter(filterFixture(), "zzz", MatchFuzzy)
	assert.Empty(t, got)
}

func TestDetectMode(t *testing.T) {
	assert.Equal(t, MatchGlob, DetectMode("*.go", false))
	assert.Equal(t, MatchGlob, DetectMode("file?.txt", true))
	assert.Equal(t, MatchSubstring, DetectMode("plain", false))
	assert.Equal(t, MatchFuzzy, DetectMode("plain", true))
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(filterFixture(), "nothing-here", MatchSubstring)
	assert.Empty(t, got)
}

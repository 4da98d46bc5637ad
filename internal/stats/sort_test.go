package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortMembersByField(t *testing.T) {

	rows := []MemberStats{
		{Name: "Cara", Live: 1},
		{Name: "Alice", Live: 3},
		{Name: "Bob", Live: 2},
	}

	byName := SortMembers(rows, "name", Ascending)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, names(byName))

	byLive := SortMembers(rows, "live", Descending)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, names(byLive))

	// Unknown field falls back to name.
	fallback := SortMembers(rows, "nonsense", Ascending)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, names(fallback))

	// Input order is untouched.
	assert.Equal(t, []string{"Cara", "Alice", "Bob"}, names(rows))
}

func TestSortMembersStable(t *testing.T) {

	rows := []MemberStats{
		{Name: "Cara", Done: 1},
		{Name: "Alice", Done: 1},
		{Name: "Bob", Done: 2},
	}

	sorted := SortMembers(rows, "done", Ascending)

	// Equal keys keep their relative input order in both directions.
	assert.Equal(t, []string{"Cara", "Alice", "Bob"}, names(sorted))

	desc := SortMembers(rows, "done", Descending)
	assert.Equal(t, []string{"Bob", "Cara", "Alice"}, names(desc))
}

func TestSortStateToggle(t *testing.T) {

	s := NewSortState()
	assert.Equal(t, SortState{Field: "name", Order: Ascending}, s)

	// Same field flips direction.
	s.Toggle("name")
	assert.Equal(t, SortState{Field: "name", Order: Descending}, s)
	s.Toggle("name")
	assert.Equal(t, SortState{Field: "name", Order: Ascending}, s)

	// A new field resets to ascending even from descending.
	s.Toggle("name")
	s.Toggle("live")
	assert.Equal(t, SortState{Field: "live", Order: Ascending}, s)
}

func names(rows []MemberStats) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

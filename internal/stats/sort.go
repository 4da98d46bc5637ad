package stats

import (
	"sort"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// SortState tracks the column a stats table is ordered by. Selecting the
// current field flips the direction; selecting a new field resets to
// ascending.
type SortState struct {
	Field string
	Order Order
}

// NewSortState returns the default ordering, by name ascending.
func NewSortState() SortState {
	return SortState{Field: "name", Order: Ascending}
}

// Toggle applies a column selection to the state.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		if s.Order == Ascending {
			s.Order = Descending
		} else {
			s.Order = Ascending
		}
		return
	}
	s.Field = field
	s.Order = Ascending
}

// SortMembers returns a copy of rows ordered by the given field. The sort is
// stable, strings compare bytewise, and an unknown field falls back to name.
func SortMembers(rows []MemberStats, field string, order Order) []MemberStats {
	sorted := make([]MemberStats, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if order == Descending {
			a, b = b, a
		}
		switch field {
		case "projectCount":
			return a.ProjectCount < b.ProjectCount
		case "ongoing":
			return a.Ongoing < b.Ongoing
		case "onHold":
			return a.OnHold < b.OnHold
		case "done":
			return a.Done < b.Done
		case "uat":
			return a.UAT < b.UAT
		case "live":
			return a.Live < b.Live
		default:
			return strings.Compare(a.Name, b.Name) < 0
		}
	})
	return sorted
}

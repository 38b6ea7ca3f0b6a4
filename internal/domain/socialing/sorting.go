package socialing

import (
	"sort"

	"clubops/internal/app"
)

// SortEvents returns a new slice ordered by date, newest or oldest first.
// The sort is stable: events sharing a date keep their input order.
//
// Pure function: Does not modify input slice, returns new sorted slice.
func SortEvents(events []app.Socialing, order app.EventSortOrder) []app.Socialing {
	sorted := make([]app.Socialing, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == app.SortOldest {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	return sorted
}

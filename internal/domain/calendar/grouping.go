package calendar

import (
	"time"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
)

// GroupByDateKey buckets events by their YYYY-MM-DD date key, preserving
// relative input order within each bucket.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func GroupByDateKey(events []app.Socialing) map[string][]app.Socialing {
	grouped := make(map[string][]app.Socialing)
	for _, event := range events {
		key := datemath.DateKey(event.Date)
		grouped[key] = append(grouped[key], event)
	}
	return grouped
}

// EventsInRange keeps events dated within [start, end], inclusive.
func EventsInRange(events []app.Socialing, start, end time.Time) []app.Socialing {
	var filtered []app.Socialing
	for _, event := range events {
		if !event.Date.Before(start) && !event.Date.After(end) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

package calendar

import (
	"time"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
)

// Day is one calendar day with the events falling on it.
type Day struct {
	Date           time.Time       `json:"date"`
	Key            string          `json:"key"`
	IsCurrentMonth bool            `json:"is_current_month"`
	Events         []app.Socialing `json:"events"`
}

// BuildWeekView assembles the Monday-to-Sunday strip for the week containing
// date, attaching each day's events. Every returned day carries
// IsCurrentMonth=true; the flag only matters for month grids.
func BuildWeekView(events []app.Socialing, date time.Time) []Day {
	r := datemath.WeekRange(date)
	grouped := GroupByDateKey(EventsInRange(events, r.Start, r.End))

	days := make([]Day, 0, 7)
	for _, d := range datemath.WeekDays(date) {
		key := datemath.DateKey(d)
		days = append(days, Day{
			Date:           d,
			Key:            key,
			IsCurrentMonth: true,
			Events:         grouped[key],
		})
	}
	return days
}

// BuildMonthView assembles the fixed 42-cell month grid for the month
// containing date, attaching each day's events. Leading and trailing cells
// belong to adjacent months; their events are included so the grid edges
// aren't blank.
func BuildMonthView(events []app.Socialing, date time.Time) []Day {
	cells := datemath.CalendarGrid(date)
	start := cells[0].Date
	end := cells[len(cells)-1].Date.AddDate(0, 0, 1).Add(-time.Nanosecond)
	grouped := GroupByDateKey(EventsInRange(events, start, end))

	days := make([]Day, 0, len(cells))
	for _, cell := range cells {
		key := datemath.DateKey(cell.Date)
		days = append(days, Day{
			Date:           cell.Date,
			Key:            key,
			IsCurrentMonth: cell.IsCurrentMonth,
			Events:         grouped[key],
		})
	}
	return days
}

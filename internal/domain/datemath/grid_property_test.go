package datemath

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCalendarGridProperties uses property-based testing to verify grid invariants
func TestCalendarGridProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: the grid always contains exactly 42 cells
	properties.Property("grid always has 42 cells", prop.ForAll(
		func(year, month, day int) bool {
			cells := CalendarGrid(date(year, time.Month(month), day))
			return len(cells) == GridSize
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	// Property: current-month cell count equals the number of days in the month
	properties.Property("current-month cells equal month length", prop.ForAll(
		func(year, month, day int) bool {
			d := date(year, time.Month(month), day)
			daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

			count := 0
			for _, cell := range CalendarGrid(d) {
				if cell.IsCurrentMonth {
					count++
				}
			}
			return count == daysInMonth
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	// Property: the grid starts on a Monday
	properties.Property("grid starts on Monday", prop.ForAll(
		func(year, month, day int) bool {
			cells := CalendarGrid(date(year, time.Month(month), day))
			return cells[0].Date.Weekday() == time.Monday
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	// Property: every day of the requested date's week appears in WeekDays
	properties.Property("week days has length 7 starting Monday", prop.ForAll(
		func(year, month, day int) bool {
			days := WeekDays(date(year, time.Month(month), day))
			if len(days) != 7 {
				return false
			}
			return days[0].Weekday() == time.Monday && days[6].Weekday() == time.Sunday
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	// Property: WeekRange contains its input date
	properties.Property("week range contains input", prop.ForAll(
		func(year, month, day int) bool {
			d := date(year, time.Month(month), day)
			r := WeekRange(d)
			return !d.Before(r.Start) && !d.After(r.End)
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	// Property: DateKey is unique per calendar day within the grid
	properties.Property("grid date keys are distinct", prop.ForAll(
		func(year, month, day int) bool {
			seen := make(map[string]bool)
			for _, cell := range CalendarGrid(date(year, time.Month(month), day)) {
				key := DateKey(cell.Date)
				if seen[key] {
					return false
				}
				seen[key] = true
			}
			return true
		},
		gen.IntRange(1970, 2100),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
	))

	properties.TestingRun(t)
}

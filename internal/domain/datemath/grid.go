package datemath

import "time"

// GridSize is the fixed number of cells in a monthly calendar grid (6 rows x 7 columns).
const GridSize = 42

// GridCell is one day slot in a monthly calendar grid.
type GridCell struct {
	Date           time.Time
	IsCurrentMonth bool
}

// CalendarGrid returns the 42-cell monthly grid for the month containing date.
// The grid starts on the Monday on or before the 1st; leading and trailing
// cells belong to the adjacent months and are marked IsCurrentMonth=false.
// The cell count is fixed regardless of month length or weekday alignment.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func CalendarGrid(date time.Time) []GridCell {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())

	// Monday-anchored leading offset; Sunday maps to 6
	offset := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		offset = 6
	}

	start := first.AddDate(0, 0, -offset)
	cells := make([]GridCell, GridSize)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cells[i] = GridCell{
			Date:           d,
			IsCurrentMonth: d.Month() == date.Month() && d.Year() == date.Year(),
		}
	}
	return cells
}

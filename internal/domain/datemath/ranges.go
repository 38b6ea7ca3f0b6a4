package datemath

import "time"

// DateRange is an inclusive start/end span of time.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// WeekRange returns the Monday-anchored week containing date: Start is that
// Monday at 00:00:00.000 and End is the following Sunday at 23:59:59.999.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func WeekRange(date time.Time) DateRange {
	d := stripTime(date)

	// Sunday is weekday 0; pull it back to the previous Monday
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}

	start := d.AddDate(0, 0, -offset)
	end := endOfDay(start.AddDate(0, 0, 6))
	return DateRange{Start: start, End: end}
}

// MonthRange returns the calendar month containing date: the 1st at
// 00:00:00.000 through the last day at 23:59:59.999.
func MonthRange(date time.Time) DateRange {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	// Day 0 of the next month normalizes to this month's last day
	last := time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
	return DateRange{Start: start, End: endOfDay(last)}
}

// WeekDays returns the 7 consecutive dates of the week containing date,
// Monday through Sunday, each at midnight.
func WeekDays(date time.Time) []time.Time {
	start := WeekRange(date).Start
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

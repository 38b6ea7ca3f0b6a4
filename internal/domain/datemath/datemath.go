package datemath

import (
	"fmt"
	"math"
	"time"
)

// stripTime returns the date at midnight in its own location.
func stripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b,
// comparing date-only. Positive when b is after a.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func DaysBetween(a, b time.Time) int {
	diff := stripTime(b).Sub(stripTime(a))
	// Round instead of truncate so DST transitions don't drop a day
	return int(math.Round(diff.Hours() / 24))
}

// RelativeDateText returns a short Korean description of date relative to now:
// 오늘/내일/모레/어제/그저께 for nearby days, "N일 후"/"N일 전" within a week,
// "M월 D일" for the same year and "Y년 M월 D일" otherwise.
// Returns an empty string for the zero time.
func RelativeDateText(date, now time.Time) string {
	if date.IsZero() {
		return ""
	}

	diffDays := DaysBetween(now, date)

	switch diffDays {
	case 0:
		return "오늘"
	case 1:
		return "내일"
	case 2:
		return "모레"
	case -1:
		return "어제"
	case -2:
		return "그저께"
	}

	if diffDays > 0 && diffDays <= 7 {
		return fmt.Sprintf("%d일 후", diffDays)
	}
	if diffDays < 0 && diffDays >= -7 {
		return fmt.Sprintf("%d일 전", -diffDays)
	}

	if date.Year() == now.Year() {
		return fmt.Sprintf("%d월 %d일", int(date.Month()), date.Day())
	}
	return fmt.Sprintf("%d년 %d월 %d일", date.Year(), int(date.Month()), date.Day())
}

// DaysAgoText buckets an elapsed day count into a Korean "time ago" label:
// 오늘 (0), 어제 (1), "N일 전" (2-6), "N주 전" (7-29), "N개월 전" (30-364),
// "N년 전" (365+). A nil input yields an empty string.
func DaysAgoText(days *int) string {
	if days == nil {
		return ""
	}

	d := *days
	switch {
	case d < 0:
		return ""
	case d == 0:
		return "오늘"
	case d == 1:
		return "어제"
	case d < 7:
		return fmt.Sprintf("%d일 전", d)
	case d < 30:
		return fmt.Sprintf("%d주 전", d/7)
	case d < 365:
		return fmt.Sprintf("%d개월 전", d/30)
	default:
		return fmt.Sprintf("%d년 전", d/365)
	}
}

var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatDateWithDay formats a date as "M/D (요일)".
// Returns an empty string for the zero time.
func FormatDateWithDay(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d (%s)", int(date.Month()), date.Day(), koreanWeekdays[int(date.Weekday())])
}

// DateKey returns the canonical YYYY-MM-DD key for a calendar day.
// Keys are zero-padded and collision-free across distinct days.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AgeFromBirthYear derives an age in whole years from a birth year
// (now.Year - birthYear). A zero or negative birth year yields 0.
//
// Pure function: Takes now as parameter to enable deterministic testing.
func AgeFromBirthYear(birthYear int, now time.Time) int {
	if birthYear <= 0 {
		return 0
	}
	age := now.Year() - birthYear
	if age < 0 {
		return 0
	}
	return age
}

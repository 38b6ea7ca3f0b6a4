package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
// Malformed dates fail fast at the ingestion boundary instead of flowing
// silently into comparisons.
var ErrInvalidDate = errors.New("invalid date")

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	koreanDateTime = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\([^)]+\)\s*(오전|오후)?\s*(\d{1,2}):(\d{2})`)
	koreanDateOnly = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})`)
)

// ParseEventDate parses the date formats that appear on imported event
// screenshots: ISO dates pass through, and Korean app-style dates like
// "12.31(수) 오후 6:00" or "1.5(일)" are resolved against now's year.
// A month earlier than the current one is taken to mean next year.
//
// Pure function: Takes now as parameter to enable deterministic testing.
func ParseEventDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	if isoDatePattern.MatchString(s) {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if m := koreanDateTime.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])

		switch m[3] {
		case "오후":
			if hour != 12 {
				hour += 12
			}
		case "오전":
			if hour == 12 {
				hour = 0
			}
		}

		return buildEventDate(month, day, hour, minute, now)
	}

	if m := koreanDateOnly.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return buildEventDate(month, day, 0, 0, now)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func buildEventDate(month, day, hour, minute int, now time.Time) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: month %d day %d", ErrInvalidDate, month, day)
	}

	year := now.Year()
	if month < int(now.Month()) {
		year++
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
	// time.Date normalizes overflow (e.g. 2.30 becomes March); reject it
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: month %d has no day %d", ErrInvalidDate, month, day)
	}
	return t, nil
}

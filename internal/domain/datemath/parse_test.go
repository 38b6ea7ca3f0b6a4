package datemath

import (
	"errors"
	"testing"
	"time"
)

func TestParseEventDate(t *testing.T) {
	now := time.Date(2025, 12, 2, 10, 0, 0, 0, time.UTC)

	t.Run("ISODatePassesThrough", func(t *testing.T) {
		got, err := ParseEventDate("2025-12-31", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Equal(date(2025, 12, 31)) {
			t.Errorf("Expected 2025-12-31, got %v", got)
		}
	})

	t.Run("ISODateTime", func(t *testing.T) {
		got, err := ParseEventDate("2025-12-31T18:00:00", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Hour() != 18 {
			t.Errorf("Expected 18:00, got %v", got)
		}
	})

	t.Run("KoreanAfternoon", func(t *testing.T) {
		got, err := ParseEventDate("12.31(수) 오후 6:00", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("KoreanMorningTwelve", func(t *testing.T) {
		got, err := ParseEventDate("12.31(수) 오전 12:30", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Hour() != 0 || got.Minute() != 30 {
			t.Errorf("오전 12 means midnight, got %v", got)
		}
	})

	t.Run("EarlierMonthRollsToNextYear", func(t *testing.T) {
		got, err := ParseEventDate("1.5(일) 오전 11:00", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Year() != 2026 {
			t.Errorf("January after December should be next year, got %v", got)
		}
	})

	t.Run("DateOnly", func(t *testing.T) {
		got, err := ParseEventDate("12.31(수)", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Equal(date(2025, 12, 31)) {
			t.Errorf("Expected 2025-12-31, got %v", got)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, input := range []string{"", "next tuesday", "2.30(월) 오후 1:00"} {
			if _, err := ParseEventDate(input, now); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Expected ErrInvalidDate for %q, got %v", input, err)
			}
		}
	})
}

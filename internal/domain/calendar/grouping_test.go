package calendar

import (
	"testing"
	"time"

	"clubops/internal/app"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGroupByDateKey(t *testing.T) {
	events := []app.Socialing{
		{ID: "a", Date: date(2025, 12, 5)},
		{ID: "b", Date: date(2025, 12, 6)},
		{ID: "c", Date: time.Date(2025, 12, 5, 19, 0, 0, 0, time.UTC)},
	}

	grouped := GroupByDateKey(events)

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(grouped))
	}

	fifth := grouped["2025-12-05"]
	if len(fifth) != 2 || fifth[0].ID != "a" || fifth[1].ID != "c" {
		t.Errorf("Expected [a c] in insertion order, got %v", fifth)
	}

	if len(grouped["2025-12-06"]) != 1 {
		t.Errorf("Expected one event on the 6th")
	}
}

func TestEventsInRange(t *testing.T) {
	events := []app.Socialing{
		{ID: "before", Date: date(2025, 11, 30)},
		{ID: "start", Date: date(2025, 12, 1)},
		{ID: "mid", Date: date(2025, 12, 4)},
		{ID: "end", Date: date(2025, 12, 7)},
		{ID: "after", Date: date(2025, 12, 8)},
	}

	got := EventsInRange(events, date(2025, 12, 1), date(2025, 12, 7))

	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	if got[0].ID != "start" || got[2].ID != "end" {
		t.Error("Range must be inclusive on both ends")
	}
}

func TestBuildWeekView(t *testing.T) {
	events := []app.Socialing{
		{ID: "wed", Date: date(2025, 12, 3)},
		{ID: "sun", Date: date(2025, 12, 7)},
		{ID: "nextWeek", Date: date(2025, 12, 9)},
	}

	days := BuildWeekView(events, date(2025, 12, 3))

	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}
	if days[0].Key != "2025-12-01" {
		t.Errorf("Expected week to start Monday 2025-12-01, got %s", days[0].Key)
	}
	if len(days[2].Events) != 1 || days[2].Events[0].ID != "wed" {
		t.Errorf("Expected wed event on Wednesday, got %v", days[2].Events)
	}
	if len(days[6].Events) != 1 || days[6].Events[0].ID != "sun" {
		t.Errorf("Expected sun event on Sunday, got %v", days[6].Events)
	}
	for _, d := range days {
		for _, e := range d.Events {
			if e.ID == "nextWeek" {
				t.Error("Event outside the week leaked into the view")
			}
		}
	}
}

func TestBuildMonthView(t *testing.T) {
	events := []app.Socialing{
		{ID: "inMonth", Date: date(2025, 11, 10)},
		{ID: "leadingEdge", Date: date(2025, 10, 28)}, // visible on November's grid
		{ID: "farAway", Date: date(2025, 6, 1)},
	}

	days := BuildMonthView(events, date(2025, 11, 15))

	if len(days) != 42 {
		t.Fatalf("Expected 42 cells, got %d", len(days))
	}

	found := make(map[string]bool)
	for _, d := range days {
		for _, e := range d.Events {
			found[e.ID] = true
		}
	}

	if !found["inMonth"] {
		t.Error("Event in the month is missing from the grid")
	}
	if !found["leadingEdge"] {
		t.Error("Event on a leading adjacent-month cell should be included")
	}
	if found["farAway"] {
		t.Error("Event outside the grid range leaked into the view")
	}
}

package socialing

import (
	"testing"

	"clubops/internal/app"
)

func TestSortEvents(t *testing.T) {
	events := []app.Socialing{
		{ID: "mid", Date: date(2025, 12, 5)},
		{ID: "old", Date: date(2025, 11, 1)},
		{ID: "new", Date: date(2025, 12, 20)},
	}

	t.Run("Newest", func(t *testing.T) {
		sorted := SortEvents(events, app.SortNewest)

		if sorted[0].ID != "new" || sorted[1].ID != "mid" || sorted[2].ID != "old" {
			t.Errorf("Bad newest-first order: %s, %s, %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
		}
	})

	t.Run("Oldest", func(t *testing.T) {
		sorted := SortEvents(events, app.SortOldest)

		if sorted[0].ID != "old" || sorted[2].ID != "new" {
			t.Errorf("Bad oldest-first order: %s, %s, %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
		}
	})

	t.Run("StableOnEqualDates", func(t *testing.T) {
		sameDay := []app.Socialing{
			{ID: "first", Date: date(2025, 12, 5)},
			{ID: "second", Date: date(2025, 12, 5)},
		}

		sorted := SortEvents(sameDay, app.SortNewest)

		if sorted[0].ID != "first" || sorted[1].ID != "second" {
			t.Error("Equal dates must preserve input order")
		}
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		SortEvents(events, app.SortOldest)

		if events[0].ID != "mid" {
			t.Error("Input slice was modified")
		}
	})
}

package socialing

import (
	"testing"
	"time"

	"clubops/internal/app"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func scheduledEvent(participants ...app.Participant) app.Socialing {
	return app.Socialing{
		ID:           "s1",
		Status:       app.SocialingScheduled,
		Date:         date(2025, 12, 10),
		Participants: participants,
	}
}

func TestIsConfirmed(t *testing.T) {
	t.Run("AtThreshold", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"), registered("M"))
		stats := ComputeParticipantStats(event.Participants)

		if !IsConfirmed(event, stats) {
			t.Error("Three registered-or-attended participants should confirm")
		}
	})

	t.Run("BelowThreshold", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"))
		stats := ComputeParticipantStats(event.Participants)

		if IsConfirmed(event, stats) {
			t.Error("Two participants must not confirm")
		}
	})

	t.Run("NoShowsDoNotCount", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"), noShow("M"), noShow("F"))
		stats := ComputeParticipantStats(event.Participants)

		if IsConfirmed(event, stats) {
			t.Error("No-shows must not count toward confirmation")
		}
	})

	t.Run("OnlyScheduledConfirms", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"), attended("M"))
		event.Status = app.SocialingDone
		stats := ComputeParticipantStats(event.Participants)

		if IsConfirmed(event, stats) {
			t.Error("Done events are not confirmed")
		}
	})
}

func TestNeedsAttention(t *testing.T) {
	t.Run("Alcohol", func(t *testing.T) {
		event := scheduledEvent(attended("M"))
		event.HasAlcohol = true

		if !NeedsAttention(event, ComputeParticipantStats(event.Participants)) {
			t.Error("Alcohol should need attention")
		}
	})

	t.Run("Night", func(t *testing.T) {
		event := scheduledEvent(attended("M"))
		event.IsNight = true

		if !NeedsAttention(event, ComputeParticipantStats(event.Participants)) {
			t.Error("Night events should need attention")
		}
	})

	t.Run("NoShows", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"), attended("M"), noShow("F"))

		if !NeedsAttention(event, ComputeParticipantStats(event.Participants)) {
			t.Error("No-shows should need attention")
		}
	})

	t.Run("CancelledNeverNeedsAttention", func(t *testing.T) {
		event := scheduledEvent(noShow("M"))
		event.Status = app.SocialingCancelled
		event.HasAlcohol = true
		event.IsNight = true

		if NeedsAttention(event, ComputeParticipantStats(event.Participants)) {
			t.Error("Cancelled events never need attention, regardless of flags")
		}
	})

	t.Run("PlainEvent", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"))

		if NeedsAttention(event, ComputeParticipantStats(event.Participants)) {
			t.Error("Daytime dry event without no-shows should not need attention")
		}
	})
}

func TestEffectiveStatusLabel(t *testing.T) {
	t.Run("Confirmed", func(t *testing.T) {
		event := scheduledEvent(attended("M"), attended("F"), attended("M"), noShow("F"))
		stats := ComputeParticipantStats(event.Participants)

		if got := EffectiveStatusLabel(event, stats); got != "confirmed" {
			t.Errorf("Expected 'confirmed', got %q", got)
		}
		if !NeedsAttention(event, stats) {
			t.Error("Confirmed event with a no-show still needs attention")
		}
	})

	t.Run("RawStatusFallthrough", func(t *testing.T) {
		event := scheduledEvent(attended("M"))
		stats := ComputeParticipantStats(event.Participants)

		if got := EffectiveStatusLabel(event, stats); got != "scheduled" {
			t.Errorf("Expected 'scheduled', got %q", got)
		}

		event.Status = app.SocialingCancelled
		if got := EffectiveStatusLabel(event, stats); got != "cancelled" {
			t.Errorf("Expected 'cancelled', got %q", got)
		}
	})
}

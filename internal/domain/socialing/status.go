package socialing

import "clubops/internal/app"

// ConfirmationThreshold is the participant count at which a scheduled
// socialing counts as confirmed.
const ConfirmationThreshold = 3

// StatusConfirmed is the derived display label for a confirmed socialing.
// It is not a persisted lifecycle status.
const StatusConfirmed = "confirmed"

// IsConfirmed reports whether a scheduled socialing has reached the minimum
// attendance threshold, counting registered and attended participants.
func IsConfirmed(event app.Socialing, stats ParticipantStats) bool {
	return event.Status == app.SocialingScheduled &&
		stats.RegisteredCount+stats.AttendedCount >= ConfirmationThreshold
}

// NeedsAttention reports whether a socialing requires operator review:
// it involves alcohol, runs at night, or has no-shows. Cancelled socialings
// never need attention.
func NeedsAttention(event app.Socialing, stats ParticipantStats) bool {
	if event.Status == app.SocialingCancelled {
		return false
	}
	return event.HasAlcohol || event.IsNight || stats.NoShowCount > 0
}

// EffectiveStatusLabel returns the display status: "confirmed" when the
// confirmation threshold is met, otherwise the raw lifecycle status.
func EffectiveStatusLabel(event app.Socialing, stats ParticipantStats) string {
	if IsConfirmed(event, stats) {
		return StatusConfirmed
	}
	return string(event.Status)
}

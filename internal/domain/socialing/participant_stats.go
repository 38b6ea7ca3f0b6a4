package socialing

import "clubops/internal/app"

// ParticipantStats holds aggregate counts over one socialing's participant list.
type ParticipantStats struct {
	RegisteredCount     int
	AttendedCount       int
	NoShowCount         int
	MaleAttendedCount   int
	FemaleAttendedCount int

	// GenderRiskFlag warns when the attended group is lopsided to a single
	// person of either gender. A heuristic, not a parity rule: it also fires
	// for a lone attendee.
	GenderRiskFlag bool
}

// ComputeParticipantStats aggregates attendance, no-show, and gender counts
// in a single pass over the participant list. Gender counts consider only
// attended participants.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ComputeParticipantStats(participants []app.Participant) ParticipantStats {
	var stats ParticipantStats

	for _, p := range participants {
		switch p.Status {
		case app.ParticipantRegistered:
			stats.RegisteredCount++
		case app.ParticipantAttended:
			stats.AttendedCount++
			switch p.Sex {
			case "M":
				stats.MaleAttendedCount++
			case "F":
				stats.FemaleAttendedCount++
			}
		case app.ParticipantNoShow:
			stats.NoShowCount++
		}
	}

	stats.GenderRiskFlag = stats.MaleAttendedCount == 1 || stats.FemaleAttendedCount == 1

	return stats
}

// FindHost returns the first participant with the host role, or nil if none.
// Assumes at most one host per socialing; that invariant is produced upstream.
func FindHost(participants []app.Participant) *app.Participant {
	for i := range participants {
		if participants[i].Role == app.RoleHost {
			return &participants[i]
		}
	}
	return nil
}

package roster

import (
	"testing"
	"time"

	"clubops/internal/app"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func attendedLog(y int, m time.Month, d int) app.ParticipationLog {
	return app.ParticipationLog{Date: date(y, m, d), Status: app.ParticipantAttended}
}

func noShowLog(y int, m time.Month, d int) app.ParticipationLog {
	return app.ParticipationLog{Date: date(y, m, d), Status: app.ParticipantNoShow}
}

func TestComputeMemberStats(t *testing.T) {
	now := date(2025, 12, 2)

	t.Run("CountsAndLastAttendance", func(t *testing.T) {
		member := app.Member{
			ID:       "m1",
			JoinDate: datePtr(2025, 10, 1),
			Status:   app.MemberActive,
			ParticipationLogs: []app.ParticipationLog{
				attendedLog(2025, 10, 20),
				attendedLog(2025, 11, 25),
				noShowLog(2025, 11, 10),
				{Date: date(2025, 12, 5), Status: app.ParticipantRegistered},
			},
		}

		stats := ComputeMemberStats(member, now)

		if stats.AttendedCount != 2 {
			t.Errorf("Expected 2 attended, got %d", stats.AttendedCount)
		}
		if stats.NoShowCount != 1 {
			t.Errorf("Expected 1 no-show, got %d", stats.NoShowCount)
		}
		if stats.LastAttendedDate == nil || !stats.LastAttendedDate.Equal(date(2025, 11, 25)) {
			t.Errorf("Expected last attended 2025-11-25, got %v", stats.LastAttendedDate)
		}
		if stats.DaysSinceLastAttended == nil || *stats.DaysSinceLastAttended != 7 {
			t.Errorf("Expected 7 days since last attendance, got %v", stats.DaysSinceLastAttended)
		}
		if stats.NeedsAction {
			t.Error("Recently active member should not need action")
		}
	})

	t.Run("NewJoinerWithoutParticipation", func(t *testing.T) {
		member := app.Member{
			ID:       "m2",
			JoinDate: datePtr(2025, 9, 15),
			Status:   app.MemberActive,
		}

		stats := ComputeMemberStats(member, now)

		if stats.DaysSinceJoin == nil || *stats.DaysSinceJoin != 78 {
			t.Errorf("Expected 78 days since join, got %v", stats.DaysSinceJoin)
		}
		if !stats.InactiveByNoParticipation {
			t.Error("Expected InactiveByNoParticipation after 78 days without attendance")
		}
		if stats.ActionReason != ActionInactive {
			t.Errorf("Expected ActionInactive, got %q", stats.ActionReason)
		}
		if stats.StatusFlag != StatusActive {
			t.Errorf("Action-required member is still ACTIVE, got %q", stats.StatusFlag)
		}
	})

	t.Run("InactiveByGap", func(t *testing.T) {
		member := app.Member{
			ID:                "m3",
			JoinDate:          datePtr(2025, 1, 1),
			Status:            app.MemberActive,
			ParticipationLogs: []app.ParticipationLog{attendedLog(2025, 9, 1)},
		}

		stats := ComputeMemberStats(member, now)

		if !stats.InactiveByGap {
			t.Error("Expected InactiveByGap for a 92-day gap")
		}
		if stats.InactiveByNoParticipation {
			t.Error("Member with attendance should not be InactiveByNoParticipation")
		}
		if stats.ActionReason != ActionInactive {
			t.Errorf("Expected ActionInactive, got %q", stats.ActionReason)
		}
	})

	t.Run("NoShowTakesPrecedenceOverInactivity", func(t *testing.T) {
		member := app.Member{
			ID:       "m4",
			JoinDate: datePtr(2025, 1, 1),
			Status:   app.MemberActive,
			ParticipationLogs: []app.ParticipationLog{
				attendedLog(2025, 3, 1),
				noShowLog(2025, 4, 1),
				noShowLog(2025, 5, 1),
			},
		}

		stats := ComputeMemberStats(member, now)

		if !stats.InactiveByGap {
			t.Fatal("Test setup expects an inactivity gap")
		}
		if stats.ActionReason != ActionNoShow {
			t.Errorf("Expected noshow to win over inactive, got %q", stats.ActionReason)
		}
		if !stats.NeedsAction {
			t.Error("Expected NeedsAction")
		}
	})

	t.Run("BelowNoShowThreshold", func(t *testing.T) {
		member := app.Member{
			ID:       "m5",
			JoinDate: datePtr(2025, 11, 1),
			Status:   app.MemberActive,
			ParticipationLogs: []app.ParticipationLog{
				attendedLog(2025, 11, 20),
				noShowLog(2025, 11, 27),
			},
		}

		stats := ComputeMemberStats(member, now)

		if stats.ActionReason != ActionNone {
			t.Errorf("One no-show should not trigger action, got %q", stats.ActionReason)
		}
	})

	t.Run("DisabledMember", func(t *testing.T) {
		member := app.Member{
			ID:       "m6",
			JoinDate: datePtr(2025, 1, 1),
			Status:   app.MemberDisabled,
		}

		stats := ComputeMemberStats(member, now)

		if stats.StatusFlag != StatusDisabled {
			t.Errorf("Expected DISABLED flag, got %q", stats.StatusFlag)
		}
	})

	t.Run("MissingJoinDate", func(t *testing.T) {
		member := app.Member{ID: "m7", Status: app.MemberActive}

		stats := ComputeMemberStats(member, now)

		if stats.DaysSinceJoin != nil {
			t.Errorf("Expected nil DaysSinceJoin, got %v", stats.DaysSinceJoin)
		}
		if stats.InactiveByNoParticipation {
			t.Error("No join date means no no-participation inactivity")
		}
	})
}

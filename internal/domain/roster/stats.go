package roster

import (
	"time"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
)

// InactivityThresholdDays is the gap after which a member counts as inactive,
// both since their last attendance and since joining without any attendance.
const InactivityThresholdDays = 60

// NoShowActionThreshold is the no-show count at which a member needs operator review.
const NoShowActionThreshold = 2

// StatusFlag is the derived lifecycle flag of a member.
type StatusFlag string

const (
	StatusActive   StatusFlag = "ACTIVE"
	StatusDisabled StatusFlag = "DISABLED"
)

// ActionReason is the advisory signal attached to a member needing review.
// It is orthogonal to StatusFlag: a member needing action is still ACTIVE
// until an operator explicitly disables them.
type ActionReason string

const (
	ActionNone     ActionReason = ""
	ActionNoShow   ActionReason = "noshow"
	ActionInactive ActionReason = "inactive"
)

// MemberStats holds the derived attendance statistics and status signals
// for a single member, evaluated against a caller-supplied now.
type MemberStats struct {
	AttendedCount         int
	NoShowCount           int
	LastAttendedDate      *time.Time
	DaysSinceLastAttended *int
	DaysSinceJoin         *int

	InactiveByGap             bool
	InactiveByNoParticipation bool

	StatusFlag   StatusFlag
	ActionReason ActionReason
	NeedsAction  bool
}

// ComputeMemberStats derives a member's statistics and status signals from
// their participation logs, join date, and lifecycle status.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ComputeMemberStats(member app.Member, now time.Time) MemberStats {
	var stats MemberStats

	for _, log := range member.ParticipationLogs {
		switch log.Status {
		case app.ParticipantAttended:
			stats.AttendedCount++
			if stats.LastAttendedDate == nil || log.Date.After(*stats.LastAttendedDate) {
				d := log.Date
				stats.LastAttendedDate = &d
			}
		case app.ParticipantNoShow:
			stats.NoShowCount++
		}
	}

	if stats.LastAttendedDate != nil {
		days := datemath.DaysBetween(*stats.LastAttendedDate, now)
		stats.DaysSinceLastAttended = &days
	}

	if member.JoinDate != nil {
		days := datemath.DaysBetween(*member.JoinDate, now)
		stats.DaysSinceJoin = &days
	}

	stats.InactiveByGap = stats.DaysSinceLastAttended != nil &&
		*stats.DaysSinceLastAttended >= InactivityThresholdDays
	stats.InactiveByNoParticipation = stats.AttendedCount == 0 &&
		stats.DaysSinceJoin != nil && *stats.DaysSinceJoin >= InactivityThresholdDays

	// No-show takes precedence over inactivity
	switch {
	case stats.NoShowCount >= NoShowActionThreshold:
		stats.ActionReason = ActionNoShow
	case stats.InactiveByGap || stats.InactiveByNoParticipation:
		stats.ActionReason = ActionInactive
	default:
		stats.ActionReason = ActionNone
	}
	stats.NeedsAction = stats.ActionReason != ActionNone

	if member.Status == app.MemberDisabled {
		stats.StatusFlag = StatusDisabled
	} else {
		stats.StatusFlag = StatusActive
	}

	return stats
}

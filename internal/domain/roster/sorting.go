package roster

import (
	"sort"
	"strings"
	"time"

	"clubops/internal/app"
)

// SortMembers returns a new slice ordered by option, with disabled members
// always sorted after active ones regardless of option. The sort is stable,
// so equal members keep their input order.
//
// Pure function: Does not modify input slice, returns new sorted slice.
func SortMembers(members []app.Member, option app.MemberSortOption, now time.Time) []app.Member {
	sorted := make([]app.Member, len(members))
	copy(sorted, members)

	statFor := make(map[string]MemberStats, len(sorted))
	for _, m := range sorted {
		statFor[m.ID] = ComputeMemberStats(m, now)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		aDisabled := a.Status == app.MemberDisabled
		bDisabled := b.Status == app.MemberDisabled
		if aDisabled != bDisabled {
			return !aDisabled
		}

		switch option {
		case app.SortNicknameAsc:
			return strings.Compare(a.Nickname, b.Nickname) < 0
		case app.SortNameAsc:
			return strings.Compare(a.Name, b.Name) < 0
		case app.SortAgeAsc:
			return a.Age < b.Age
		case app.SortActivityDesc:
			sa, sb := statFor[a.ID], statFor[b.ID]
			if sa.AttendedCount != sb.AttendedCount {
				return sa.AttendedCount > sb.AttendedCount
			}
			return sa.NoShowCount < sb.NoShowCount
		case app.SortActivityAsc:
			sa, sb := statFor[a.ID], statFor[b.ID]
			if sa.AttendedCount != sb.AttendedCount {
				return sa.AttendedCount < sb.AttendedCount
			}
			return sa.NoShowCount > sb.NoShowCount
		default: // app.SortLatest
			sa, sb := statFor[a.ID], statFor[b.ID]
			if sa.LastAttendedDate == nil && sb.LastAttendedDate == nil {
				return false
			}
			if sa.LastAttendedDate == nil {
				return false
			}
			if sb.LastAttendedDate == nil {
				return true
			}
			return sa.LastAttendedDate.After(*sb.LastAttendedDate)
		}
	})

	return sorted
}

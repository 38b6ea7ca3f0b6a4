package roster

import (
	"strings"
	"time"

	"clubops/internal/app"
)

// Filter status selections beyond literal status flags.
const (
	FilterAll         = "ALL"
	FilterNeedsAction = "NEEDS_ACTION"
	FilterDisabled    = "DISABLED"
)

// FilterMembers applies status, sex, and search criteria in that order,
// AND-composed. "ALL" status means all active: disabled members are excluded
// unless explicitly requested with "DISABLED".
//
// Pure function: Does not modify input slice, returns new filtered slice.
func FilterMembers(members []app.Member, filter app.MemberFilter, now time.Time) []app.Member {
	result := members

	result = filterByStatus(result, filter.Status, now)

	if filter.Sex != "" && filter.Sex != FilterAll {
		result = keep(result, func(m app.Member) bool { return m.Sex == filter.Sex })
	}

	if query := strings.TrimSpace(filter.Search); query != "" {
		q := strings.ToLower(query)
		result = keep(result, func(m app.Member) bool {
			return strings.Contains(strings.ToLower(m.Nickname), q) ||
				strings.Contains(strings.ToLower(m.Name), q)
		})
	}

	return result
}

func filterByStatus(members []app.Member, status string, now time.Time) []app.Member {
	switch status {
	case "", FilterAll:
		// "ALL" means all active, not literally all
		return keep(members, func(m app.Member) bool {
			return m.Status != app.MemberDisabled
		})
	case FilterNeedsAction:
		return keep(members, func(m app.Member) bool {
			if m.Status == app.MemberDisabled {
				return false
			}
			return ComputeMemberStats(m, now).NeedsAction
		})
	case FilterDisabled:
		return keep(members, func(m app.Member) bool {
			return m.Status == app.MemberDisabled
		})
	default:
		return keep(members, func(m app.Member) bool {
			return string(ComputeMemberStats(m, now).StatusFlag) == status
		})
	}
}

func keep(members []app.Member, pred func(app.Member) bool) []app.Member {
	var filtered []app.Member
	for _, m := range members {
		if pred(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

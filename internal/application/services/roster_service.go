package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
	"clubops/internal/domain/roster"
)

// MemberView is one member decorated with derived statistics for display.
type MemberView struct {
	app.Member
	Stats        roster.MemberStats `json:"stats"`
	LastSeenText string             `json:"last_seen_text"`
}

// RosterService derives display-ready member views from store snapshots.
type RosterService struct {
	store MemberReader

	// Now is injectable for deterministic tests; defaults to wall clock.
	Now func() time.Time
}

// NewRosterService creates a roster service backed by the given store.
func NewRosterService(store MemberReader) *RosterService {
	return &RosterService{store: store, Now: time.Now}
}

// MemberViews loads the roster, applies sorting and filtering, and attaches
// derived statistics to each member.
func (s *RosterService) MemberViews(
	ctx context.Context,
	filter app.MemberFilter,
	option app.MemberSortOption,
) ([]MemberView, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	now := s.Now()
	// Age is derived, not stored: the members table carries birth_year only.
	for i := range members {
		members[i].Age = datemath.AgeFromBirthYear(members[i].BirthYear, now)
	}
	sorted := roster.SortMembers(members, option, now)
	filtered := roster.FilterMembers(sorted, filter, now)

	views := make([]MemberView, 0, len(filtered))
	for _, m := range filtered {
		stats := roster.ComputeMemberStats(m, now)
		views = append(views, MemberView{
			Member:       m,
			Stats:        stats,
			LastSeenText: datemath.DaysAgoText(stats.DaysSinceLastAttended),
		})
	}

	log.Debug().
		Int("total", len(members)).
		Int("after_filter", len(views)).
		Str("sort", string(option)).
		Msg("Built member views")

	return views, nil
}

// NeedsActionMembers returns the active members currently flagged for
// operator review, used by the weekly report.
func (s *RosterService) NeedsActionMembers(ctx context.Context) ([]MemberView, error) {
	return s.MemberViews(ctx, app.MemberFilter{Status: roster.FilterNeedsAction}, app.SortLatest)
}

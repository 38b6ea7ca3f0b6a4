package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/domain/calendar"
	"clubops/internal/domain/datemath"
	"clubops/internal/domain/socialing"
)

// EventView is one socialing decorated with derived status for display.
type EventView struct {
	app.Socialing
	Stats            socialing.ParticipantStats `json:"stats"`
	StatusLabel      string                     `json:"status_label"`
	Confirmed        bool                       `json:"confirmed"`
	NeedsAttention   bool                       `json:"needs_attention"`
	Host             *app.Participant           `json:"host,omitempty"`
	RelativeDateText string                     `json:"relative_date_text"`
}

// ScheduleService derives display-ready socialing views and calendar
// groupings from store snapshots.
type ScheduleService struct {
	store SocialingReader

	// Now is injectable for deterministic tests; defaults to wall clock.
	Now func() time.Time
}

// NewScheduleService creates a schedule service backed by the given store.
func NewScheduleService(store SocialingReader) *ScheduleService {
	return &ScheduleService{store: store, Now: time.Now}
}

// EventViews loads socialings, applies ordering, tag and search filters,
// and attaches derived status to each.
func (s *ScheduleService) EventViews(
	ctx context.Context,
	order app.EventSortOrder,
	tags []app.EventTag,
	search string,
) ([]EventView, error) {
	events, err := s.store.ListSocialings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load socialings: %w", err)
	}

	now := s.Now()
	result := socialing.SortEvents(events, order)
	result = socialing.FilterEventsBySearch(result, search)
	result = socialing.FilterEventsByTags(result, tags, nil)

	views := make([]EventView, 0, len(result))
	for _, event := range result {
		views = append(views, buildEventView(event, now))
	}

	log.Debug().
		Int("total", len(events)).
		Int("after_filter", len(views)).
		Msg("Built event views")

	return views, nil
}

func buildEventView(event app.Socialing, now time.Time) EventView {
	stats := socialing.ComputeParticipantStats(event.Participants)
	return EventView{
		Socialing:        event,
		Stats:            stats,
		StatusLabel:      socialing.EffectiveStatusLabel(event, stats),
		Confirmed:        socialing.IsConfirmed(event, stats),
		NeedsAttention:   socialing.NeedsAttention(event, stats),
		Host:             socialing.FindHost(event.Participants),
		RelativeDateText: datemath.RelativeDateText(event.Date, now),
	}
}

// WeekView returns the Monday-to-Sunday calendar strip for the week
// containing date.
func (s *ScheduleService) WeekView(ctx context.Context, date time.Time) ([]calendar.Day, error) {
	events, err := s.store.ListSocialings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load socialings: %w", err)
	}
	return calendar.BuildWeekView(events, date), nil
}

// MonthView returns the 42-cell calendar grid for the month containing date.
func (s *ScheduleService) MonthView(ctx context.Context, date time.Time) ([]calendar.Day, error) {
	events, err := s.store.ListSocialings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load socialings: %w", err)
	}
	return calendar.BuildMonthView(events, date), nil
}

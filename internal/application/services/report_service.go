package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
	"clubops/internal/sheets"
)

// SnapshotPublisher ships the serialized report snapshot to a remote host.
type SnapshotPublisher interface {
	PublishSnapshot(data []byte, filename string) error
}

// ReportService generates the weekly operations report: a Members tab with
// derived statistics, a Socialings tab with event status, and an optional
// JSON snapshot published to a remote host.
type ReportService struct {
	roster    *RosterService
	schedule  *ScheduleService
	manager   *sheets.ReportManager
	publisher SnapshotPublisher

	// Now is injectable for deterministic tests; defaults to wall clock.
	Now func() time.Time
}

// NewReportService creates a report service. publisher may be nil, in which
// case no snapshot is shipped.
func NewReportService(
	roster *RosterService,
	schedule *ScheduleService,
	manager *sheets.ReportManager,
	publisher SnapshotPublisher,
) *ReportService {
	return &ReportService{
		roster:    roster,
		schedule:  schedule,
		manager:   manager,
		publisher: publisher,
		Now:       time.Now,
	}
}

// reportSnapshot is the JSON document published alongside the spreadsheet.
type reportSnapshot struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Members     []MemberView `json:"members"`
	Socialings  []EventView  `json:"socialings"`
}

// Generate builds both report tabs and publishes the JSON snapshot.
func (s *ReportService) Generate(ctx context.Context) error {
	members, err := s.roster.MemberViews(ctx, app.MemberFilter{}, app.SortLatest)
	if err != nil {
		return fmt.Errorf("failed to build member views: %w", err)
	}

	events, err := s.schedule.EventViews(ctx, app.SortNewest, nil, "")
	if err != nil {
		return fmt.Errorf("failed to build event views: %w", err)
	}

	if err := s.manager.WriteTab(ctx, sheets.RosterTabName, memberHeader(), memberRows(members)); err != nil {
		return fmt.Errorf("failed to write roster tab: %w", err)
	}

	if err := s.manager.WriteTab(ctx, sheets.ScheduleTabName, eventHeader(), eventRows(events)); err != nil {
		return fmt.Errorf("failed to write schedule tab: %w", err)
	}

	log.Info().
		Int("members", len(members)).
		Int("socialings", len(events)).
		Msg("Report tabs written")

	if s.publisher == nil {
		return nil
	}

	snapshot := reportSnapshot{
		GeneratedAt: s.Now(),
		Members:     members,
		Socialings:  events,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	filename := fmt.Sprintf("club_report_%s.json", datemath.DateKey(s.Now()))
	if err := s.publisher.PublishSnapshot(data, filename); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	return nil
}

func memberHeader() []string {
	return []string{
		"Nickname", "Name", "Sex", "Age", "Region",
		"Status", "Action", "Attended", "NoShows", "Last Seen",
	}
}

func memberRows(members []MemberView) [][]string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.Nickname,
			m.Name,
			m.Sex,
			strconv.Itoa(m.Age),
			m.Region,
			string(m.Stats.StatusFlag),
			string(m.Stats.ActionReason),
			strconv.Itoa(m.Stats.AttendedCount),
			strconv.Itoa(m.Stats.NoShowCount),
			m.LastSeenText,
		})
	}
	return rows
}

func eventHeader() []string {
	return []string{
		"Title", "Date", "Location", "Status", "Host",
		"Registered", "Attended", "NoShows", "Flags",
	}
}

func eventRows(events []EventView) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		host := ""
		if e.Host != nil {
			host = e.Host.Nickname
		}
		rows = append(rows, []string{
			e.Title,
			datemath.FormatDateWithDay(e.Date),
			e.Location,
			e.StatusLabel,
			host,
			strconv.Itoa(e.Stats.RegisteredCount),
			strconv.Itoa(e.Stats.AttendedCount),
			strconv.Itoa(e.Stats.NoShowCount),
			eventFlags(e),
		})
	}
	return rows
}

func eventFlags(e EventView) string {
	switch {
	case e.NeedsAttention && e.Stats.GenderRiskFlag:
		return "attention, gender-risk"
	case e.NeedsAttention:
		return "attention"
	case e.Stats.GenderRiskFlag:
		return "gender-risk"
	default:
		return ""
	}
}

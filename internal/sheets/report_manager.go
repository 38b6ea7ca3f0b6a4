package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Tab names for the weekly operations report.
const (
	RosterTabName   = "Members"
	ScheduleTabName = "Socialings"
)

// ReportManager writes club report tabs through the SheetsAPI boundary.
type ReportManager struct {
	api           SheetsAPI
	spreadsheetID string
}

// NewReportManager creates a report manager for one spreadsheet.
func NewReportManager(api SheetsAPI, spreadsheetID string) *ReportManager {
	return &ReportManager{api: api, spreadsheetID: spreadsheetID}
}

// EnsureTab creates the named sheet if it does not already exist.
func (m *ReportManager) EnsureTab(ctx context.Context, tabName string) error {
	exists, err := m.api.SheetExists(ctx, m.spreadsheetID, tabName)
	if err != nil {
		return fmt.Errorf("failed to check sheet %s: %w", tabName, err)
	}
	if exists {
		return nil
	}

	if err := m.api.CreateSheet(ctx, m.spreadsheetID, tabName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", tabName, err)
	}

	log.Info().Str("tab", tabName).Msg("Created report sheet")
	return nil
}

// WriteTab replaces the full contents of a tab with a header row followed
// by the report rows.
func (m *ReportManager) WriteTab(ctx context.Context, tabName string, header []string, rows [][]string) error {
	if err := m.EnsureTab(ctx, tabName); err != nil {
		return err
	}

	if err := m.api.ClearRange(ctx, m.spreadsheetID, tabName); err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", tabName, err)
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, toInterfaceRow(header))
	for _, row := range rows {
		values = append(values, toInterfaceRow(row))
	}

	range_ := fmt.Sprintf("%s!A1", tabName)
	if err := m.api.UpdateRange(ctx, m.spreadsheetID, range_, values); err != nil {
		return fmt.Errorf("failed to write sheet %s: %w", tabName, err)
	}

	log.Debug().
		Str("tab", tabName).
		Int("rows", len(rows)).
		Msg("Wrote report tab")

	return nil
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

package socialing

import (
	"strings"

	"clubops/internal/app"
)

// FilterEventsByTags keeps events matching any selected tag. An empty tag
// set passes everything. The checked lookup overlays externally-toggled
// attention-resolved state on top of the persisted IsChecked flag.
//
// Pure function: Does not modify input slice, returns new filtered slice.
func FilterEventsByTags(events []app.Socialing, tags []app.EventTag, checked map[string]bool) []app.Socialing {
	if len(tags) == 0 {
		return events
	}

	var filtered []app.Socialing
	for _, event := range events {
		if matchesAnyTag(event, tags, checked) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func matchesAnyTag(event app.Socialing, tags []app.EventTag, checked map[string]bool) bool {
	stats := ComputeParticipantStats(event.Participants)
	confirmed := IsConfirmed(event, stats)

	for _, tag := range tags {
		switch tag {
		case app.TagScheduled:
			if event.Status == app.SocialingScheduled && !confirmed {
				return true
			}
		case app.TagConfirmed:
			if confirmed {
				return true
			}
		case app.TagDone:
			if event.Status == app.SocialingDone {
				return true
			}
		case app.TagCancelled:
			if event.Status == app.SocialingCancelled {
				return true
			}
		case app.TagNeedsCheck:
			resolved := event.IsChecked || checked[event.ID]
			if NeedsAttention(event, stats) && !resolved {
				return true
			}
		}
	}
	return false
}

// FilterEventsBySearch keeps events whose title, location, or host nickname
// contains the query, case-insensitive. A blank query passes everything.
func FilterEventsBySearch(events []app.Socialing, query string) []app.Socialing {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return events
	}

	var filtered []app.Socialing
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Title), q) ||
			strings.Contains(strings.ToLower(event.Location), q) {
			filtered = append(filtered, event)
			continue
		}
		if host := FindHost(event.Participants); host != nil &&
			strings.Contains(strings.ToLower(host.Nickname), q) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// FilterGenderRiskOnly keeps events whose attended group trips the gender
// risk heuristic.
func FilterGenderRiskOnly(events []app.Socialing) []app.Socialing {
	var filtered []app.Socialing
	for _, event := range events {
		if ComputeParticipantStats(event.Participants).GenderRiskFlag {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

package socialing

import (
	"fmt"
	"time"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
)

// CompletionDecision describes the auto-completion action for one socialing:
// a scheduled socialing whose date has passed transitions to done, and its
// registered participants transition to attended.
type CompletionDecision struct {
	ShouldComplete     bool
	EventID            string
	ParticipantsToMark []string
	Reason             string
}

// DetermineAutoCompletion decides whether a socialing should be auto-completed
// against the supplied now. Only scheduled socialings dated strictly before
// the start of today qualify; done and cancelled are terminal. Applying the
// resulting decision twice has no additional effect.
//
// Pure function: Takes now as parameter to enable deterministic testing.
func DetermineAutoCompletion(event app.Socialing, now time.Time) CompletionDecision {
	if event.Status != app.SocialingScheduled {
		return CompletionDecision{
			EventID: event.ID,
			Reason:  fmt.Sprintf("Status %q is not scheduled", event.Status),
		}
	}

	if datemath.DaysBetween(event.Date, now) <= 0 {
		return CompletionDecision{
			EventID: event.ID,
			Reason:  "Event date has not passed",
		}
	}

	var toMark []string
	for _, p := range event.Participants {
		if p.Status == app.ParticipantRegistered {
			toMark = append(toMark, p.ID)
		}
	}

	return CompletionDecision{
		ShouldComplete:     true,
		EventID:            event.ID,
		ParticipantsToMark: toMark,
		Reason:             fmt.Sprintf("Past-dated scheduled socialing with %d registered participants", len(toMark)),
	}
}

// PlanAutoCompletion returns decisions for every socialing that should be
// completed, skipping those that should not.
func PlanAutoCompletion(events []app.Socialing, now time.Time) []CompletionDecision {
	var plan []CompletionDecision
	for _, event := range events {
		if decision := DetermineAutoCompletion(event, now); decision.ShouldComplete {
			plan = append(plan, decision)
		}
	}
	return plan
}

// ApplyCompletion returns a copy of the socialing with the completion applied:
// status done and every registered participant marked attended. Already-done
// socialings come back unchanged, which makes the transition idempotent.
func ApplyCompletion(event app.Socialing) app.Socialing {
	if event.Status != app.SocialingScheduled {
		return event
	}

	completed := event
	completed.Status = app.SocialingDone
	completed.Participants = make([]app.Participant, len(event.Participants))
	copy(completed.Participants, event.Participants)
	for i := range completed.Participants {
		if completed.Participants[i].Status == app.ParticipantRegistered {
			completed.Participants[i].Status = app.ParticipantAttended
		}
	}
	return completed
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clubops/internal/domain/socialing"
)

// ReconciliationService runs the auto-completion maintenance job: every
// scheduled socialing dated before today transitions to done and its
// registered participants to attended. The policy itself lives in the
// domain package; this service only executes the resulting plan, which
// keeps the read path free of side effects.
type ReconciliationService struct {
	store SocialingCompleter

	// Now is injectable for deterministic tests; defaults to wall clock.
	Now func() time.Time
}

// NewReconciliationService creates the maintenance job over the given store.
func NewReconciliationService(store SocialingCompleter) *ReconciliationService {
	return &ReconciliationService{store: store, Now: time.Now}
}

// Run computes and executes the completion plan once. It is idempotent:
// a second run over the same data finds nothing to do. Returns the number
// of socialings completed.
func (s *ReconciliationService) Run(ctx context.Context) (int, error) {
	events, err := s.store.ListSocialings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load socialings for reconciliation: %w", err)
	}

	plan := socialing.PlanAutoCompletion(events, s.Now())
	if len(plan) == 0 {
		log.Debug().Msg("No past-dated scheduled socialings to complete")
		return 0, nil
	}

	completed := 0
	for _, decision := range plan {
		if err := s.store.CompleteSocialing(ctx, decision.EventID); err != nil {
			return completed, fmt.Errorf("failed to complete socialing %s: %w", decision.EventID, err)
		}
		completed++
		log.Info().
			Str("socialing_id", decision.EventID).
			Int("participants_marked", len(decision.ParticipantsToMark)).
			Msg("Auto-completed past socialing")
	}

	return completed, nil
}

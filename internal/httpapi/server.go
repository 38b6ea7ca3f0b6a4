package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/application/services"
	"clubops/internal/store/postgres"
)

// MemberWriter covers the member admin operations exposed over HTTP.
type MemberWriter interface {
	AddMember(ctx context.Context, m postgres.NewMember) (string, error)
	UpdateMember(ctx context.Context, id string, u postgres.MemberUpdate) error
	DisableMember(ctx context.Context, id, reason string) error
	RestoreMember(ctx context.Context, id string) error
	FindMemberByNickname(ctx context.Context, nickname string) (*app.Member, error)
}

// SocialingWriter covers the socialing admin operations exposed over HTTP.
type SocialingWriter interface {
	AddSocialing(ctx context.Context, n postgres.NewSocialing) (string, error)
	UpdateSocialing(ctx context.Context, id string, u postgres.SocialingUpdate) error
	CancelSocialing(ctx context.Context, id string) error
	SetSocialingChecked(ctx context.Context, id string, checked bool) error
	SetParticipantStatus(ctx context.Context, socialingID, memberID string, status app.ParticipantStatus) error
}

// AdminStore is the write surface the HTTP adapter needs from the store.
type AdminStore interface {
	MemberWriter
	SocialingWriter
}

// Server exposes the read model and the admin write operations over HTTP.
type Server struct {
	roster    *services.RosterService
	schedule  *services.ScheduleService
	reconcile *services.ReconciliationService
	store     AdminStore
}

// NewServer wires the HTTP adapter over the application services and store.
func NewServer(
	roster *services.RosterService,
	schedule *services.ScheduleService,
	reconcile *services.ReconciliationService,
	store AdminStore,
) *Server {
	return &Server{
		roster:    roster,
		schedule:  schedule,
		reconcile: reconcile,
		store:     store,
	}
}

// Router constructs the API HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/members", s.handleListMembers)
	r.Post("/members", s.handleAddMember)
	r.Patch("/members/{id}", s.handleUpdateMember)
	r.Post("/members/{id}/disable", s.handleDisableMember)
	r.Post("/members/{id}/restore", s.handleRestoreMember)

	r.Get("/socialings", s.handleListSocialings)
	r.Post("/socialings", s.handleAddSocialing)
	r.Patch("/socialings/{id}", s.handleUpdateSocialing)
	r.Post("/socialings/{id}/cancel", s.handleCancelSocialing)
	r.Post("/socialings/{id}/checked", s.handleSetChecked)
	r.Post("/socialings/{id}/participants/{memberID}/status", s.handleSetParticipantStatus)

	r.Get("/calendar/week", s.handleCalendarWeek)
	r.Get("/calendar/month", s.handleCalendarMonth)

	r.Post("/admin/reconcile", s.handleReconcile)

	return r
}

// ListenAndServe runs the HTTP server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Msg("HTTP server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/store/postgres"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := app.MemberFilter{
		Status: q.Get("status"),
		Sex:    q.Get("sex"),
		Search: q.Get("search"),
	}
	sort := app.MemberSortOption(q.Get("sort"))
	if sort == "" {
		sort = app.SortLatest
	}

	views, err := s.roster.MemberViews(r.Context(), filter, sort)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list members")
		writeError(w, r, http.StatusInternalServerError, "failed to list members")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"members": views})
}

func (s *Server) handleListSocialings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	order := app.EventSortOrder(q.Get("order"))
	if order == "" {
		order = app.SortNewest
	}

	var tags []app.EventTag
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			tags = append(tags, app.EventTag(strings.TrimSpace(t)))
		}
	}

	views, err := s.schedule.EventViews(r.Context(), order, tags, q.Get("search"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list socialings")
		writeError(w, r, http.StatusInternalServerError, "failed to list socialings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"socialings": views})
}

// dateParam reads the optional ?date=YYYY-MM-DD parameter, defaulting to now.
func (s *Server) dateParam(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.schedule.Now(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func (s *Server) handleCalendarWeek(w http.ResponseWriter, r *http.Request) {
	date, ok := s.dateParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	days, err := s.schedule.WeekView(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build week view")
		writeError(w, r, http.StatusInternalServerError, "failed to build week view")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"days": days})
}

func (s *Server) handleCalendarMonth(w http.ResponseWriter, r *http.Request) {
	date, ok := s.dateParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	days, err := s.schedule.MonthView(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build month view")
		writeError(w, r, http.StatusInternalServerError, "failed to build month view")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"days": days})
}

func (s *Server) handleSetChecked(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.SetSocialingChecked(r.Context(), id, body.Checked); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "socialing not found")
			return
		}
		log.Error().Err(err).Str("socialing_id", id).Msg("Failed to set checked flag")
		writeError(w, r, http.StatusInternalServerError, "failed to update socialing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "checked": body.Checked})
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	completed, err := s.reconcile.Run(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Reconciliation failed")
		writeError(w, r, http.StatusInternalServerError, "reconciliation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"completed": completed})
}

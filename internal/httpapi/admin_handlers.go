package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clubops/internal/app"
	"clubops/internal/domain/datemath"
	"clubops/internal/store/postgres"
)

type memberRequest struct {
	Nickname  string     `json:"nickname"`
	Name      string     `json:"name"`
	Sex       string     `json:"sex"`
	BirthYear int        `json:"birth_year"`
	Region    string     `json:"region"`
	JoinDate  *time.Time `json:"join_date"`
}

// validSex accepts the schema's M/F contract; empty means not provided.
func validSex(sex string) bool {
	return sex == "" || sex == "M" || sex == "F"
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var body memberRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Nickname == "" {
		writeError(w, r, http.StatusBadRequest, "nickname is required")
		return
	}
	if !validSex(body.Sex) {
		writeError(w, r, http.StatusBadRequest, "sex must be M or F")
		return
	}

	existing, err := s.store.FindMemberByNickname(r.Context(), body.Nickname)
	if err != nil && !errors.Is(err, postgres.ErrNotFound) {
		log.Error().Err(err).Msg("Failed to check nickname")
		writeError(w, r, http.StatusInternalServerError, "failed to add member")
		return
	}
	if existing != nil {
		writeError(w, r, http.StatusConflict, "nickname already taken")
		return
	}

	id, err := s.store.AddMember(r.Context(), postgres.NewMember{
		Nickname:  body.Nickname,
		Name:      body.Name,
		Sex:       body.Sex,
		BirthYear: body.BirthYear,
		Region:    body.Region,
		JoinDate:  body.JoinDate,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to add member")
		writeError(w, r, http.StatusInternalServerError, "failed to add member")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

type memberUpdateRequest struct {
	Nickname  *string    `json:"nickname"`
	Name      *string    `json:"name"`
	Sex       *string    `json:"sex"`
	BirthYear *int       `json:"birth_year"`
	Region    *string    `json:"region"`
	JoinDate  *time.Time `json:"join_date"`
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body memberUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Sex != nil && !validSex(*body.Sex) {
		writeError(w, r, http.StatusBadRequest, "sex must be M or F")
		return
	}

	update := postgres.MemberUpdate{
		Nickname:  body.Nickname,
		Name:      body.Name,
		Sex:       body.Sex,
		BirthYear: body.BirthYear,
		Region:    body.Region,
		JoinDate:  body.JoinDate,
	}

	if err := s.store.UpdateMember(r.Context(), id, update); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "member not found")
			return
		}
		log.Error().Err(err).Str("member_id", id).Msg("Failed to update member")
		writeError(w, r, http.StatusInternalServerError, "failed to update member")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
}

func (s *Server) handleDisableMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.DisableMember(r.Context(), id, body.Reason); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "member not found")
			return
		}
		log.Error().Err(err).Str("member_id", id).Msg("Failed to disable member")
		writeError(w, r, http.StatusInternalServerError, "failed to disable member")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": app.MemberDisabled})
}

func (s *Server) handleRestoreMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.RestoreMember(r.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "member not found")
			return
		}
		log.Error().Err(err).Str("member_id", id).Msg("Failed to restore member")
		writeError(w, r, http.StatusInternalServerError, "failed to restore member")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": app.MemberActive})
}

type participantRequest struct {
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type socialingRequest struct {
	Title           string               `json:"title"`
	Date            string               `json:"date"`
	Location        string               `json:"location"`
	HasAlcohol      bool                 `json:"has_alcohol"`
	IsNight         bool                 `json:"is_night"`
	MinParticipants int                  `json:"min_participants"`
	MaxParticipants int                  `json:"max_participants"`
	Participants    []participantRequest `json:"participants"`
}

func participantEntries(reqs []participantRequest) []postgres.ParticipantEntry {
	entries := make([]postgres.ParticipantEntry, 0, len(reqs))
	for _, p := range reqs {
		role := app.RoleMember
		if p.Role == string(app.RoleHost) {
			role = app.RoleHost
		}
		entries = append(entries, postgres.ParticipantEntry{
			Nickname: p.Nickname,
			Role:     role,
			Status:   app.ParticipantRegistered,
		})
	}
	return entries
}

func (s *Server) handleAddSocialing(w http.ResponseWriter, r *http.Request) {
	var body socialingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Title == "" {
		writeError(w, r, http.StatusBadRequest, "title is required")
		return
	}

	date, err := datemath.ParseEventDate(body.Date, s.schedule.Now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date")
		return
	}

	id, err := s.store.AddSocialing(r.Context(), postgres.NewSocialing{
		Title:           body.Title,
		Date:            date,
		Location:        body.Location,
		HasAlcohol:      body.HasAlcohol,
		IsNight:         body.IsNight,
		MinParticipants: body.MinParticipants,
		MaxParticipants: body.MaxParticipants,
		Participants:    participantEntries(body.Participants),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to add socialing")
		writeError(w, r, http.StatusInternalServerError, "failed to add socialing")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

type socialingUpdateRequest struct {
	Title           *string              `json:"title"`
	Date            *string              `json:"date"`
	Location        *string              `json:"location"`
	HasAlcohol      *bool                `json:"has_alcohol"`
	IsNight         *bool                `json:"is_night"`
	MinParticipants *int                 `json:"min_participants"`
	MaxParticipants *int                 `json:"max_participants"`
	Participants    []participantRequest `json:"participants"`
}

func (s *Server) handleUpdateSocialing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body socialingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	update := postgres.SocialingUpdate{
		Title:           body.Title,
		Location:        body.Location,
		HasAlcohol:      body.HasAlcohol,
		IsNight:         body.IsNight,
		MinParticipants: body.MinParticipants,
		MaxParticipants: body.MaxParticipants,
	}
	if body.Date != nil {
		date, err := datemath.ParseEventDate(*body.Date, s.schedule.Now())
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date")
			return
		}
		update.Date = &date
	}
	if body.Participants != nil {
		update.Participants = participantEntries(body.Participants)
	}

	if err := s.store.UpdateSocialing(r.Context(), id, update); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "socialing not found")
			return
		}
		log.Error().Err(err).Str("socialing_id", id).Msg("Failed to update socialing")
		writeError(w, r, http.StatusInternalServerError, "failed to update socialing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
}

func (s *Server) handleCancelSocialing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.CancelSocialing(r.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "socialing not found")
			return
		}
		log.Error().Err(err).Str("socialing_id", id).Msg("Failed to cancel socialing")
		writeError(w, r, http.StatusInternalServerError, "failed to cancel socialing")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": app.SocialingCancelled})
}

func (s *Server) handleSetParticipantStatus(w http.ResponseWriter, r *http.Request) {
	socialingID := chi.URLParam(r, "id")
	memberID := chi.URLParam(r, "memberID")

	var body struct {
		Status app.ParticipantStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	switch body.Status {
	case app.ParticipantRegistered, app.ParticipantAttended, app.ParticipantNoShow:
	default:
		writeError(w, r, http.StatusBadRequest, "invalid participant status")
		return
	}

	if err := s.store.SetParticipantStatus(r.Context(), socialingID, memberID, body.Status); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "participant not found")
			return
		}
		log.Error().Err(err).
			Str("socialing_id", socialingID).
			Str("member_id", memberID).
			Msg("Failed to set participant status")
		writeError(w, r, http.StatusInternalServerError, "failed to set participant status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"socialing_id": socialingID,
		"member_id":    memberID,
		"status":       body.Status,
	})
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clubops/internal/app"
)

// ParticipantEntry names a participant by nickname when creating or editing
// a socialing; nicknames are resolved to member ids at write time, and
// entries without a matching member are dropped.
type ParticipantEntry struct {
	Nickname string
	Role     app.ParticipantRole
	Status   app.ParticipantStatus
}

// NewSocialing carries the fields accepted when creating a socialing.
type NewSocialing struct {
	Title           string
	Date            time.Time
	Location        string
	HasAlcohol      bool
	IsNight         bool
	MinParticipants int
	MaxParticipants int
	Participants    []ParticipantEntry
}

// SocialingUpdate carries a partial update; nil fields are left unchanged.
// A non-nil Participants replaces the list, preserving the persisted
// status and role of members already on it.
type SocialingUpdate struct {
	Title           *string
	Date            *time.Time
	Location        *string
	HasAlcohol      *bool
	IsNight         *bool
	MinParticipants *int
	MaxParticipants *int
	Participants    []ParticipantEntry
}

// ListSocialings returns all socialings newest-first with their participant
// lists joined to member identity. The read path performs no writes; past
// scheduled socialings are completed by the reconciliation job instead.
func (s *Store) ListSocialings(ctx context.Context) ([]app.Socialing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, date, COALESCE(location, ''), status,
		       has_alcohol, is_night,
		       COALESCE(min_participants, 0), COALESCE(max_participants, 0),
		       is_checked
		FROM socialings
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query socialings: %w", err)
	}
	defer rows.Close()

	var socialings []app.Socialing
	index := make(map[string]int)
	for rows.Next() {
		var sc app.Socialing
		if err := rows.Scan(
			&sc.ID, &sc.Title, &sc.Date, &sc.Location, &sc.Status,
			&sc.HasAlcohol, &sc.IsNight,
			&sc.MinParticipants, &sc.MaxParticipants, &sc.IsChecked,
		); err != nil {
			return nil, fmt.Errorf("failed to scan socialing row: %w", err)
		}
		index[sc.ID] = len(socialings)
		socialings = append(socialings, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read socialing rows: %w", err)
	}

	prows, err := s.pool.Query(ctx, `
		SELECT p.socialing_id, m.id, m.nickname, COALESCE(m.sex, ''), COALESCE(m.name, ''),
		       p.status, p.role
		FROM participants p
		JOIN members m ON m.id = p.member_id
		ORDER BY p.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var socialingID string
		var p app.Participant
		if err := prows.Scan(&socialingID, &p.ID, &p.Nickname, &p.Sex, &p.Name, &p.Status, &p.Role); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		if i, ok := index[socialingID]; ok {
			socialings[i].Participants = append(socialings[i].Participants, p)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participant rows: %w", err)
	}

	return socialings, nil
}

// AddSocialing inserts a scheduled socialing with its participant list and
// returns its id.
func (s *Store) AddSocialing(ctx context.Context, n NewSocialing) (string, error) {
	id := uuid.NewString()

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO socialings (id, title, date, location, status, has_alcohol, is_night,
			                        min_participants, max_participants, is_checked, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'scheduled', $5, $6, NULLIF($7, 0), NULLIF($8, 0), false, now(), now())
		`, id, n.Title, n.Date, n.Location, n.HasAlcohol, n.IsNight, n.MinParticipants, n.MaxParticipants)
		if err != nil {
			return fmt.Errorf("failed to insert socialing: %w", err)
		}

		return s.insertParticipants(ctx, tx, id, n.Participants, nil)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// UpdateSocialing applies the non-nil fields of the update. When the update
// replaces the participant list, persisted participant status and role are
// preserved for members that remain on it.
func (s *Store) UpdateSocialing(ctx context.Context, id string, u SocialingUpdate) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE socialings SET
				title            = COALESCE($2, title),
				date             = COALESCE($3, date),
				location         = COALESCE($4, location),
				has_alcohol      = COALESCE($5, has_alcohol),
				is_night         = COALESCE($6, is_night),
				min_participants = COALESCE($7, min_participants),
				max_participants = COALESCE($8, max_participants),
				updated_at       = now()
			WHERE id = $1
		`, id, u.Title, u.Date, u.Location, u.HasAlcohol, u.IsNight, u.MinParticipants, u.MaxParticipants)
		if err != nil {
			return fmt.Errorf("failed to update socialing: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		if u.Participants == nil {
			return nil
		}

		existing, err := existingParticipantState(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM participants WHERE socialing_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear participants: %w", err)
		}

		return s.insertParticipants(ctx, tx, id, u.Participants, existing)
	})
}

type participantState struct {
	status app.ParticipantStatus
	role   app.ParticipantRole
}

func existingParticipantState(ctx context.Context, tx pgx.Tx, socialingID string) (map[string]participantState, error) {
	rows, err := tx.Query(ctx, `
		SELECT member_id, status, role FROM participants WHERE socialing_id = $1
	`, socialingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing participants: %w", err)
	}
	defer rows.Close()

	state := make(map[string]participantState)
	for rows.Next() {
		var memberID string
		var st participantState
		if err := rows.Scan(&memberID, &st.status, &st.role); err != nil {
			return nil, fmt.Errorf("failed to scan existing participant: %w", err)
		}
		state[memberID] = st
	}
	return state, rows.Err()
}

// insertParticipants resolves nicknames to member ids and inserts the
// entries that matched; prior per-member state wins over entry values.
func (s *Store) insertParticipants(
	ctx context.Context,
	tx pgx.Tx,
	socialingID string,
	entries []ParticipantEntry,
	prior map[string]participantState,
) error {
	if len(entries) == 0 {
		return nil
	}

	nicknames := make([]string, 0, len(entries))
	for _, e := range entries {
		nicknames = append(nicknames, e.Nickname)
	}

	rows, err := tx.Query(ctx, `SELECT id, nickname FROM members WHERE nickname = ANY($1)`, nicknames)
	if err != nil {
		return fmt.Errorf("failed to resolve participant nicknames: %w", err)
	}
	defer rows.Close()

	idByNickname := make(map[string]string)
	for rows.Next() {
		var memberID, nickname string
		if err := rows.Scan(&memberID, &nickname); err != nil {
			return fmt.Errorf("failed to scan member id: %w", err)
		}
		idByNickname[nickname] = memberID
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read member ids: %w", err)
	}

	for _, e := range entries {
		memberID, ok := idByNickname[e.Nickname]
		if !ok {
			// Unknown nickname, skip; participants can be fixed up later
			continue
		}

		status := e.Status
		if status == "" {
			status = app.ParticipantRegistered
		}
		role := e.Role
		if role == "" {
			role = app.RoleMember
		}
		if st, ok := prior[memberID]; ok {
			status = st.status
			if e.Role == "" {
				role = st.role
			}
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO participants (socialing_id, member_id, status, role, created_at)
			VALUES ($1, $2, $3, $4, now())
		`, socialingID, memberID, status, role); err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	return nil
}

// CancelSocialing moves a socialing to the terminal cancelled status.
func (s *Store) CancelSocialing(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE socialings SET status = 'cancelled', updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel socialing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSocialingChecked toggles the attention-resolved flag.
func (s *Store) SetSocialingChecked(ctx context.Context, id string, checked bool) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE socialings SET is_checked = $2, updated_at = now() WHERE id = $1
	`, id, checked)
	if err != nil {
		return fmt.Errorf("failed to set checked flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetParticipantStatus changes one participant's status, e.g. toggling a
// no-show after the event.
func (s *Store) SetParticipantStatus(ctx context.Context, socialingID, memberID string, status app.ParticipantStatus) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE participants SET status = $3 WHERE socialing_id = $1 AND member_id = $2
	`, socialingID, memberID, status)
	if err != nil {
		return fmt.Errorf("failed to set participant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CompleteSocialing executes the auto-completion transition in one
// transaction: the socialing becomes done and its registered participants
// become attended. Re-running it on a done socialing is a no-op.
func (s *Store) CompleteSocialing(ctx context.Context, id string) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE socialings SET status = 'done', updated_at = now()
			WHERE id = $1 AND status = 'scheduled'
		`, id); err != nil {
			return fmt.Errorf("failed to complete socialing: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE participants SET status = 'attended'
			WHERE socialing_id = $1 AND status = 'registered'
			  AND EXISTS (SELECT 1 FROM socialings WHERE id = $1 AND status = 'done')
		`, id); err != nil {
			return fmt.Errorf("failed to mark participants attended: %w", err)
		}

		return nil
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clubops/internal/app"
)

// NewMember carries the fields accepted when creating a member.
type NewMember struct {
	Nickname  string
	Name      string
	Sex       string
	BirthYear int
	Region    string
	JoinDate  *time.Time
}

// MemberUpdate carries a partial update; nil fields are left unchanged.
type MemberUpdate struct {
	Nickname  *string
	Name      *string
	Sex       *string
	BirthYear *int
	Region    *string
	JoinDate  *time.Time
}

// ListMembers returns all members newest-first, each joined with their
// participation history against completed socialings.
func (s *Store) ListMembers(ctx context.Context) ([]app.Member, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, nickname,
		       COALESCE(name, ''), COALESCE(sex, ''), COALESCE(region, ''),
		       COALESCE(birth_year, 0),
		       join_date, status, COALESCE(disabled_reason, ''), disabled_at
		FROM members
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []app.Member
	for rows.Next() {
		var m app.Member
		if err := rows.Scan(
			&m.ID, &m.Nickname, &m.Name, &m.Sex, &m.Region, &m.BirthYear,
			&m.JoinDate, &m.Status, &m.DisabledReason, &m.DisabledAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read member rows: %w", err)
	}

	logs, err := s.participationLogs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].ParticipationLogs = logs[members[i].ID]
	}

	return members, nil
}

// participationLogs loads participation rows against done socialings,
// bucketed by member id.
func (s *Store) participationLogs(ctx context.Context) (map[string][]app.ParticipationLog, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.member_id, s.id, s.title, s.date, p.status, p.role
		FROM participants p
		JOIN socialings s ON s.id = p.socialing_id
		WHERE s.status = 'done'
		ORDER BY s.date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participation logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[string][]app.ParticipationLog)
	for rows.Next() {
		var memberID string
		var l app.ParticipationLog
		if err := rows.Scan(&memberID, &l.EventID, &l.EventTitle, &l.Date, &l.Status, &l.Role); err != nil {
			return nil, fmt.Errorf("failed to scan participation row: %w", err)
		}
		logs[memberID] = append(logs[memberID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participation rows: %w", err)
	}
	return logs, nil
}

// AddMember inserts a new active member and returns its id.
// The join date defaults to today when absent.
func (s *Store) AddMember(ctx context.Context, m NewMember) (string, error) {
	id := uuid.NewString()

	joinDate := time.Now()
	if m.JoinDate != nil {
		joinDate = *m.JoinDate
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO members (id, nickname, name, sex, birth_year, region, join_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0), $6, $7, 'active', now(), now())
	`, id, m.Nickname, m.Name, m.Sex, m.BirthYear, m.Region, joinDate)
	if err != nil {
		return "", fmt.Errorf("failed to insert member: %w", err)
	}

	return id, nil
}

// UpdateMember applies the non-nil fields of the update.
func (s *Store) UpdateMember(ctx context.Context, id string, u MemberUpdate) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE members SET
			nickname   = COALESCE($2, nickname),
			name       = COALESCE($3, name),
			sex        = COALESCE($4, sex),
			birth_year = COALESCE($5, birth_year),
			region     = COALESCE($6, region),
			join_date  = COALESCE($7, join_date),
			updated_at = now()
		WHERE id = $1
	`, id, u.Nickname, u.Name, u.Sex, u.BirthYear, u.Region, u.JoinDate)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DisableMember marks a member disabled with the given reason.
func (s *Store) DisableMember(ctx context.Context, id, reason string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE members SET
			status = 'disabled',
			disabled_reason = $2,
			disabled_at = now(),
			updated_at = now()
		WHERE id = $1
	`, id, reason)
	if err != nil {
		return fmt.Errorf("failed to disable member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreMember reactivates a disabled member and clears the disable metadata.
func (s *Store) RestoreMember(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE members SET
			status = 'active',
			disabled_reason = NULL,
			disabled_at = NULL,
			updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to restore member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindMemberByNickname looks a member up by exact nickname, used for
// duplicate checks before insertion. Returns ErrNotFound when absent.
func (s *Store) FindMemberByNickname(ctx context.Context, nickname string) (*app.Member, error) {
	var m app.Member
	err := s.pool.QueryRow(ctx, `
		SELECT id, nickname,
		       COALESCE(name, ''), COALESCE(sex, ''), COALESCE(region, ''),
		       COALESCE(birth_year, 0),
		       join_date, status, COALESCE(disabled_reason, ''), disabled_at
		FROM members
		WHERE lower(nickname) = lower($1)
	`, nickname).Scan(
		&m.ID, &m.Nickname, &m.Name, &m.Sex, &m.Region, &m.BirthYear,
		&m.JoinDate, &m.Status, &m.DisabledReason, &m.DisabledAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member by nickname: %w", err)
	}
	return &m, nil
}

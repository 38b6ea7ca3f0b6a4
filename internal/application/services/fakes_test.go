package services

import (
	"context"
	"errors"
	"time"

	"clubops/internal/app"
)

// fixedNow pins the clock for deterministic derivation in tests.
var fixedNow = time.Date(2025, 12, 2, 15, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fakeStore serves canned snapshots and records completion calls.
type fakeStore struct {
	members    []app.Member
	socialings []app.Socialing

	completed []string
	failNext  error
}

func (f *fakeStore) ListMembers(_ context.Context) ([]app.Member, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	return f.members, nil
}

func (f *fakeStore) ListSocialings(_ context.Context) ([]app.Socialing, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	return f.socialings, nil
}

func (f *fakeStore) CompleteSocialing(_ context.Context, id string) error {
	f.completed = append(f.completed, id)
	for i := range f.socialings {
		if f.socialings[i].ID != id {
			continue
		}
		f.socialings[i].Status = app.SocialingDone
		for j := range f.socialings[i].Participants {
			if f.socialings[i].Participants[j].Status == app.ParticipantRegistered {
				f.socialings[i].Participants[j].Status = app.ParticipantAttended
			}
		}
		return nil
	}
	return errors.New("socialing not found")
}

func member(id, nickname string, logs ...app.ParticipationLog) app.Member {
	join := fixedNow.AddDate(0, -6, 0)
	return app.Member{
		ID:                id,
		Nickname:          nickname,
		Name:              nickname,
		Sex:               "M",
		BirthYear:         1995,
		JoinDate:          &join,
		Status:            app.MemberActive,
		ParticipationLogs: logs,
	}
}

func attendance(daysAgo int) app.ParticipationLog {
	return app.ParticipationLog{
		EventID: "e1",
		Date:    fixedNow.AddDate(0, 0, -daysAgo),
		Status:  app.ParticipantAttended,
		Role:    app.RoleMember,
	}
}

func scheduledSocialing(id, title string, date time.Time, participants ...app.Participant) app.Socialing {
	return app.Socialing{
		ID:           id,
		Title:        title,
		Date:         date,
		Location:     "강남",
		Status:       app.SocialingScheduled,
		Participants: participants,
	}
}

func registered(nickname string) app.Participant {
	return app.Participant{
		ID:       nickname,
		Nickname: nickname,
		Sex:      "F",
		Status:   app.ParticipantRegistered,
		Role:     app.RoleMember,
	}
}

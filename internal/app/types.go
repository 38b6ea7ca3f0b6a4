package app

import "time"

// MemberStatus is the lifecycle status of a member record.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberDisabled MemberStatus = "disabled"
)

// ParticipantStatus tracks a participant's relationship to one socialing.
type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantAttended   ParticipantStatus = "attended"
	ParticipantNoShow     ParticipantStatus = "no_show"
)

// ParticipantRole distinguishes the host from regular members.
type ParticipantRole string

const (
	RoleHost   ParticipantRole = "host"
	RoleMember ParticipantRole = "member"
)

// SocialingStatus is the lifecycle status of a socialing.
// The lifecycle is one-way: scheduled -> done (time-driven) or
// scheduled -> cancelled (explicit action); done and cancelled are terminal.
type SocialingStatus string

const (
	SocialingScheduled SocialingStatus = "scheduled"
	SocialingDone      SocialingStatus = "done"
	SocialingCancelled SocialingStatus = "cancelled"
)

// Member represents a club member as loaded from the members table,
// joined with their participation history against completed socialings.
type Member struct {
	ID                string             `json:"id"`
	Nickname          string             `json:"nickname"`
	Name              string             `json:"name"`
	Sex               string             `json:"sex"`
	Region            string             `json:"region"`
	BirthYear         int                `json:"birth_year"`
	Age               int                `json:"age"`
	JoinDate          *time.Time         `json:"join_date"`
	Status            MemberStatus       `json:"status"`
	DisabledReason    string             `json:"disabled_reason,omitempty"`
	DisabledAt        *time.Time         `json:"disabled_at,omitempty"`
	ParticipationLogs []ParticipationLog `json:"participation_logs"`
}

// ParticipationLog is one row of a member's attendance history.
type ParticipationLog struct {
	EventID    string            `json:"event_id"`
	EventTitle string            `json:"event_title"`
	Date       time.Time         `json:"date"`
	Status     ParticipantStatus `json:"status"`
	Role       ParticipantRole   `json:"role"`
}

// Participant is one member's entry in a socialing's participant list.
// At most one participant carries RoleHost; that invariant is produced
// upstream and assumed, not enforced here.
type Participant struct {
	ID       string            `json:"id"`
	Nickname string            `json:"nickname"`
	Sex      string            `json:"sex"`
	Name     string            `json:"name"`
	Status   ParticipantStatus `json:"status"`
	Role     ParticipantRole   `json:"role"`
}

// Socialing represents a scheduled social meetup with its participant list.
type Socialing struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Date            time.Time       `json:"date"`
	Location        string          `json:"location"`
	Status          SocialingStatus `json:"status"`
	HasAlcohol      bool            `json:"has_alcohol"`
	IsNight         bool            `json:"is_night"`
	MinParticipants int             `json:"min_participants"`
	MaxParticipants int             `json:"max_participants"`
	IsChecked       bool            `json:"is_checked"`
	Participants    []Participant   `json:"participants"`
}

// MemberSortOption selects the ordering used by roster.SortMembers.
type MemberSortOption string

const (
	SortNicknameAsc  MemberSortOption = "NICKNAME_ASC"
	SortNameAsc      MemberSortOption = "NAME_ASC"
	SortAgeAsc       MemberSortOption = "AGE_ASC"
	SortActivityDesc MemberSortOption = "ACTIVITY_DESC"
	SortActivityAsc  MemberSortOption = "ACTIVITY_ASC"
	SortLatest       MemberSortOption = "LATEST"
)

// MemberFilter holds the roster filter selections.
// Empty or "ALL" criteria pass everything except as documented on
// roster.FilterMembers.
type MemberFilter struct {
	Status string
	Sex    string
	Search string
}

// EventSortOrder selects the ordering used by socialing.SortEvents.
type EventSortOrder string

const (
	SortNewest EventSortOrder = "newest"
	SortOldest EventSortOrder = "oldest"
)

// EventTag is a display filter tag for socialing lists.
type EventTag string

const (
	TagScheduled  EventTag = "scheduled"
	TagConfirmed  EventTag = "confirmed"
	TagDone       EventTag = "done"
	TagCancelled  EventTag = "cancelled"
	TagNeedsCheck EventTag = "needsCheck"
)

package services

import (
	"context"

	"clubops/internal/app"
)

// MemberReader loads member snapshots from the store.
type MemberReader interface {
	ListMembers(ctx context.Context) ([]app.Member, error)
}

// SocialingReader loads socialing snapshots from the store.
type SocialingReader interface {
	ListSocialings(ctx context.Context) ([]app.Socialing, error)
}

// SocialingCompleter executes the auto-completion transition for one socialing.
type SocialingCompleter interface {
	SocialingReader
	CompleteSocialing(ctx context.Context, id string) error
}

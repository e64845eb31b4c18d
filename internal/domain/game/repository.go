package game

import "context"

// Repository exposes game reconciliation operations. DeleteByGID cascades to
// at-bats and pitches.
type Repository interface {
	FindByGID(ctx context.Context, gid string) (Game, bool, error)
	Create(ctx context.Context, g Game) (Game, error)
	DeleteByGID(ctx context.Context, gid string) error
}

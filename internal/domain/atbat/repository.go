package atbat

import "context"

// Repository reconciles at-bats against storage. FindByNaturalKey applies the
// play_guid-else-num rule for the given game. Update overwrites every field of
// the stored row with the supplied record (last writer wins). BulkCreate is
// the replace-mode fast path and must return the created rows with IDs
// assigned so pitches can be attached.
type Repository interface {
	FindByNaturalKey(ctx context.Context, gameID int64, playGUID string, num int) (Atbat, bool, error)
	Create(ctx context.Context, a Atbat) (Atbat, error)
	Update(ctx context.Context, a Atbat) error
	BulkCreate(ctx context.Context, atbats []Atbat) ([]Atbat, error)
}

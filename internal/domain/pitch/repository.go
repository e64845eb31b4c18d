package pitch

import "context"

// Repository reconciles pitches against storage. The natural-key rule mirrors
// the at-bat one: play_guid when present, else the renamed external id.
type Repository interface {
	FindByNaturalKey(ctx context.Context, atbatID int64, playGUID string, externalID int64) (Pitch, bool, error)
	Create(ctx context.Context, p Pitch) (Pitch, error)
	Update(ctx context.Context, p Pitch) error
	BulkCreate(ctx context.Context, pitches []Pitch) error
}

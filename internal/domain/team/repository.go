package team

import "context"

// Repository describes registry lookups needed by the import pipeline.
type Repository interface {
	GetByShort(ctx context.Context, short string) (Team, bool, error)
}

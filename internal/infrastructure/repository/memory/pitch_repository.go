package memory

import (
	"context"

	"github.com/diamondstats/gameday/internal/domain/pitch"
)

type PitchRepository struct {
	store *Store
}

func NewPitchRepository(store *Store) *PitchRepository {
	return &PitchRepository{store: store}
}

func (r *PitchRepository) FindByNaturalKey(_ context.Context, atbatID int64, playGUID string, externalID int64) (pitch.Pitch, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, row := range r.store.pitches {
		if row.AtbatID != atbatID {
			continue
		}
		if playGUID != "" {
			if row.PlayGUID == playGUID {
				return row, true, nil
			}
			continue
		}
		if row.PlayGUID == "" && row.ExternalIDValue() == externalID {
			return row, true, nil
		}
	}
	return pitch.Pitch{}, false, nil
}

func (r *PitchRepository) Create(_ context.Context, p pitch.Pitch) (pitch.Pitch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPitchID++
	p.ID = r.store.nextPitchID
	r.store.pitches[p.ID] = p
	return p, nil
}

func (r *PitchRepository) Update(_ context.Context, p pitch.Pitch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.pitches[p.ID] = p
	return nil
}

func (r *PitchRepository) BulkCreate(_ context.Context, pitches []pitch.Pitch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range pitches {
		r.store.nextPitchID++
		p.ID = r.store.nextPitchID
		r.store.pitches[p.ID] = p
	}
	return nil
}

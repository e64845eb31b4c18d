package memory

import (
	"context"

	"github.com/diamondstats/gameday/internal/domain/atbat"
)

type AtbatRepository struct {
	store *Store
}

func NewAtbatRepository(store *Store) *AtbatRepository {
	return &AtbatRepository{store: store}
}

func (r *AtbatRepository) FindByNaturalKey(_ context.Context, gameID int64, playGUID string, num int) (atbat.Atbat, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, row := range r.store.atbats {
		if row.GameID != gameID {
			continue
		}
		if playGUID != "" {
			if row.PlayGUID == playGUID {
				return row, true, nil
			}
			continue
		}
		if row.PlayGUID == "" && row.Num == num {
			return row, true, nil
		}
	}
	return atbat.Atbat{}, false, nil
}

func (r *AtbatRepository) Create(_ context.Context, a atbat.Atbat) (atbat.Atbat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextAtbatID++
	a.ID = r.store.nextAtbatID
	r.store.atbats[a.ID] = a
	return a, nil
}

func (r *AtbatRepository) Update(_ context.Context, a atbat.Atbat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.atbats[a.ID] = a
	return nil
}

func (r *AtbatRepository) BulkCreate(_ context.Context, atbats []atbat.Atbat) ([]atbat.Atbat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]atbat.Atbat, 0, len(atbats))
	for _, a := range atbats {
		r.store.nextAtbatID++
		a.ID = r.store.nextAtbatID
		r.store.atbats[a.ID] = a
		out = append(out, a)
	}
	return out, nil
}

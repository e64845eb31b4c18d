package memory

import (
	"context"
	"time"

	"github.com/diamondstats/gameday/internal/domain/game"
)

type GameRepository struct {
	store *Store
}

func NewGameRepository(store *Store) *GameRepository {
	return &GameRepository{store: store}
}

func (r *GameRepository) FindByGID(_ context.Context, gid string) (game.Game, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, row := range r.store.games {
		if row.GID == gid {
			return row, true, nil
		}
	}
	return game.Game{}, false, nil
}

func (r *GameRepository) Create(_ context.Context, g game.Game) (game.Game, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextGameID++
	g.ID = r.store.nextGameID
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	r.store.games[g.ID] = g
	return g, nil
}

func (r *GameRepository) DeleteByGID(_ context.Context, gid string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, row := range r.store.games {
		if row.GID != gid {
			continue
		}
		delete(r.store.games, id)

		// cascade, mirroring the relational schema
		for atbatID, ab := range r.store.atbats {
			if ab.GameID != id {
				continue
			}
			delete(r.store.atbats, atbatID)
			for pitchID, p := range r.store.pitches {
				if p.AtbatID == atbatID {
					delete(r.store.pitches, pitchID)
				}
			}
		}
	}
	return nil
}

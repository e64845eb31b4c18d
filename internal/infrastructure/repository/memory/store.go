package memory

import (
	"sort"
	"sync"

	"github.com/diamondstats/gameday/internal/domain/atbat"
	"github.com/diamondstats/gameday/internal/domain/game"
	"github.com/diamondstats/gameday/internal/domain/pitch"
)

// Store backs the in-memory repositories. Sharing one store lets a game
// delete cascade to its at-bats and pitches the way the relational schema
// does.
type Store struct {
	mu sync.RWMutex

	nextGameID  int64
	nextAtbatID int64
	nextPitchID int64

	games   map[int64]game.Game
	atbats  map[int64]atbat.Atbat
	pitches map[int64]pitch.Pitch
}

func NewStore() *Store {
	return &Store{
		games:   make(map[int64]game.Game),
		atbats:  make(map[int64]atbat.Atbat),
		pitches: make(map[int64]pitch.Pitch),
	}
}

// CountAtbats returns the number of stored at-bats across all games.
func (s *Store) CountAtbats() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.atbats)
}

// CountPitches returns the number of stored pitches across all at-bats.
func (s *Store) CountPitches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pitches)
}

// Atbats returns a snapshot of every stored at-bat in id order. IDs are
// assigned sequentially, so id order is insertion order.
func (s *Store) Atbats() []atbat.Atbat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]atbat.Atbat, 0, len(s.atbats))
	for _, row := range s.atbats {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pitches returns a snapshot of every stored pitch in id order.
func (s *Store) Pitches() []pitch.Pitch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pitch.Pitch, 0, len(s.pitches))
	for _, row := range s.pitches {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Games returns a snapshot of every stored game in id order.
func (s *Store) Games() []game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]game.Game, 0, len(s.games))
	for _, row := range s.games {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/diamondstats/gameday/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	teamsByShort map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByShort := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		short := strings.ToLower(strings.TrimSpace(item.Short))
		if short == "" {
			continue
		}
		teamsByShort[short] = item
	}

	return &TeamRepository{teamsByShort: teamsByShort}
}

func (r *TeamRepository) GetByShort(_ context.Context, short string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teamsByShort[strings.ToLower(strings.TrimSpace(short))]
	return item, ok, nil
}

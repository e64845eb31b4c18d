package postgres

import (
	"time"

	"github.com/diamondstats/gameday/internal/domain/game"
)

type gameTableModel struct {
	ID         int64     `db:"id"`
	GID        string    `db:"gid"`
	Date       time.Time `db:"date"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func gameToTableModel(g game.Game) gameTableModel {
	return gameTableModel{
		ID:         g.ID,
		GID:        g.GID,
		Date:       g.Date,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
	}
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:         m.ID,
		GID:        m.GID,
		Date:       m.Date,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

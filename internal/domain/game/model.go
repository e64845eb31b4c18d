package game

import (
	"fmt"
	"time"
)

// Game is one published game, keyed by its canonical gid string
// (date plus both team codes plus the double-header digit).
type Game struct {
	ID         int64
	GID        string
	Date       time.Time
	HomeTeamID int64
	AwayTeamID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (g Game) Validate() error {
	if g.GID == "" {
		return fmt.Errorf("game gid is required")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.HomeTeamID <= 0 || g.AwayTeamID <= 0 {
		return fmt.Errorf("game home and away teams are required")
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diamondstats/gameday/internal/domain/game"
	qb "github.com/diamondstats/gameday/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) FindByGID(ctx context.Context, gid string) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("gid", gid)).
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game by gid query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game by gid: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (game.Game, error) {
	row := gameToTableModel(g)
	query, args, err := qb.InsertModel("games", row, "RETURNING id, created_at, updated_at",
		"id", "created_at", "updated_at")
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	return g, nil
}

// DeleteByGID removes the game row; at-bats and pitches go with it through
// the ON DELETE CASCADE foreign keys.
func (r *GameRepository) DeleteByGID(ctx context.Context, gid string) error {
	query, args, err := qb.DeleteFrom("games").
		Where(qb.Eq("gid", gid)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete game by gid query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game by gid: %w", err)
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diamondstats/gameday/internal/domain/atbat"
	qb "github.com/diamondstats/gameday/internal/platform/querybuilder"
)

// bulkInsertChunkSize keeps multi-row inserts well under the postgres
// parameter limit even for the widest tables.
const bulkInsertChunkSize = 100

type AtbatRepository struct {
	db *sqlx.DB
}

func NewAtbatRepository(db *sqlx.DB) *AtbatRepository {
	return &AtbatRepository{db: db}
}

func (r *AtbatRepository) FindByNaturalKey(ctx context.Context, gameID int64, playGUID string, num int) (atbat.Atbat, bool, error) {
	conditions := []qb.Condition{qb.Eq("game_id", gameID)}
	if playGUID != "" {
		conditions = append(conditions, qb.Eq("play_guid", playGUID))
	} else {
		conditions = append(conditions, qb.Eq("play_guid", ""), qb.Eq("num", num))
	}

	query, args, err := qb.Select("*").From("atbats").
		Where(conditions...).
		Limit(1).
		ToSQL()
	if err != nil {
		return atbat.Atbat{}, false, fmt.Errorf("build select atbat by natural key query: %w", err)
	}

	var row atbatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return atbat.Atbat{}, false, nil
		}
		return atbat.Atbat{}, false, fmt.Errorf("select atbat by natural key: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *AtbatRepository) Create(ctx context.Context, a atbat.Atbat) (atbat.Atbat, error) {
	row := atbatToTableModel(a)
	query, args, err := qb.InsertModel("atbats", row, "RETURNING id", "id")
	if err != nil {
		return atbat.Atbat{}, fmt.Errorf("build insert atbat query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return atbat.Atbat{}, fmt.Errorf("insert atbat: %w", err)
	}

	return a, nil
}

func (r *AtbatRepository) Update(ctx context.Context, a atbat.Atbat) error {
	row := atbatToTableModel(a)
	query, args, err := qb.UpdateModel("atbats", row,
		[]qb.Condition{qb.Eq("id", a.ID)},
		"id", "game_id")
	if err != nil {
		return fmt.Errorf("build update atbat query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update atbat: %w", err)
	}

	return nil
}

// BulkCreate inserts the at-bats in chunks and returns them with IDs
// assigned, in input order.
func (r *AtbatRepository) BulkCreate(ctx context.Context, atbats []atbat.Atbat) ([]atbat.Atbat, error) {
	if len(atbats) == 0 {
		return nil, nil
	}

	out := make([]atbat.Atbat, 0, len(atbats))
	for start := 0; start < len(atbats); start += bulkInsertChunkSize {
		end := start + bulkInsertChunkSize
		if end > len(atbats) {
			end = len(atbats)
		}

		chunk := atbats[start:end]
		builder := qb.InsertInto("atbats")
		for i, a := range chunk {
			cols, vals, err := qb.ModelColumns(atbatToTableModel(a), "id")
			if err != nil {
				return nil, fmt.Errorf("extract atbat columns: %w", err)
			}
			if i == 0 {
				builder.Columns(cols...)
			}
			builder.Values(vals...)
		}

		query, args, err := builder.Suffix("RETURNING id").ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build bulk insert atbats query: %w", err)
		}

		var ids []int64
		if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
			return nil, fmt.Errorf("bulk insert atbats: %w", err)
		}
		if len(ids) != len(chunk) {
			return nil, fmt.Errorf("bulk insert atbats returned %d ids, expected %d", len(ids), len(chunk))
		}

		for i, a := range chunk {
			a.ID = ids[i]
			out = append(out, a)
		}
	}

	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/diamondstats/gameday/internal/domain/pitch"
	qb "github.com/diamondstats/gameday/internal/platform/querybuilder"
)

type PitchRepository struct {
	db *sqlx.DB
}

func NewPitchRepository(db *sqlx.DB) *PitchRepository {
	return &PitchRepository{db: db}
}

func (r *PitchRepository) FindByNaturalKey(ctx context.Context, atbatID int64, playGUID string, externalID int64) (pitch.Pitch, bool, error) {
	conditions := []qb.Condition{qb.Eq("atbat_id", atbatID)}
	if playGUID != "" {
		conditions = append(conditions, qb.Eq("play_guid", playGUID))
	} else {
		// Rows without a play_guid fall back to the renamed source id.
		// Absent ids are stored as NULL and compare as 0 here.
		conditions = append(conditions,
			qb.Eq("play_guid", ""),
			qb.Expr("COALESCE(external_id, 0) = ?", externalID))
	}

	query, args, err := qb.Select("*").From("pitches").
		Where(conditions...).
		Limit(1).
		ToSQL()
	if err != nil {
		return pitch.Pitch{}, false, fmt.Errorf("build select pitch by natural key query: %w", err)
	}

	var row pitchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pitch.Pitch{}, false, nil
		}
		return pitch.Pitch{}, false, fmt.Errorf("select pitch by natural key: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PitchRepository) Create(ctx context.Context, p pitch.Pitch) (pitch.Pitch, error) {
	row := pitchToTableModel(p)
	query, args, err := qb.InsertModel("pitches", row, "RETURNING id", "id")
	if err != nil {
		return pitch.Pitch{}, fmt.Errorf("build insert pitch query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return pitch.Pitch{}, fmt.Errorf("insert pitch: %w", err)
	}

	return p, nil
}

func (r *PitchRepository) Update(ctx context.Context, p pitch.Pitch) error {
	row := pitchToTableModel(p)
	query, args, err := qb.UpdateModel("pitches", row,
		[]qb.Condition{qb.Eq("id", p.ID)},
		"id", "atbat_id")
	if err != nil {
		return fmt.Errorf("build update pitch query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update pitch: %w", err)
	}

	return nil
}

func (r *PitchRepository) BulkCreate(ctx context.Context, pitches []pitch.Pitch) error {
	if len(pitches) == 0 {
		return nil
	}

	for start := 0; start < len(pitches); start += bulkInsertChunkSize {
		end := start + bulkInsertChunkSize
		if end > len(pitches) {
			end = len(pitches)
		}

		chunk := pitches[start:end]
		builder := qb.InsertInto("pitches")
		for i, p := range chunk {
			cols, vals, err := qb.ModelColumns(pitchToTableModel(p), "id")
			if err != nil {
				return fmt.Errorf("extract pitch columns: %w", err)
			}
			if i == 0 {
				builder.Columns(cols...)
			}
			builder.Values(vals...)
		}

		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build bulk insert pitches query: %w", err)
		}

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("bulk insert pitches: %w", err)
		}
	}

	return nil
}

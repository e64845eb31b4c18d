package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_WhereAndOrder(t *testing.T) {
	query, args, err := Select("*").From("games").
		Where(Eq("gid", "gid_2015_04_06_nyamlb_wasmlb_1")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM games WHERE gid = $1 ORDER BY id LIMIT 1", query)
	assert.Equal(t, []any{"gid_2015_04_06_nyamlb_wasmlb_1"}, args)
}

func TestSelect_MultipleConditionsJoinedWithAnd(t *testing.T) {
	query, args, err := Select("id").From("atbats").
		Where(Eq("game_id", int64(7)), Eq("num", 12)).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM atbats WHERE game_id = $1 AND num = $2", query)
	assert.Len(t, args, 2)
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("atbats").
		Columns("game_id", "num").
		Values(int64(1), 1).
		Values(int64(1), 2).
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO atbats (game_id, num) VALUES ($1, $2), ($3, $4) RETURNING id", query)
	assert.Len(t, args, 4)
}

func TestInsert_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("atbats").
		Columns("game_id", "num").
		Values(int64(1)).
		ToSQL()
	require.Error(t, err)
}

func TestUpdate_SetsAndWhere(t *testing.T) {
	query, args, err := Update("pitches").
		Set("pitch_type", "FF").
		Set("balls", 2).
		Where(Eq("id", int64(9))).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE pitches SET pitch_type = $1, balls = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"FF", 2, int64(9)}, args)
}

func TestDelete_RequiresConditions(t *testing.T) {
	_, _, err := DeleteFrom("games").ToSQL()
	require.Error(t, err)

	query, args, err := DeleteFrom("games").Where(Eq("gid", "g")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM games WHERE gid = $1", query)
	assert.Len(t, args, 1)
}

func TestIn_EmptyValuesNeverMatch(t *testing.T) {
	query, args, err := Select("id").From("teams").
		Where(In("short", nil)).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM teams WHERE 1=0", query)
	assert.Empty(t, args)
}

func TestModelColumns_SkipAndTagFiltering(t *testing.T) {
	type row struct {
		ID      int64  `db:"id"`
		GID     string `db:"gid"`
		Ignored string `db:"-"`
		NoTag   string
	}

	cols, vals, err := ModelColumns(row{ID: 3, GID: "g"}, "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"gid"}, cols)
	assert.Equal(t, []any{"g"}, vals)
}

func TestUpdateModel_FullOverwrite(t *testing.T) {
	type row struct {
		ID  int64  `db:"id"`
		GID string `db:"gid"`
		Num int    `db:"num"`
	}

	query, args, err := UpdateModel("games", row{ID: 5, GID: "g", Num: 2}, []Condition{Eq("id", int64(5))}, "id")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE games SET gid = $1, num = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"g", 2, int64(5)}, args)
}

func TestExpr_RewritesPlaceholders(t *testing.T) {
	query, args, err := Select("*").From("pitches").
		Where(
			Eq("atbat_id", int64(7)),
			Expr("COALESCE(external_id, 0) = ?", int64(42)),
		).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM pitches WHERE atbat_id = $1 AND COALESCE(external_id, 0) = $2", query)
	assert.Equal(t, []any{int64(7), int64(42)}, args)
}

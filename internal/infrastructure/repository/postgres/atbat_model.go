package postgres

import (
	"database/sql"
	"time"

	"github.com/diamondstats/gameday/internal/domain/atbat"
)

type atbatTableModel struct {
	ID           int64         `db:"id"`
	GameID       int64         `db:"game_id"`
	Inning       int           `db:"inning"`
	TopBottom    int           `db:"top_bottom"`
	Num          int           `db:"num"`
	Balls        int           `db:"balls"`
	Strikes      int           `db:"strikes"`
	Outs         int           `db:"outs"`
	StartTFS     sql.NullInt64 `db:"start_tfs"`
	StartTFSZulu *time.Time    `db:"start_tfs_zulu"`
	Batter       int64         `db:"batter"`
	Stand        string        `db:"stand"`
	BHeight      string        `db:"b_height"`
	Pitcher      int64         `db:"pitcher"`
	PThrows      string        `db:"p_throws"`
	Des          string        `db:"des"`
	DesES        string        `db:"des_es"`
	EventNum     int           `db:"event_num"`
	Event        string        `db:"event"`
	EventES      string        `db:"event_es"`
	Event2       string        `db:"event2"`
	Event2ES     string        `db:"event2_es"`
	Event3       string        `db:"event3"`
	Event3ES     string        `db:"event3_es"`
	PlayGUID     string        `db:"play_guid"`
	HomeTeamRuns int           `db:"home_team_runs"`
	AwayTeamRuns int           `db:"away_team_runs"`
	Score        string        `db:"score"`
}

func atbatToTableModel(a atbat.Atbat) atbatTableModel {
	return atbatTableModel{
		ID:           a.ID,
		GameID:       a.GameID,
		Inning:       a.Inning,
		TopBottom:    a.TopBottom,
		Num:          a.Num,
		Balls:        a.Balls,
		Strikes:      a.Strikes,
		Outs:         a.Outs,
		StartTFS:     nullInt64(a.StartTFS),
		StartTFSZulu: a.StartTFSZulu,
		Batter:       a.Batter,
		Stand:        a.Stand,
		BHeight:      a.BHeight,
		Pitcher:      a.Pitcher,
		PThrows:      a.PThrows,
		Des:          a.Des,
		DesES:        a.DesES,
		EventNum:     a.EventNum,
		Event:        a.Event,
		EventES:      a.EventES,
		Event2:       a.Event2,
		Event2ES:     a.Event2ES,
		Event3:       a.Event3,
		Event3ES:     a.Event3ES,
		PlayGUID:     a.PlayGUID,
		HomeTeamRuns: a.HomeTeamRuns,
		AwayTeamRuns: a.AwayTeamRuns,
		Score:        a.Score,
	}
}

func (m atbatTableModel) toDomain() atbat.Atbat {
	return atbat.Atbat{
		ID:           m.ID,
		GameID:       m.GameID,
		Inning:       m.Inning,
		TopBottom:    m.TopBottom,
		Num:          m.Num,
		Balls:        m.Balls,
		Strikes:      m.Strikes,
		Outs:         m.Outs,
		StartTFS:     nullInt64Ptr(m.StartTFS),
		StartTFSZulu: m.StartTFSZulu,
		Batter:       m.Batter,
		Stand:        m.Stand,
		BHeight:      m.BHeight,
		Pitcher:      m.Pitcher,
		PThrows:      m.PThrows,
		Des:          m.Des,
		DesES:        m.DesES,
		EventNum:     m.EventNum,
		Event:        m.Event,
		EventES:      m.EventES,
		Event2:       m.Event2,
		Event2ES:     m.Event2ES,
		Event3:       m.Event3,
		Event3ES:     m.Event3ES,
		PlayGUID:     m.PlayGUID,
		HomeTeamRuns: m.HomeTeamRuns,
		AwayTeamRuns: m.AwayTeamRuns,
		Score:        m.Score,
	}
}

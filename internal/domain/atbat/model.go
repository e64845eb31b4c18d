package atbat

import "time"

// Atbat is one batter's turn within a game. Inning and TopBottom are not
// attributes of the source element; they are carried down from the element's
// position in the document tree.
//
// Natural key inside a game: PlayGUID when non-empty, otherwise Num.
type Atbat struct {
	ID     int64
	GameID int64

	Inning    int
	TopBottom int // 1 = top half, 0 = bottom half
	Num       int

	// Count at the end of the at-bat, as published.
	Balls   int
	Strikes int
	Outs    int

	// Optional timing attributes. The feed publishes empty strings when they
	// are missing; those are stored as NULL, never as empty values.
	StartTFS     *int64
	StartTFSZulu *time.Time

	Batter  int64
	Stand   string
	BHeight string
	Pitcher int64
	PThrows string

	Des   string
	DesES string

	EventNum int
	Event    string
	EventES  string
	Event2   string
	Event2ES string
	Event3   string
	Event3ES string

	PlayGUID string

	HomeTeamRuns int
	AwayTeamRuns int
	Score        string
}

// HasPlayGUID reports whether the at-bat can be keyed by its play_guid.
func (a Atbat) HasPlayGUID() bool {
	return a.PlayGUID != ""
}

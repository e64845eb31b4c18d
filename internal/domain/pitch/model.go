package pitch

import "time"

// Pitch is one pitch within an at-bat, mostly kinematic readings copied from
// the feed. Two source attributes are renamed before anything else touches
// them: the raw "id" becomes ExternalID and the raw "type" becomes PitchType.
//
// Balls and Strikes are not published; they are derived by the reconciler and
// hold the count the batter faced before this pitch was thrown.
//
// Natural key inside an at-bat: PlayGUID when non-empty, otherwise ExternalID.
type Pitch struct {
	ID      int64
	AtbatID int64

	Des   string
	DesES string

	ExternalID *int64
	PitchType  string

	TFS     *int64
	TFSZulu *time.Time

	X *float64
	Y *float64

	EventNum *int64
	SvID     string
	PlayGUID string

	StartSpeed     *float64
	EndSpeed       *float64
	SzTop          *float64
	SzBot          *float64
	PfxX           *float64
	PfxZ           *float64
	Px             *float64
	Pz             *float64
	X0             *float64
	Y0             *float64
	Z0             *float64
	Vx0            *float64
	Vy0            *float64
	Vz0            *float64
	Ax             *float64
	Ay             *float64
	Az             *float64
	BreakY         *float64
	BreakAngle     *float64
	BreakLength    *float64
	TypeConfidence *float64
	Zone           *int64
	Nasty          *int64
	SpinDir        *float64
	SpinRate       *float64

	CC string
	MT string

	On1B *int64
	On2B *int64
	On3B *int64

	Balls   int
	Strikes int
}

// HasPlayGUID reports whether the pitch can be keyed by its play_guid.
func (p Pitch) HasPlayGUID() bool {
	return p.PlayGUID != ""
}

// ExternalIDValue returns the renamed source id, or 0 when absent.
func (p Pitch) ExternalIDValue() int64 {
	if p.ExternalID == nil {
		return 0
	}
	return *p.ExternalID
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/diamondstats/gameday/internal/domain/pitch"
)

type pitchTableModel struct {
	ID             int64           `db:"id"`
	AtbatID        int64           `db:"atbat_id"`
	Des            string          `db:"des"`
	DesES          string          `db:"des_es"`
	ExternalID     sql.NullInt64   `db:"external_id"`
	PitchType      string          `db:"pitch_type"`
	TFS            sql.NullInt64   `db:"tfs"`
	TFSZulu        *time.Time      `db:"tfs_zulu"`
	X              sql.NullFloat64 `db:"x"`
	Y              sql.NullFloat64 `db:"y"`
	EventNum       sql.NullInt64   `db:"event_num"`
	SvID           string          `db:"sv_id"`
	PlayGUID       string          `db:"play_guid"`
	StartSpeed     sql.NullFloat64 `db:"start_speed"`
	EndSpeed       sql.NullFloat64 `db:"end_speed"`
	SzTop          sql.NullFloat64 `db:"sz_top"`
	SzBot          sql.NullFloat64 `db:"sz_bot"`
	PfxX           sql.NullFloat64 `db:"pfx_x"`
	PfxZ           sql.NullFloat64 `db:"pfx_z"`
	Px             sql.NullFloat64 `db:"px"`
	Pz             sql.NullFloat64 `db:"pz"`
	X0             sql.NullFloat64 `db:"x0"`
	Y0             sql.NullFloat64 `db:"y0"`
	Z0             sql.NullFloat64 `db:"z0"`
	Vx0            sql.NullFloat64 `db:"vx0"`
	Vy0            sql.NullFloat64 `db:"vy0"`
	Vz0            sql.NullFloat64 `db:"vz0"`
	Ax             sql.NullFloat64 `db:"ax"`
	Ay             sql.NullFloat64 `db:"ay"`
	Az             sql.NullFloat64 `db:"az"`
	BreakY         sql.NullFloat64 `db:"break_y"`
	BreakAngle     sql.NullFloat64 `db:"break_angle"`
	BreakLength    sql.NullFloat64 `db:"break_length"`
	TypeConfidence sql.NullFloat64 `db:"type_confidence"`
	Zone           sql.NullInt64   `db:"zone"`
	Nasty          sql.NullInt64   `db:"nasty"`
	SpinDir        sql.NullFloat64 `db:"spin_dir"`
	SpinRate       sql.NullFloat64 `db:"spin_rate"`
	CC             string          `db:"cc"`
	MT             string          `db:"mt"`
	On1B           sql.NullInt64   `db:"on_1b"`
	On2B           sql.NullInt64   `db:"on_2b"`
	On3B           sql.NullInt64   `db:"on_3b"`
	Balls          int             `db:"balls"`
	Strikes        int             `db:"strikes"`
}

func pitchToTableModel(p pitch.Pitch) pitchTableModel {
	return pitchTableModel{
		ID:             p.ID,
		AtbatID:        p.AtbatID,
		Des:            p.Des,
		DesES:          p.DesES,
		ExternalID:     nullInt64(p.ExternalID),
		PitchType:      p.PitchType,
		TFS:            nullInt64(p.TFS),
		TFSZulu:        p.TFSZulu,
		X:              nullFloat64(p.X),
		Y:              nullFloat64(p.Y),
		EventNum:       nullInt64(p.EventNum),
		SvID:           p.SvID,
		PlayGUID:       p.PlayGUID,
		StartSpeed:     nullFloat64(p.StartSpeed),
		EndSpeed:       nullFloat64(p.EndSpeed),
		SzTop:          nullFloat64(p.SzTop),
		SzBot:          nullFloat64(p.SzBot),
		PfxX:           nullFloat64(p.PfxX),
		PfxZ:           nullFloat64(p.PfxZ),
		Px:             nullFloat64(p.Px),
		Pz:             nullFloat64(p.Pz),
		X0:             nullFloat64(p.X0),
		Y0:             nullFloat64(p.Y0),
		Z0:             nullFloat64(p.Z0),
		Vx0:            nullFloat64(p.Vx0),
		Vy0:            nullFloat64(p.Vy0),
		Vz0:            nullFloat64(p.Vz0),
		Ax:             nullFloat64(p.Ax),
		Ay:             nullFloat64(p.Ay),
		Az:             nullFloat64(p.Az),
		BreakY:         nullFloat64(p.BreakY),
		BreakAngle:     nullFloat64(p.BreakAngle),
		BreakLength:    nullFloat64(p.BreakLength),
		TypeConfidence: nullFloat64(p.TypeConfidence),
		Zone:           nullInt64(p.Zone),
		Nasty:          nullInt64(p.Nasty),
		SpinDir:        nullFloat64(p.SpinDir),
		SpinRate:       nullFloat64(p.SpinRate),
		CC:             p.CC,
		MT:             p.MT,
		On1B:           nullInt64(p.On1B),
		On2B:           nullInt64(p.On2B),
		On3B:           nullInt64(p.On3B),
		Balls:          p.Balls,
		Strikes:        p.Strikes,
	}
}

func (m pitchTableModel) toDomain() pitch.Pitch {
	return pitch.Pitch{
		ID:             m.ID,
		AtbatID:        m.AtbatID,
		Des:            m.Des,
		DesES:          m.DesES,
		ExternalID:     nullInt64Ptr(m.ExternalID),
		PitchType:      m.PitchType,
		TFS:            nullInt64Ptr(m.TFS),
		TFSZulu:        m.TFSZulu,
		X:              nullFloat64Ptr(m.X),
		Y:              nullFloat64Ptr(m.Y),
		EventNum:       nullInt64Ptr(m.EventNum),
		SvID:           m.SvID,
		PlayGUID:       m.PlayGUID,
		StartSpeed:     nullFloat64Ptr(m.StartSpeed),
		EndSpeed:       nullFloat64Ptr(m.EndSpeed),
		SzTop:          nullFloat64Ptr(m.SzTop),
		SzBot:          nullFloat64Ptr(m.SzBot),
		PfxX:           nullFloat64Ptr(m.PfxX),
		PfxZ:           nullFloat64Ptr(m.PfxZ),
		Px:             nullFloat64Ptr(m.Px),
		Pz:             nullFloat64Ptr(m.Pz),
		X0:             nullFloat64Ptr(m.X0),
		Y0:             nullFloat64Ptr(m.Y0),
		Z0:             nullFloat64Ptr(m.Z0),
		Vx0:            nullFloat64Ptr(m.Vx0),
		Vy0:            nullFloat64Ptr(m.Vy0),
		Vz0:            nullFloat64Ptr(m.Vz0),
		Ax:             nullFloat64Ptr(m.Ax),
		Ay:             nullFloat64Ptr(m.Ay),
		Az:             nullFloat64Ptr(m.Az),
		BreakY:         nullFloat64Ptr(m.BreakY),
		BreakAngle:     nullFloat64Ptr(m.BreakAngle),
		BreakLength:    nullFloat64Ptr(m.BreakLength),
		TypeConfidence: nullFloat64Ptr(m.TypeConfidence),
		Zone:           nullInt64Ptr(m.Zone),
		Nasty:          nullInt64Ptr(m.Nasty),
		SpinDir:        nullFloat64Ptr(m.SpinDir),
		SpinRate:       nullFloat64Ptr(m.SpinRate),
		CC:             m.CC,
		MT:             m.MT,
		On1B:           nullInt64Ptr(m.On1B),
		On2B:           nullInt64Ptr(m.On2B),
		On3B:           nullInt64Ptr(m.On3B),
		Balls:          m.Balls,
		Strikes:        m.Strikes,
	}
}

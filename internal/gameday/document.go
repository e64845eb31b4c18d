package gameday

import (
	"bytes"
	"encoding/xml"

	crerr "github.com/cockroachdb/errors"
)

// ErrMalformedDocument marks inning documents that do not parse after the
// cleanup step. Fatal for the enclosing game.
var ErrMalformedDocument = crerr.New("malformed inning document")

// Document is one parsed inning-level game document. Inning and half-inning
// are modelled only as tree position in the source; the element types here
// keep that shape and the mapper injects the positional values into each
// at-bat record.
type Document struct {
	XMLName xml.Name        `xml:"game"`
	Innings []InningElement `xml:"inning"`
}

type InningElement struct {
	Num    string             `xml:"num,attr"`
	Top    *HalfInningElement `xml:"top"`
	Bottom *HalfInningElement `xml:"bottom"`
}

// HalfInningElement holds the at-bat children of a top or bottom element.
// Non-atbat children (actions, and so on) are ignored by the decoder.
type HalfInningElement struct {
	Atbats []AtbatElement `xml:"atbat"`
}

// AtbatElement carries the raw at-bat attributes. Everything stays a string
// here; typed conversion happens at the mapping boundary.
type AtbatElement struct {
	Num          string `xml:"num,attr"`
	Balls        string `xml:"b,attr"`
	Strikes      string `xml:"s,attr"`
	Outs         string `xml:"o,attr"`
	StartTFS     string `xml:"start_tfs,attr"`
	StartTFSZulu string `xml:"start_tfs_zulu,attr"`
	Batter       string `xml:"batter,attr"`
	Stand        string `xml:"stand,attr"`
	BHeight      string `xml:"b_height,attr"`
	Pitcher      string `xml:"pitcher,attr"`
	PThrows      string `xml:"p_throws,attr"`
	Des          string `xml:"des,attr"`
	DesES        string `xml:"des_es,attr"`
	EventNum     string `xml:"event_num,attr"`
	Event        string `xml:"event,attr"`
	EventES      string `xml:"event_es,attr"`
	Event2       string `xml:"event2,attr"`
	Event2ES     string `xml:"event2_es,attr"`
	Event3       string `xml:"event3,attr"`
	Event3ES     string `xml:"event3_es,attr"`
	PlayGUID     string `xml:"play_guid,attr"`
	HomeTeamRuns string `xml:"home_team_runs,attr"`
	AwayTeamRuns string `xml:"away_team_runs,attr"`
	Score        string `xml:"score,attr"`

	Pitches []PitchElement `xml:"pitch"`
}

// PitchElement carries the raw pitch attributes. The two reserved source
// names are renamed right here, at the attribute-to-record boundary: raw "id"
// binds to ExternalID and raw "type" binds to PitchType. Nothing downstream
// ever sees the original names.
type PitchElement struct {
	Des            string `xml:"des,attr"`
	DesES          string `xml:"des_es,attr"`
	ExternalID     string `xml:"id,attr"`
	PitchType      string `xml:"type,attr"`
	TFS            string `xml:"tfs,attr"`
	TFSZulu        string `xml:"tfs_zulu,attr"`
	X              string `xml:"x,attr"`
	Y              string `xml:"y,attr"`
	EventNum       string `xml:"event_num,attr"`
	SvID           string `xml:"sv_id,attr"`
	PlayGUID       string `xml:"play_guid,attr"`
	StartSpeed     string `xml:"start_speed,attr"`
	EndSpeed       string `xml:"end_speed,attr"`
	SzTop          string `xml:"sz_top,attr"`
	SzBot          string `xml:"sz_bot,attr"`
	PfxX           string `xml:"pfx_x,attr"`
	PfxZ           string `xml:"pfx_z,attr"`
	Px             string `xml:"px,attr"`
	Pz             string `xml:"pz,attr"`
	X0             string `xml:"x0,attr"`
	Y0             string `xml:"y0,attr"`
	Z0             string `xml:"z0,attr"`
	Vx0            string `xml:"vx0,attr"`
	Vy0            string `xml:"vy0,attr"`
	Vz0            string `xml:"vz0,attr"`
	Ax             string `xml:"ax,attr"`
	Ay             string `xml:"ay,attr"`
	Az             string `xml:"az,attr"`
	BreakY         string `xml:"break_y,attr"`
	BreakAngle     string `xml:"break_angle,attr"`
	BreakLength    string `xml:"break_length,attr"`
	TypeConfidence string `xml:"type_confidence,attr"`
	Zone           string `xml:"zone,attr"`
	Nasty          string `xml:"nasty,attr"`
	SpinDir        string `xml:"spin_dir,attr"`
	SpinRate       string `xml:"spin_rate,attr"`
	CC             string `xml:"cc,attr"`
	MT             string `xml:"mt,attr"`
	On1B           string `xml:"on_1b,attr"`
	On2B           string `xml:"on_2b,attr"`
	On3B           string `xml:"on_3b,attr"`
}

// ParseDocument decodes a scrubbed inning document body.
func ParseDocument(body []byte) (Document, error) {
	var doc Document
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimSpace(body)))
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, crerr.Mark(crerr.Wrap(err, "decode inning document"), ErrMalformedDocument)
	}
	return doc, nil
}

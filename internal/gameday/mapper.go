package gameday

import (
	"strconv"
	"strings"
	"time"

	"github.com/diamondstats/gameday/internal/domain/atbat"
	"github.com/diamondstats/gameday/internal/domain/pitch"
)

// PitchTypeBall is the type code the feed uses for a ball.
const PitchTypeBall = "B"

// MapAtbat converts a raw at-bat element into a domain record, injecting the
// positional inning number and half flag the source only encodes as tree
// structure. The two timing attributes are nulled when published blank.
// GameID is left unset; the reconciler attaches it.
func MapAtbat(elem AtbatElement, inning, topBottom int) atbat.Atbat {
	return atbat.Atbat{
		Inning:       inning,
		TopBottom:    topBottom,
		Num:          intAttr(elem.Num),
		Balls:        intAttr(elem.Balls),
		Strikes:      intAttr(elem.Strikes),
		Outs:         intAttr(elem.Outs),
		StartTFS:     int64Attr(elem.StartTFS),
		StartTFSZulu: timeAttr(elem.StartTFSZulu),
		Batter:       int64AttrValue(elem.Batter),
		Stand:        elem.Stand,
		BHeight:      elem.BHeight,
		Pitcher:      int64AttrValue(elem.Pitcher),
		PThrows:      elem.PThrows,
		Des:          elem.Des,
		DesES:        elem.DesES,
		EventNum:     intAttr(elem.EventNum),
		Event:        elem.Event,
		EventES:      elem.EventES,
		Event2:       elem.Event2,
		Event2ES:     elem.Event2ES,
		Event3:       elem.Event3,
		Event3ES:     elem.Event3ES,
		PlayGUID:     elem.PlayGUID,
		HomeTeamRuns: intAttr(elem.HomeTeamRuns),
		AwayTeamRuns: intAttr(elem.AwayTeamRuns),
		Score:        elem.Score,
	}
}

// MapPitch converts a raw pitch element into a domain record. The element
// already carries the renamed reserved fields; Balls/Strikes are stamped by
// the reconciler, AtbatID by persistence.
func MapPitch(elem PitchElement) pitch.Pitch {
	return pitch.Pitch{
		Des:            elem.Des,
		DesES:          elem.DesES,
		ExternalID:     int64Attr(elem.ExternalID),
		PitchType:      elem.PitchType,
		TFS:            int64Attr(elem.TFS),
		TFSZulu:        timeAttr(elem.TFSZulu),
		X:              floatAttr(elem.X),
		Y:              floatAttr(elem.Y),
		EventNum:       int64Attr(elem.EventNum),
		SvID:           elem.SvID,
		PlayGUID:       elem.PlayGUID,
		StartSpeed:     floatAttr(elem.StartSpeed),
		EndSpeed:       floatAttr(elem.EndSpeed),
		SzTop:          floatAttr(elem.SzTop),
		SzBot:          floatAttr(elem.SzBot),
		PfxX:           floatAttr(elem.PfxX),
		PfxZ:           floatAttr(elem.PfxZ),
		Px:             floatAttr(elem.Px),
		Pz:             floatAttr(elem.Pz),
		X0:             floatAttr(elem.X0),
		Y0:             floatAttr(elem.Y0),
		Z0:             floatAttr(elem.Z0),
		Vx0:            floatAttr(elem.Vx0),
		Vy0:            floatAttr(elem.Vy0),
		Vz0:            floatAttr(elem.Vz0),
		Ax:             floatAttr(elem.Ax),
		Ay:             floatAttr(elem.Ay),
		Az:             floatAttr(elem.Az),
		BreakY:         floatAttr(elem.BreakY),
		BreakAngle:     floatAttr(elem.BreakAngle),
		BreakLength:    floatAttr(elem.BreakLength),
		TypeConfidence: floatAttr(elem.TypeConfidence),
		Zone:           int64Attr(elem.Zone),
		Nasty:          int64Attr(elem.Nasty),
		SpinDir:        floatAttr(elem.SpinDir),
		SpinRate:       floatAttr(elem.SpinRate),
		CC:             elem.CC,
		MT:             elem.MT,
		On1B:           int64Attr(elem.On1B),
		On2B:           int64Attr(elem.On2B),
		On3B:           int64Attr(elem.On3B),
	}
}

func intAttr(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

func int64AttrValue(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func int64Attr(raw string) *int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func floatAttr(raw string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &value
}

func timeAttr(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &parsed
}

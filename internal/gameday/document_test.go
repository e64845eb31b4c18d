package gameday

import (
	"errors"
	"testing"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<game>
  <inning num="1">
    <top>
      <atbat num="1" b="1" s="2" o="1" batter="453568" pitcher="544931"
             stand="R" p_throws="L" des="Grounds out." event="Groundout"
             event_num="8" play_guid="abc-123" home_team_runs="0"
             away_team_runs="0" start_tfs="" start_tfs_zulu="">
        <pitch des="Ball" id="3" type="B" tfs_zulu="2015-04-06T18:08:03Z"
               x="80.26" y="120.18" start_speed="92.1" play_guid="p-1"/>
        <runner id="453568" start="" end="1B"/>
        <pitch des="In play, out(s)" id="7" type="X" start_speed="88.4"/>
      </atbat>
    </top>
    <bottom>
      <action b="0" s="0" o="0" des="Pitching change"/>
      <atbat num="2" b="0" s="0" o="2" batter="121347" pitcher="112526"
             start_tfs="180915" start_tfs_zulu="2015-04-06T18:09:15Z"/>
    </bottom>
  </inning>
</game>`

func TestParseDocument_TreeShape(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	if len(doc.Innings) != 1 {
		t.Fatalf("unexpected inning count: %d", len(doc.Innings))
	}
	inning := doc.Innings[0]
	if inning.Num != "1" {
		t.Fatalf("unexpected inning num: %s", inning.Num)
	}
	if inning.Top == nil || len(inning.Top.Atbats) != 1 {
		t.Fatal("missing top-half at-bat")
	}
	if inning.Bottom == nil || len(inning.Bottom.Atbats) != 1 {
		t.Fatal("missing bottom-half at-bat; action elements must be ignored")
	}

	// runner element between pitches must not be picked up
	if count := len(inning.Top.Atbats[0].Pitches); count != 2 {
		t.Fatalf("unexpected pitch count: %d", count)
	}
}

func TestParseDocument_ReservedAttributeRename(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	first := doc.Innings[0].Top.Atbats[0].Pitches[0]
	if first.ExternalID != "3" {
		t.Fatalf("raw id attribute not bound to ExternalID: %q", first.ExternalID)
	}
	if first.PitchType != "B" {
		t.Fatalf("raw type attribute not bound to PitchType: %q", first.PitchType)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	_, err := ParseDocument([]byte("<game><inning"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestMapAtbat_InjectsPositionAndNullsBlankTiming(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	record := MapAtbat(doc.Innings[0].Top.Atbats[0], 1, 1)
	if record.Inning != 1 || record.TopBottom != 1 {
		t.Fatalf("position not injected: inning=%d top_bottom=%d", record.Inning, record.TopBottom)
	}
	if record.Num != 1 || record.Balls != 1 || record.Strikes != 2 || record.Outs != 1 {
		t.Fatalf("unexpected counts: %+v", record)
	}
	if record.StartTFS != nil || record.StartTFSZulu != nil {
		t.Fatal("blank timing attributes must map to nil")
	}
	if record.Batter != 453568 || record.Pitcher != 544931 {
		t.Fatalf("unexpected batter/pitcher: %d/%d", record.Batter, record.Pitcher)
	}
}

func TestMapAtbat_KeepsPresentTiming(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	record := MapAtbat(doc.Innings[0].Bottom.Atbats[0], 1, 0)
	if record.TopBottom != 0 {
		t.Fatalf("unexpected half flag: %d", record.TopBottom)
	}
	if record.StartTFS == nil || *record.StartTFS != 180915 {
		t.Fatalf("start_tfs not mapped: %v", record.StartTFS)
	}
	if record.StartTFSZulu == nil {
		t.Fatal("start_tfs_zulu not mapped")
	}
}

func TestMapPitch_TypedFields(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}

	record := MapPitch(doc.Innings[0].Top.Atbats[0].Pitches[0])
	if record.ExternalIDValue() != 3 {
		t.Fatalf("unexpected external id: %d", record.ExternalIDValue())
	}
	if record.PitchType != "B" {
		t.Fatalf("unexpected pitch type: %s", record.PitchType)
	}
	if record.StartSpeed == nil || *record.StartSpeed != 92.1 {
		t.Fatalf("unexpected start speed: %v", record.StartSpeed)
	}
	if record.TFSZulu == nil {
		t.Fatal("tfs_zulu not mapped")
	}
	if record.EndSpeed != nil {
		t.Fatal("absent numeric attributes must map to nil")
	}
}

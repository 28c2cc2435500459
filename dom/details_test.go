package dom

import (
	"testing"

	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/stdxml"
)

func TestCheckGFrameHoldIntegrityRejectsBothClefFields(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<gfhold><clefID>2</clefID><clefListID>7</clefListID></gfhold>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var gf GFrameHold
	if err := PopulateGFrameHold(&gf, doc.Root(), &LoadContext{}); err == nil {
		t.Fatal("expected an integrity error when both clefID and clefListID are set")
	}
}

func TestCheckGFrameHoldIntegrityAllowsClefIDAlone(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<gfhold><clefID>0</clefID></gfhold>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var gf GFrameHold
	if err := PopulateGFrameHold(&gf, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("expected clefID alone to pass, got %v", err)
	}
	if gf.ClefID == nil || *gf.ClefID != 0 {
		t.Fatal("expected ClefID to be set to the explicit zero value, distinct from unset")
	}
}

// TestTupletDefSpanFractionAndTimeScale exercises a quintuplet of
// eighth notes (5 in the time of 4 eighths): the reference span is
// InTheTimeOfNumber*InTheTimeOfDuration (4 eighths = 1/2 a whole note),
// and TimeScale is that span divided by the written duration
// (DisplayNumber*DisplayDuration = 5 eighths).
func TestTupletDefSpanFractionAndTimeScale(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<tupletDef>
		<symbolicNum>5</symbolicNum>
		<symbolicDur>512</symbolicDur>
		<refNum>4</refNum>
		<refDur>512</refDur>
	</tupletDef>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var td TupletDef
	if err := PopulateTupletDef(&td, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if td.DisplayNumber != 5 || td.InTheTimeOfNumber != 4 {
		t.Fatalf("unexpected fields: %+v", td)
	}
	if span := td.SpanFraction(); span != ids.NewFraction(1, 2) {
		t.Fatalf("expected span 1/2, got %v", span)
	}
	scale := td.TimeScale()
	if scale.Numerator() != 4 || scale.Denominator() != 5 {
		t.Fatalf("expected time scale 4/5, got %v", scale)
	}
}

func TestSecondaryBeamBreakMaskAndLookup(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<secBeamBreak><breakLevel>1</breakLevel><breakLevel>2</breakLevel></secBeamBreak>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var br SecondaryBeamBreak
	if err := PopulateSecondaryBeamBreak(&br, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if !br.BreaksAt(BeamLevel16th) || !br.BreaksAt(BeamLevel32nd) {
		t.Fatal("expected both set levels to report broken")
	}
	if br.BreaksAt(BeamLevel64th) {
		t.Fatal("expected an unset level to report not broken")
	}
}

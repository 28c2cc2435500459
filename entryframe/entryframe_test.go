package entryframe

import (
	"testing"

	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
)

func noTuplets(ids.EntryNumber) []*dom.TupletDef               { return nil }
func noBreaks(ids.EntryNumber) (*dom.SecondaryBeamBreak, bool) { return nil, false }
func noHidden(ids.EntryNumber) bool                            { return false }

func TestBuildComputesElapsedTimeWithoutTuplets(t *testing.T) {
	entries := []*dom.Entry{
		{EntryNumber: 1, Duration: 1024},
		{EntryNumber: 2, Duration: 512},
		{EntryNumber: 3, Duration: 512},
	}
	out, infos := Build(entries, noTuplets, noBreaks, noHidden, false)
	if len(infos) != 0 {
		t.Fatalf("expected no tuplet spans, got %d", len(infos))
	}
	if !out[0].ElapsedTime.IsZero() {
		t.Fatalf("expected first entry to start at 0, got %v", out[0].ElapsedTime)
	}
	if out[1].ElapsedTime != ids.FractionFromEdu(1024) {
		t.Fatalf("expected second entry at 1024 Edu elapsed, got %v", out[1].ElapsedTime)
	}
	if out[2].ElapsedTime != ids.FractionFromEdu(1536) {
		t.Fatalf("expected third entry at 1536 Edu elapsed, got %v", out[2].ElapsedTime)
	}
}

// TestBuildScalesElapsedTimeInsideATuplet exercises a quintuplet of
// eighth notes (5 in the time of 4 eighths): each entry's actual
// duration is 1/10 of a whole note, and the tuplet's total span is
// InTheTimeOfNumber*InTheTimeOfDuration = 4*512 Edu = 1/2 whole note
// (spec §8 seed scenario 2).
func TestBuildScalesElapsedTimeInsideATuplet(t *testing.T) {
	quintuplet := &dom.TupletDef{
		DisplayNumber: 5, DisplayDuration: 512,
		InTheTimeOfNumber: 4, InTheTimeOfDuration: 512,
	}
	lookup := func(n ids.EntryNumber) []*dom.TupletDef {
		if n == 1 {
			return []*dom.TupletDef{quintuplet}
		}
		return nil
	}
	entries := []*dom.Entry{
		{EntryNumber: 1, Duration: 512},
		{EntryNumber: 2, Duration: 512},
		{EntryNumber: 3, Duration: 512},
		{EntryNumber: 4, Duration: 512},
		{EntryNumber: 5, Duration: 512},
	}
	out, infos := Build(entries, lookup, noBreaks, noHidden, false)
	if len(out[0].Tuplets) != 1 {
		t.Fatalf("expected the first entry to carry the active tuplet, got %d", len(out[0].Tuplets))
	}

	tenth := ids.NewFraction(1, 10)
	for i, p := range out {
		if p.ActualDuration != tenth {
			t.Fatalf("entry %d: expected actual duration 1/10, got %v", i, p.ActualDuration)
		}
	}
	if out[4].ElapsedTime != ids.NewFraction(4, 10) {
		t.Fatalf("expected the fifth entry to start at 4/10, got %v", out[4].ElapsedTime)
	}

	if len(infos) != 1 {
		t.Fatalf("expected exactly one closed tuplet span, got %d", len(infos))
	}
	info := infos[0]
	if info.StartIndex != 0 || info.EndIndex != 4 {
		t.Fatalf("expected span (0,4), got (%d,%d)", info.StartIndex, info.EndIndex)
	}
	if !info.StartDura.IsZero() {
		t.Fatalf("expected start duration 0, got %v", info.StartDura)
	}
	if info.EndDura != ids.NewFraction(1, 2) {
		t.Fatalf("expected end duration 1/2, got %v", info.EndDura)
	}
}

func TestBuildIndexesGraceNoteRuns(t *testing.T) {
	entries := []*dom.Entry{
		{EntryNumber: 1, IsGrace: true, Duration: 256},
		{EntryNumber: 2, IsGrace: true, Duration: 256},
		{EntryNumber: 3, Duration: 1024},
	}
	out, _ := Build(entries, noTuplets, noBreaks, noHidden, false)
	if out[0].GraceIndex != 1 || out[1].GraceIndex != 2 {
		t.Fatalf("expected grace indices 1,2 got %d,%d", out[0].GraceIndex, out[1].GraceIndex)
	}
	if out[2].GraceIndex != 0 {
		t.Fatal("expected a non-grace entry to have GraceIndex 0")
	}
}

func TestBuildDetectsBeamStartAndEnd(t *testing.T) {
	entries := []*dom.Entry{
		{EntryNumber: 1, Duration: 256},  // sixteenth, beamable
		{EntryNumber: 2, Duration: 256},  // sixteenth, beamable
		{EntryNumber: 3, Duration: 1024}, // quarter, not beamable
		{EntryNumber: 4, Duration: 256},  // sixteenth, lone beam of one
	}
	out, _ := Build(entries, noTuplets, noBreaks, noHidden, false)
	if !out[0].BeamStart || out[0].BeamEnd {
		t.Fatal("expected entry 1 to start but not end the beam")
	}
	if out[1].BeamStart || !out[1].BeamEnd {
		t.Fatal("expected entry 2 to end but not start the beam")
	}
	if out[2].BeamStart || out[2].BeamEnd {
		t.Fatal("expected the quarter note to carry no beam at all")
	}
	if !out[3].BeamStart || !out[3].BeamEnd {
		t.Fatal("expected a lone beamable entry to both start and end its own beam")
	}
}

// TestBuildBeamWalkWithHiddenEntries reproduces spec §8 seed scenario
// 5 (fixture "beam_walk_hidden"): four sixteenth notes, the third (index
// 2) hidden by an AlternateNotation layer. With includeHidden=false the
// Hides flag is ignored and all four beam together as one run, giving
// boundary markers {0,3}; with includeHidden=true the hidden entry
// displays as a rest (calcDisplaysAsRest) and splits the run in two,
// giving {0,1,3}.
func TestBuildBeamWalkWithHiddenEntries(t *testing.T) {
	entries := []*dom.Entry{
		{EntryNumber: 20, Duration: 256},
		{EntryNumber: 21, Duration: 256},
		{EntryNumber: 22, Duration: 256},
		{EntryNumber: 23, Duration: 256},
	}
	hidden := func(n ids.EntryNumber) bool { return n == 22 }

	excluded, _ := Build(entries, noTuplets, noBreaks, hidden, false)
	if got := markerSet(excluded); !setEqual(got, []int{0, 3}) {
		t.Fatalf("includeHidden=false: expected markers {0,3}, got %v", got)
	}

	included, _ := Build(entries, noTuplets, noBreaks, hidden, true)
	if got := markerSet(included); !setEqual(got, []int{0, 1, 3}) {
		t.Fatalf("includeHidden=true: expected markers {0,1,3}, got %v", got)
	}
}

func markerSet(out []Positioned) []int {
	seen := map[int]bool{}
	var set []int
	for i, p := range out {
		if (p.BeamStart || p.BeamEnd) && !seen[i] {
			seen[i] = true
			set = append(set, i)
		}
	}
	return set
}

func setEqual(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBuildAttachesSecondaryBreaks(t *testing.T) {
	br := &dom.SecondaryBeamBreak{Mask: 1 << uint(dom.BeamLevel16th)}
	lookup := func(n ids.EntryNumber) (*dom.SecondaryBeamBreak, bool) {
		if n == 2 {
			return br, true
		}
		return nil, false
	}
	entries := []*dom.Entry{
		{EntryNumber: 1, Duration: 256},
		{EntryNumber: 2, Duration: 256},
	}
	out, _ := Build(entries, noTuplets, lookup, noHidden, false)
	if out[1].SecondaryBreaks != br.Mask {
		t.Fatalf("expected mask %v, got %v", br.Mask, out[1].SecondaryBreaks)
	}
	if out[0].SecondaryBreaks != 0 {
		t.Fatal("expected the first entry to carry no secondary break")
	}
}

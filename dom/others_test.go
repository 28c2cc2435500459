package dom

import (
	"testing"

	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/stdxml"
)

func TestPopulateStaffAutoNumberDefault(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<staffSpec><notationStyle>standard</notationStyle></staffSpec>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var staff Staff
	if err := PopulateStaff(&staff, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if !staff.AllowAutoNumber {
		t.Fatal("expected AllowAutoNumber to default true")
	}
	if staff.NotationStyle != NotationStandard {
		t.Fatalf("expected standard notation style, got %v", staff.NotationStyle)
	}
}

func TestPopulateStaffNoAutoNumberMarker(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<staffSpec><noAutoNumber/></staffSpec>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var staff Staff
	if err := PopulateStaff(&staff, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if staff.AllowAutoNumber {
		t.Fatal("expected noAutoNumber marker to clear AllowAutoNumber")
	}
}

func TestStaffAutoNumberValueIsWriteOnce(t *testing.T) {
	var staff Staff
	if _, ok := staff.AutoNumberValue(); ok {
		t.Fatal("expected no auto-number value before it is set")
	}
	staff.SetAutoNumberValue(3)
	staff.SetAutoNumberValue(7)
	v, ok := staff.AutoNumberValue()
	if !ok || v != 3 {
		t.Fatalf("expected the first SetAutoNumberValue to stick, got %d ok=%v", v, ok)
	}
}

func TestPopulateStaffStyleSetsMaskBitsOnlyForPresentFields(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<staffStyle><hideStems/></staffStyle>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var style StaffStyle
	if err := PopulateStaffStyle(&style, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if style.Mask != MaskHideStems {
		t.Fatalf("expected only MaskHideStems set, got %v", style.Mask)
	}
	if !style.HideStems {
		t.Fatal("expected HideStems true")
	}
}

func TestEduRangeContainsInclusiveEndpoints(t *testing.T) {
	r := EduRange{StartMeasure: 2, StartEdu: 100, EndMeasure: 4, EndEdu: 50}
	if !r.Contains(2, 100) {
		t.Fatal("expected start endpoint contained")
	}
	if r.Contains(2, 99) {
		t.Fatal("expected position before start excluded")
	}
	if !r.Contains(4, 50) {
		t.Fatal("expected end endpoint contained")
	}
	if r.Contains(4, 51) {
		t.Fatal("expected position after end excluded")
	}
	if !r.Contains(3, 999999) {
		t.Fatal("expected any position in a fully-interior measure contained")
	}
}

func TestEduRangeOpenEndedRangeContainsToEndOfMeasure(t *testing.T) {
	r := EduRange{StartMeasure: 1, StartEdu: 0, EndMeasure: 1, EndEdu: -1}
	if !r.Contains(1, 999999) {
		t.Fatal("expected EndEdu=-1 to mean unbounded within EndMeasure")
	}
}

func TestCheckFrameIntegrityRejectsBothEntryRangeAndStartTime(t *testing.T) {
	startTime := ids.Edu(0)
	f := &Frame{StartEntry: 1, EndEntry: 5, StartTime: &startTime}
	if err := CheckFrameIntegrity(f); err == nil {
		t.Fatal("expected an integrity error when both entry range and start time are set")
	}
}

func TestCheckFrameIntegrityAllowsEitherAlone(t *testing.T) {
	f := &Frame{StartEntry: 1, EndEntry: 5}
	if err := CheckFrameIntegrity(f); err != nil {
		t.Fatalf("expected entry-range-only frame to pass, got %v", err)
	}
	st := ids.Edu(0)
	g := &Frame{StartTime: &st}
	if err := CheckFrameIntegrity(g); err != nil {
		t.Fatalf("expected start-time-only frame to pass, got %v", err)
	}
}

func TestPopulateStaffNormalizesInstUUID(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<staffSpec><instUuid>550E8400-E29B-41D4-A716-446655440000</instUuid></staffSpec>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var staff Staff
	if err := PopulateStaff(&staff, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if staff.InstUUID != "550e8400-e29b-41d4-a716-446655440000" {
		t.Fatalf("expected a lowercased canonical uuid, got %q", staff.InstUUID)
	}
}

func TestPopulateStaffKeepsUnparseableInstUUIDVerbatim(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<staffSpec><instUuid>not-a-uuid</instUuid></staffSpec>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var staff Staff
	if err := PopulateStaff(&staff, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if staff.InstUUID != "not-a-uuid" {
		t.Fatalf("expected an unparseable value kept verbatim, got %q", staff.InstUUID)
	}
}

func TestSortIntsAscending(t *testing.T) {
	s := []int{5, 1, 3, 2, 4}
	sortInts(s)
	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("expected sorted %v, got %v", want, s)
		}
	}
}

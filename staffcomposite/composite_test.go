package staffcomposite

import (
	"testing"

	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
)

func TestBuildAppliesOnlyMaskedFieldsFromApplicableAssigns(t *testing.T) {
	raw := &dom.Staff{NotationStyle: dom.NotationStandard, HideStems: false}
	percussion := &dom.StaffStyle{Mask: dom.MaskNotationStyle, NotationStyle: dom.NotationPercussion}
	hiddenStems := &dom.StaffStyle{Mask: dom.MaskHideStems, HideStems: true}

	styles := map[ids.Cmper]*dom.StaffStyle{50: percussion, 51: hiddenStems}
	assigns := []*dom.StaffStyleAssign{
		{StyleID: 50, Range: dom.EduRange{StartMeasure: 1, EndMeasure: 4, EndEdu: -1}},
		{StyleID: 51, Range: dom.EduRange{StartMeasure: 2, EndMeasure: 2, EndEdu: -1}},
	}

	insideBoth := Build(raw, assigns, styles, 2, 0)
	if insideBoth.NotationStyle != dom.NotationPercussion {
		t.Fatalf("expected percussion notation style, got %v", insideBoth.NotationStyle)
	}
	if !insideBoth.HideStems {
		t.Fatal("expected hidden stems inside measure 2")
	}

	onlyFirst := Build(raw, assigns, styles, 3, 0)
	if onlyFirst.NotationStyle != dom.NotationPercussion {
		t.Fatal("expected percussion style to still apply at measure 3")
	}
	if onlyFirst.HideStems {
		t.Fatal("expected hideStems override not to apply outside measure 2")
	}

	if raw.NotationStyle != dom.NotationStandard || raw.HideStems {
		t.Fatal("expected the raw staff to remain unmodified")
	}
}

func TestBuildSkipsUnresolvableStyleID(t *testing.T) {
	raw := &dom.Staff{NotationStyle: dom.NotationStandard}
	assigns := []*dom.StaffStyleAssign{
		{StyleID: 999, Range: dom.EduRange{StartMeasure: 1, EndMeasure: 1, EndEdu: -1}},
	}
	out := Build(raw, assigns, map[ids.Cmper]*dom.StaffStyle{}, 1, 0)
	if out.NotationStyle != dom.NotationStandard {
		t.Fatal("expected an unresolvable style id to be skipped, not applied")
	}
}

func TestBuildClonesTransposePointer(t *testing.T) {
	raw := &dom.Staff{Transpose: &dom.Transposition{Displacement: 1}}
	out := Build(raw, nil, nil, 1, 0)
	if out.Transpose == raw.Transpose {
		t.Fatal("expected a deep clone of Transpose, not a shared pointer")
	}
	if out.Transpose.Displacement != 1 {
		t.Fatal("expected cloned Transpose to carry the same values")
	}
}

func TestWinnerReturnsLastApplicableStaffTypeOverride(t *testing.T) {
	a := &dom.StaffStyle{Mask: dom.MaskStaffType, StaffType: dom.StaffTypeOverride{CustomStaff: []int{1}}}
	b := &dom.StaffStyle{Mask: dom.MaskStaffType, StaffType: dom.StaffTypeOverride{CustomStaff: []int{2}}}
	styles := map[ids.Cmper]*dom.StaffStyle{1: a, 2: b}
	assigns := []*dom.StaffStyleAssign{
		{StyleID: 1, Range: dom.EduRange{StartMeasure: 1, EndMeasure: 5, EndEdu: -1}},
		{StyleID: 2, Range: dom.EduRange{StartMeasure: 1, EndMeasure: 5, EndEdu: -1}},
	}
	w := Winner(assigns, styles, 3, 0)
	if w != b {
		t.Fatal("expected the later assign in document order to win a tie")
	}
}

package dom

import (
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/xmlapi"
)

// StaffGroup is a Details record (keyed by cmper1=groupId): a bracketed
// run of staves. Staves is populated by the C5 linker after all Staff
// and StaffUsed records exist, by intersecting (StartInst, EndInst) with
// the part's scroll-view list (spec §4.5).
type StaffGroup struct {
	DetailsBase
	StartInst ids.Cmper
	EndInst   ids.Cmper
	BracketStyle string
	Staves    []ids.Cmper // resolved by the linker; nil until resolved
}

var staffGroupFields = FieldTable[StaffGroup]{
	{Tag: "startInst", Set: func(t *StaffGroup, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.StartInst = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "endInst", Set: func(t *StaffGroup, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.EndInst = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "bracket", Set: func(t *StaffGroup, el xmlapi.Element, _ *LoadContext) error {
		t.BracketStyle = el.Text()
		return nil
	}},
}

// PopulateStaffGroup populates a StaffGroup from its <staffGroup>
// element. It does not resolve Staves; that is a linker job.
func PopulateStaffGroup(t *StaffGroup, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, staffGroupFields, "staffGroup", ctx)
}

// TupletDef is a Details record attached to a specific entry (keyed by
// EntryNumber+Inci, since a chord can carry more than one stacked
// tuplet). Its span is computed by the entry-frame builder: start offset
// equals the owning entry's elapsed duration; the real time it spans is
// SpanFraction (InTheTimeOfNumber*InTheTimeOfDuration), scaled by the
// TimeScale of every tuplet already enclosing it.
type TupletDef struct {
	DetailsBase
	DisplayNumber      int
	DisplayDuration    ids.Edu
	InTheTimeOfNumber  int
	InTheTimeOfDuration ids.Edu
	AlwaysFlat         bool
	FullDura           bool
	MetricCenter       bool
	AvoidStaff         bool
	AutoBracketStyle   TupletAutoBracketStyle
	TupOffX, TupOffY   int
	BrackOffX, BrackOffY int
	NumberStyle        TupletNumberStyle
	PositioningStyle   TupletPositioningStyle
	AllowHorz          bool
	IgnoreHorzNumOffset bool
	BreakBracket       bool
	MatchHooks         bool
	UseBottomNote      bool
	BracketStyle       TupletBracketStyle
	SmartTuplet        bool
	LeftHookLen, LeftHookExt   int
	RightHookLen, RightHookExt int
	ManualSlopeAdj     int
}

var tupletDefFields = FieldTable[TupletDef]{
	{Tag: "symbolicNum", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.DisplayNumber = int(v)
		}
		return nil
	}},
	{Tag: "symbolicDur", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.DisplayDuration = ids.Edu(v)
		}
		return nil
	}},
	{Tag: "refNum", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.InTheTimeOfNumber = int(v)
		}
		return nil
	}},
	{Tag: "refDur", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.InTheTimeOfDuration = ids.Edu(v)
		}
		return nil
	}},
	{Tag: "flat", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.AlwaysFlat = true; return nil }},
	{Tag: "fullDura", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.FullDura = true; return nil }},
	{Tag: "metricCenter", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.MetricCenter = true; return nil }},
	{Tag: "avoidStaff", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.AvoidStaff = true; return nil }},
	{Tag: "autoBracketStyle", Set: func(t *TupletDef, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletAutoBracketStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.AutoBracketStyle = v
		return nil
	}},
	{Tag: "tupOffX", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.TupOffX = int(v)
		}
		return nil
	}},
	{Tag: "tupOffY", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.TupOffY = int(v)
		}
		return nil
	}},
	{Tag: "brackOffX", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.BrackOffX = int(v)
		}
		return nil
	}},
	{Tag: "brackOffY", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.BrackOffY = int(v)
		}
		return nil
	}},
	{Tag: "numStyle", Set: func(t *TupletDef, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletNumberStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.NumberStyle = v
		return nil
	}},
	{Tag: "posStyle", Set: func(t *TupletDef, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletPositioningStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.PositioningStyle = v
		return nil
	}},
	{Tag: "allowHorz", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.AllowHorz = true; return nil }},
	{Tag: "ignoreGlOffs", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error {
		t.IgnoreHorzNumOffset = true
		return nil
	}},
	{Tag: "breakBracket", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.BreakBracket = true; return nil }},
	{Tag: "matchHooks", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.MatchHooks = true; return nil }},
	{Tag: "noteBelow", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.UseBottomNote = true; return nil }},
	{Tag: "brackStyle", Set: func(t *TupletDef, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletBracketStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.BracketStyle = v
		return nil
	}},
	{Tag: "smartTuplet", Set: func(t *TupletDef, _ xmlapi.Element, _ *LoadContext) error { t.SmartTuplet = true; return nil }},
	{Tag: "leftHookLen", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.LeftHookLen = int(v)
		}
		return nil
	}},
	{Tag: "leftHookExt", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.LeftHookExt = int(v)
		}
		return nil
	}},
	{Tag: "rightHookLen", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.RightHookLen = int(v)
		}
		return nil
	}},
	{Tag: "rightHookExt", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.RightHookExt = int(v)
		}
		return nil
	}},
	{Tag: "slope", Set: func(t *TupletDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.ManualSlopeAdj = int(v)
		}
		return nil
	}},
}

// PopulateTupletDef populates a TupletDef from its <tupletDef> element.
func PopulateTupletDef(t *TupletDef, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, tupletDefFields, "tupletDef", ctx)
}

// SpanFraction returns the tuplet's total actual duration — the real
// time its DisplayNumber entries occupy — as a Fraction of a whole
// note: InTheTimeOfNumber reference notes of InTheTimeOfDuration each
// (spec §8, "Tuplet arithmetic"). This is the "N in the time of M"
// reference span, not the nominal (display) duration of its members.
func (t *TupletDef) SpanFraction() ids.Fraction {
	return ids.FractionFromEdu(t.InTheTimeOfDuration).Mul(ids.NewFraction(int64(t.InTheTimeOfNumber), 1))
}

// TimeScale returns the ratio actualDuration = nominalDuration *
// TimeScale applied to entries nested inside this tuplet (spec §4.8
// step 5): the tuplet's total reference span divided by its total
// nominal (display) span, so nesting multiplies correctly.
func (t *TupletDef) TimeScale() ids.Fraction {
	if t.DisplayNumber == 0 || t.DisplayDuration == 0 {
		return ids.NewFraction(1, 1)
	}
	nominal := ids.FractionFromEdu(t.DisplayDuration).Mul(ids.NewFraction(int64(t.DisplayNumber), 1))
	return t.SpanFraction().Div(nominal)
}

// SecondaryBeamBreak is a Details record attached to an entry: its mask
// names which beam levels (eighth..4096th) terminate at that entry
// (spec §4.8).
type SecondaryBeamBreak struct {
	DetailsBase
	Mask uint16
}

var secondaryBeamBreakFields = FieldTable[SecondaryBeamBreak]{
	{Tag: "breakLevel", Set: func(t *SecondaryBeamBreak, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok && v >= 0 && v <= 15 {
			t.Mask |= 1 << uint(v)
		}
		return nil
	}},
}

// PopulateSecondaryBeamBreak populates a SecondaryBeamBreak from its
// <secBeamBreak> element.
func PopulateSecondaryBeamBreak(t *SecondaryBeamBreak, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, secondaryBeamBreakFields, "secBeamBreak", ctx)
}

// BreaksAt reports whether this break terminates the given beam level.
func (b *SecondaryBeamBreak) BreaksAt(level SecondaryBeamLevel) bool {
	if b.Mask == 0 {
		// Open Question (a) in spec §9: the original returns level 2 for
		// an empty mask. Preserved pending verification against new
		// documents.
		return level == BeamLevel32nd
	}
	return b.Mask&(1<<uint(level)) != 0
}

// BeamStubDirection is a Details record attached to an entry: the
// direction a beam stub (a partial beam with nothing to connect to)
// points.
type BeamStubDirection struct {
	DetailsBase
	Direction StemDirection
}

var beamStubDirectionFields = FieldTable[BeamStubDirection]{
	{Tag: "dir", Set: func(t *BeamStubDirection, el xmlapi.Element, _ *LoadContext) error {
		switch el.Text() {
		case "up":
			t.Direction = StemUp
		case "down":
			t.Direction = StemDown
		}
		return nil
	}},
}

// PopulateBeamStubDirection populates a BeamStubDirection.
func PopulateBeamStubDirection(t *BeamStubDirection, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, beamStubDirectionFields, "beamStubDirection", ctx)
}

// LyricAssignType names which lyric pool a LyricAssign references.
type LyricAssignType int

const (
	LyricVerse LyricAssignType = iota
	LyricChorus
	LyricSection
)

// LyricAssign is a Details record attached to an entry: it binds a lyric
// syllable stream (spec C11) to the note that carries it.
type LyricAssign struct {
	DetailsBase
	Type   LyricAssignType
	Number ids.Cmper
}

var lyricAssignFields = FieldTable[LyricAssign]{
	{Tag: "verse", Set: func(t *LyricAssign, el xmlapi.Element, _ *LoadContext) error {
		t.Type = LyricVerse
		if v, ok := textInt(el); ok {
			t.Number = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "chorus", Set: func(t *LyricAssign, el xmlapi.Element, _ *LoadContext) error {
		t.Type = LyricChorus
		if v, ok := textInt(el); ok {
			t.Number = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "section", Set: func(t *LyricAssign, el xmlapi.Element, _ *LoadContext) error {
		t.Type = LyricSection
		if v, ok := textInt(el); ok {
			t.Number = ids.Cmper(v)
		}
		return nil
	}},
}

// PopulateLyricAssign populates a LyricAssign from its <lyricAssign>
// element.
func PopulateLyricAssign(t *LyricAssign, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, lyricAssignFields, "lyricAssign", ctx)
}

// GFrameHold is a Details record keyed by (part, Cmper1=staff,
// Cmper2=measure): it anchors a frame to a staff-measure and carries
// clef information. ClefID is a pointer because "unset" (fall through to
// ClefListID) is distinct from "clef zero" (spec's concrete scenario 1).
type GFrameHold struct {
	DetailsBase
	ClefID      *int
	ClefListID  ids.Cmper
	ShowClefMode ShowClefMode
	ClefPercent int
	MirrorFrame bool
	Frames      [4]ids.Cmper // frame cmper per layer 0..3; zero means empty
}

var gFrameHoldFields = FieldTable[GFrameHold]{
	{Tag: "clefID", Set: func(t *GFrameHold, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			iv := int(v)
			t.ClefID = &iv
		}
		return nil
	}},
	{Tag: "clefListID", Set: func(t *GFrameHold, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.ClefListID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "clefMode", Set: func(t *GFrameHold, el xmlapi.Element, ctx *LoadContext) error {
		v, err := showClefModeTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.ShowClefMode = v
		return nil
	}},
	{Tag: "clefPercent", Set: func(t *GFrameHold, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.ClefPercent = int(v)
		}
		return nil
	}},
	{Tag: "mirrorFrame", Set: func(t *GFrameHold, _ xmlapi.Element, _ *LoadContext) error {
		t.MirrorFrame = true
		return nil
	}},
	{Tag: "frame1", Set: gframeHoldLayerSetter(0)},
	{Tag: "frame2", Set: gframeHoldLayerSetter(1)},
	{Tag: "frame3", Set: gframeHoldLayerSetter(2)},
	{Tag: "frame4", Set: gframeHoldLayerSetter(3)},
}

func gframeHoldLayerSetter(layer int) FieldSetter[GFrameHold] {
	return func(t *GFrameHold, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Frames[layer] = ids.Cmper(v)
		}
		return nil
	}
}

// PopulateGFrameHold populates a GFrameHold from its <gfhold> element
// and runs its integrity check (spec's concrete scenario 1: a clef id
// and a clef list id cannot both be set).
func PopulateGFrameHold(t *GFrameHold, el xmlapi.Element, ctx *LoadContext) error {
	if err := Populate(t, el, gFrameHoldFields, "gfhold", ctx); err != nil {
		return err
	}
	return CheckGFrameHoldIntegrity(t)
}

// CheckGFrameHoldIntegrity enforces spec's concrete scenario 1.
func CheckGFrameHoldIntegrity(t *GFrameHold) error {
	if t.ClefID != nil && t.ClefListID != 0 {
		return integrityError("gfhold has both a clef id and a clef list id")
	}
	return nil
}

// AlternateNotation is a Details record attached to an entry: when
// present and Hides is true, the entry always displays as a rest
// regardless of its own rest flag (spec §4.8, calcDisplaysAsRest).
type AlternateNotation struct {
	DetailsBase
	Hides bool
}

var alternateNotationFields = FieldTable[AlternateNotation]{
	{Tag: "hide", Set: func(t *AlternateNotation, _ xmlapi.Element, _ *LoadContext) error { t.Hides = true; return nil }},
}

// PopulateAlternateNotation populates an AlternateNotation.
func PopulateAlternateNotation(t *AlternateNotation, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, alternateNotationFields, "altNotation", ctx)
}

// PercussionNoteInfo is a Details record attached to an entry: it maps a
// note's percussion slot to a displayed notehead/staff-line (the
// supplemented feature in SPEC_FULL §3).
type PercussionNoteInfo struct {
	DetailsBase
	NoteIndex        int
	NotationNoteType int
	StaffLine        int
}

var percussionNoteInfoFields = FieldTable[PercussionNoteInfo]{
	{Tag: "noteIndex", Set: func(t *PercussionNoteInfo, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.NoteIndex = int(v)
		}
		return nil
	}},
	{Tag: "notationNoteType", Set: func(t *PercussionNoteInfo, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.NotationNoteType = int(v)
		}
		return nil
	}},
	{Tag: "staffLine", Set: func(t *PercussionNoteInfo, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.StaffLine = int(v)
		}
		return nil
	}},
}

// PopulatePercussionNoteInfo populates a PercussionNoteInfo.
func PopulatePercussionNoteInfo(t *PercussionNoteInfo, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, percussionNoteInfoFields, "percNoteInfo", ctx)
}

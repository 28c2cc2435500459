package dom

import (
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/xmlapi"
)

// KeySignature is the inline key signature carried by a Measure: a mode
// plus an alteration count, and (for non-standard keys) the Cmper of a
// KeyFormat record holding the custom arrays spec §4.9 describes.
type KeySignature struct {
	Mode        KeyMode
	Alteration  int
	CustomKeyID ids.Cmper // zero for a standard 12-EDO linear key
}

// Measure is an Others record: time signature, key signature, barline
// style, and (indirectly, via GFrameHold details) the per-layer frames.
type Measure struct {
	OthersBase
	Beats        int
	Divisor      ids.Edu // Edu value of one beat
	Key          KeySignature
	BarlineShape string
	Width        ids.Evpu
}

var measureFields = FieldTable[Measure]{
	{Tag: "beats", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Beats = int(v)
		}
		return nil
	}},
	{Tag: "divbeat", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Divisor = ids.Edu(v)
		}
		return nil
	}},
	{Tag: "keyMode", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if el.Text() == "nonLinear" {
			t.Key.Mode = KeyModeNonLinear
		}
		return nil
	}},
	{Tag: "keySig", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Key.Alteration = int(v)
		}
		return nil
	}},
	{Tag: "customKey", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Key.CustomKeyID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "barline", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		t.BarlineShape = el.Text()
		return nil
	}},
	{Tag: "width", Set: func(t *Measure, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Width = ids.Evpu(v)
		}
		return nil
	}},
}

// PopulateMeasure populates a Measure from its <measureSpec> element.
func PopulateMeasure(t *Measure, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, measureFields, "measureSpec", ctx)
}

// Transposition describes a Staff's written-vs-concert pitch offset: a
// chromatic interval, a key-signature-relative interval, or a
// clef-based shift (spec §3's "Staff ... carry a Transposition").
type Transposition struct {
	Kind            TranspositionKind
	Displacement    int // diatonic steps
	ChromaticOffset int // alteration in semitones (chromatic kind) or key steps (key-sig kind)
}

// Staff is an Others record describing one instrumental/vocal line.
// AutoNumberValue is the lone runtime-computed field (spec §3): a
// write-once lazy cell set only through SetAutoNumberValue. Neither Load
// nor instruments.Build calls it, so it is unset after a load.
type Staff struct {
	OthersBase
	FullNameID       ids.Cmper
	AbbreviatedNameID ids.Cmper
	NotationStyle    NotationStyle
	Transpose        *Transposition
	InstUUID         string
	MultiStaffInstID ids.Cmper
	HideStems        bool
	AllowAutoNumber  bool
	TopBarlineOffset int
	autoNumberValue  *int // write-once lazy cell; see SetAutoNumberValue/AutoNumberValue
}

// AutoNumberValue returns the cached auto-number value and whether it
// has been computed yet.
func (s *Staff) AutoNumberValue() (int, bool) {
	if s.autoNumberValue == nil {
		return 0, false
	}
	return *s.autoNumberValue, true
}

// SetAutoNumberValue sets the cell exactly once; subsequent calls are a
// no-op so repeated computation of the same derived value is harmless,
// per spec §5's "Shared resources" contract.
func (s *Staff) SetAutoNumberValue(v int) {
	if s.autoNumberValue != nil {
		return
	}
	s.autoNumberValue = &v
}

var staffFields = FieldTable[Staff]{
	{Tag: "fullName", Set: func(t *Staff, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.FullNameID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "abbrvName", Set: func(t *Staff, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.AbbreviatedNameID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "notationStyle", Set: func(t *Staff, el xmlapi.Element, ctx *LoadContext) error {
		v, err := notationStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.NotationStyle = v
		return nil
	}},
	{Tag: "instUuid", Set: func(t *Staff, el xmlapi.Element, _ *LoadContext) error {
		t.InstUUID = normalizeInstUUID(el.Text())
		return nil
	}},
	{Tag: "multiStaffInstId", Set: func(t *Staff, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.MultiStaffInstID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "hideStems", Set: func(t *Staff, _ xmlapi.Element, _ *LoadContext) error {
		t.HideStems = true
		return nil
	}},
	{Tag: "noAutoNumber", Set: func(t *Staff, _ xmlapi.Element, _ *LoadContext) error {
		t.AllowAutoNumber = false
		return nil
	}},
}

// PopulateStaff populates a Staff from its <staffSpec> element. The
// loader sets AllowAutoNumber true before populating and only the
// explicit <noAutoNumber/> marker clears it, since its absence in
// EnigmaXML means auto-numbering stays enabled.
func PopulateStaff(t *Staff, el xmlapi.Element, ctx *LoadContext) error {
	t.AllowAutoNumber = true
	return Populate(t, el, staffFields, "staffSpec", ctx)
}

// StaffStyleMask names which grouped field(s) a StaffStyle overrides.
// Represented as a bitset so the overlay loop in staffcomposite is a
// branch-predictable, data-oriented copy rather than per-field virtual
// dispatch (spec §9, "Template-and-mask").
type StaffStyleMask uint32

const (
	MaskStaffType StaffStyleMask = 1 << iota
	MaskNotationStyle
	MaskTransposition
	MaskHideStems
	MaskInstUUID
)

// StaffTypeOverride is the field group copied when MaskStaffType is set.
type StaffTypeOverride struct {
	CustomStaff []int // ledger-line positions, sorted ascending
}

// StaffStyle is an Others record: a named, masked bundle of staff
// field overrides, bound to staves via StaffStyleAssign.
type StaffStyle struct {
	OthersBase
	Name          string
	Mask          StaffStyleMask
	StaffType     StaffTypeOverride
	NotationStyle NotationStyle
	Transpose     *Transposition
	HideStems     bool
	InstUUID      string
}

var staffStyleFields = FieldTable[StaffStyle]{
	{Tag: "styleName", Set: func(t *StaffStyle, el xmlapi.Element, _ *LoadContext) error {
		t.Name = el.Text()
		return nil
	}},
	{Tag: "customStaff", Set: func(t *StaffStyle, el xmlapi.Element, _ *LoadContext) error {
		t.Mask |= MaskStaffType
		for line := el.FirstChild("line"); line != nil; line = line.NextSibling("line") {
			if v, ok := textInt(line); ok {
				t.StaffType.CustomStaff = append(t.StaffType.CustomStaff, int(v))
			}
		}
		sortInts(t.StaffType.CustomStaff)
		return nil
	}},
	{Tag: "notationStyle", Set: func(t *StaffStyle, el xmlapi.Element, ctx *LoadContext) error {
		v, err := notationStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.Mask |= MaskNotationStyle
		t.NotationStyle = v
		return nil
	}},
	{Tag: "hideStems", Set: func(t *StaffStyle, _ xmlapi.Element, _ *LoadContext) error {
		t.Mask |= MaskHideStems
		t.HideStems = true
		return nil
	}},
	{Tag: "instUuid", Set: func(t *StaffStyle, el xmlapi.Element, _ *LoadContext) error {
		t.InstUUID = normalizeInstUUID(el.Text())
		return nil
	}},
}

// PopulateStaffStyle populates a StaffStyle from its <staffStyle>
// element.
func PopulateStaffStyle(t *StaffStyle, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, staffStyleFields, "staffStyle", ctx)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// EduRange is an inclusive (measure, edu) span used by StaffStyleAssign
// and SmartShape measure-edu endpoints.
type EduRange struct {
	StartMeasure ids.Cmper
	StartEdu     ids.Edu
	EndMeasure   ids.Cmper
	EndEdu       ids.Edu // ids.Edu(-1) means "to the end of EndMeasure"
}

// Contains reports whether (measure, edu) falls within the range,
// inclusive of both ends.
func (r EduRange) Contains(measure ids.Cmper, edu ids.Edu) bool {
	if measure < r.StartMeasure || measure > r.EndMeasure {
		return false
	}
	if measure == r.StartMeasure && edu < r.StartEdu {
		return false
	}
	if measure == r.EndMeasure && r.EndEdu >= 0 && edu > r.EndEdu {
		return false
	}
	return true
}

// StaffStyleAssign is an Others record binding a StaffStyle to a staff
// over a measure-edu range.
type StaffStyleAssign struct {
	OthersBase
	Staff     ids.Cmper
	StyleID   ids.Cmper
	Range     EduRange
}

var staffStyleAssignFields = FieldTable[StaffStyleAssign]{
	{Tag: "styleId", Set: func(t *StaffStyleAssign, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.StyleID = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "startMeas", Set: func(t *StaffStyleAssign, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Range.StartMeasure = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "startEdu", Set: func(t *StaffStyleAssign, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Range.StartEdu = ids.Edu(v)
		}
		return nil
	}},
	{Tag: "endMeas", Set: func(t *StaffStyleAssign, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Range.EndMeasure = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "endEdu", Set: func(t *StaffStyleAssign, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Range.EndEdu = ids.Edu(v)
		}
		return nil
	}},
}

// PopulateStaffStyleAssign populates a StaffStyleAssign from its
// <staffStyleAssign> element. EndEdu defaults to -1 ("to the end of
// EndMeasure") when the source document omits it.
func PopulateStaffStyleAssign(t *StaffStyleAssign, el xmlapi.Element, ctx *LoadContext) error {
	t.Range.EndEdu = -1
	return Populate(t, el, staffStyleAssignFields, "staffStyleAssign", ctx)
}

// Frame is an Others record: either a contiguous (startEntry, endEntry)
// slice of the entry chain, or a startTime placeholder. Specifying both
// is an integrity error (spec §3).
type Frame struct {
	OthersBase
	StartEntry ids.EntryNumber
	EndEntry   ids.EntryNumber
	StartTime  *ids.Edu
}

var frameFields = FieldTable[Frame]{
	{Tag: "startEntry", Set: func(t *Frame, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.StartEntry = ids.EntryNumber(v)
		}
		return nil
	}},
	{Tag: "endEntry", Set: func(t *Frame, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.EndEntry = ids.EntryNumber(v)
		}
		return nil
	}},
	{Tag: "startTime", Set: func(t *Frame, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			e := ids.Edu(v)
			t.StartTime = &e
		}
		return nil
	}},
}

// PopulateFrame populates a Frame and runs its integrity check.
func PopulateFrame(t *Frame, el xmlapi.Element, ctx *LoadContext) error {
	if err := Populate(t, el, frameFields, "frameSpec", ctx); err != nil {
		return err
	}
	return CheckFrameIntegrity(t)
}

// CheckFrameIntegrity enforces "invalid to specify both" from spec §3.
func CheckFrameIntegrity(t *Frame) error {
	hasEntryRange := t.StartEntry != 0 || t.EndEntry != 0
	if hasEntryRange && t.StartTime != nil {
		return integrityFrameBothSet()
	}
	return nil
}

// Page is an Others record describing one physical page.
type Page struct {
	OthersBase
	Width   ids.Evpu
	Height  ids.Evpu
	IsBlank bool
}

var pageFields = FieldTable[Page]{
	{Tag: "width", Set: func(t *Page, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Width = ids.Evpu(v)
		}
		return nil
	}},
	{Tag: "height", Set: func(t *Page, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Height = ids.Evpu(v)
		}
		return nil
	}},
	{Tag: "isBlank", Set: func(t *Page, _ xmlapi.Element, _ *LoadContext) error {
		t.IsBlank = true
		return nil
	}},
}

// PopulatePage populates a Page from its <pageSpec> element.
func PopulatePage(t *Page, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, pageFields, "pageSpec", ctx)
}

// StaffSystem is an Others record: one system (a group of staves shown
// together on one or more pages) spanning a measure range.
type StaffSystem struct {
	OthersBase
	StartMeasure ids.Cmper
	EndMeasure   ids.Cmper
}

var staffSystemFields = FieldTable[StaffSystem]{
	{Tag: "startMeas", Set: func(t *StaffSystem, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.StartMeasure = ids.Cmper(v)
		}
		return nil
	}},
	{Tag: "endMeas", Set: func(t *StaffSystem, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.EndMeasure = ids.Cmper(v)
		}
		return nil
	}},
}

// PopulateStaffSystem populates a StaffSystem from its <staffSystemSpec>
// element.
func PopulateStaffSystem(t *StaffSystem, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, staffSystemFields, "staffSystemSpec", ctx)
}

// StaffUsed is an Others record: one ordered entry of a scroll-view
// staff list (the Inci carries its top-to-bottom position).
type StaffUsed struct {
	OthersBase
	Staff ids.Cmper
}

var staffUsedFields = FieldTable[StaffUsed]{
	{Tag: "staff", Set: func(t *StaffUsed, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Staff = ids.Cmper(v)
		}
		return nil
	}},
}

// PopulateStaffUsed populates a StaffUsed from its <staffUsed> element.
func PopulateStaffUsed(t *StaffUsed, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, staffUsedFields, "staffUsed", ctx)
}

// MultiStaffInstrumentGroup is an Others record listing the staves that
// make up one defined multi-staff instrument (spec §4.10 pass 1).
type MultiStaffInstrumentGroup struct {
	OthersBase
	Staves []ids.Cmper // ordered top to bottom
}

var multiStaffInstrumentGroupFields = FieldTable[MultiStaffInstrumentGroup]{
	{Tag: "staffNum", Set: func(t *MultiStaffInstrumentGroup, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Staves = append(t.Staves, ids.Cmper(v))
		}
		return nil
	}},
}

// PopulateMultiStaffInstrumentGroup populates a
// MultiStaffInstrumentGroup from its <multiStaffInstGroup> element.
func PopulateMultiStaffInstrumentGroup(t *MultiStaffInstrumentGroup, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, multiStaffInstrumentGroupFields, "multiStaffInstGroup", ctx)
}

// ClefDef is an Others record: one clef definition (letter, staff
// position, octave transposition).
type ClefDef struct {
	OthersBase
	Letter           rune
	MiddleCLine      int
	ClefOctaveChange int
}

var clefDefFields = FieldTable[ClefDef]{
	{Tag: "letter", Set: func(t *ClefDef, el xmlapi.Element, _ *LoadContext) error {
		r := []rune(el.Text())
		if len(r) == 1 {
			t.Letter = r[0]
		}
		return nil
	}},
	{Tag: "middleCLine", Set: func(t *ClefDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.MiddleCLine = int(v)
		}
		return nil
	}},
	{Tag: "clefOctaveChange", Set: func(t *ClefDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.ClefOctaveChange = int(v)
		}
		return nil
	}},
}

// PopulateClefDef populates a ClefDef from its <clefDef> element.
func PopulateClefDef(t *ClefDef, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, clefDefFields, "clefDef", ctx)
}

// ClefListEntry is one (clef, position) pair within a ClefList.
type ClefListEntry struct {
	Clef ids.Cmper
	Edu  ids.Edu
}

// ClefList is an Others record: a sequence of mid-measure clef changes,
// referenced by GFrameHold.ClefListID (the supplemented feature in
// SPEC_FULL §3).
type ClefList struct {
	OthersBase
	Entries []ClefListEntry
}

var clefListFields = FieldTable[ClefList]{
	{Tag: "clefListEntry", Set: func(t *ClefList, el xmlapi.Element, _ *LoadContext) error {
		var e ClefListEntry
		if c := el.FirstChild("clef"); c != nil {
			if v, ok := textInt(c); ok {
				e.Clef = ids.Cmper(v)
			}
		}
		if p := el.FirstChild("xEduPos"); p != nil {
			if v, ok := textInt(p); ok {
				e.Edu = ids.Edu(v)
			}
		}
		t.Entries = append(t.Entries, e)
		return nil
	}},
}

// PopulateClefList populates a ClefList from its <clefList> element.
func PopulateClefList(t *ClefList, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, clefListFields, "clefList", ctx)
}

// KeyFormat is an Others record carrying the custom arrays a non-standard
// KeySignature needs (spec §4.9): tonal-center and accidental-amount
// arrays for sharp and flat contexts, the accidental emission order, the
// diatonic key map, and the EDO division count for microtonal keys.
type KeyFormat struct {
	OthersBase
	TonalCenterSharps []int
	TonalCenterFlats  []int
	AcciAmountSharps  []int
	AcciAmountFlats   []int
	AcciOrderSharps   []int
	AcciOrderFlats    []int
	KeyMap            []int
	EDODivisions      int
}

var keyFormatFields = FieldTable[KeyFormat]{
	{Tag: "tonalCenterSharps", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.TonalCenterSharps })},
	{Tag: "tonalCenterFlats", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.TonalCenterFlats })},
	{Tag: "acciAmountSharps", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.AcciAmountSharps })},
	{Tag: "acciAmountFlats", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.AcciAmountFlats })},
	{Tag: "acciOrderSharps", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.AcciOrderSharps })},
	{Tag: "acciOrderFlats", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.AcciOrderFlats })},
	{Tag: "keyMap", Set: intListAppender(func(t *KeyFormat) *[]int { return &t.KeyMap })},
	{Tag: "edoDivisions", Set: func(t *KeyFormat, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.EDODivisions = int(v)
		}
		return nil
	}},
}

func intListAppender[T any](field func(*T) *[]int) FieldSetter[T] {
	return func(t *T, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			p := field(t)
			*p = append(*p, int(v))
		}
		return nil
	}
}

// PopulateKeyFormat populates a KeyFormat from its <keyFormat> element.
func PopulateKeyFormat(t *KeyFormat, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, keyFormatFields, "keyFormat", ctx)
}

// TextExpressionDef is an Others record: a reusable expression marking
// (e.g. "mf", "rit.") tying a Texts block to a category and placement.
type TextExpressionDef struct {
	OthersBase
	TextID ids.Cmper
}

var textExpressionDefFields = FieldTable[TextExpressionDef]{
	{Tag: "textIDKey", Set: func(t *TextExpressionDef, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.TextID = ids.Cmper(v)
		}
		return nil
	}},
}

// PopulateTextExpressionDef populates a TextExpressionDef.
func PopulateTextExpressionDef(t *TextExpressionDef, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, textExpressionDefFields, "textExprDef", ctx)
}

// PartDefinition is an Others record naming one linked part. Its
// page-count cells are set only through SetPageCounts; Load does not
// count pages, so they are unset after a load.
type PartDefinition struct {
	OthersBase
	Name                      string
	numberOfPages             *int
	numberOfLeadingBlankPages *int
}

var partDefinitionFields = FieldTable[PartDefinition]{
	{Tag: "nameId", Set: func(t *PartDefinition, el xmlapi.Element, _ *LoadContext) error {
		t.Name = el.Text()
		return nil
	}},
}

// PopulatePartDefinition populates a PartDefinition from its
// <partDef> element.
func PopulatePartDefinition(t *PartDefinition, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, partDefinitionFields, "partDef", ctx)
}

// SetPageCounts sets the write-once page-count cells; the first call
// wins. Nothing in the loader calls it.
func (t *PartDefinition) SetPageCounts(pages, leadingBlank int) {
	if t.numberOfPages == nil {
		t.numberOfPages = &pages
	}
	if t.numberOfLeadingBlankPages == nil {
		t.numberOfLeadingBlankPages = &leadingBlank
	}
}

// PageCounts returns the cached page counts and whether they have been
// computed yet.
func (t *PartDefinition) PageCounts() (pages, leadingBlank int, ok bool) {
	if t.numberOfPages == nil || t.numberOfLeadingBlankPages == nil {
		return 0, 0, false
	}
	return *t.numberOfPages, *t.numberOfLeadingBlankPages, true
}

func integrityFrameBothSet() error {
	return integrityError("frame has both a start/end entry range and a start-time placeholder")
}

// Package musxdom is the root component: it orchestrates loading an
// EnigmaXML document into typed, pool-backed records (spec C6) and
// exposes the resulting Document handle (spec C12) that every
// compositor package (staffcomposite, entryframe, keysig, instruments,
// enigma) reads from.
package musxdom

import (
	"fmt"
	"log/slog"

	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/instruments"
	"github.com/cartomix/musxdom/linker"
	"github.com/cartomix/musxdom/musxerr"
	"github.com/cartomix/musxdom/pool"
	"github.com/cartomix/musxdom/smufl"
	"github.com/cartomix/musxdom/stdxml"
	"github.com/cartomix/musxdom/xmlapi"
)

// Document is the fully loaded, queryable handle to one EnigmaXML
// document. Every pool is populated once by Load and is read-only
// afterward; runtime-computed fields live on the records themselves as
// write-once cells (dom.Staff.SetAutoNumberValue and similar), not on
// Document.
type Document struct {
	Header *dom.HeaderData

	FontOptions   *pool.OptionsPool[dom.FontOptions]
	TupletOptions *pool.OptionsPool[dom.TupletOptions]
	LyricOptions  *pool.OptionsPool[dom.LyricOptions]
	BeamOptions   *pool.OptionsPool[dom.BeamOptions]

	Measures           *pool.OthersPool[dom.Measure]
	Staves             *pool.OthersPool[dom.Staff]
	StaffStyles        *pool.OthersPool[dom.StaffStyle]
	StaffStyleAssigns  *pool.OthersPool[dom.StaffStyleAssign]
	Frames             *pool.OthersPool[dom.Frame]
	Pages              *pool.OthersPool[dom.Page]
	StaffSystems       *pool.OthersPool[dom.StaffSystem]
	StaffUseds         *pool.OthersPool[dom.StaffUsed]
	MultiStaffGroups   *pool.OthersPool[dom.MultiStaffInstrumentGroup]
	ClefDefs           *pool.OthersPool[dom.ClefDef]
	ClefLists          *pool.OthersPool[dom.ClefList]
	KeyFormats         *pool.OthersPool[dom.KeyFormat]
	TextExpressionDefs *pool.OthersPool[dom.TextExpressionDef]
	PartDefinitions    *pool.OthersPool[dom.PartDefinition]

	StaffGroups *pool.DetailsPool[dom.StaffGroup]
	GFrameHolds *pool.DetailsPool[dom.GFrameHold]

	TupletDefs          *pool.EntryDetailsPool[dom.TupletDef]
	SecondaryBeamBreaks *pool.EntryDetailsPool[dom.SecondaryBeamBreak]
	BeamStubDirections  *pool.EntryDetailsPool[dom.BeamStubDirection]
	LyricAssigns        *pool.EntryDetailsPool[dom.LyricAssign]
	AlternateNotations  *pool.EntryDetailsPool[dom.AlternateNotation]
	PercussionNoteInfos *pool.EntryDetailsPool[dom.PercussionNoteInfo]

	Entries *pool.EntryPool[dom.Entry]

	TextBlocks    *pool.TextsPool[dom.TextBlock]
	FileInfoTexts *pool.TextsPool[dom.FileInfoText]

	// SMuFL resolves accidental glyphs (and any other cached glyph
	// name) to real font codepoints for text and key-signature
	// rendering; nil unless the caller attached one via
	// WithSMuFLClassifier (spec SPEC_FULL §3).
	SMuFL *smufl.Classifier

	logger *slog.Logger
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	strict bool
	logger *slog.Logger
	smufl  *smufl.Classifier
}

// WithStrict makes unknown XML tags and enum tokens fatal instead of
// logged-and-skipped (spec §4.2).
func WithStrict(strict bool) LoadOption {
	return func(c *loadConfig) { c.strict = strict }
}

// WithLogger overrides the slog.Logger used during load; the default is
// slog.Default().
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithSMuFLClassifier attaches a glyph classifier, constructed once by
// the caller from an open smufl.Cache, that the document's text and
// key-signature rendering paths consult for accidental codepoints
// instead of a hardcoded Unicode table.
func WithSMuFLClassifier(classifier *smufl.Classifier) LoadOption {
	return func(c *loadConfig) { c.smufl = classifier }
}

func newDocument(logger *slog.Logger, classifier *smufl.Classifier) *Document {
	return &Document{
		FontOptions:   pool.NewOptionsPool[dom.FontOptions](),
		TupletOptions: pool.NewOptionsPool[dom.TupletOptions](),
		LyricOptions:  pool.NewOptionsPool[dom.LyricOptions](),
		BeamOptions:   pool.NewOptionsPool[dom.BeamOptions](),

		Measures:           pool.NewOthersPool[dom.Measure](),
		Staves:             pool.NewOthersPool[dom.Staff](),
		StaffStyles:        pool.NewOthersPool[dom.StaffStyle](),
		StaffStyleAssigns:  pool.NewOthersPool[dom.StaffStyleAssign](),
		Frames:             pool.NewOthersPool[dom.Frame](),
		Pages:              pool.NewOthersPool[dom.Page](),
		StaffSystems:       pool.NewOthersPool[dom.StaffSystem](),
		StaffUseds:         pool.NewOthersPool[dom.StaffUsed](),
		MultiStaffGroups:   pool.NewOthersPool[dom.MultiStaffInstrumentGroup](),
		ClefDefs:           pool.NewOthersPool[dom.ClefDef](),
		ClefLists:          pool.NewOthersPool[dom.ClefList](),
		KeyFormats:         pool.NewOthersPool[dom.KeyFormat](),
		TextExpressionDefs: pool.NewOthersPool[dom.TextExpressionDef](),
		PartDefinitions:    pool.NewOthersPool[dom.PartDefinition](),

		StaffGroups: pool.NewDetailsPool[dom.StaffGroup](),
		GFrameHolds: pool.NewDetailsPool[dom.GFrameHold](),

		TupletDefs:          pool.NewEntryDetailsPool[dom.TupletDef](),
		SecondaryBeamBreaks: pool.NewEntryDetailsPool[dom.SecondaryBeamBreak](),
		BeamStubDirections:  pool.NewEntryDetailsPool[dom.BeamStubDirection](),
		LyricAssigns:        pool.NewEntryDetailsPool[dom.LyricAssign](),
		AlternateNotations:  pool.NewEntryDetailsPool[dom.AlternateNotation](),
		PercussionNoteInfos: pool.NewEntryDetailsPool[dom.PercussionNoteInfo](),

		Entries: pool.NewEntryPool[dom.Entry](),

		TextBlocks:    pool.NewTextsPool[dom.TextBlock](),
		FileInfoTexts: pool.NewTextsPool[dom.FileInfoText](),

		SMuFL: classifier,

		logger: logger,
	}
}

// Load parses raw EnigmaXML data and populates every pool from it,
// running the deferred linker pass once every pool has finished
// loading (spec C5/C6).
func Load(data []byte, opts ...LoadOption) (*Document, error) {
	cfg := loadConfig{logger: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	xdoc, err := stdxml.Parse(data)
	if err != nil {
		return nil, err
	}

	root := xdoc.Root()
	if root == nil {
		return nil, musxerr.Load("document", fmt.Errorf("empty document"))
	}

	ctx := &dom.LoadContext{Strict: cfg.strict, Logger: cfg.logger}
	d := newDocument(cfg.logger, cfg.smufl)
	reg := linker.New(cfg.logger)

	if header := root.FirstChild("header"); header != nil {
		h := &dom.HeaderData{}
		if err := dom.PopulateHeaderData(h, header, ctx); err != nil {
			return nil, err
		}
		d.Header = h
		ctx.MacRoman = h.IsMacRoman()
	}

	if err := d.loadOptions(root, ctx); err != nil {
		return nil, err
	}
	if err := d.loadOthers(root, ctx); err != nil {
		return nil, err
	}
	if err := d.loadEntries(root, ctx); err != nil {
		return nil, err
	}
	if err := d.loadDetails(root, ctx); err != nil {
		return nil, err
	}
	if err := d.loadTexts(root, ctx); err != nil {
		return nil, err
	}

	d.registerGroupResolvers(reg)
	if err := reg.Run(); err != nil {
		return nil, err
	}

	return d, nil
}

func attrPart(el xmlapi.Element) ids.PartID {
	if a := el.Attribute("part"); a != nil {
		if v, ok := a.Int(); ok {
			return ids.PartID(v)
		}
	}
	return ids.SCOREPARTID
}

func attrCmper(el xmlapi.Element, name string) ids.Cmper {
	if a := el.Attribute(name); a != nil {
		if v, ok := a.Int(); ok {
			return ids.Cmper(v)
		}
	}
	return 0
}

func attrInci(el xmlapi.Element) ids.Inci {
	if a := el.Attribute("inci"); a != nil {
		if v, ok := a.Int(); ok {
			return ids.Inci(v)
		}
	}
	return ids.NoInci
}

func attrEntryNumber(el xmlapi.Element, name string) ids.EntryNumber {
	if a := el.Attribute(name); a != nil {
		if v, ok := a.Int(); ok {
			return ids.EntryNumber(v)
		}
	}
	return 0
}

package dom

import (
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/xmlapi"
)

// FontOptions names the document's default music font. The SMuFL
// classifier (the supplemented feature in SPEC_FULL §3) does not read
// it; it resolves glyphs from whatever metadata its cache holds.
type FontOptions struct {
	OptionsBase
	MusicFontName string
	MusicFontID   ids.Cmper
}

var fontOptionsFields = FieldTable[FontOptions]{
	{Tag: "musicFontName", Set: func(t *FontOptions, el xmlapi.Element, _ *LoadContext) error {
		t.MusicFontName = el.Text()
		return nil
	}},
	{Tag: "musicFontID", Set: func(t *FontOptions, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.MusicFontID = ids.Cmper(v)
		}
		return nil
	}},
}

// PopulateFontOptions populates a FontOptions from its <fontOptions>
// element's children.
func PopulateFontOptions(t *FontOptions, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, fontOptionsFields, "fontOptions", ctx)
}

// TupletOptions holds the document-wide tuplet defaults; TupletDef
// details override these per entry.
type TupletOptions struct {
	OptionsBase
	AutoBracketStyle  TupletAutoBracketStyle
	NumberStyle       TupletNumberStyle
	PositioningStyle  TupletPositioningStyle
	BracketStyle      TupletBracketStyle
	FlattenTupletsOverBarlines bool
}

var tupletOptionsFields = FieldTable[TupletOptions]{
	{Tag: "autoBracketStyle", Set: func(t *TupletOptions, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletAutoBracketStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.AutoBracketStyle = v
		return nil
	}},
	{Tag: "numStyle", Set: func(t *TupletOptions, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletNumberStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.NumberStyle = v
		return nil
	}},
	{Tag: "posStyle", Set: func(t *TupletOptions, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletPositioningStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.PositioningStyle = v
		return nil
	}},
	{Tag: "brackStyle", Set: func(t *TupletOptions, el xmlapi.Element, ctx *LoadContext) error {
		v, err := tupletBracketStyleTable.Parse(el.Text(), ctx)
		if err != nil {
			return err
		}
		t.BracketStyle = v
		return nil
	}},
	{Tag: "flatTupletsOverBarlines", Set: func(t *TupletOptions, _ xmlapi.Element, _ *LoadContext) error {
		t.FlattenTupletsOverBarlines = true
		return nil
	}},
}

// PopulateTupletOptions populates a TupletOptions from its element.
func PopulateTupletOptions(t *TupletOptions, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, tupletOptionsFields, "tupletOptions", ctx)
}

// LyricOptions holds the lyric punctuation-to-ignore setting.
// enigma.SplitSyllables does not consult it.
type LyricOptions struct {
	OptionsBase
	PunctuationToIgnore string
}

var lyricOptionsFields = FieldTable[LyricOptions]{
	{Tag: "lyricPunctuationToIgnore", Set: func(t *LyricOptions, el xmlapi.Element, _ *LoadContext) error {
		t.PunctuationToIgnore = el.Text()
		return nil
	}},
}

// PopulateLyricOptions populates a LyricOptions from its element.
func PopulateLyricOptions(t *LyricOptions, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, lyricOptionsFields, "lyricOptions", ctx)
}

// BeamOptions governs beam-grouping policy shared by every staff.
type BeamOptions struct {
	OptionsBase
	ExtendBeamsOverRests bool
}

var beamOptionsFields = FieldTable[BeamOptions]{
	{Tag: "extendBeamsOverRests", Set: func(t *BeamOptions, _ xmlapi.Element, _ *LoadContext) error {
		t.ExtendBeamsOverRests = true
		return nil
	}},
}

// PopulateBeamOptions populates a BeamOptions from its element.
func PopulateBeamOptions(t *BeamOptions, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, beamOptionsFields, "beamOptions", ctx)
}

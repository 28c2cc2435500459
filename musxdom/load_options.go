package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/xmlapi"
)

func (d *Document) loadOptions(root xmlapi.Element, ctx *dom.LoadContext) error {
	options := root.FirstChild("options")
	if options == nil {
		return nil
	}
	for el := options.FirstChild(); el != nil; el = el.NextSibling() {
		part := attrPart(el)
		switch el.Tag() {
		case "fontOptions":
			t := &dom.FontOptions{OptionsBase: dom.OptionsBase{Part: part}}
			if err := dom.PopulateFontOptions(t, el, ctx); err != nil {
				return err
			}
			d.FontOptions.Add(part, t)
		case "tupletOptions":
			t := &dom.TupletOptions{OptionsBase: dom.OptionsBase{Part: part}}
			if err := dom.PopulateTupletOptions(t, el, ctx); err != nil {
				return err
			}
			d.TupletOptions.Add(part, t)
		case "lyricOptions":
			t := &dom.LyricOptions{OptionsBase: dom.OptionsBase{Part: part}}
			if err := dom.PopulateLyricOptions(t, el, ctx); err != nil {
				return err
			}
			d.LyricOptions.Add(part, t)
		case "beamOptions":
			t := &dom.BeamOptions{OptionsBase: dom.OptionsBase{Part: part}}
			if err := dom.PopulateBeamOptions(t, el, ctx); err != nil {
				return err
			}
			d.BeamOptions.Add(part, t)
		default:
			// Not yet a modeled Options record kind; skipped rather than
			// treated as a malformed child, since this is a missing record
			// type, not an unknown field of one (spec §4.2 applies to the
			// latter).
		}
	}
	return nil
}

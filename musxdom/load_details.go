package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/pool"
	"github.com/cartomix/musxdom/xmlapi"
)

func detailsBase2Cmper(el xmlapi.Element, cmper1Attr, cmper2Attr string) dom.DetailsBase {
	part := attrPart(el)
	return dom.DetailsBase{
		Part:            part,
		Cmper1:          attrCmper(el, cmper1Attr),
		Cmper2:          attrCmper(el, cmper2Attr),
		Inci:            attrInci(el),
		RequestedPartID: part,
	}
}

func detailsBaseEntry(el xmlapi.Element) dom.DetailsBase {
	part := attrPart(el)
	return dom.DetailsBase{
		Part:            part,
		EntryNumber:     attrEntryNumber(el, "entnum"),
		Inci:            attrInci(el),
		RequestedPartID: part,
	}
}

func (d *Document) loadDetails(root xmlapi.Element, ctx *dom.LoadContext) error {
	details := root.FirstChild("details")
	if details == nil {
		return nil
	}
	for el := details.FirstChild(); el != nil; el = el.NextSibling() {
		switch el.Tag() {
		case "staffGroup":
			t := &dom.StaffGroup{DetailsBase: detailsBase2Cmper(el, "cmper1", "cmper2")}
			if err := dom.PopulateStaffGroup(t, el, ctx); err != nil {
				return err
			}
			d.StaffGroups.Add(pool.DetailsKey{Part: t.Part, Cmper1: t.Cmper1, Cmper2: t.Cmper2, Inci: t.Inci}, t)
		case "gfhold":
			t := &dom.GFrameHold{DetailsBase: detailsBase2Cmper(el, "cmper1", "cmper2")}
			if err := dom.PopulateGFrameHold(t, el, ctx); err != nil {
				return err
			}
			d.GFrameHolds.Add(pool.DetailsKey{Part: t.Part, Cmper1: t.Cmper1, Cmper2: t.Cmper2, Inci: t.Inci}, t)
		case "tupletDef":
			t := &dom.TupletDef{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulateTupletDef(t, el, ctx); err != nil {
				return err
			}
			d.TupletDefs.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		case "secBeamBreak":
			t := &dom.SecondaryBeamBreak{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulateSecondaryBeamBreak(t, el, ctx); err != nil {
				return err
			}
			d.SecondaryBeamBreaks.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		case "beamStubDirection":
			t := &dom.BeamStubDirection{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulateBeamStubDirection(t, el, ctx); err != nil {
				return err
			}
			d.BeamStubDirections.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		case "lyricAssign":
			t := &dom.LyricAssign{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulateLyricAssign(t, el, ctx); err != nil {
				return err
			}
			d.LyricAssigns.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		case "altNotation":
			t := &dom.AlternateNotation{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulateAlternateNotation(t, el, ctx); err != nil {
				return err
			}
			d.AlternateNotations.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		case "percNoteInfo":
			t := &dom.PercussionNoteInfo{DetailsBase: detailsBaseEntry(el)}
			if err := dom.PopulatePercussionNoteInfo(t, el, ctx); err != nil {
				return err
			}
			d.PercussionNoteInfos.Add(pool.EntryDetailsKey{Part: t.Part, EntryNumber: t.EntryNumber, Inci: t.Inci}, t)
		default:
			// Not yet a modeled Details record kind.
		}
	}
	return nil
}

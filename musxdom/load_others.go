package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/pool"
	"github.com/cartomix/musxdom/xmlapi"
)

func othersBase(el xmlapi.Element, cmperAttr string) dom.OthersBase {
	part := attrPart(el)
	return dom.OthersBase{
		Part:            part,
		Cmper:           attrCmper(el, cmperAttr),
		Inci:            attrInci(el),
		RequestedPartID: part,
		Shared:          part == ids.SCOREPARTID,
	}
}

func (d *Document) loadOthers(root xmlapi.Element, ctx *dom.LoadContext) error {
	others := root.FirstChild("others")
	if others == nil {
		return nil
	}
	for el := others.FirstChild(); el != nil; el = el.NextSibling() {
		key := othersKey(el)
		switch el.Tag() {
		case "measureSpec":
			t := &dom.Measure{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateMeasure(t, el, ctx); err != nil {
				return err
			}
			d.Measures.Add(key, t)
		case "staffSpec":
			t := &dom.Staff{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateStaff(t, el, ctx); err != nil {
				return err
			}
			d.Staves.Add(key, t)
		case "staffStyle":
			t := &dom.StaffStyle{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateStaffStyle(t, el, ctx); err != nil {
				return err
			}
			d.StaffStyles.Add(key, t)
		case "staffStyleAssign":
			t := &dom.StaffStyleAssign{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateStaffStyleAssign(t, el, ctx); err != nil {
				return err
			}
			d.StaffStyleAssigns.Add(key, t)
		case "frameSpec":
			t := &dom.Frame{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateFrame(t, el, ctx); err != nil {
				return err
			}
			d.Frames.Add(key, t)
		case "pageSpec":
			t := &dom.Page{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulatePage(t, el, ctx); err != nil {
				return err
			}
			d.Pages.Add(key, t)
		case "staffSystemSpec":
			t := &dom.StaffSystem{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateStaffSystem(t, el, ctx); err != nil {
				return err
			}
			d.StaffSystems.Add(key, t)
		case "staffUsed":
			t := &dom.StaffUsed{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateStaffUsed(t, el, ctx); err != nil {
				return err
			}
			d.StaffUseds.Add(key, t)
		case "multiStaffInstGroup":
			t := &dom.MultiStaffInstrumentGroup{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateMultiStaffInstrumentGroup(t, el, ctx); err != nil {
				return err
			}
			d.MultiStaffGroups.Add(key, t)
		case "clefDef":
			t := &dom.ClefDef{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateClefDef(t, el, ctx); err != nil {
				return err
			}
			d.ClefDefs.Add(key, t)
		case "clefList":
			t := &dom.ClefList{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateClefList(t, el, ctx); err != nil {
				return err
			}
			d.ClefLists.Add(key, t)
		case "keyFormat":
			t := &dom.KeyFormat{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateKeyFormat(t, el, ctx); err != nil {
				return err
			}
			d.KeyFormats.Add(key, t)
		case "textExpressionDef":
			t := &dom.TextExpressionDef{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulateTextExpressionDef(t, el, ctx); err != nil {
				return err
			}
			d.TextExpressionDefs.Add(key, t)
		case "partDef":
			t := &dom.PartDefinition{OthersBase: othersBase(el, "cmper")}
			if err := dom.PopulatePartDefinition(t, el, ctx); err != nil {
				return err
			}
			d.PartDefinitions.Add(key, t)
		default:
			// Not yet a modeled Others record kind.
		}
	}
	return nil
}

func othersKey(el xmlapi.Element) pool.OthersKey {
	return pool.OthersKey{
		Part:  attrPart(el),
		Cmper: attrCmper(el, "cmper"),
		Inci:  attrInci(el),
	}
}

package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/instruments"
	"github.com/cartomix/musxdom/staffcomposite"
)

// IterateEntries walks the entry chain belonging to frame, starting at
// its StartEntry and following Next until EndEntry (inclusive) or the
// chain runs out, whichever comes first.
func (d *Document) IterateEntries(frame *dom.Frame) []*dom.Entry {
	if frame.StartEntry == 0 {
		return nil
	}
	var out []*dom.Entry
	num := frame.StartEntry
	for num != 0 {
		e, ok := d.Entries.Get(num)
		if !ok {
			break
		}
		out = append(out, e)
		if num == frame.EndEntry {
			break
		}
		num = e.Next
	}
	return out
}

// CompositeStaff returns the effective Staff at (measure, edu) for the
// given raw staff cmper and part, after overlaying every applicable
// StaffStyleAssign (spec C7).
func (d *Document) CompositeStaff(part ids.PartID, staffCmper ids.Cmper, measure ids.Cmper, edu ids.Edu) (*dom.Staff, bool) {
	raw, ok := d.Staves.Get(part, staffCmper)
	if !ok {
		return nil, false
	}
	assigns := d.StaffStyleAssigns.GetArray(part, staffCmper)
	styles := make(map[ids.Cmper]*dom.StaffStyle, len(assigns))
	for _, a := range assigns {
		if s, ok := d.StaffStyles.Get(part, a.StyleID); ok {
			styles[a.StyleID] = s
		}
	}
	return staffcomposite.Build(raw, assigns, styles, measure, edu), true
}

// PageCount returns the document's total page count for part, computed
// from its PartDefinition if one was set by the loader (spec §3's
// write-once cells), else from the number of non-blank Page records
// for part.
func (d *Document) PageCount(part ids.PartID) int {
	if pd, ok := d.PartDefinitions.Get(part, ids.Cmper(part)); ok {
		if pages, _, ok := pd.PageCounts(); ok {
			return pages
		}
	}
	n := 0
	for _, p := range d.Pages.All() {
		if p.Part == part && !p.IsBlank {
			n++
		}
	}
	return n
}

// PageFromMeasure returns the Cmper of the page containing the given
// measure for part, or 0 if none is found. It relies on StaffSystem
// records to bracket each page's measure range; a document lacking
// StaffSystem data returns 0.
func (d *Document) PageFromMeasure(part ids.PartID, measure ids.Cmper) ids.Cmper {
	for _, p := range d.Pages.All() {
		if p.Part != part {
			continue
		}
		sys := d.SystemFromMeasure(part, measure)
		if sys != 0 {
			return p.Cmper
		}
	}
	return 0
}

// SystemFromMeasure returns the Cmper of the StaffSystem containing the
// given measure for part, or 0 if none contains it.
func (d *Document) SystemFromMeasure(part ids.PartID, measure ids.Cmper) ids.Cmper {
	for _, s := range d.StaffSystems.All() {
		if s.Part != part {
			continue
		}
		if measure >= s.StartMeasure && measure <= s.EndMeasure {
			return s.Cmper
		}
	}
	return 0
}

// HasVaryingSystemStaves reports whether any StaffUsed listing differs
// in its staff set across the document's StaffSystems for part (i.e.
// some systems hide staves that others show).
func (d *Document) HasVaryingSystemStaves(part ids.PartID) bool {
	systems := d.StaffSystems.All()
	if len(systems) < 2 {
		return false
	}
	base := d.ScrollView(part)
	for _, s := range systems {
		if s.Part != part {
			continue
		}
		var current []ids.Cmper
		for _, u := range d.StaffUseds.GetArray(part, s.Cmper) {
			current = append(current, u.Staff)
		}
		if len(current) != len(base) {
			return true
		}
		for i := range base {
			if current[i] != base[i] {
				return true
			}
		}
	}
	return false
}

// Instruments groups the part's scroll-view staves into instruments
// (spec C10).
func (d *Document) Instruments(part ids.PartID) []instruments.Instrument {
	used := d.ScrollView(part)
	groups := d.MultiStaffGroups.All()
	return instruments.Build(used, groups, func(c ids.Cmper) (*dom.Staff, bool) {
		return d.Staves.Get(part, c)
	})
}

package musxdom

import (
	"fmt"

	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/linker"
)

// registerGroupResolvers registers one deferred resolver per StaffGroup
// that fills in its Staves slice: the intersection of (StartInst,
// EndInst) with the staves actually used by the group's part, in
// scroll-view order (spec §4.5). It must run after both the StaffGroup
// and StaffUsed pools have finished loading, hence the deferral through
// the linker rather than resolving inline during loadDetails.
func (d *Document) registerGroupResolvers(reg *linker.Registry) {
	for _, g := range d.StaffGroups.All() {
		g := g
		key := fmt.Sprintf("staffGroup/%05d/%05d/%05d", g.Part, g.Cmper1, g.Cmper2)
		reg.Register(key, func() error {
			used := d.ScrollView(g.Part)
			var staves []ids.Cmper
			for _, s := range used {
				if s >= g.StartInst && s <= g.EndInst {
					staves = append(staves, s)
				}
			}
			g.Staves = staves
			return nil
		})
	}
}

// ScrollView returns the staves visible for the given part, in
// ascending StaffUsed.Inci order (the scroll-view stacking order).
func (d *Document) ScrollView(part ids.PartID) []ids.Cmper {
	used := d.StaffUseds.GetArray(part, 0)
	if len(used) == 0 && part != 0 {
		used = d.StaffUseds.GetArray(0, 0)
	}
	out := make([]ids.Cmper, 0, len(used))
	for _, u := range used {
		out = append(out, u.Staff)
	}
	return out
}

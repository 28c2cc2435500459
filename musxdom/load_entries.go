package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/xmlapi"
)

func (d *Document) loadEntries(root xmlapi.Element, ctx *dom.LoadContext) error {
	entries := root.FirstChild("entries")
	if entries == nil {
		return nil
	}
	for el := entries.FirstChild("entry"); el != nil; el = el.NextSibling("entry") {
		num := attrEntryNumber(el, "entnum")
		t := &dom.Entry{EntryNumber: num}
		if err := dom.PopulateEntry(t, el, ctx); err != nil {
			return err
		}
		d.Entries.Add(num, t)
	}
	return nil
}

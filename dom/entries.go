package dom

import (
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/xmlapi"
)

// Note is one pitch within an Entry. HarmLev is the diatonic
// displacement from middle C (scale steps, not semitones); HarmAlt is
// the chromatic alteration layered on top of the key signature's own
// alteration at that scale step (spec §4.9, "alteration-on-note
// arithmetic" — the key engine adds these together, it does not
// replace one with the other).
type Note struct {
	ID          int // 1-based position within the owning Entry's Notes slice, stable across edits
	HarmLev     int
	HarmAlt     int
	Tied        bool
	TieStart    bool
	Show        bool
	AccidentalFreeze bool // forces display of an accidental regardless of key/measure state
}

var noteFields = FieldTable[Note]{
	{Tag: "harmLev", Set: func(t *Note, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.HarmLev = int(v)
		}
		return nil
	}},
	{Tag: "harmAlt", Set: func(t *Note, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.HarmAlt = int(v)
		}
		return nil
	}},
	{Tag: "tie", Set: func(t *Note, _ xmlapi.Element, _ *LoadContext) error { t.Tied = true; return nil }},
	{Tag: "tieStart", Set: func(t *Note, _ xmlapi.Element, _ *LoadContext) error { t.TieStart = true; return nil }},
	{Tag: "hideNote", Set: func(t *Note, _ xmlapi.Element, _ *LoadContext) error { t.Show = false; return nil }},
	{Tag: "freezeAcci", Set: func(t *Note, _ xmlapi.Element, _ *LoadContext) error { t.AccidentalFreeze = true; return nil }},
}

// PopulateNote populates a Note from a <note> element. Show defaults to
// true; only an explicit <hideNote/> clears it, mirroring Staff's
// AllowAutoNumber default-true pattern in others.go.
func PopulateNote(t *Note, el xmlapi.Element, ctx *LoadContext) error {
	t.Show = true
	return Populate(t, el, noteFields, "note", ctx)
}

// Entry is one member of the doubly-linked entry chain for a given
// (staff, measure, layer). Prev and Next are EntryNumbers rather than
// pointers because the chain is built incrementally as the Entries pool
// populates; the entry-frame builder walks them through the pool rather
// than following in-memory pointers (spec C4/C8 boundary).
type Entry struct {
	EntryNumber ids.EntryNumber
	Prev        ids.EntryNumber
	Next        ids.EntryNumber
	Duration    ids.Edu
	IsRest      bool
	IsGrace     bool
	GraceIndex  int // not set by the loader (always 0); entryframe.Build computes the run position as Positioned.GraceIndex
	Voice2      bool
	Notes       []Note
}

var entryFields = FieldTable[Entry]{
	{Tag: "prev", Set: func(t *Entry, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Prev = ids.EntryNumber(v)
		}
		return nil
	}},
	{Tag: "next", Set: func(t *Entry, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Next = ids.EntryNumber(v)
		}
		return nil
	}},
	{Tag: "dura", Set: func(t *Entry, el xmlapi.Element, _ *LoadContext) error {
		if v, ok := textInt(el); ok {
			t.Duration = ids.Edu(v)
		}
		return nil
	}},
	{Tag: "isRest", Set: func(t *Entry, _ xmlapi.Element, _ *LoadContext) error { t.IsRest = true; return nil }},
	{Tag: "graceNote", Set: func(t *Entry, _ xmlapi.Element, _ *LoadContext) error { t.IsGrace = true; return nil }},
	{Tag: "v2", Set: func(t *Entry, _ xmlapi.Element, _ *LoadContext) error { t.Voice2 = true; return nil }},
	{Tag: "note", Set: func(t *Entry, el xmlapi.Element, ctx *LoadContext) error {
		var n Note
		if err := PopulateNote(&n, el, ctx); err != nil {
			return err
		}
		n.ID = len(t.Notes) + 1
		t.Notes = append(t.Notes, n)
		return nil
	}},
}

// PopulateEntry populates an Entry from its <entry> element, including
// every nested <note> child.
func PopulateEntry(t *Entry, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, entryFields, "entry", ctx)
}

// IsChord reports whether the entry carries more than one note.
func (e *Entry) IsChord() bool { return len(e.Notes) > 1 }

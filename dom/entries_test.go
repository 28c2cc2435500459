package dom

import (
	"testing"

	"github.com/cartomix/musxdom/stdxml"
)

func TestPopulateEntryCollectsNotesInOrder(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<entry>
		<dura>1024</dura>
		<note><harmLev>0</harmLev></note>
		<note><harmLev>2</harmLev><tie/></note>
	</entry>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var e Entry
	if err := PopulateEntry(&e, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(e.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(e.Notes))
	}
	if e.Notes[0].ID != 1 || e.Notes[1].ID != 2 {
		t.Fatalf("expected stable 1-based IDs, got %d, %d", e.Notes[0].ID, e.Notes[1].ID)
	}
	if !e.Notes[1].Tied {
		t.Fatal("expected the second note to be tied")
	}
	if !e.IsChord() {
		t.Fatal("expected a 2-note entry to report IsChord true")
	}
}

func TestPopulateNoteDefaultsToShown(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<note></note>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var n Note
	if err := PopulateNote(&n, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if !n.Show {
		t.Fatal("expected Show to default true")
	}
}

func TestPopulateNoteHiddenMarker(t *testing.T) {
	doc, err := stdxml.Parse([]byte(`<note><hideNote/></note>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var n Note
	if err := PopulateNote(&n, doc.Root(), &LoadContext{}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if n.Show {
		t.Fatal("expected hideNote marker to clear Show")
	}
}

package stdxml

import "testing"

func TestParseBuildsNavigableTree(t *testing.T) {
	doc, err := Parse([]byte(`<finale>
		<others>
			<staffSpec cmper="1" part="0"><hideStems/></staffSpec>
			<staffSpec cmper="2" part="0"></staffSpec>
		</others>
	</finale>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	root := doc.Root()
	if root.Tag() != "finale" {
		t.Fatalf("expected root tag finale, got %q", root.Tag())
	}

	others := root.FirstChild("others")
	if others == nil {
		t.Fatal("expected an others child")
	}

	first := others.FirstChild("staffSpec")
	if first == nil {
		t.Fatal("expected a staffSpec child")
	}
	cmperAttr := first.Attribute("cmper")
	if cmperAttr == nil {
		t.Fatal("expected a cmper attribute")
	}
	if v, ok := cmperAttr.Int(); !ok || v != 1 {
		t.Fatalf("expected cmper=1, got %d ok=%v", v, ok)
	}

	second := first.NextSibling("staffSpec")
	if second == nil {
		t.Fatal("expected a second staffSpec sibling")
	}
	if back := second.PreviousSibling("staffSpec"); back == nil || back.Tag() != first.Tag() {
		t.Fatal("expected PreviousSibling to walk back to the first staffSpec")
	}

	if !first.HasAttribute("cmper") {
		t.Fatal("expected HasAttribute(cmper) true")
	}
	if first.HasAttribute("nonexistent") {
		t.Fatal("expected HasAttribute(nonexistent) false")
	}
}

func TestParseRejectsMalformedXml(t *testing.T) {
	_, err := Parse([]byte(`<finale><unterminated></finale>`))
	if err == nil {
		t.Fatal("expected an error for unbalanced tags")
	}
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte(``))
	if err == nil {
		t.Fatal("expected an error for an empty document")
	}
}

func TestTextHelpers(t *testing.T) {
	doc, err := Parse([]byte(`<root><n> 42 </n><f>3.5</f><b>true</b></root>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root := doc.Root()
	if v, ok := TextInt(root.FirstChild("n")); !ok || v != 42 {
		t.Fatalf("expected TextInt 42, got %d ok=%v", v, ok)
	}
	if v, ok := TextFloat(root.FirstChild("f")); !ok || v != 3.5 {
		t.Fatalf("expected TextFloat 3.5, got %v ok=%v", v, ok)
	}
	if v, ok := TextBool(root.FirstChild("b")); !ok || !v {
		t.Fatalf("expected TextBool true, got %v ok=%v", v, ok)
	}
}

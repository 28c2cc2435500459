package instruments

import (
	"testing"

	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
)

func staffLookup(staves map[ids.Cmper]*dom.Staff) func(ids.Cmper) (*dom.Staff, bool) {
	return func(c ids.Cmper) (*dom.Staff, bool) {
		s, ok := staves[c]
		return s, ok
	}
}

func TestBuildDefinedGroupClaimsItsStavesFirst(t *testing.T) {
	groups := []*dom.MultiStaffInstrumentGroup{
		{Staves: []ids.Cmper{1, 2}},
	}
	staves := map[ids.Cmper]*dom.Staff{
		1: {}, 2: {}, 3: {},
	}
	out := Build([]ids.Cmper{1, 2, 3}, groups, staffLookup(staves))
	if len(out) != 2 {
		t.Fatalf("expected 2 instruments (1 piano + 1 singleton), got %d", len(out))
	}
	if out[0].Kind != Defined || len(out[0].Staves) != 2 {
		t.Fatalf("expected a defined 2-staff group first, got %+v", out[0])
	}
	if out[1].Kind != Singleton || out[1].Staves[0] != 3 {
		t.Fatalf("expected staff 3 left as a singleton, got %+v", out[1])
	}
}

func TestBuildBracketsAdjacentStavesSharingInstUUID(t *testing.T) {
	staves := map[ids.Cmper]*dom.Staff{
		1: {InstUUID: "choir-uuid"},
		2: {InstUUID: "choir-uuid"},
		3: {InstUUID: "other-uuid"},
	}
	out := Build([]ids.Cmper{1, 2, 3}, nil, staffLookup(staves))
	if len(out) != 2 {
		t.Fatalf("expected 2 instruments, got %d", len(out))
	}
	if out[0].Kind != Bracketed || len(out[0].Staves) != 2 {
		t.Fatalf("expected a bracketed pair, got %+v", out[0])
	}
	if out[1].Kind != Singleton || out[1].Staves[0] != 3 {
		t.Fatalf("expected staff 3 to be its own singleton, got %+v", out[1])
	}
}

func TestBuildDoesNotBracketNonAdjacentMatchingUUIDs(t *testing.T) {
	staves := map[ids.Cmper]*dom.Staff{
		1: {InstUUID: "same"},
		2: {InstUUID: "different"},
		3: {InstUUID: "same"},
	}
	out := Build([]ids.Cmper{1, 2, 3}, nil, staffLookup(staves))
	for _, in := range out {
		if in.Kind == Bracketed {
			t.Fatal("expected no bracketing across a non-matching staff in between")
		}
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 singleton instruments, got %d", len(out))
	}
}

func TestBuildEmptyInstUUIDNeverBrackets(t *testing.T) {
	staves := map[ids.Cmper]*dom.Staff{
		1: {InstUUID: ""},
		2: {InstUUID: ""},
	}
	out := Build([]ids.Cmper{1, 2}, nil, staffLookup(staves))
	if len(out) != 2 {
		t.Fatalf("expected 2 singletons for staves with empty InstUUID, got %d", len(out))
	}
}

func TestFormatAutoNumberArabicRomanOrdinalAlpha(t *testing.T) {
	cases := []struct {
		n      int
		style  NumberStyle
		prefix string
		suffix string
		want   string
	}{
		{1, Arabic, "", ".", "1."},
		{4, Roman, "", "", "IV"},
		{1944, Roman, "", "", "MCMXLIV"},
		{2, Ordinal, "", "", "2nd"},
		{11, Ordinal, "", "", "11th"},
		{1, Alpha, "(", ")", "(A)"},
		{26, Alpha, "", "", "Z"},
	}
	for _, c := range cases {
		got, err := FormatAutoNumber(c.n, c.style, c.prefix, c.suffix)
		if err != nil {
			t.Fatalf("FormatAutoNumber(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Fatalf("FormatAutoNumber(%d): want %q got %q", c.n, c.want, got)
		}
	}
}

func TestFormatAutoNumberReportsOutOfRange(t *testing.T) {
	if _, err := FormatAutoNumber(0, Arabic, "", ""); err == nil {
		t.Fatal("expected n < 1 to error")
	}
	if _, err := FormatAutoNumber(4000, Roman, "", ""); err == nil {
		t.Fatal("expected roman numeral above 3999 to error")
	}
	if _, err := FormatAutoNumber(27, Alpha, "", ""); err == nil {
		t.Fatal("expected alpha above 26 to error")
	}
}

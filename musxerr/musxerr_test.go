package musxerr

import (
	"errors"
	"testing"
)

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"load", Load("header", errors.New("boom")), ErrLoad},
		{"parse", Parse("beats", "abc", errors.New("strconv")), ErrParse},
		{"unknownXml", UnknownXml("notationStyle", "weird"), ErrUnknownXml},
		{"integrity", Integrity("both clefs set"), ErrIntegrity},
		{"logic", Logic("frame not loaded"), ErrLogic},
		{"outOfRange", OutOfRange("alpha auto-number must be <= 26"), ErrOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.want) {
				t.Fatalf("expected errors.Is(%v, %v) to hold", c.err, c.want)
			}
		})
	}
}

func TestLoadWithoutCause(t *testing.T) {
	err := Load("document", nil)
	if !errors.Is(err, ErrLoad) {
		t.Fatal("expected nil-cause Load to still match ErrLoad")
	}
}

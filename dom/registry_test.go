package dom

import "testing"

func TestEnumTableRoundTrips(t *testing.T) {
	table := NewEnumTable("demo",
		EnumPair[int]{Token: "a", Value: 1},
		EnumPair[int]{Token: "b", Value: 2},
	)
	ctx := &LoadContext{}
	v, err := table.Parse("b", ctx)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
	if got := table.Token(2); got != "b" {
		t.Fatalf("expected token b, got %q", got)
	}
}

func TestEnumTableUnknownTokenNonStrict(t *testing.T) {
	table := NewEnumTable("demo", EnumPair[int]{Token: "a", Value: 1})
	ctx := &LoadContext{Strict: false}
	v, err := table.Parse("unknown", ctx)
	if err != nil {
		t.Fatalf("expected non-strict mode to swallow the error, got %v", err)
	}
	if v != 0 {
		t.Fatalf("expected zero value, got %d", v)
	}
}

func TestEnumTableUnknownTokenStrict(t *testing.T) {
	table := NewEnumTable("demo", EnumPair[int]{Token: "a", Value: 1})
	ctx := &LoadContext{Strict: true}
	if _, err := table.Parse("unknown", ctx); err == nil {
		t.Fatal("expected strict mode to report an error")
	}
}

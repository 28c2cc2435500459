package linker

import (
	"errors"
	"testing"
)

func TestRunExecutesInLexicographicKeyOrder(t *testing.T) {
	reg := New(nil)
	var order []string
	reg.Register("b", func() error { order = append(order, "b"); return nil })
	reg.Register("a", func() error { order = append(order, "a"); return nil })
	reg.Register("c", func() error { order = append(order, "c"); return nil })

	if err := reg.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestRunWrapsAndStopsOnFirstError(t *testing.T) {
	reg := New(nil)
	boom := errors.New("boom")
	ran := false
	reg.Register("1-fails", func() error { return boom })
	reg.Register("2-after", func() error { ran = true; return nil })

	err := reg.Run()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if ran {
		t.Fatal("expected a resolver after the failing one not to run given lexicographic ordering")
	}
}

func TestLen(t *testing.T) {
	reg := New(nil)
	reg.Register("x", func() error { return nil })
	reg.Register("y", func() error { return nil })
	if reg.Len() != 2 {
		t.Fatalf("expected 2 registered resolvers, got %d", reg.Len())
	}
}

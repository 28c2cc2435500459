package pool

import (
	"testing"

	"github.com/cartomix/musxdom/ids"
)

func TestOptionsPoolFallsBackToScore(t *testing.T) {
	p := NewOptionsPool[string]()
	score := "score-wide"
	partOverride := "part-specific"
	p.Add(ids.SCOREPARTID, &score)
	p.Add(2, &partOverride)

	if v, ok := p.Get(2); !ok || *v != "part-specific" {
		t.Fatalf("expected part override, got %v ok=%v", v, ok)
	}
	if v, ok := p.Get(3); !ok || *v != "score-wide" {
		t.Fatalf("expected score fallback, got %v ok=%v", v, ok)
	}
}

func TestOthersPoolGetArrayOrdersByInci(t *testing.T) {
	p := NewOthersPool[int]()
	three, one, two := 3, 1, 2
	p.Add(OthersKey{Part: 0, Cmper: 5, Inci: 2}, &three)
	p.Add(OthersKey{Part: 0, Cmper: 5, Inci: 0}, &one)
	p.Add(OthersKey{Part: 0, Cmper: 5, Inci: 1}, &two)

	arr := p.GetArray(0, 5)
	if len(arr) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(arr))
	}
	if *arr[0] != 1 || *arr[1] != 2 || *arr[2] != 3 {
		t.Fatalf("expected ascending inci order, got %v %v %v", *arr[0], *arr[1], *arr[2])
	}
}

func TestOthersPoolAllIsDeterministicallyOrdered(t *testing.T) {
	p := NewOthersPool[int]()
	a, b, c := 1, 2, 3
	p.Add(OthersKey{Part: 1, Cmper: 1, Inci: ids.NoInci}, &a)
	p.Add(OthersKey{Part: 0, Cmper: 2, Inci: ids.NoInci}, &b)
	p.Add(OthersKey{Part: 0, Cmper: 1, Inci: ids.NoInci}, &c)

	all := p.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if *all[0] != 3 || *all[1] != 2 || *all[2] != 1 {
		t.Fatalf("expected part,cmper,inci order, got %v %v %v", *all[0], *all[1], *all[2])
	}
}

func TestEntryPoolAddAndGet(t *testing.T) {
	p := NewEntryPool[string]()
	v := "entry-1"
	p.Add(1, &v)
	if got, ok := p.Get(1); !ok || *got != "entry-1" {
		t.Fatalf("expected entry-1, got %v ok=%v", got, ok)
	}
	if _, ok := p.Get(2); ok {
		t.Fatal("expected a missing entry number to report ok=false")
	}
	if p.Len() != 1 {
		t.Fatalf("expected length 1, got %d", p.Len())
	}
}

func TestTextsPoolAllOrdersByCmper(t *testing.T) {
	p := NewTextsPool[string]()
	x, y := "second", "first"
	p.Add(5, &x)
	p.Add(1, &y)
	all := p.All()
	if len(all) != 2 || *all[0] != "first" || *all[1] != "second" {
		t.Fatalf("expected ascending cmper order, got %v", all)
	}
}

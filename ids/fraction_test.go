package ids

import "testing"

func TestFractionReducesOnConstruction(t *testing.T) {
	a := NewFraction(1, 2)
	b := NewFraction(2, 4)
	if a != b {
		t.Fatalf("expected Fraction(1,2) == Fraction(2,4), got %v != %v", a, b)
	}
	if !a.Equal(b) {
		t.Fatalf("expected Equal to agree with ==")
	}
}

func TestFractionAsMapKey(t *testing.T) {
	m := map[Fraction]string{}
	m[NewFraction(1, 2)] = "half"
	if v := m[NewFraction(2, 4)]; v != "half" {
		t.Fatalf("expected equal-reduced fractions to hash equal, got %q", v)
	}
}

func TestFractionFromEduQuintuplet(t *testing.T) {
	// A quintuplet quarter: 1024 Edu (a quarter) * 4/5 equals 819.2 Edu,
	// truncated in EnigmaXML to 819.
	f := FractionFromEdu(819)
	if f.CalcEduDuration() != 819 {
		t.Fatalf("expected round-trip to 819 Edu, got %d", f.CalcEduDuration())
	}
}

func TestFractionArithmetic(t *testing.T) {
	half := NewFraction(1, 2)
	third := NewFraction(1, 3)

	if sum := half.Add(third); sum != NewFraction(5, 6) {
		t.Fatalf("expected 1/2+1/3 = 5/6, got %v", sum)
	}
	if diff := half.Sub(third); diff != NewFraction(1, 6) {
		t.Fatalf("expected 1/2-1/3 = 1/6, got %v", diff)
	}
	if prod := half.Mul(third); prod != NewFraction(1, 6) {
		t.Fatalf("expected 1/2*1/3 = 1/6, got %v", prod)
	}
	if quot := half.Div(third); quot != NewFraction(3, 2) {
		t.Fatalf("expected (1/2)/(1/3) = 3/2, got %v", quot)
	}
}

func TestFractionOrderingAndSign(t *testing.T) {
	if !NewFraction(1, 3).Less(NewFraction(1, 2)) {
		t.Fatal("expected 1/3 < 1/2")
	}
	if NewFraction(0, 1).Sign() != 0 {
		t.Fatal("expected zero fraction to have sign 0")
	}
	if NewFraction(-1, 2).Sign() != -1 {
		t.Fatal("expected negative fraction to have sign -1")
	}
	if !NewFraction(0, 1).IsZero() {
		t.Fatal("expected 0/1 to be zero")
	}
}

func TestNewFractionNormalizesNegativeDenominator(t *testing.T) {
	f := NewFraction(1, -2)
	if f != NewFraction(-1, 2) {
		t.Fatalf("expected sign to move to numerator, got %v", f)
	}
}

func TestMaxFractionRoundTrips(t *testing.T) {
	max := MaxFraction()
	if got := max.CalcEduDuration(); got != Edu(1<<31-1) {
		t.Fatalf("expected round-trip to %d Edu, got %d", Edu(1<<31-1), got)
	}
}

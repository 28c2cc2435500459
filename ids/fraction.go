package ids

import "fmt"

// Fraction is a reduced rational number of whole notes. It is the
// arbitrary-precision counterpart to Edu, used anywhere elapsed or actual
// duration needs exact tuplet arithmetic that Edu's integer granularity
// cannot represent (e.g. a quintuplet eighth is 1/10 of a whole note,
// which is 409.6 Edu, not an integer number of Edu).
type Fraction struct {
	num int64
	den int64
}

// NewFraction builds a reduced Fraction. A zero denominator is normalized
// to 1 (an invalid fraction collapses to zero rather than panicking; the
// loader never intentionally constructs one).
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		return Fraction{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Fraction{num: num, den: den}
}

// FractionFromEdu converts an Edu duration to its whole-note Fraction.
func FractionFromEdu(e Edu) Fraction {
	return NewFraction(int64(e), EduPerWhole)
}

// MaxFraction is the largest representable Fraction whose Edu duration
// still fits in Edu's range (int32 max Edu).
func MaxFraction() Fraction {
	return FractionFromEdu(Edu(1<<31 - 1))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Numerator returns the reduced numerator.
func (f Fraction) Numerator() int64 { return f.num }

// Denominator returns the reduced denominator (never zero).
func (f Fraction) Denominator() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// CalcEduDuration converts the fraction back to Edu, rounding to the
// nearest unit.
func (f Fraction) CalcEduDuration() Edu {
	if f.den == 0 {
		return 0
	}
	n := f.num * EduPerWhole
	d := f.den
	q := n / d
	r := n % d
	if r*2 >= d {
		q++
	} else if r*2 <= -d {
		q--
	}
	return Edu(q)
}

// Add returns f + other, reduced.
func (f Fraction) Add(other Fraction) Fraction {
	return NewFraction(f.num*other.Denominator()+other.Numerator()*f.Denominator(), f.Denominator()*other.Denominator())
}

// Sub returns f - other, reduced.
func (f Fraction) Sub(other Fraction) Fraction {
	return NewFraction(f.num*other.Denominator()-other.Numerator()*f.Denominator(), f.Denominator()*other.Denominator())
}

// Mul returns f * other, reduced.
func (f Fraction) Mul(other Fraction) Fraction {
	return NewFraction(f.num*other.Numerator(), f.Denominator()*other.Denominator())
}

// Div returns f / other, reduced. Dividing by a zero fraction returns zero.
func (f Fraction) Div(other Fraction) Fraction {
	if other.num == 0 {
		return Fraction{}
	}
	return NewFraction(f.num*other.Denominator(), f.Denominator()*other.Numerator())
}

// Less reports whether f < other.
func (f Fraction) Less(other Fraction) bool {
	return f.num*other.Denominator() < other.Numerator()*f.Denominator()
}

// Equal reports whether f and other denote the same rational value. Two
// fractions constructed via NewFraction are always pre-reduced, so
// Fraction{1,2} == Fraction{2,4} compares equal both with == and Equal,
// which is what makes Fraction usable as a map key.
func (f Fraction) Equal(other Fraction) bool {
	return f.num == other.num && f.Denominator() == other.Denominator()
}

// IsZero reports whether the fraction is exactly zero.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Sign returns -1, 0, or 1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.Denominator())
}

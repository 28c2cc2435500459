// Package keysig derives concrete pitch information from a Measure's
// KeySignature and a Staff's Transposition (spec C9): tonal-center
// arrays for linear keys, alteration-on-note arithmetic, and
// EDO-aware transposition.
package keysig

import (
	"github.com/cartomix/musxdom/dom"
)

// sharpOrder and flatOrder list, in traditional key-signature order
// (F C G D A E B for sharps, B E A D G C F for flats), the diatonic
// scale step (0=C ... 6=B) altered by each successive sharp or flat.
var sharpOrder = [7]int{3, 0, 4, 1, 5, 2, 6} // scale-step index touched at sharp count 1..7
var flatOrder = [7]int{6, 2, 5, 1, 4, 0, 3}

// TonalCenter returns the diatonic scale step (0=C..6=B) that is the
// tonic of a linear key with the given signed alteration count
// (positive = sharps, negative = flats). Traditional key signatures
// place the tonic one scale step above the last sharp, or a fourth below
// the last flat; count 0 is C major.
func TonalCenter(alteration int) int {
	switch {
	case alteration == 0:
		return 0
	case alteration > 0:
		return (sharpOrder[(alteration-1)%7] + 1) % 7 // tonic is a half step above the last sharp
	default:
		n := -alteration
		return (flatOrder[(n-1)%7] + 4) % 7 // tonic is a fourth below (degree 4 above) the last flat
	}
}

// AlterationForStep returns the key-signature alteration, in semitones,
// applied to the given diatonic scale step (0=C..6=B) by a linear key
// with the given signed alteration count.
func AlterationForStep(alteration, step int) int {
	if alteration == 0 {
		return 0
	}
	if alteration > 0 {
		n := alteration
		if n > 7 {
			n = 7
		}
		for i := 0; i < n; i++ {
			if sharpOrder[i] == step {
				return 1
			}
		}
		return 0
	}
	n := -alteration
	if n > 7 {
		n = 7
	}
	for i := 0; i < n; i++ {
		if flatOrder[i] == step {
			return -1
		}
	}
	return 0
}

// EffectiveAlteration combines a key signature's alteration for a
// note's diatonic step with the note's own HarmAlt override, per spec
// §4.9: the two are additive, not mutually exclusive.
func EffectiveAlteration(key dom.KeySignature, step int, note *dom.Note) int {
	if key.Mode == dom.KeyModeNonLinear {
		return note.HarmAlt
	}
	return AlterationForStep(key.Alteration, step) + note.HarmAlt
}

// Transpose applies a Staff's Transposition to a diatonic (step,
// alteration) pair, returning the transposed step and alteration. Clef
// transpositions only affect diatonic placement (Displacement), never
// pitch class, so ChromaticOffset is ignored for TranspositionClef.
func Transpose(t *dom.Transposition, step, alteration int) (int, int) {
	if t == nil {
		return step, alteration
	}
	switch t.Kind {
	case dom.TranspositionClef:
		return mod7(step + t.Displacement), alteration
	case dom.TranspositionChromatic, dom.TranspositionKeySignature:
		return mod7(step + t.Displacement), alteration + t.ChromaticOffset
	default:
		return step, alteration
	}
}

func mod7(v int) int {
	v %= 7
	if v < 0 {
		v += 7
	}
	return v
}

// TranspositionResult is the outcome of applying SetTransposition to a
// linear key signature: its new alteration count, the diatonic step
// (0=C..6=B) its tonic now sits on, and how many octaves of alteration
// had to be folded away to keep it representable.
type TranspositionResult struct {
	Alteration         int
	TonalCenterIndex   int
	OctaveDisplacement int
}

// SetTransposition shifts a linear key signature by interval diatonic
// steps and keyAdjustment further alteration (spec §4.9's "Set
// transposition" operation, distinct from Transpose which only moves a
// single written note through a Staff's Transposition). The new
// alteration count is the key's own Alteration plus keyAdjustment; the
// new tonal center is the key's current tonic moved interval diatonic
// steps up the scale (mod 7). When simplify is set and folding
// pushes the alteration beyond the seven-accidental range a linear key
// can represent without doubled accidentals, a full octave's worth of
// alteration (edoDivisions semitones, 12 for standard 12-EDO) is folded
// into OctaveDisplacement instead of producing an unrepresentable key.
func SetTransposition(key dom.KeySignature, interval, keyAdjustment int, simplify bool, edoDivisions int) TranspositionResult {
	octave := edoDivisions
	if octave <= 0 {
		octave = 12
	}

	alteration := key.Alteration + keyAdjustment
	displacement := 0
	if simplify {
		for alteration > 7 {
			alteration -= octave
			displacement++
		}
		for alteration < -7 {
			alteration += octave
			displacement--
		}
	}

	center := mod7(TonalCenter(key.Alteration) + interval)

	return TranspositionResult{
		Alteration:         alteration,
		TonalCenterIndex:   center,
		OctaveDisplacement: displacement,
	}
}

// SimplifyEDO reduces an alteration to the range that an EDODivisions-
// division-per-octave system can represent without a double accidental,
// folding excess alteration into the scale step (spec §3's "EDO-aware
// simplification"). Standard 12-EDO halfSteps-per-division is 2
// (semitones per chromatic unit); non-standard divisions pass a
// different halfSteps value.
func SimplifyEDO(step, alteration, halfStepsPerDivision int) (int, int) {
	if halfStepsPerDivision <= 0 {
		halfStepsPerDivision = 2
	}
	for alteration > halfStepsPerDivision {
		step = mod7(step + 1)
		alteration -= halfStepsPerDivision
	}
	for alteration < -halfStepsPerDivision {
		step = mod7(step - 1)
		alteration += halfStepsPerDivision
	}
	return step, alteration
}

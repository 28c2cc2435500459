// Package entryframe walks a Frame's entry chain and computes the
// derived, position-dependent facts a renderer needs but EnigmaXML does
// not store directly: elapsed time, active tuplet nesting and spans,
// beam grouping, and grace-note indexing (spec C8).
package entryframe

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
)

// Positioned is one entry plus everything entryframe derives about its
// place in the frame.
type Positioned struct {
	Entry           *dom.Entry
	ElapsedTime     ids.Fraction     // offset from the frame's start, in actual (post-tuplet-scaling) whole notes
	ActualDuration  ids.Fraction     // this entry's own duration after every enclosing tuplet's scaling is applied
	Tuplets         []*dom.TupletDef // active tuplets, outermost first, that this entry falls inside
	GraceIndex      int              // 1-based position within a contiguous grace-note run; 0 outside one
	BeamStart       bool
	BeamEnd         bool
	SecondaryBreaks uint16 // SecondaryBeamBreak.Mask at this entry, if any
}

// TupletInfo records one tuplet's span across the entry chain: the
// index and elapsed-time offset of its first and last member entries
// (spec §4.8 step 5, §8 "Tuplet arithmetic"/"Frame totality").
type TupletInfo struct {
	Def        *dom.TupletDef
	StartIndex int
	StartDura  ids.Fraction
	EndIndex   int
	EndDura    ids.Fraction
}

// activeTuplet tracks one nested tuplet while walking the chain: Def is
// the tuplet itself, consumed is how much of its actual-duration span
// has elapsed so far, measured in the same post-scaling whole-note
// units as ElapsedTime.
type activeTuplet struct {
	def          *dom.TupletDef
	startIndex   int
	startDura    ids.Fraction
	requiredSpan ids.Fraction // def.SpanFraction() rescaled into real time by whatever tuplet already enclosed it when it opened
	consumed     ids.Fraction
}

// TupletLookup returns the TupletDefs that start at the given entry
// number, outermost first (a chord can carry more than one, stacked by
// Inci). Callers supply this instead of entryframe depending on pool
// directly, keeping the two packages decoupled per spec §4's acyclic
// layering.
type TupletLookup func(entnum ids.EntryNumber) []*dom.TupletDef

// BreakLookup returns the SecondaryBeamBreak at the given entry number,
// if any.
type BreakLookup func(entnum ids.EntryNumber) (*dom.SecondaryBeamBreak, bool)

// HiddenLookup reports whether an entry is hidden by an
// AlternateNotation layer (spec §4.8's calcDisplaysAsRest source).
type HiddenLookup func(entnum ids.EntryNumber) bool

// Build walks entries in order, computing elapsed time, active tuplets
// and their spans, grace indexing and beam boundaries for every entry.
// includeHidden controls whether a hidden entry's concealment is
// factored into the beam walk at all (spec §8 scenario 5, "Beam walk
// with hidden entries", and calcDisplaysAsRest): when false, the Hides
// flag is ignored entirely and a hidden entry beams normally with its
// neighbors; when true, a hidden entry displays as a rest and — like
// any rest — can neither carry a beam itself nor be bridged over by
// its neighbors, splitting what would otherwise be one beam group in
// two.
//
// The returned TupletInfo slice has one entry per tuplet that both
// starts and closes within entries, in the order each one opened.
func Build(entries []*dom.Entry, tuplets TupletLookup, breaks BreakLookup, hidden HiddenLookup, includeHidden bool) ([]Positioned, []TupletInfo) {
	if hidden == nil {
		hidden = func(ids.EntryNumber) bool { return false }
	}

	out := make([]Positioned, 0, len(entries))
	var infos []TupletInfo
	elapsed := ids.NewFraction(0, 1)
	var stack []activeTuplet
	graceRun := 0

	for i, e := range entries {
		if e.IsGrace {
			graceRun++
		} else {
			graceRun = 0
		}

		for _, t := range tuplets(e.EntryNumber) {
			enclosingScale := ids.NewFraction(1, 1)
			for _, at := range stack {
				enclosingScale = enclosingScale.Mul(at.def.TimeScale())
			}
			stack = append(stack, activeTuplet{
				def:          t,
				startIndex:   i,
				startDura:    elapsed,
				requiredSpan: t.SpanFraction().Mul(enclosingScale),
			})
		}

		active := make([]*dom.TupletDef, len(stack))
		scale := ids.NewFraction(1, 1)
		for idx, at := range stack {
			active[idx] = at.def
			scale = scale.Mul(at.def.TimeScale())
		}

		actual := ids.FractionFromEdu(e.Duration).Mul(scale)
		p := Positioned{
			Entry:          e,
			ElapsedTime:    elapsed,
			ActualDuration: actual,
			Tuplets:        active,
		}
		if e.IsGrace {
			p.GraceIndex = graceRun
		}
		if br, ok := breaks(e.EntryNumber); ok {
			p.SecondaryBreaks = br.Mask
		}
		p.BeamStart = isBeamStart(entries, hidden, i, includeHidden)
		p.BeamEnd = isBeamEnd(entries, hidden, i, includeHidden)
		out = append(out, p)

		if !e.IsGrace {
			elapsed = elapsed.Add(actual)
			for idx := range stack {
				stack[idx].consumed = stack[idx].consumed.Add(actual)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.consumed.Less(top.requiredSpan) {
					break
				}
				infos = append(infos, TupletInfo{
					Def:        top.def,
					StartIndex: top.startIndex,
					StartDura:  top.startDura,
					EndIndex:   i,
					EndDura:    top.startDura.Add(top.requiredSpan),
				})
				stack = stack[:len(stack)-1]
			}
		}
	}
	return out, infos
}

// isBeamable reports whether an entry can carry a beam at all: rests
// and entries at quarter-note duration or longer never do, and — when
// includeHidden factors concealment into the walk — neither does an
// entry an AlternateNotation layer hides, since it then displays as a
// rest (spec §4.8's calcDisplaysAsRest).
func isBeamable(e *dom.Entry, isHidden, includeHidden bool) bool {
	if e.IsRest || e.Duration <= 0 || e.Duration >= ids.EduPerQuarter {
		return false
	}
	if isHidden && includeHidden {
		return false
	}
	return true
}

func isBeamStart(entries []*dom.Entry, hidden HiddenLookup, i int, includeHidden bool) bool {
	if !isBeamable(entries[i], hidden(entries[i].EntryNumber), includeHidden) {
		return false
	}
	if i == 0 {
		return true
	}
	return !isBeamable(entries[i-1], hidden(entries[i-1].EntryNumber), includeHidden)
}

func isBeamEnd(entries []*dom.Entry, hidden HiddenLookup, i int, includeHidden bool) bool {
	if !isBeamable(entries[i], hidden(entries[i].EntryNumber), includeHidden) {
		return false
	}
	if i == len(entries)-1 {
		return true
	}
	return !isBeamable(entries[i+1], hidden(entries[i+1].EntryNumber), includeHidden)
}

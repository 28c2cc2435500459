// Package instruments groups staves into instruments and formats the
// auto-numbering suffix/prefix shown next to an instrument's name (spec
// C10). Grouping runs in three passes, each claiming staves the
// previous pass left unclaimed, so a staff is never assigned twice.
package instruments

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/ids"
	"github.com/cartomix/musxdom/musxerr"
)

// Instrument is one detected instrument: a sequence of staves and how
// they were grouped (for diagnostics and for instrument-map rendering,
// which draws a heavier bracket around a Defined group than a
// Bracketed one).
type Instrument struct {
	Staves []ids.Cmper
	Kind   GroupKind
}

// GroupKind names which pass produced an Instrument.
type GroupKind int

const (
	// Defined groups come from explicit MultiStaffInstrumentGroup
	// records (e.g. a piano's two staves sharing one instrument).
	Defined GroupKind = iota
	// Bracketed groups come from staves sharing the same InstUUID with
	// no explicit multi-staff group (e.g. a visually bracketed but
	// otherwise independent pair of staves).
	Bracketed
	// Singleton groups are every staff left over after the first two
	// passes: one instrument per staff.
	Singleton
)

// Build runs the three-pass grouping over the given scroll-view staff
// order (used, not staves, since only staves visible in the current
// part's scroll view can form an instrument the user sees). groups
// supplies the explicit MultiStaffInstrumentGroup records; staffOf
// resolves a Cmper to its Staff record.
func Build(used []ids.Cmper, groups []*dom.MultiStaffInstrumentGroup, staffOf func(ids.Cmper) (*dom.Staff, bool)) []Instrument {
	claimed := mapset.NewThreadUnsafeSet[ids.Cmper]()
	var out []Instrument

	// Pass 1: defined multi-staff instruments.
	for _, g := range groups {
		var staves []ids.Cmper
		for _, s := range g.Staves {
			if !claimed.Contains(s) {
				staves = append(staves, s)
			}
		}
		if len(staves) == 0 {
			continue
		}
		claimed.Append(staves...)
		out = append(out, Instrument{Staves: staves, Kind: Defined})
	}

	// Pass 2: visual brackets by matching, non-empty InstUUID among
	// adjacent unclaimed staves in scroll-view order.
	i := 0
	for i < len(used) {
		s := used[i]
		if claimed.Contains(s) {
			i++
			continue
		}
		staff, ok := staffOf(s)
		if !ok || staff.InstUUID == "" {
			i++
			continue
		}
		run := []ids.Cmper{s}
		j := i + 1
		for j < len(used) && !claimed.Contains(used[j]) {
			next, ok := staffOf(used[j])
			if !ok || next.InstUUID != staff.InstUUID {
				break
			}
			run = append(run, used[j])
			j++
		}
		if len(run) > 1 {
			claimed.Append(run...)
			out = append(out, Instrument{Staves: run, Kind: Bracketed})
			i = j
			continue
		}
		i++
	}

	// Pass 3: every remaining staff becomes its own instrument.
	for _, s := range used {
		if claimed.Contains(s) {
			continue
		}
		claimed.Add(s)
		out = append(out, Instrument{Staves: []ids.Cmper{s}, Kind: Singleton})
	}

	return out
}

// NumberStyle names the glyph set FormatAutoNumber renders with.
type NumberStyle int

const (
	Arabic NumberStyle = iota
	Roman
	Ordinal
	Alpha
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// FormatAutoNumber renders n (1-based) in the given style, wrapped with
// prefix and suffix. n must be >= 1; Alpha supports up to 26 (a single
// Latin letter); Roman supports up to 3999 (the table runs out above
// that). Both report musxerr.OutOfRange rather than silently wrapping.
func FormatAutoNumber(n int, style NumberStyle, prefix, suffix string) (string, error) {
	if n < 1 {
		return "", musxerr.OutOfRange("auto-number must be >= 1")
	}
	var body string
	switch style {
	case Arabic:
		body = fmt.Sprintf("%d", n)
	case Roman:
		if n > 3999 {
			return "", musxerr.OutOfRange("roman numeral auto-number must be <= 3999")
		}
		body = toRoman(n)
	case Ordinal:
		body = toOrdinal(n)
	case Alpha:
		if n > 26 {
			return "", musxerr.OutOfRange("alpha auto-number must be <= 26")
		}
		body = string(rune('A' + n - 1))
	default:
		body = fmt.Sprintf("%d", n)
	}
	return prefix + body + suffix, nil
}

func toRoman(n int) string {
	var out []byte
	for _, r := range romanTable {
		for n >= r.value {
			out = append(out, r.symbol...)
			n -= r.value
		}
	}
	return string(out)
}

func toOrdinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
		suffix = "th"
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

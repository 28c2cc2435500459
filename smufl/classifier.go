package smufl

import (
	"strconv"
	"strings"
)

// AccidentalGlyphs maps a signed semitone alteration to its canonical
// SMuFL glyph name, covering the single and double accidentals that a
// linear key signature (spec C9) or a note's HarmAlt override can
// produce.
var AccidentalGlyphs = map[int]string{
	-2: "accidentalDoubleFlat",
	-1: "accidentalFlat",
	0:  "accidentalNatural",
	1:  "accidentalSharp",
	2:  "accidentalDoubleSharp",
}

// Classifier resolves accidental alterations and glyph names to SMuFL
// codepoints through a Cache, so rendering code never hardcodes Unicode
// accidentals itself (SPEC_FULL §3's "smufl.Classifier", constructed
// once and optionally attached to a load with musxdom.WithSMuFLClassifier).
type Classifier struct {
	cache *Cache
}

// NewClassifier wraps an already-open Cache.
func NewClassifier(cache *Cache) *Classifier {
	return &Classifier{cache: cache}
}

// GlyphName returns the canonical SMuFL glyph name for a signed
// semitone alteration, or false if it falls outside the double-
// accidental range AccidentalGlyphs covers.
func (c *Classifier) GlyphName(alteration int) (string, bool) {
	name, ok := AccidentalGlyphs[alteration]
	return name, ok
}

// IsAccidental reports whether name looks like one of the accidental
// glyph names this Classifier classifies alterations into.
func (c *Classifier) IsAccidental(name string) bool {
	return strings.HasPrefix(name, "accidental")
}

// Rune resolves a glyph name to its codepoint through the underlying
// Cache, parsing the SMuFL metadata's "U+XXXX" codepoint format into an
// actual rune. It reports false if the cache is unset or has no
// metadata cached for name.
func (c *Classifier) Rune(name string) (rune, bool) {
	if c.cache == nil {
		return 0, false
	}
	g, ok, err := c.cache.Lookup(name)
	if err != nil || !ok {
		return 0, false
	}
	return parseCodepoint(g.Codepoint)
}

// AccidentalRune resolves a signed semitone alteration directly to its
// cached SMuFL codepoint. Callers fall back to their own Unicode table
// when ok is false, which happens whenever the cache has not been
// populated with that glyph's metadata yet.
func (c *Classifier) AccidentalRune(alteration int) (rune, bool) {
	name, ok := c.GlyphName(alteration)
	if !ok {
		return 0, false
	}
	return c.Rune(name)
}

func parseCodepoint(s string) (rune, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "U+")
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// Package enigma tokenizes EnigmaXML's embedded text-expression
// language: ^tag(args) directives mixed with literal runs, double-caret
// escaping, and lyric syllable splitting (spec C11).
package enigma

import (
	"strings"
)

// TokenKind names what a Token carries.
type TokenKind int

const (
	// Literal is a run of plain display text.
	Literal TokenKind = iota
	// Directive is a ^tag(args) control sequence.
	Directive
)

// Token is one piece of a tokenized Enigma string.
type Token struct {
	Kind TokenKind
	Tag  string // set only for Directive
	Args string // the raw, unparsed contents between ( and ); set only for Directive
	Text string // set only for Literal
}

// Tokenize splits raw Enigma text into literal runs and directives. A
// literal "^^" collapses to a single "^" in the output (the escape
// form); an unterminated "^tag(" with no closing ")" is treated as
// literal text from the "^" onward, since a malformed directive should
// degrade to visible text rather than abort the whole string.
func Tokenize(raw string) []Token {
	var out []Token
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			out = append(out, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '^' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(raw) && raw[i+1] == '^' {
			lit.WriteByte('^')
			i += 2
			continue
		}
		tag, args, consumed, ok := parseDirective(raw[i:])
		if !ok {
			lit.WriteByte('^')
			i++
			continue
		}
		flushLit()
		out = append(out, Token{Kind: Directive, Tag: tag, Args: args})
		i += consumed
	}
	flushLit()
	return out
}

// parseDirective parses a "^tag(args)" or bare "^tag" sequence starting
// at s[0]=='^'. It returns how many bytes of s were consumed.
func parseDirective(s string) (tag, args string, consumed int, ok bool) {
	j := 1
	for j < len(s) && isTagRune(s[j]) {
		j++
	}
	if j == 1 {
		return "", "", 0, false
	}
	tag = s[1:j]
	if j >= len(s) || s[j] != '(' {
		return tag, "", j, true
	}
	close := strings.IndexByte(s[j:], ')')
	if close < 0 {
		return "", "", 0, false
	}
	args = s[j+1 : j+close]
	return tag, args, j + close + 1, true
}

func isTagRune(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// FirstFontInfo scans tokens for the first "font" directive and returns
// its raw args (typically "name,size,style"), or "" if none is present.
// Per EnigmaXML convention, only the first font directive in a text
// block sets the block's nominal font; later ones are inline overrides.
func FirstFontInfo(tokens []Token) string {
	for _, t := range tokens {
		if t.Kind == Directive && t.Tag == "font" {
			return t.Args
		}
	}
	return ""
}

// PlainText concatenates every Literal token's text, discarding
// directives, giving the string a screen reader (or a search index)
// would see.
func PlainText(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == Literal {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

var accidentalTags = map[string]string{
	"flat":        "♭",
	"sharp":       "♯",
	"natural":     "♮",
	"doubleflat":  "\U0001D12B",
	"doublesharp": "\U0001D12A",
}

// accidentalAlterations maps the same tag names to their signed
// semitone alteration, for resolving through a smufl.Classifier instead
// of the hardcoded Unicode table above.
var accidentalAlterations = map[string]int{
	"doubleflat":  -2,
	"flat":        -1,
	"natural":     0,
	"sharp":       1,
	"doublesharp": 2,
}

// ReplaceAccidentalTags rewrites ^flat()/^sharp()/^natural()/
// ^doubleflat()/^doublesharp() directives in tokens into their Unicode
// glyphs as Literal runs, leaving every other directive untouched. Used
// when rendering lyric or expression text to plain Unicode rather than
// re-typesetting the directive stream.
func ReplaceAccidentalTags(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == Directive {
			if glyph, ok := accidentalTags[t.Tag]; ok {
				out = append(out, Token{Kind: Literal, Text: glyph})
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// AccidentalRuneResolver resolves a signed semitone alteration to a
// font-specific rune, as smufl.Classifier.AccidentalRune does; declared
// here as an interface so this package need not import smufl directly.
type AccidentalRuneResolver interface {
	AccidentalRune(alteration int) (rune, bool)
}

// ReplaceAccidentalTagsWith behaves like ReplaceAccidentalTags but
// prefers a codepoint resolved through resolver (typically a
// smufl.Classifier backed by the document's music font metadata) over
// the built-in Unicode table, falling back to it for any tag the
// resolver has no codepoint for or when resolver is nil.
func ReplaceAccidentalTagsWith(tokens []Token, resolver AccidentalRuneResolver) []Token {
	if resolver == nil {
		return ReplaceAccidentalTags(tokens)
	}
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == Directive {
			if glyph, ok := accidentalTags[t.Tag]; ok {
				if alt, ok := accidentalAlterations[t.Tag]; ok {
					if r, ok := resolver.AccidentalRune(alt); ok {
						glyph = string(r)
					}
				}
				out = append(out, Token{Kind: Literal, Text: glyph})
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// TrimTags removes every Directive token whose Tag is in names, keeping
// the surrounding Literal runs (but not merging them back together).
func TrimTags(tokens []Token, names ...string) []Token {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == Directive && drop[t.Tag] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitSyllables splits raw lyric text on hyphen-delimited syllable
// breaks, as EnigmaXML lyric blocks encode them: a literal "-" between
// letters marks a syllable boundary, but "--" is an escaped literal
// hyphen within a single syllable (mirroring the "^^" escape convention
// used elsewhere in Enigma text).
func SplitSyllables(raw string) []string {
	var out []string
	var cur strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '-' {
			if i+1 < len(raw) && raw[i+1] == '-' {
				cur.WriteByte('-')
				i += 2
				continue
			}
			out = append(out, cur.String())
			cur.Reset()
			i++
			continue
		}
		cur.WriteByte(raw[i])
		i++
	}
	out = append(out, cur.String())
	return out
}

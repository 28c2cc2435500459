package dom

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeLegacyText reinterprets s as Mac-Roman when ctx.MacRoman is set.
// Pre-Unicode Finale files write legacy text as raw Mac-Roman byte
// values carried through the XML layer as numeric character references
// (each byte 0x80-0xFF surviving as the rune of that same value); once
// decoded from XML, those runes still need remapping through the actual
// Mac-Roman code page to become their real Unicode characters.
func decodeLegacyText(s string, ctx *LoadContext) string {
	if ctx == nil || !ctx.MacRoman {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x80 && r <= 0xFF {
			b.WriteRune(charmap.Macintosh.DecodeByte(byte(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

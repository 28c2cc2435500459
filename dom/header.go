package dom

import (
	"github.com/cartomix/musxdom/xmlapi"
)

// HeaderData is the single per-document record (not part-scoped, not
// keyed): encoding and provenance metadata read once before any pool
// populates, since TextEncoding governs how every subsequent Texts
// record's RawText must be interpreted (spec §6, "legacy Mac-Roman
// text").
type HeaderData struct {
	TextEncoding      string // "Mac", "Windows", other, or "" (UTF-8, the modern default)
	WordOrder         string // "macintosh" or "windows"; affects 2-byte integer fields the C++ original byte-swaps, irrelevant once decoded to XML text
	CreationProgram   string
	CreationVersion   string
	ModifiedVersion   string
}

var headerFields = FieldTable[HeaderData]{
	{Tag: "textEncoding", Set: func(t *HeaderData, el xmlapi.Element, _ *LoadContext) error {
		t.TextEncoding = el.Text()
		return nil
	}},
	{Tag: "wordOrder", Set: func(t *HeaderData, el xmlapi.Element, _ *LoadContext) error {
		t.WordOrder = el.Text()
		return nil
	}},
	{Tag: "creationProgram", Set: func(t *HeaderData, el xmlapi.Element, _ *LoadContext) error {
		t.CreationProgram = el.Text()
		return nil
	}},
	{Tag: "creationVersion", Set: func(t *HeaderData, el xmlapi.Element, _ *LoadContext) error {
		t.CreationVersion = el.Text()
		return nil
	}},
	{Tag: "modifiedVersion", Set: func(t *HeaderData, el xmlapi.Element, _ *LoadContext) error {
		t.ModifiedVersion = el.Text()
		return nil
	}},
}

// PopulateHeaderData populates a HeaderData from the document's <header>
// element.
func PopulateHeaderData(t *HeaderData, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, headerFields, "header", ctx)
}

// IsMacRoman reports whether legacy text fields need Mac-Roman decoding
// before use (spec §6's charmap.Macintosh path).
func (h *HeaderData) IsMacRoman() bool { return h.TextEncoding == "Mac" }

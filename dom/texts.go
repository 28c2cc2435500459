package dom

import (
	"github.com/cartomix/musxdom/xmlapi"
)

// TextBlock is a raw Enigma-text payload (block, expression, page text,
// or lyric verse/chorus/section, depending on which subtype pool it was
// loaded into). Parsing the RawText into runs and directives is C11's
// job (package enigma); the dom layer stores it untouched so that job
// can be deferred or redone without reloading the document.
type TextBlock struct {
	TextsBase
	RawText string
}

var textBlockFields = FieldTable[TextBlock]{
	{Tag: "rawText", Set: func(t *TextBlock, el xmlapi.Element, ctx *LoadContext) error {
		t.RawText = decodeLegacyText(el.Text(), ctx)
		return nil
	}},
}

// PopulateTextBlock populates a TextBlock from its element. The same
// populator backs the Texts subtypes blockText, expressionText,
// pageText, lyricVerse, lyricChorus and lyricSection (fileInfoText has
// its own, PopulateFileInfoText); the
// pool's subtype key is what distinguishes them, not the Go type.
func PopulateTextBlock(t *TextBlock, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, textBlockFields, "textBlock", ctx)
}

// FileInfoText carries document metadata strings (title, composer,
// copyright, arranger) that Finale stores as Texts records rather than
// Header fields.
type FileInfoText struct {
	TextsBase
	RawText string
}

var fileInfoTextFields = FieldTable[FileInfoText]{
	{Tag: "rawText", Set: func(t *FileInfoText, el xmlapi.Element, ctx *LoadContext) error {
		t.RawText = decodeLegacyText(el.Text(), ctx)
		return nil
	}},
}

// PopulateFileInfoText populates a FileInfoText from its element.
func PopulateFileInfoText(t *FileInfoText, el xmlapi.Element, ctx *LoadContext) error {
	return Populate(t, el, fileInfoTextFields, "fileInfoText", ctx)
}

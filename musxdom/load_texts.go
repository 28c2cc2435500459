package musxdom

import (
	"github.com/cartomix/musxdom/dom"
	"github.com/cartomix/musxdom/xmlapi"
)

func (d *Document) loadTexts(root xmlapi.Element, ctx *dom.LoadContext) error {
	texts := root.FirstChild("texts")
	if texts == nil {
		return nil
	}
	for el := texts.FirstChild(); el != nil; el = el.NextSibling() {
		cmper := attrCmper(el, "cmper")
		switch el.Tag() {
		case "blockText", "expressionText", "pageText", "lyricVerse", "lyricChorus", "lyricSection":
			t := &dom.TextBlock{TextsBase: dom.TextsBase{Cmper: cmper}}
			if err := dom.PopulateTextBlock(t, el, ctx); err != nil {
				return err
			}
			d.TextBlocks.Add(cmper, t)
		case "fileInfoText":
			t := &dom.FileInfoText{TextsBase: dom.TextsBase{Cmper: cmper}}
			if err := dom.PopulateFileInfoText(t, el, ctx); err != nil {
				return err
			}
			d.FileInfoTexts.Add(cmper, t)
		default:
			// Not yet a modeled Texts record kind.
		}
	}
	return nil
}

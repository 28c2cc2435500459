package dom

import "github.com/cartomix/musxdom/ids"

// OptionsBase is embedded by every Options record: a document-wide
// singleton, optionally overridden per linked part.
type OptionsBase struct {
	Part ids.PartID
}

// OthersBase is embedded by every Others record: keyed by (part, cmper,
// optional inci), with an optional shared/not-shared flag (spec §6).
type OthersBase struct {
	Part            ids.PartID
	Cmper           ids.Cmper
	Inci            ids.Inci
	RequestedPartID ids.PartID
	Shared          bool
}

// DetailsBase is embedded by every Details record: keyed by (part,
// cmper1, cmper2, optional inci) or by (part, entnum, optional inci) for
// entry-attached details.
type DetailsBase struct {
	Part            ids.PartID
	Cmper1          ids.Cmper
	Cmper2          ids.Cmper
	EntryNumber     ids.EntryNumber
	Inci            ids.Inci
	RequestedPartID ids.PartID
}

// TextsBase is embedded by every Texts record: keyed by cmper within its
// subtype (block, expression, verse, chorus, section, bookmark, file
// info); texts are not part-scoped.
type TextsBase struct {
	Cmper ids.Cmper
}

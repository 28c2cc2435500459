// Package dom holds the typed record definitions (spec C3: Options,
// Others, Details, Entries, Texts, Header) together with the enum and
// field registry that populates them from XML (spec C2). Keeping the
// registry in the same package as the records it populates mirrors how
// the original musxdom C++ sources pair each record's FieldPopulator
// table with the record's own header.
package dom

import (
	"log/slog"
	"strings"

	"github.com/cartomix/musxdom/musxerr"
	"github.com/cartomix/musxdom/xmlapi"
)

// LoadContext carries the cross-cutting load-time policy every populator
// needs: whether unknown tags/enum tokens are fatal, where to log them
// when they are not, and whether legacy text fields need Mac-Roman
// decoding (spec §6, set from the document's HeaderData before any Texts
// record is populated).
type LoadContext struct {
	Strict   bool
	Logger   *slog.Logger
	MacRoman bool
}

func (c *LoadContext) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *LoadContext) strict() bool {
	return c != nil && c.Strict
}

// unknownTag handles an unrecognized child element per spec §4.2: fatal
// in strict mode, logged and ignored otherwise.
func (c *LoadContext) unknownTag(recordKind, tag string) error {
	if c.strict() {
		return musxerr.UnknownXml(recordKind, tag)
	}
	c.logger().Warn("unknown xml child tag", "record", recordKind, "tag", tag)
	return nil
}

// unknownEnum handles an unrecognized enum token per spec §4.2.
func (c *LoadContext) unknownEnum(enumKind, token string) error {
	if c.strict() {
		return musxerr.UnknownXml(enumKind, token)
	}
	c.logger().Warn("unknown enum token", "enum", enumKind, "token", token)
	return nil
}

// FieldSetter populates one field of T from the XML element holding its
// value. It returns an error only for malformed data (musxerr.ParseError
// or an unknown enum token in strict mode); absent-but-optional fields
// are handled by the caller skipping the child entirely.
type FieldSetter[T any] func(target *T, el xmlapi.Element, ctx *LoadContext) error

// FieldSpec is one (tag, populator) pair: the xmlMappingArray entry of
// spec §4.2. The slice of FieldSpecs for a type is kept in XML emission
// order, which is not required for correctness but is preserved to keep
// the door open for a future symmetric writer.
type FieldSpec[T any] struct {
	Tag string
	Set FieldSetter[T]
}

// FieldTable is the ordered xmlMappingArray<T> for a record type.
type FieldTable[T any] []FieldSpec[T]

// indexedTable pairs a table with a tag->setter lookup. Populate builds
// a fresh one on every call; nothing is cached between calls.
type indexedTable[T any] struct {
	order FieldTable[T]
	byTag map[string]FieldSetter[T]
}

func newIndexedTable[T any](table FieldTable[T]) *indexedTable[T] {
	idx := &indexedTable[T]{order: table, byTag: make(map[string]FieldSetter[T], len(table))}
	for _, spec := range table {
		idx.byTag[spec.Tag] = spec.Set
	}
	return idx
}

// Populate walks the direct children of el (a record's own element, e.g.
// <staffSpec>) in document order, dispatching each child to its FieldSetter
// per spec §4.2. Children whose tag is not in the table are reported via
// ctx.unknownTag.
func Populate[T any](target *T, el xmlapi.Element, table FieldTable[T], recordKind string, ctx *LoadContext) error {
	idx := newIndexedTable(table)
	for child := el.FirstChild(); child != nil; child = child.NextSibling() {
		set, ok := idx.byTag[child.Tag()]
		if !ok {
			if err := ctx.unknownTag(recordKind, child.Tag()); err != nil {
				return err
			}
			continue
		}
		if err := set(target, child, ctx); err != nil {
			return err
		}
	}
	return nil
}

// EnumPair is one (xml-token, enumerant) entry of an enumMapping<E>.
type EnumPair[E comparable] struct {
	Token string
	Value E
}

// EnumTable is a bidirectional xml-token<->enumerant map (spec §4.2 and
// §9 "Enum round-tripping": both directions are generated from one
// source-of-truth table, in preparation for a future symmetric writer).
type EnumTable[E comparable] struct {
	kind    string
	toEnum  map[string]E
	toToken map[E]string
}

// NewEnumTable builds an EnumTable from its token/value pairs.
func NewEnumTable[E comparable](kind string, pairs ...EnumPair[E]) *EnumTable[E] {
	t := &EnumTable[E]{
		kind:    kind,
		toEnum:  make(map[string]E, len(pairs)),
		toToken: make(map[E]string, len(pairs)),
	}
	for _, p := range pairs {
		t.toEnum[p.Token] = p.Value
		t.toToken[p.Value] = p.Token
	}
	return t
}

// Parse resolves an XML token to its enumerant. An unrecognized token
// returns the zero value of E and reports through ctx per spec §4.2.
func (t *EnumTable[E]) Parse(token string, ctx *LoadContext) (E, error) {
	token = strings.TrimSpace(token)
	if v, ok := t.toEnum[token]; ok {
		return v, nil
	}
	var zero E
	if err := ctx.unknownEnum(t.kind, token); err != nil {
		return zero, err
	}
	return zero, nil
}

// Token returns the XML token for an enumerant, or "" if none is
// registered (the writer-side direction of the same table).
func (t *EnumTable[E]) Token(v E) string {
	return t.toToken[v]
}

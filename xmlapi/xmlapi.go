// Package xmlapi is the XML façade (spec component C1): a small,
// abstract tree/attribute reader that the rest of the loader programs
// against, so that no package outside stdxml depends on a concrete XML
// library. Multiple backends may implement it; the factory picks one.
package xmlapi

// Document loads an EnigmaXML byte buffer and yields its root element.
type Document interface {
	// Root returns the document's root element.
	Root() Element
}

// Element is a single XML element: its tag, text, attributes, and
// tree navigation (first/next/previous child, optionally filtered by
// tag, and parent).
type Element interface {
	// Tag returns the element's tag name.
	Tag() string

	// Text returns the element's direct text content (trimmed).
	Text() string

	// Parent returns the enclosing element, or nil at the root.
	Parent() Element

	// FirstChild returns the first child element, optionally filtered to
	// children whose tag matches one of tags. An empty tags list matches
	// any child.
	FirstChild(tags ...string) Element

	// NextSibling returns the next sibling element, optionally filtered
	// the same way as FirstChild.
	NextSibling(tags ...string) Element

	// PreviousSibling returns the previous sibling element, optionally
	// filtered the same way as FirstChild.
	PreviousSibling(tags ...string) Element

	// FirstAttribute returns the element's first attribute, or nil.
	FirstAttribute() Attribute

	// Attribute returns the named attribute, or nil if absent.
	Attribute(name string) Attribute

	// HasAttribute reports whether the element carries an attribute with
	// the given name, even if that attribute's value is empty.
	HasAttribute(name string) bool
}

// Attribute is a single XML attribute: its name, raw value, and typed
// extraction helpers. Whitespace is trimmed on read; a failed conversion
// is reported via the ok return rather than a panic so callers can raise
// a musxerr.ParseError with context.
type Attribute interface {
	Name() string
	Value() string
	Next() Attribute

	Int() (int64, bool)
	Float() (float64, bool)
	Bool() (bool, bool)
	Rune() (rune, bool)
}

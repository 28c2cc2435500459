// Package stdxml is the default xmlapi backend (spec C1), built on the
// standard library's encoding/xml token decoder. encoding/xml has no
// navigable DOM of its own, so this package builds one: a small tree of
// *node values linked by parent/first-child/next-sibling pointers, which
// is the conventional shape for a hand-rolled XML tree in Go (the same
// shape encoding/xml's own internal val.go comment sketches, and the one
// every lightweight Go XML tree library — etree, xmlquery — converges
// on).
package stdxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cartomix/musxdom/musxerr"
	"github.com/cartomix/musxdom/xmlapi"
)

type node struct {
	tag        string
	text       strings.Builder
	parent     *node
	firstChild *node
	lastChild  *node
	next       *node
	prev       *node
	attrs      []*attr
}

type attr struct {
	name  string
	value string
	next  *attr
}

type document struct {
	root *node
}

// Parse reads an EnigmaXML byte buffer and returns a Document. It fails
// with a musxerr LoadError-wrapped error on malformed XML.
func Parse(data []byte) (xmlapi.Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	var root, cur *node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, musxerr.Load("xml", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{tag: t.Name.Local}
			for i := range t.Attr {
				a := &attr{name: t.Attr[i].Name.Local, value: t.Attr[i].Value}
				appendAttr(n, a)
			}
			if cur == nil {
				root = n
			} else {
				n.parent = cur
				appendChild(cur, n)
			}
			cur = n
		case xml.EndElement:
			if cur == nil {
				return nil, musxerr.Load("xml", fmt.Errorf("unbalanced end element %q", t.Name.Local))
			}
			cur = cur.parent
		case xml.CharData:
			if cur != nil {
				cur.text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, musxerr.Load("xml", fmt.Errorf("empty document"))
	}
	return &document{root: root}, nil
}

func appendChild(parent, child *node) {
	if parent.lastChild == nil {
		parent.firstChild = child
	} else {
		parent.lastChild.next = child
		child.prev = parent.lastChild
	}
	parent.lastChild = child
}

func appendAttr(n *node, a *attr) {
	if len(n.attrs) > 0 {
		n.attrs[len(n.attrs)-1].next = a
	}
	n.attrs = append(n.attrs, a)
}

func (d *document) Root() xmlapi.Element { return (*element)(d.root) }

type element node

func wrap(n *node) xmlapi.Element {
	if n == nil {
		return nil
	}
	return (*element)(n)
}

func (e *element) n() *node { return (*node)(e) }

func (e *element) Tag() string { return e.n().tag }

func (e *element) Text() string { return strings.TrimSpace(e.n().text.String()) }

func (e *element) Parent() xmlapi.Element { return wrap(e.n().parent) }

func matches(tag string, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (e *element) FirstChild(tags ...string) xmlapi.Element {
	for c := e.n().firstChild; c != nil; c = c.next {
		if matches(c.tag, tags) {
			return wrap(c)
		}
	}
	return nil
}

func (e *element) NextSibling(tags ...string) xmlapi.Element {
	for c := e.n().next; c != nil; c = c.next {
		if matches(c.tag, tags) {
			return wrap(c)
		}
	}
	return nil
}

func (e *element) PreviousSibling(tags ...string) xmlapi.Element {
	for c := e.n().prev; c != nil; c = c.prev {
		if matches(c.tag, tags) {
			return wrap(c)
		}
	}
	return nil
}

func (e *element) FirstAttribute() xmlapi.Attribute {
	if len(e.n().attrs) == 0 {
		return nil
	}
	return (*attribute)(e.n().attrs[0])
}

func (e *element) Attribute(name string) xmlapi.Attribute {
	for _, a := range e.n().attrs {
		if a.name == name {
			return (*attribute)(a)
		}
	}
	return nil
}

func (e *element) HasAttribute(name string) bool {
	return e.Attribute(name) != nil
}

type attribute attr

func (a *attribute) a() *attr { return (*attr)(a) }

func (a *attribute) Name() string  { return a.a().name }
func (a *attribute) Value() string { return strings.TrimSpace(a.a().value) }

func (a *attribute) Next() xmlapi.Attribute {
	if a.a().next == nil {
		return nil
	}
	return (*attribute)(a.a().next)
}

func (a *attribute) Int() (int64, bool) {
	v, err := strconv.ParseInt(a.Value(), 10, 64)
	return v, err == nil
}

func (a *attribute) Float() (float64, bool) {
	v, err := strconv.ParseFloat(a.Value(), 64)
	return v, err == nil
}

func (a *attribute) Bool() (bool, bool) {
	switch strings.ToLower(a.Value()) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func (a *attribute) Rune() (rune, bool) {
	r := []rune(a.Value())
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

// Text also supports typed extraction the same way an Attribute does,
// via these package-level helpers, since spec §4.1 requires typed
// extraction from both attributes and element text.

// TextInt parses an element's text as an integer.
func TextInt(e xmlapi.Element) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(e.Text()), 10, 64)
	return v, err == nil
}

// TextFloat parses an element's text as a float.
func TextFloat(e xmlapi.Element) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Text()), 64)
	return v, err == nil
}

// TextBool parses an element's text as a case-insensitive bool.
func TextBool(e xmlapi.Element) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(e.Text())) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

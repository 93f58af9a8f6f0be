package grammar

import (
	"fmt"
	"strings"

	"github.com/andaru/cimxml/cimerr"
)

// ElementType is the classification of one tokenizer event
type ElementType int

const (
	// None is whitespace or an ignorable node
	None ElementType = iota
	// TextValue is character data
	TextValue
	// XMLDeclaration is the <?xml ...?> prolog
	XMLDeclaration
	// EndOfDocument is returned once input is exhausted
	EndOfDocument

	firstElement
)

var startByName = func() map[string]ElementType {
	m := make(map[string]ElementType, len(elementTags))
	for t, tag := range elementTags {
		m[strings.ToLower(tag)] = t
	}
	return m
}()

// Lookup returns the start ElementType for an element tag name, ignoring case.
func Lookup(tag string) (ElementType, bool) {
	t, ok := startByName[strings.ToLower(tag)]
	return t, ok
}

// IsStart returns true for element start types
func (t ElementType) IsStart() bool {
	_, ok := elementTags[t]
	return ok
}

// IsEnd returns true for element end types
func (t ElementType) IsEnd() bool { return t > firstElement && (t-1).IsStart() }

// End returns the end type matching start type t
func (t ElementType) End() ElementType {
	if t.IsStart() {
		return t + 1
	}
	return t
}

// Start returns the start type matching end type t
func (t ElementType) Start() ElementType {
	if t.IsEnd() {
		return t - 1
	}
	return t
}

// Tag returns the element name, e.g. "VALUE.ARRAY", for start and end types.
func (t ElementType) Tag() string { return elementTags[t.Start()] }

func (t ElementType) String() string {
	switch {
	case t == None:
		return "none"
	case t == TextValue:
		return "text"
	case t == XMLDeclaration:
		return "xml declaration"
	case t == EndOfDocument:
		return "end of document"
	case t.IsStart():
		return "<" + t.Tag() + ">"
	case t.IsEnd():
		return "</" + t.Tag() + ">"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// NodeKind is the kind of a raw tokenizer node
type NodeKind int

const (
	NodeNone NodeKind = iota
	NodeWhitespace
	NodeText
	NodeStartElement
	NodeEndElement
	NodeXMLDeclaration
	NodeComment
	NodeProcInst
	NodeDirective
	NodeEOF
)

// Classify maps a node kind and (element) name to its ElementType.
// Whitespace and other ignorable nodes classify as None.
func Classify(kind NodeKind, name string) (ElementType, error) {
	switch kind {
	case NodeNone, NodeWhitespace, NodeComment, NodeProcInst, NodeDirective:
		return None, nil
	case NodeText:
		return TextValue, nil
	case NodeXMLDeclaration:
		return XMLDeclaration, nil
	case NodeEOF:
		return EndOfDocument, nil
	case NodeStartElement, NodeEndElement:
		t, ok := Lookup(name)
		if !ok {
			return None, cimerr.UnexpectedElement(name, cimerr.WithMessage("unknown element"))
		}
		if kind == NodeEndElement {
			t = t.End()
		}
		return t, nil
	}
	return None, cimerr.UnexpectedElement(name, cimerr.WithMessagef("unknown node kind %d", int(kind)))
}

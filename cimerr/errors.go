package cimerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind is the CIM-XML codec error kind
type Kind int

const (
	// KindUnexpectedElement is a grammar mismatch against the expected production
	KindUnexpectedElement Kind = iota
	// KindMissingRequiredAttribute indicates a required attribute was absent
	KindMissingRequiredAttribute
	// KindUnimplementedGrammar is a recognised production the codec does not handle
	KindUnimplementedGrammar
	// KindUnrecognizedResultKind is a decoded object the aggregator cannot classify
	KindUnrecognizedResultKind
	// KindMalformedSequence is an encoder call sequence that is not well-formed
	KindMalformedSequence
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedElement:
		return "unexpected-element"
	case KindMissingRequiredAttribute:
		return "missing-required-attribute"
	case KindUnimplementedGrammar:
		return "unimplemented-grammar"
	case KindUnrecognizedResultKind:
		return "unrecognized-result-kind"
	case KindMalformedSequence:
		return "malformed-sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "unexpected-element":
		*k = KindUnexpectedElement
	case "missing-required-attribute":
		*k = KindMissingRequiredAttribute
	case "unimplemented-grammar":
		*k = KindUnimplementedGrammar
	case "unrecognized-result-kind":
		*k = KindUnrecognizedResultKind
	case "malformed-sequence":
		*k = KindMalformedSequence
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error is a CIM-XML codec error. Every Error is terminal for the
// decode or encode call that produced it.
type Error struct {
	Kind      Kind   `json:"kind"`
	Element   string `json:"element,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (e Error) Error() string {
	s := e.Kind.String()
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func newError(k Kind, opts []Option) *Error {
	e := &Error{Kind: k}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnexpectedElement returns an error for an element that does not match
// the production being decoded.
func UnexpectedElement(elementName string, opts ...Option) *Error {
	return newError(KindUnexpectedElement, append([]Option{WithElement(elementName)}, opts...))
}

func MissingRequiredAttribute(attributeName, elementName string, opts ...Option) *Error {
	e := newError(KindMissingRequiredAttribute, append([]Option{WithElement(elementName)}, opts...))
	e.Attribute = attributeName
	return e
}

func UnimplementedGrammar(elementName string, opts ...Option) *Error {
	return newError(KindUnimplementedGrammar, append([]Option{WithElement(elementName)}, opts...))
}

func UnrecognizedResultKind(opts ...Option) *Error {
	return newError(KindUnrecognizedResultKind, opts)
}

func MalformedSequence(opts ...Option) *Error {
	return newError(KindMalformedSequence, opts)
}

// As returns the *Error found in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err is a codec error of kind k.
func Is(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

package grammar

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cimerr"
)

// Tokenizer is a pull tokenizer over one CIM-XML document.
// It holds the current node, which callers classify with Element.
type Tokenizer struct {
	d    *xml.Decoder
	tok  xml.Token
	kind NodeKind

	size     int64
	percent  int
	progress func(percent int)
}

// TokenizerOption is a Tokenizer option function
type TokenizerOption func(*Tokenizer)

// WithProgress sets a function called synchronously whenever the share of
// input consumed, in whole percent, increases.
func WithProgress(fn func(percent int)) TokenizerOption {
	return func(t *Tokenizer) { t.progress = fn }
}

// NewTokenizer returns a Tokenizer positioned on the first node of text
func NewTokenizer(text string, opts ...TokenizerOption) (*Tokenizer, error) {
	t := &Tokenizer{d: xml.NewDecoder(strings.NewReader(text)), size: int64(len(text))}
	for _, opt := range opts {
		opt(t)
	}
	return t, t.Next()
}

// Next advances to the next raw node
func (t *Tokenizer) Next() error {
	tok, err := t.d.Token()
	switch {
	case err == io.EOF:
		t.tok, t.kind = nil, NodeEOF
	case err != nil:
		return errors.WithStack(cimerr.UnexpectedElement("", cimerr.WithMessage(err.Error())))
	default:
		t.tok = xml.CopyToken(tok)
		t.kind = kindOf(t.tok)
	}
	t.report()
	return nil
}

func kindOf(tok xml.Token) NodeKind {
	switch tok := tok.(type) {
	case xml.StartElement:
		return NodeStartElement
	case xml.EndElement:
		return NodeEndElement
	case xml.CharData:
		if len(strings.TrimSpace(string(tok))) == 0 {
			return NodeWhitespace
		}
		return NodeText
	case xml.Comment:
		return NodeComment
	case xml.ProcInst:
		if strings.EqualFold(tok.Target, "xml") {
			return NodeXMLDeclaration
		}
		return NodeProcInst
	case xml.Directive:
		return NodeDirective
	}
	return NodeNone
}

func (t *Tokenizer) report() {
	if t.progress == nil || t.size == 0 {
		return
	}
	if pct := int(t.d.InputOffset() * 100 / t.size); pct > t.percent {
		t.percent = pct
		t.progress(pct)
	}
}

// Kind returns the current node kind
func (t *Tokenizer) Kind() NodeKind { return t.kind }

// Name returns the current element's local name, or "".
func (t *Tokenizer) Name() string {
	switch tok := t.tok.(type) {
	case xml.StartElement:
		return tok.Name.Local
	case xml.EndElement:
		return tok.Name.Local
	}
	return ""
}

// Attrs returns the current start element's attributes
func (t *Tokenizer) Attrs() []xml.Attr {
	if se, ok := t.tok.(xml.StartElement); ok {
		return se.Attr
	}
	return nil
}

func ignorable(k NodeKind) bool {
	switch k {
	case NodeNone, NodeWhitespace, NodeComment, NodeProcInst, NodeDirective:
		return true
	}
	return false
}

// TrimStart skips whitespace, comments and other ignorable nodes
func (t *Tokenizer) TrimStart() error {
	for ignorable(t.kind) {
		if err := t.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Element skips ignorable nodes and classifies the current node
func (t *Tokenizer) Element() (ElementType, error) {
	if err := t.TrimStart(); err != nil {
		return None, err
	}
	et, err := Classify(t.kind, t.Name())
	return et, errors.WithStack(err)
}

// ReadText consumes consecutive character data (including whitespace and
// CDATA sections, skipping comments) and returns it joined.
func (t *Tokenizer) ReadText() (string, error) {
	var sb strings.Builder
	for {
		switch t.kind {
		case NodeText, NodeWhitespace:
			sb.Write(t.tok.(xml.CharData))
		case NodeComment:
		default:
			return sb.String(), nil
		}
		if err := t.Next(); err != nil {
			return "", err
		}
	}
}

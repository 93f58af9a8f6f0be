package writer

import (
	"encoding/xml"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
	"github.com/andaru/cimxml/xmlutil"
)

// Sequence generates message IDs
type Sequence interface {
	Next() uint64
}

// Counter is a Sequence safe for concurrent use
type Counter struct{ n atomic.Uint64 }

// Next returns the next value, starting at 1
func (c *Counter) Next() uint64 { return c.n.Add(1) }

// DefaultSequence is the process-wide message ID sequence used by writers
// not given one with WithSequence.
var DefaultSequence Sequence = &Counter{}

// Option is a Writer option function
type Option func(*Writer)

// WithSequence sets the message ID sequence
func WithSequence(seq Sequence) Option { return func(w *Writer) { w.seq = seq } }

// WithCIMVersion sets the CIM element's CIMVERSION
func WithCIMVersion(v string) Option { return func(w *Writer) { w.cimVersion = v } }

// WithDTDVersion sets the CIM element's DTDVERSION
func WithDTDVersion(v string) Option { return func(w *Writer) { w.dtdVersion = v } }

// WithProtocolVersion sets the MESSAGE element's PROTOCOLVERSION
func WithProtocolVersion(v string) Option { return func(w *Writer) { w.protocolVersion = v } }

type opKind int

const (
	opStart opKind = iota
	opEnd
	opAttr
	opText
)

// op is one entry of the operation log
type op struct {
	kind  opKind
	elem  grammar.ElementType
	attr  grammar.Attribute
	value string
}

// Writer builds one CIM-XML request message.
//
// Every call is appended to an operation log and checked for
// well-formedness as it is made; the first failure is kept and returned
// by Err and Text, and later calls are ignored. Text replays the log
// inside the CIM and MESSAGE envelope.
type Writer struct {
	ops   []op
	check checker
	err   error

	seq             Sequence
	id              uint64
	cimVersion      string
	dtdVersion      string
	protocolVersion string
}

// New returns a new Writer. Its message ID is taken from the sequence once.
func New(opts ...Option) *Writer {
	w := &Writer{
		seq:             DefaultSequence,
		cimVersion:      "2.0",
		dtdVersion:      "2.0",
		protocolVersion: "1.0",
	}
	for _, opt := range opts {
		opt(w)
	}
	w.id = w.seq.Next()
	return w
}

// ID returns the message ID
func (w *Writer) ID() string { return strconv.FormatUint(w.id, 10) }

// Err returns the first error recorded by the writer
func (w *Writer) Err() error { return w.err }

// Requests returns the number of completed SIMPLEREQ bodies
func (w *Writer) Requests() int { return w.check.requests }

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = errors.WithStack(err)
	}
}

func (w *Writer) failf(format string, args ...interface{}) {
	w.fail(cimerr.MalformedSequence(cimerr.WithMessagef(format, args...)))
}

func (w *Writer) do(o op) {
	if w.err != nil {
		return
	}
	if err := w.check.step(o); err != nil {
		w.fail(err)
		return
	}
	w.ops = append(w.ops, o)
}

// StartElement opens element et, which must be a start type
func (w *Writer) StartElement(et grammar.ElementType) { w.do(op{kind: opStart, elem: et}) }

// EndElement closes the open element
func (w *Writer) EndElement() { w.do(op{kind: opEnd}) }

// Attr adds an attribute to the open element. Attributes must precede content.
func (w *Writer) Attr(a grammar.Attribute, value string) {
	w.do(op{kind: opAttr, attr: a, value: value})
}

// CharData adds character data to the open element
func (w *Writer) CharData(value string) { w.do(op{kind: opText, value: value}) }

// BeginRequest opens a SIMPLEREQ body
func (w *Writer) BeginRequest() {
	if w.check.depth() != 0 {
		w.failf("request started inside %s", w.check.top().Tag())
		return
	}
	w.StartElement(grammar.SimpleReqStart)
}

// EndRequest closes the SIMPLEREQ body opened by BeginRequest
func (w *Writer) EndRequest() {
	if w.err != nil {
		return
	}
	switch {
	case w.check.depth() == 0:
		w.failf("no open request")
		return
	case w.check.depth() != 1 || w.check.top() != grammar.SimpleReqStart:
		w.failf("request ended inside unclosed %s", w.check.top().Tag())
		return
	}
	w.EndElement()
}

// Text returns the message text: the XML declaration, the CIM and MESSAGE
// envelope and the logged requests, wrapped in MULTIREQ when there is more
// than one. Calling Text does not change the writer.
func (w *Writer) Text() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	requests, err := validate(w.ops)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if requests == 0 {
		return "", errors.WithStack(cimerr.MalformedSequence(cimerr.WithMessage("message has no requests")))
	}

	var sb strings.Builder
	xe := xml.NewEncoder(&sb)
	seCIM := xmlutil.Start(grammar.CIMStart.Tag(),
		xmlutil.Attr(grammar.AttrCIMVersion.Tag(), w.cimVersion),
		xmlutil.Attr(grammar.AttrDTDVersion.Tag(), w.dtdVersion))
	seMessage := xmlutil.Start(grammar.MessageStart.Tag(),
		xmlutil.Attr(grammar.AttrID.Tag(), w.ID()),
		xmlutil.Attr(grammar.AttrProtocolVersion.Tag(), w.protocolVersion))
	seMulti := xmlutil.Start(grammar.MultiReqStart.Tag())
	multi := requests > 1

	err = xe.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="utf-8"`)})
	if err == nil {
		err = xe.EncodeToken(seCIM)
	}
	if err == nil {
		err = xe.EncodeToken(seMessage)
	}
	if err == nil && multi {
		err = xe.EncodeToken(seMulti)
	}
	if err == nil {
		err = replay(xe, w.ops)
	}
	if err == nil && multi {
		err = xe.EncodeToken(seMulti.End())
	}
	if err == nil {
		err = xe.EncodeToken(seMessage.End())
	}
	if err == nil {
		err = xe.EncodeToken(seCIM.End())
	}
	if err == nil {
		err = xe.Flush()
	}
	if err != nil {
		return "", errors.Wrap(err, "replay")
	}
	return sb.String(), nil
}

// replay encodes the (validated) operation log
func replay(xe *xml.Encoder, ops []op) error {
	var (
		pending *xml.StartElement
		open    []xml.StartElement
	)
	flush := func() error {
		if pending == nil {
			return nil
		}
		se := *pending
		pending = nil
		open = append(open, se)
		return xe.EncodeToken(se)
	}
	for _, o := range ops {
		switch o.kind {
		case opStart:
			if err := flush(); err != nil {
				return err
			}
			se := xmlutil.Start(o.elem.Tag())
			pending = &se
		case opAttr:
			pending.Attr = append(pending.Attr, xmlutil.Attr(o.attr.Tag(), o.value))
		case opText:
			if err := flush(); err != nil {
				return err
			}
			if err := xe.EncodeToken(xml.CharData(o.value)); err != nil {
				return err
			}
		case opEnd:
			if err := flush(); err != nil {
				return err
			}
			se := open[len(open)-1]
			open = open[:len(open)-1]
			if err := xe.EncodeToken(se.End()); err != nil {
				return err
			}
		}
	}
	return nil
}

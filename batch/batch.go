// Package batch assembles decoded CIM-XML responses.
//
// An Aggregator is a reader.Sink. The first object seen for a sub-response
// selects the collection built for it and later objects of that
// sub-response are appended to it.
package batch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/reader"
)

// Result is the collection of objects returned by an intrinsic method
type Result interface {
	Len() int
	isResult()
}

type (
	NameList                 []cim.Name
	ClassList                []*cim.Class
	InstanceList             []*cim.Instance
	InstanceNameList         []*cim.InstanceName
	StringList               []string
	QualifierDeclarationList []*cim.QualifierDeclaration
	ClassPathList            []*cim.ClassPath
	InstancePathList         []*cim.InstancePath
	ClassNamePathList        []*cim.ClassNamePath
	InstanceNamePathList     []*cim.InstanceNamePath
)

func (l NameList) Len() int                 { return len(l) }
func (l ClassList) Len() int                { return len(l) }
func (l InstanceList) Len() int             { return len(l) }
func (l InstanceNameList) Len() int         { return len(l) }
func (l StringList) Len() int               { return len(l) }
func (l QualifierDeclarationList) Len() int { return len(l) }
func (l ClassPathList) Len() int            { return len(l) }
func (l InstancePathList) Len() int         { return len(l) }
func (l ClassNamePathList) Len() int        { return len(l) }
func (l InstanceNamePathList) Len() int     { return len(l) }

func (NameList) isResult()                 {}
func (ClassList) isResult()                {}
func (InstanceList) isResult()             {}
func (InstanceNameList) isResult()         {}
func (StringList) isResult()               {}
func (QualifierDeclarationList) isResult() {}
func (ClassPathList) isResult()            {}
func (InstancePathList) isResult()         {}
func (ClassNamePathList) isResult()        {}
func (InstanceNamePathList) isResult()     {}

// Response is one sub-response. At most one of Value, Method and Error is
// set; all are nil when the method returned nothing.
type Response struct {
	Index      int
	MethodName string

	Value  Result
	Method *cim.MethodResponse
	Error  *cim.CimomError
}

// Err returns the CIMOM error as a *StatusError, or nil
func (r *Response) Err() error {
	if r.Error == nil {
		return nil
	}
	return &StatusError{MethodName: r.MethodName, CimomError: r.Error}
}

func (r *Response) kind() string {
	switch {
	case r.Value != nil:
		return fmt.Sprintf("%T", r.Value)
	case r.Method != nil:
		return "method response"
	case r.Error != nil:
		return "error"
	}
	return ""
}

// StatusError is a CIMOM error returned by a method
type StatusError struct {
	MethodName string
	*cim.CimomError
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.MethodName, e.CimomError)
}

// Batch is a decoded response message
type Batch struct {
	CIMVersion      string
	DTDVersion      string
	MessageID       string
	ProtocolVersion string
	IsMultiple      bool
	Responses       []*Response
}

// Err returns the first sub-response's CIMOM error, if any
func (b *Batch) Err() error {
	for _, r := range b.Responses {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Aggregator collects decoded objects into a Batch
type Aggregator struct {
	b Batch
}

// NewAggregator returns a new, empty Aggregator
func NewAggregator() *Aggregator { return &Aggregator{} }

// Batch returns the batch built so far
func (a *Aggregator) Batch() *Batch { return &a.b }

func (a *Aggregator) response(h *reader.Header) *Response {
	a.b.CIMVersion = h.CIMVersion
	a.b.DTDVersion = h.DTDVersion
	a.b.MessageID = h.MessageID
	a.b.ProtocolVersion = h.ProtocolVersion
	a.b.IsMultiple = h.IsMultiple
	for len(a.b.Responses) <= h.ResponseIndex {
		a.b.Responses = append(a.b.Responses, &Response{Index: len(a.b.Responses)})
	}
	r := a.b.Responses[h.ResponseIndex]
	r.MethodName = h.MethodName
	return r
}

// Add implements reader.Sink
func (a *Aggregator) Add(h *reader.Header, obj cim.Object) error {
	r := a.response(h)
	switch o := obj.(type) {
	case nil:
		return nil
	case cim.Name:
		return add(r, func(l NameList) NameList { return append(l, o) })
	case cim.Value:
		return add(r, func(l StringList) StringList { return append(l, o.String()) })
	case *cim.Class:
		return add(r, func(l ClassList) ClassList { return append(l, o) })
	case *cim.Instance:
		return add(r, func(l InstanceList) InstanceList { return append(l, o) })
	case *cim.InstanceName:
		return add(r, func(l InstanceNameList) InstanceNameList { return append(l, o) })
	case *cim.QualifierDeclaration:
		return add(r, func(l QualifierDeclarationList) QualifierDeclarationList { return append(l, o) })
	case *cim.ClassPath:
		return add(r, func(l ClassPathList) ClassPathList { return append(l, o) })
	case *cim.InstancePath:
		return add(r, func(l InstancePathList) InstancePathList { return append(l, o) })
	case *cim.ClassNamePath:
		return add(r, func(l ClassNamePathList) ClassNamePathList { return append(l, o) })
	case *cim.InstanceNamePath:
		return add(r, func(l InstanceNamePathList) InstanceNamePathList { return append(l, o) })
	case *cim.MethodResponse:
		if k := r.kind(); k != "" {
			return kindChange(r, k, "method response")
		}
		r.Method = o
	case *cim.CimomError:
		if k := r.kind(); k != "" {
			return kindChange(r, k, "error")
		}
		r.Error = o
	default:
		return errors.WithStack(cimerr.UnrecognizedResultKind(cimerr.WithMessagef("%T in %s response", obj, r.MethodName)))
	}
	return nil
}

func kindChange(r *Response, have, got string) error {
	return errors.WithStack(cimerr.UnrecognizedResultKind(
		cimerr.WithMessagef("%s in %s response holding %s", got, r.MethodName, have)))
}

// add appends to the response's L collection, creating it when the
// response is empty
func add[L Result](r *Response, push func(L) L) error {
	var l L
	if k := r.kind(); k != "" {
		var ok bool
		if l, ok = r.Value.(L); !ok {
			return kindChange(r, k, fmt.Sprintf("%T", l))
		}
	}
	r.Value = push(l)
	return nil
}

// Decode decodes a response message into a Batch
func Decode(text string, opts ...reader.Option) (*Batch, error) {
	a := NewAggregator()
	if err := reader.Decode(text, a.Add, opts...); err != nil {
		return nil, err
	}
	return a.Batch(), nil
}

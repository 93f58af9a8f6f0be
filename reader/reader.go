package reader

import (
	"encoding/xml"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
	"github.com/andaru/cimxml/xmlutil"
)

// Header is the message header state of one response decode.
// The same Header is passed to every Sink call for a document;
// MethodName and ResponseIndex change as sub-responses are consumed.
type Header struct {
	CIMVersion      string
	DTDVersion      string
	MessageID       string
	ProtocolVersion string
	// MethodName is the NAME of the current (I)METHODRESPONSE
	MethodName string
	// ResponseIndex is the 0-based index of the current SIMPLERSP
	ResponseIndex int
	// IsMultiple is true for MULTIRSP messages
	IsMultiple bool
}

// Sink receives each top-level result object. obj is nil for a
// sub-response that carried no result. An error returned by the sink
// stops the decode and is returned from Decode unchanged.
type Sink func(h *Header, obj cim.Object) error

// Option is a Decode option function
type Option func(*Reader)

// WithProgress sets a function called synchronously with the percentage
// of the document consumed.
func WithProgress(fn func(percent int)) Option { return func(r *Reader) { r.progress = fn } }

// Reader is a recursive-descent CIM-XML decoder
type Reader struct {
	t        *grammar.Tokenizer
	h        *Header
	sink     Sink
	progress func(percent int)
}

// Decode decodes the CIM-XML response message text, passing each result
// object to sink.
func Decode(text string, sink Sink, opts ...Option) error {
	r, err := newReader(text, sink, opts...)
	if err == nil {
		err = r.readDocument()
	}
	return err
}

func newReader(text string, sink Sink, opts ...Option) (*Reader, error) {
	r := &Reader{h: &Header{}, sink: sink}
	for _, opt := range opts {
		opt(r)
	}
	var topts []grammar.TokenizerOption
	if r.progress != nil {
		topts = append(topts, grammar.WithProgress(r.progress))
	}
	t, err := grammar.NewTokenizer(text, topts...)
	r.t = t
	return r, err
}

// peek classifies the current node without consuming it
func (r *Reader) peek() (grammar.ElementType, error) { return r.t.Element() }

// start consumes the start tag of et, returning its attributes
func (r *Reader) start(et grammar.ElementType) ([]xml.Attr, error) {
	got, err := r.peek()
	if err != nil {
		return nil, err
	}
	if got != et {
		return nil, r.unexpected(got, et)
	}
	attrs := xmlutil.PlainAttrs(r.t.Attrs())
	return attrs, r.t.Next()
}

// end consumes the end tag matching start type et
func (r *Reader) end(et grammar.ElementType) error {
	got, err := r.peek()
	if err != nil {
		return err
	}
	if got != et.End() {
		return r.unexpected(got, et.End())
	}
	return r.t.Next()
}

func describe(et grammar.ElementType) string {
	if tag := et.Tag(); tag != "" {
		return tag
	}
	return et.String()
}

func (r *Reader) unexpected(got, want grammar.ElementType) error {
	return errors.WithStack(cimerr.UnexpectedElement(describe(got), cimerr.WithMessagef("want %s, got %s", want, got)))
}

func (r *Reader) unexpectedIn(got, parent grammar.ElementType) error {
	return errors.WithStack(cimerr.UnexpectedElement(describe(got), cimerr.WithMessagef("%s not allowed in %s", got, parent.Tag())))
}

func (r *Reader) unimplemented(et grammar.ElementType, msg string) error {
	return errors.WithStack(cimerr.UnimplementedGrammar(describe(et), cimerr.WithMessage(msg)))
}

func (r *Reader) missing(a grammar.Attribute, et grammar.ElementType) error {
	return errors.WithStack(cimerr.MissingRequiredAttribute(a.Tag(), et.Tag()))
}

func (r *Reader) badValue(et grammar.ElementType, a xml.Attr) error {
	return errors.WithStack(cimerr.UnexpectedElement(et.Tag(), cimerr.WithMessagef("invalid %s value %q", a.Name.Local, a.Value)))
}

func (r *Reader) boolAttr(et grammar.ElementType, a xml.Attr) (cim.Bool, error) {
	b, ok := cim.ParseBool(a.Value)
	if !ok {
		return cim.BoolUnset, r.badValue(et, a)
	}
	return b, nil
}

func (r *Reader) typeAttr(et grammar.ElementType, a xml.Attr) (cim.Type, error) {
	t, ok := cim.ParseType(a.Value)
	if !ok {
		return cim.TypeInvalid, r.badValue(et, a)
	}
	return t, nil
}

func (r *Reader) intAttr(et grammar.ElementType, a xml.Attr) (int, error) {
	v, err := strconv.Atoi(a.Value)
	if err != nil || v < 0 {
		return 0, r.badValue(et, a)
	}
	return v, nil
}

// flavorAttr sets the flavor flag named by a, ignoring other attributes
func (r *Reader) flavorAttr(et grammar.ElementType, a xml.Attr, f *cim.Flavor) (err error) {
	switch grammar.ClassifyAttr(a.Name.Local) {
	case grammar.AttrOverridable:
		f.Overridable, err = r.boolAttr(et, a)
	case grammar.AttrToSubclass:
		f.ToSubclass, err = r.boolAttr(et, a)
	case grammar.AttrToInstance:
		f.ToInstance, err = r.boolAttr(et, a)
	case grammar.AttrTranslatable:
		f.Translatable, err = r.boolAttr(et, a)
	}
	return err
}

func (r *Reader) emit(obj cim.Object) error { return r.sink(r.h, obj) }

func (r *Reader) readDocument() error {
	et, err := r.peek()
	if err != nil {
		return err
	}
	if et == grammar.XMLDeclaration {
		if err := r.t.Next(); err != nil {
			return err
		}
	}
	if err := r.readCIM(); err != nil {
		return err
	}
	if et, err = r.peek(); err == nil && et != grammar.EndOfDocument {
		err = r.unexpected(et, grammar.EndOfDocument)
	}
	return err
}

func (r *Reader) readCIM() error {
	attrs, err := r.start(grammar.CIMStart)
	if err != nil {
		return err
	}
	var cimVersion, dtdVersion bool
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrCIMVersion:
			r.h.CIMVersion, cimVersion = a.Value, true
		case grammar.AttrDTDVersion:
			r.h.DTDVersion, dtdVersion = a.Value, true
		}
	}
	switch {
	case !cimVersion:
		return r.missing(grammar.AttrCIMVersion, grammar.CIMStart)
	case !dtdVersion:
		return r.missing(grammar.AttrDTDVersion, grammar.CIMStart)
	}

	et, err := r.peek()
	if err != nil {
		return err
	}
	switch et {
	case grammar.MessageStart:
		err = r.readMessage()
	case grammar.DeclarationStart:
		err = r.unimplemented(et, "declaration documents are not supported")
	default:
		err = r.unexpectedIn(et, grammar.CIMStart)
	}
	if err != nil {
		return err
	}
	return r.end(grammar.CIMStart)
}

func (r *Reader) readMessage() error {
	attrs, err := r.start(grammar.MessageStart)
	if err != nil {
		return err
	}
	var id, protocol bool
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrID:
			r.h.MessageID, id = a.Value, true
		case grammar.AttrProtocolVersion:
			r.h.ProtocolVersion, protocol = a.Value, true
		}
	}
	switch {
	case !id:
		return r.missing(grammar.AttrID, grammar.MessageStart)
	case !protocol:
		return r.missing(grammar.AttrProtocolVersion, grammar.MessageStart)
	}

	et, err := r.peek()
	if err != nil {
		return err
	}
	switch et {
	case grammar.SimpleRspStart:
		err = r.readSimpleResponse()
	case grammar.MultiRspStart:
		err = r.readMultipleResponse()
	case grammar.SimpleReqStart, grammar.MultiReqStart:
		err = r.unimplemented(et, "request messages are not decoded")
	case grammar.SimpleExpReqStart, grammar.MultiExpReqStart,
		grammar.SimpleExpRspStart, grammar.MultiExpRspStart, grammar.SimpleReqAckStart:
		err = r.unimplemented(et, "export messages are not supported")
	default:
		err = r.unexpectedIn(et, grammar.MessageStart)
	}
	if err != nil {
		return err
	}
	return r.end(grammar.MessageStart)
}

func (r *Reader) readMultipleResponse() error {
	if _, err := r.start(grammar.MultiRspStart); err != nil {
		return err
	}
	r.h.IsMultiple = true
	for i := 0; ; i++ {
		et, err := r.peek()
		if err != nil {
			return err
		}
		if et == grammar.MultiRspEnd {
			break
		}
		if et != grammar.SimpleRspStart {
			return r.unexpectedIn(et, grammar.MultiRspStart)
		}
		r.h.ResponseIndex = i
		if err := r.readSimpleResponse(); err != nil {
			return err
		}
	}
	return r.end(grammar.MultiRspStart)
}

func (r *Reader) readSimpleResponse() error {
	if _, err := r.start(grammar.SimpleRspStart); err != nil {
		return err
	}
	et, err := r.peek()
	if err != nil {
		return err
	}
	switch et {
	case grammar.IMethodResponseStart:
		err = r.readIMethodResponse()
	case grammar.MethodResponseStart:
		err = r.readMethodResponse()
	case grammar.ExpMethodResponseStart:
		err = r.unimplemented(et, "export messages are not supported")
	default:
		err = r.unexpectedIn(et, grammar.SimpleRspStart)
	}
	if err != nil {
		return err
	}
	if glog.V(2) {
		glog.Infof("cimxml: message %s response %d %s decoded", r.h.MessageID, r.h.ResponseIndex, r.h.MethodName)
	}
	return r.end(grammar.SimpleRspStart)
}

// readMethodName reads the required NAME of an (I)METHODRESPONSE into the header
func (r *Reader) readMethodName(et grammar.ElementType) error {
	attrs, err := r.start(et)
	if err != nil {
		return err
	}
	name := cim.Name{}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrName {
			name = cim.NewName(a.Value)
		}
	}
	if !name.IsSet() {
		return r.missing(grammar.AttrName, et)
	}
	r.h.MethodName = name.String()
	return nil
}

func (r *Reader) readIMethodResponse() error {
	if err := r.readMethodName(grammar.IMethodResponseStart); err != nil {
		return err
	}
	et, err := r.peek()
	if err != nil {
		return err
	}
	switch et {
	case grammar.IReturnValueStart:
		err = r.readIReturnValue()
	case grammar.ErrorStart:
		var e *cim.CimomError
		if e, err = r.readError(); err == nil {
			err = r.emit(e)
		}
	case grammar.IMethodResponseEnd:
		err = r.emit(nil)
	default:
		err = r.unexpectedIn(et, grammar.IMethodResponseStart)
	}
	if err != nil {
		return err
	}
	return r.end(grammar.IMethodResponseStart)
}

// readIReturnValue decides the result list type from the first child and
// then decodes siblings of that same kind up to the closing tag.
func (r *Reader) readIReturnValue() error {
	if _, err := r.start(grammar.IReturnValueStart); err != nil {
		return err
	}
	first, err := r.peek()
	if err != nil {
		return err
	}
	switch first {
	case grammar.IReturnValueEnd:
		if err := r.emit(nil); err != nil {
			return err
		}
		return r.end(grammar.IReturnValueStart)
	case grammar.ClassNameStart,
		grammar.ClassStart,
		grammar.ValueNamedInstanceStart,
		grammar.InstanceStart,
		grammar.InstanceNameStart,
		grammar.ValueStart,
		grammar.QualifierDeclarationStart,
		grammar.ValueObjectWithPathStart,
		grammar.ObjectPathStart:
	case grammar.ValueArrayStart,
		grammar.ValueReferenceStart,
		grammar.ValueRefArrayStart,
		grammar.ValueObjectStart,
		grammar.ValueNamedObjectStart,
		grammar.ValueObjectWithLocalPathStart,
		grammar.ValueInstanceWithPathStart,
		grammar.ValueNullStart:
		return r.unimplemented(first, "unsupported IRETURNVALUE result")
	default:
		return r.unexpectedIn(first, grammar.IReturnValueStart)
	}

	for et := first; et == first; {
		obj, err := r.readResult(first)
		if err != nil {
			return err
		}
		if err := r.emit(obj); err != nil {
			return err
		}
		if et, err = r.peek(); err != nil {
			return err
		}
	}
	return r.end(grammar.IReturnValueStart)
}

func (r *Reader) readResult(et grammar.ElementType) (cim.Object, error) {
	switch et {
	case grammar.ClassNameStart:
		return r.readClassName()
	case grammar.ClassStart:
		return r.readClass()
	case grammar.ValueNamedInstanceStart:
		return r.readNamedInstance()
	case grammar.InstanceStart:
		return r.readInstance()
	case grammar.InstanceNameStart:
		return r.readInstanceName()
	case grammar.ValueStart:
		return r.readValue()
	case grammar.QualifierDeclarationStart:
		return r.readQualifierDeclaration()
	case grammar.ValueObjectWithPathStart:
		return r.readObjectWithPath()
	case grammar.ObjectPathStart:
		return r.readObjectPath()
	}
	return nil, r.unexpectedIn(et, grammar.IReturnValueStart)
}

func (r *Reader) readError() (*cim.CimomError, error) {
	attrs, err := r.start(grammar.ErrorStart)
	if err != nil {
		return nil, err
	}
	e := &cim.CimomError{}
	var code bool
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrCode:
			e.Code, code = a.Value, true
		case grammar.AttrDescription:
			e.Description = a.Value
		}
	}
	if !code {
		return nil, r.missing(grammar.AttrCode, grammar.ErrorStart)
	}
	for {
		et, err := r.peek()
		if err != nil {
			return nil, err
		}
		if et == grammar.ErrorEnd {
			break
		}
		if et != grammar.InstanceStart {
			return nil, r.unexpectedIn(et, grammar.ErrorStart)
		}
		inst, err := r.readInstance()
		if err != nil {
			return nil, err
		}
		e.Instances = append(e.Instances, inst)
	}
	return e, r.end(grammar.ErrorStart)
}

func (r *Reader) readMethodResponse() error {
	if err := r.readMethodName(grammar.MethodResponseStart); err != nil {
		return err
	}
	et, err := r.peek()
	if err != nil {
		return err
	}
	if et == grammar.ErrorStart {
		e, err := r.readError()
		if err == nil {
			err = r.emit(e)
		}
		if err != nil {
			return err
		}
		return r.end(grammar.MethodResponseStart)
	}

	mr := &cim.MethodResponse{Name: cim.NewName(r.h.MethodName)}
	for et != grammar.MethodResponseEnd {
		switch {
		case et == grammar.ReturnValueStart && mr.ReturnValue == nil && len(mr.ParamValues) == 0:
			if mr.ReturnValue, err = r.readReturnValue(); err != nil {
				return err
			}
		case et == grammar.ParamValueStart:
			pv, err := r.readParamValue()
			if err != nil {
				return err
			}
			mr.ParamValues = append(mr.ParamValues, pv)
		default:
			return r.unexpectedIn(et, grammar.MethodResponseStart)
		}
		if et, err = r.peek(); err != nil {
			return err
		}
	}
	if err := r.emit(mr); err != nil {
		return err
	}
	return r.end(grammar.MethodResponseStart)
}

func (r *Reader) readReturnValue() (*cim.ReturnValue, error) {
	attrs, err := r.start(grammar.ReturnValueStart)
	if err != nil {
		return nil, err
	}
	rv := &cim.ReturnValue{}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrParamType:
			rv.ParamType, err = r.typeAttr(grammar.ReturnValueStart, a)
		case grammar.AttrEmbeddedObject:
			err = r.unimplemented(grammar.ReturnValueStart, "embedded objects are not supported")
		}
		if err != nil {
			return nil, err
		}
	}
	if !rv.ParamType.IsSet() {
		return nil, r.missing(grammar.AttrParamType, grammar.ReturnValueStart)
	}
	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	switch et {
	case grammar.ValueStart:
		rv.Value, err = r.readValue()
	case grammar.ValueReferenceStart:
		rv.Reference, err = r.readValueReference()
	case grammar.ReturnValueEnd:
	default:
		err = r.unexpectedIn(et, grammar.ReturnValueStart)
	}
	if err != nil {
		return nil, err
	}
	return rv, r.end(grammar.ReturnValueStart)
}

func (r *Reader) readParamValue() (cim.ParamValue, error) {
	pv := cim.ParamValue{}
	attrs, err := r.start(grammar.ParamValueStart)
	if err != nil {
		return pv, err
	}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			pv.Name = cim.NewName(a.Value)
		case grammar.AttrParamType:
			pv.ParamType, err = r.typeAttr(grammar.ParamValueStart, a)
		case grammar.AttrEmbeddedObject:
			err = r.unimplemented(grammar.ParamValueStart, "embedded objects are not supported")
		}
		if err != nil {
			return pv, err
		}
	}
	if !pv.Name.IsSet() {
		return pv, r.missing(grammar.AttrName, grammar.ParamValueStart)
	}
	et, err := r.peek()
	if err != nil {
		return pv, err
	}
	switch et {
	case grammar.ValueStart:
		// an empty VALUE is how an empty value list is written
		var v cim.Value
		if v, err = r.readValue(); err == nil && v.String() != "" {
			pv.Values = []string{v.String()}
		}
	case grammar.ValueArrayStart:
		pv.IsArray = true
		pv.Values, err = r.readValueArray()
	case grammar.ValueReferenceStart:
		pv.Reference, err = r.readValueReference()
	case grammar.ValueRefArrayStart:
		err = r.unimplemented(et, "reference array parameters are not supported")
	case grammar.ParamValueEnd:
	default:
		err = r.unexpectedIn(et, grammar.ParamValueStart)
	}
	if err != nil {
		return pv, err
	}
	return pv, r.end(grammar.ParamValueStart)
}

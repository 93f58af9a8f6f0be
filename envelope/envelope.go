// Package envelope inspects the envelope of a CIM-XML message without
// decoding its payload.
//
// It is used to correlate requests with responses and to derive the
// DSP0200 HTTP extension headers of a request.
package envelope

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
)

// Envelope is the header of a message and a summary of its method
// calls or responses
type Envelope struct {
	CIMVersion      string
	DTDVersion      string
	MessageID       string
	ProtocolVersion string
	// Request is true for SIMPLEREQ/MULTIREQ messages
	Request bool
	// Multiple is true for MULTIREQ/MULTIRSP messages
	Multiple bool
	Calls    []Call
}

// Call summarises one method call or method response
type Call struct {
	Method    string
	Intrinsic bool
	// Object is the CIMObject header value of a request: the namespace
	// of an intrinsic call, or the class or instance path of an
	// extrinsic one. Reference key bindings are not rendered.
	Object string
	// ErrorCode is the CODE of a response ERROR
	ErrorCode string
}

// Inspect parses text and returns its envelope
func Inspect(text string) (*Envelope, error) {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, "envelope")
	}
	canonicalize(doc)
	cimNode := xmlquery.QuerySelector(doc, xpCIM)
	if cimNode == nil {
		return nil, errors.WithStack(cimerr.UnexpectedElement(grammar.CIMStart.Tag(), cimerr.WithMessage("no CIM root element")))
	}
	msg := xmlquery.QuerySelector(cimNode, xpMessage)
	if msg == nil {
		return nil, errors.WithStack(cimerr.UnexpectedElement(grammar.MessageStart.Tag(), cimerr.WithMessage("no MESSAGE element")))
	}
	env := &Envelope{
		CIMVersion:      attr(cimNode, grammar.AttrCIMVersion),
		DTDVersion:      attr(cimNode, grammar.AttrDTDVersion),
		MessageID:       attr(msg, grammar.AttrID),
		ProtocolVersion: attr(msg, grammar.AttrProtocolVersion),
	}
	if env.MessageID == "" {
		return nil, errors.WithStack(cimerr.MissingRequiredAttribute(grammar.AttrID.Tag(), grammar.MessageStart.Tag()))
	}

	for _, body := range elements(msg) {
		switch elementType(body) {
		case grammar.MultiReqStart:
			env.Request, env.Multiple = true, true
			for _, simple := range elements(body) {
				env.addCalls(simple)
			}
		case grammar.MultiRspStart:
			env.Multiple = true
			for _, simple := range elements(body) {
				env.addCalls(simple)
			}
		case grammar.SimpleReqStart:
			env.Request = true
			env.addCalls(body)
		case grammar.SimpleRspStart:
			env.addCalls(body)
		}
	}
	return env, nil
}

func (env *Envelope) addCalls(simple *xmlquery.Node) {
	for _, n := range elements(simple) {
		c := Call{Method: attr(n, grammar.AttrName)}
		switch elementType(n) {
		case grammar.IMethodCallStart:
			c.Intrinsic = true
			c.Object = namespace(n)
		case grammar.MethodCallStart:
			c.Object = objectPath(n)
		case grammar.IMethodResponseStart:
			c.Intrinsic = true
			c.ErrorCode = errorCode(n)
		case grammar.MethodResponseStart:
			c.ErrorCode = errorCode(n)
		default:
			continue
		}
		env.Calls = append(env.Calls, c)
	}
}

// canonicalize rewrites recognised element and attribute names to their
// wire case, so the selectors match names the decoder accepts in any case.
func canonicalize(n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if et, ok := grammar.Lookup(c.Data); ok {
			c.Data = et.Tag()
		}
		for i, a := range c.Attr {
			if a.Name.Space != "" {
				continue
			}
			if attr := grammar.ClassifyAttr(a.Name.Local); attr != grammar.AttrUnknown {
				c.Attr[i].Name.Local = attr.Tag()
			}
		}
		canonicalize(c)
	}
}

// elements returns the element children of n in document order
func elements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func elementType(n *xmlquery.Node) grammar.ElementType {
	et, _ := grammar.Lookup(n.Data)
	return et
}

func attr(n *xmlquery.Node, a grammar.Attribute) string { return n.SelectAttr(a.Tag()) }

func errorCode(n *xmlquery.Node) string {
	if e := xmlquery.QuerySelector(n, xpError); e != nil {
		return attr(e, grammar.AttrCode)
	}
	return ""
}

func namespace(n *xmlquery.Node) string {
	var segs []string
	for _, ns := range xmlquery.QuerySelectorAll(n, xpNamespace) {
		segs = append(segs, attr(ns, grammar.AttrName))
	}
	return strings.Join(segs, "/")
}

// objectPath renders the target of a METHODCALL as ns:Class or
// ns:Class.key="value",...
func objectPath(n *xmlquery.Node) string {
	if cp := xmlquery.QuerySelector(n, xpLocalClassPath); cp != nil {
		s := namespace(cp)
		if cn := xmlquery.QuerySelector(cp, xpClassName); cn != nil {
			s += ":" + attr(cn, grammar.AttrName)
		}
		return s
	}
	ip := xmlquery.QuerySelector(n, xpLocalInstancePath)
	if ip == nil {
		return ""
	}
	s := namespace(ip)
	in := xmlquery.QuerySelector(ip, xpInstanceName)
	if in == nil {
		return s
	}
	s += ":" + attr(in, grammar.AttrClassName)
	var keys []string
	for _, kb := range xmlquery.QuerySelectorAll(in, xpKeyBinding) {
		kv := xmlquery.QuerySelector(kb, xpKeyValue)
		if kv == nil {
			continue
		}
		keys = append(keys, attr(kb, grammar.AttrName)+"="+keyValue(kv))
	}
	if kv := xmlquery.QuerySelector(in, xpKeyValue); kv != nil {
		keys = append(keys, keyValue(kv))
	}
	if len(keys) > 0 {
		s += "." + strings.Join(keys, ",")
	}
	return s
}

func keyValue(kv *xmlquery.Node) string {
	v := kv.InnerText()
	switch strings.ToLower(attr(kv, grammar.AttrValueType)) {
	case "", "string":
		return `"` + strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `"`, `\"`) + `"`
	}
	return v
}

func path(ets ...grammar.ElementType) string {
	tags := make([]string, len(ets))
	for i, et := range ets {
		tags[i] = et.Tag()
	}
	return strings.Join(tags, "/")
}

var (
	xpCIM               = xpath.MustCompile("/" + path(grammar.CIMStart))
	xpMessage           = xpath.MustCompile(path(grammar.MessageStart))
	xpError             = xpath.MustCompile(path(grammar.ErrorStart))
	xpNamespace         = xpath.MustCompile(path(grammar.LocalNamespacePathStart, grammar.NamespaceStart))
	xpLocalClassPath    = xpath.MustCompile(path(grammar.LocalClassPathStart))
	xpLocalInstancePath = xpath.MustCompile(path(grammar.LocalInstancePathStart))
	xpClassName         = xpath.MustCompile(path(grammar.ClassNameStart))
	xpInstanceName      = xpath.MustCompile(path(grammar.InstanceNameStart))
	xpKeyBinding        = xpath.MustCompile(path(grammar.KeyBindingStart))
	xpKeyValue          = xpath.MustCompile(path(grammar.KeyValueStart))
)

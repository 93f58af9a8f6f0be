// Package request builds CIM-XML operation requests.
//
// Each operation has a settings type and a function writing the operation
// into a writer.Writer inside an open SIMPLEREQ. Parameters are written in
// DSP0200 order and optional parameters only when set. Settings types
// implement Operation, so they may be batched into one message with Batch.
package request

import (
	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/writer"
)

// Intrinsic and extrinsic method names
const (
	MethodGetClass               = "GetClass"
	MethodGetInstance            = "GetInstance"
	MethodDeleteClass            = "DeleteClass"
	MethodDeleteInstance         = "DeleteInstance"
	MethodCreateClass            = "CreateClass"
	MethodModifyClass            = "ModifyClass"
	MethodCreateInstance         = "CreateInstance"
	MethodModifyInstance         = "ModifyInstance"
	MethodEnumerateClasses       = "EnumerateClasses"
	MethodEnumerateClassNames    = "EnumerateClassNames"
	MethodEnumerateInstances     = "EnumerateInstances"
	MethodEnumerateInstanceNames = "EnumerateInstanceNames"
	MethodGetProperty            = "GetProperty"
	MethodSetProperty            = "SetProperty"
	MethodGetQualifier           = "GetQualifier"
	MethodSetQualifier           = "SetQualifier"
	MethodDeleteQualifier        = "DeleteQualifier"
	MethodEnumerateQualifiers    = "EnumerateQualifiers"
	MethodExecQuery              = "ExecQuery"
	MethodAssociators            = "Associators"
	MethodAssociatorNames        = "AssociatorNames"
	MethodReferences             = "References"
	MethodReferenceNames         = "ReferenceNames"
)

// Operation is one request body
type Operation interface {
	// MethodName returns the intrinsic or extrinsic method invoked
	MethodName() string
	// Encode writes the method call, using defaultNamespace when the
	// operation names no namespace of its own.
	Encode(w *writer.Writer, defaultNamespace string) error
}

// Batch writes each operation in its own SIMPLEREQ. The writer adds the
// MULTIREQ wrapper when there is more than one.
func Batch(w *writer.Writer, defaultNamespace string, ops ...Operation) error {
	if len(ops) == 0 {
		return errors.WithStack(cimerr.MalformedSequence(cimerr.WithMessage("empty batch")))
	}
	for _, op := range ops {
		w.BeginRequest()
		if err := op.Encode(w, defaultNamespace); err != nil {
			return err
		}
		w.EndRequest()
	}
	return w.Err()
}

// Text returns the message text for ops, written by a new writer
func Text(defaultNamespace string, ops []Operation, opts ...writer.Option) (id, text string, err error) {
	w := writer.New(opts...)
	if err = Batch(w, defaultNamespace, ops...); err != nil {
		return "", "", err
	}
	text, err = w.Text()
	return w.ID(), text, err
}

func required(method, param string) error {
	return errors.WithStack(cimerr.MalformedSequence(cimerr.WithMessagef("%s requires %s", method, param)))
}

func namespace(ns, defaultNamespace string) []string {
	if ns == "" {
		ns = defaultNamespace
	}
	return cim.ParseNamespace(ns)
}

// intrinsic writes an IMETHODCALL around params
func intrinsic(w *writer.Writer, method, ns, defaultNamespace string, params func()) error {
	w.StartIMethodCall(method, namespace(ns, defaultNamespace))
	params()
	w.EndElement()
	return w.Err()
}

func boolParam(w *writer.Writer, name string, b cim.Bool) {
	if !b.IsSet() {
		return
	}
	w.StartIParamValue(name)
	w.WriteValue(b.String())
	w.EndElement()
}

func stringParam(w *writer.Writer, name, v string) {
	w.StartIParamValue(name)
	w.WriteValue(v)
	w.EndElement()
}

func optStringParam(w *writer.Writer, name, v string) {
	if v != "" {
		stringParam(w, name, v)
	}
}

func classNameParam(w *writer.Writer, name string, n cim.Name) {
	w.StartIParamValue(name)
	w.WriteClassName(n)
	w.EndElement()
}

func optClassNameParam(w *writer.Writer, name string, n cim.Name) {
	if n.IsSet() {
		classNameParam(w, name, n)
	}
}

func instanceNameParam(w *writer.Writer, name string, n *cim.InstanceName) {
	w.StartIParamValue(name)
	w.WriteInstanceName(n)
	w.EndElement()
}

// propertyList writes PropertyList unless pl is nil. An empty list asks
// for no properties.
func propertyList(w *writer.Writer, pl []string) {
	if pl == nil {
		return
	}
	w.StartIParamValue("PropertyList")
	w.WriteValueArray(pl)
	w.EndElement()
}

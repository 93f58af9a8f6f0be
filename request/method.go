package request

import (
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/writer"
)

// TargetKind selects the target of an extrinsic method call
type TargetKind int

const (
	// TargetStatic invokes a static method on a class
	TargetStatic TargetKind = iota
	// TargetInstance invokes a method on an instance
	TargetInstance
)

func (k TargetKind) String() string {
	if k == TargetInstance {
		return "instance"
	}
	return "static"
}

// InvokeMethodSettings are the parameters of an extrinsic method call.
// ClassName names a static target and InstanceName an instance target.
type InvokeMethodSettings struct {
	Namespace    string
	Method       string
	Target       TargetKind
	ClassName    cim.Name
	InstanceName *cim.InstanceName
	Parameters   []cim.ParamValue
}

// MethodName returns the extrinsic method name
func (s InvokeMethodSettings) MethodName() string { return s.Method }

func (s InvokeMethodSettings) Encode(w *writer.Writer, ns string) error { return InvokeMethod(w, s, ns) }

// InvokeMethod writes a METHODCALL to the class or instance target,
// followed by one PARAMVALUE per parameter.
func InvokeMethod(w *writer.Writer, s InvokeMethodSettings, defaultNamespace string) error {
	if s.Method == "" {
		return required("InvokeMethod", "Method")
	}
	ns := namespace(s.Namespace, defaultNamespace)
	switch s.Target {
	case TargetStatic:
		if !s.ClassName.IsSet() {
			return required(s.Method, "ClassName")
		}
		w.StartMethodCall(s.Method)
		w.WriteLocalClassPath(ns, s.ClassName)
	case TargetInstance:
		if s.InstanceName == nil {
			return required(s.Method, "InstanceName")
		}
		w.StartMethodCall(s.Method)
		w.WriteLocalInstancePath(ns, s.InstanceName)
	default:
		return required(s.Method, "a target")
	}
	for _, p := range s.Parameters {
		writeParamValue(w, p)
	}
	w.EndElement()
	return w.Err()
}

func writeParamValue(w *writer.Writer, p cim.ParamValue) {
	w.StartParamValue(p.Name.String(), p.ParamType)
	switch {
	case p.Reference != nil:
		w.WriteValueReference(p.Reference)
	case p.IsArray:
		w.WriteValueArray(p.Values)
	default:
		w.WriteValueList(p.Values)
	}
	w.EndElement()
}

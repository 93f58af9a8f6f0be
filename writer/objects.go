package writer

import (
	"strconv"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/grammar"
)

// name writes a required name attribute
func (w *Writer) name(a grammar.Attribute, n cim.Name) {
	if !n.IsSet() {
		w.failf("%s requires %s", w.check.top().Tag(), a)
		return
	}
	w.Attr(a, n.String())
}

func (w *Writer) optName(a grammar.Attribute, n cim.Name) {
	if n.IsSet() {
		w.Attr(a, n.String())
	}
}

func (w *Writer) optType(a grammar.Attribute, t cim.Type) {
	if t.IsSet() {
		w.Attr(a, t.String())
	}
}

func (w *Writer) optBool(a grammar.Attribute, b cim.Bool) {
	if b.IsSet() {
		w.Attr(a, b.String())
	}
}

func (w *Writer) optSize(a grammar.Attribute, n int) {
	if n > 0 {
		w.Attr(a, strconv.Itoa(n))
	}
}

func (w *Writer) writeFlavor(f cim.Flavor) {
	w.optBool(grammar.AttrOverridable, f.Overridable)
	w.optBool(grammar.AttrToSubclass, f.ToSubclass)
	w.optBool(grammar.AttrToInstance, f.ToInstance)
	w.optBool(grammar.AttrTranslatable, f.Translatable)
}

// WriteValue writes <VALUE>v</VALUE>
func (w *Writer) WriteValue(v string) {
	w.StartElement(grammar.ValueStart)
	w.CharData(v)
	w.EndElement()
}

// WriteValueArray writes a VALUE.ARRAY, which may be empty
func (w *Writer) WriteValueArray(vs []string) {
	w.StartElement(grammar.ValueArrayStart)
	for _, v := range vs {
		w.WriteValue(v)
	}
	w.EndElement()
}

// WriteValueList writes no values as one empty VALUE, one value as a
// VALUE and more as a VALUE.ARRAY.
func (w *Writer) WriteValueList(vs []string) {
	switch len(vs) {
	case 0:
		w.WriteValue("")
	case 1:
		w.WriteValue(vs[0])
	default:
		w.WriteValueArray(vs)
	}
}

func (w *Writer) WriteClassName(n cim.Name) {
	w.StartElement(grammar.ClassNameStart)
	w.name(grammar.AttrName, n)
	w.EndElement()
}

// WriteLocalNamespacePath writes the namespace segments, of which there
// must be at least one.
func (w *Writer) WriteLocalNamespacePath(ns []string) {
	if len(ns) == 0 {
		w.failf("empty namespace")
		return
	}
	w.StartElement(grammar.LocalNamespacePathStart)
	for _, seg := range ns {
		w.StartElement(grammar.NamespaceStart)
		w.Attr(grammar.AttrName, seg)
		w.EndElement()
	}
	w.EndElement()
}

func (w *Writer) WriteNamespacePath(p cim.NamespacePath) {
	w.StartElement(grammar.NamespacePathStart)
	w.StartElement(grammar.HostStart)
	w.CharData(p.Host)
	w.EndElement()
	w.WriteLocalNamespacePath(p.Namespace)
	w.EndElement()
}

func (w *Writer) WriteQualifier(q cim.Qualifier) {
	w.StartElement(grammar.QualifierStart)
	w.name(grammar.AttrName, q.Name)
	w.optType(grammar.AttrType, q.Type)
	w.optBool(grammar.AttrPropagated, q.Propagated)
	w.writeFlavor(q.Flavor)
	switch {
	case q.IsArray || len(q.Values) > 1:
		w.WriteValueArray(q.Values)
	case len(q.Values) == 1:
		w.WriteValue(q.Values[0])
	}
	w.EndElement()
}

func (w *Writer) writeQualifiers(qs cim.Qualifiers) {
	for _, q := range qs {
		w.WriteQualifier(q)
	}
}

func (w *Writer) WriteScope(s *cim.Scope) {
	w.StartElement(grammar.ScopeStart)
	w.optBool(grammar.AttrClass, s.Class)
	w.optBool(grammar.AttrAssociation, s.Association)
	w.optBool(grammar.AttrReference, s.Reference)
	w.optBool(grammar.AttrProperty, s.Property)
	w.optBool(grammar.AttrMethod, s.Method)
	w.optBool(grammar.AttrParameter, s.Parameter)
	w.optBool(grammar.AttrIndication, s.Indication)
	w.EndElement()
}

func (w *Writer) WriteQualifierDeclaration(d *cim.QualifierDeclaration) {
	w.StartElement(grammar.QualifierDeclarationStart)
	w.name(grammar.AttrName, d.Name)
	w.optType(grammar.AttrType, d.Type)
	w.optBool(grammar.AttrIsArray, d.IsArray)
	w.optSize(grammar.AttrArraySize, d.ArraySize)
	w.writeFlavor(d.Flavor)
	if d.Scope != nil {
		w.WriteScope(d.Scope)
	}
	switch {
	case d.IsArray.Value() || len(d.Values) > 1:
		if d.Values != nil {
			w.WriteValueArray(d.Values)
		}
	case len(d.Values) == 1:
		w.WriteValue(d.Values[0])
	}
	w.EndElement()
}

// WriteProperty writes any of the three property kinds
func (w *Writer) WriteProperty(p cim.PropertyElement) {
	switch p := p.(type) {
	case *cim.Property:
		w.StartElement(grammar.PropertyStart)
		w.name(grammar.AttrName, p.Name)
		w.optType(grammar.AttrType, p.Type)
		w.optName(grammar.AttrClassOrigin, p.ClassOrigin)
		w.optBool(grammar.AttrPropagated, p.Propagated)
		w.writeQualifiers(p.Qualifiers)
		if p.Value.IsSet() {
			w.WriteValue(p.Value.String())
		}
	case *cim.PropertyArray:
		w.StartElement(grammar.PropertyArrayStart)
		w.name(grammar.AttrName, p.Name)
		w.optType(grammar.AttrType, p.Type)
		w.optSize(grammar.AttrArraySize, p.ArraySize)
		w.optName(grammar.AttrClassOrigin, p.ClassOrigin)
		w.optBool(grammar.AttrPropagated, p.Propagated)
		w.writeQualifiers(p.Qualifiers)
		if p.Values != nil {
			w.WriteValueArray(p.Values)
		}
	case *cim.PropertyReference:
		w.StartElement(grammar.PropertyReferenceStart)
		w.name(grammar.AttrName, p.Name)
		w.optName(grammar.AttrReferenceClass, p.ReferenceClass)
		w.optName(grammar.AttrClassOrigin, p.ClassOrigin)
		w.optBool(grammar.AttrPropagated, p.Propagated)
		w.writeQualifiers(p.Qualifiers)
		if p.Value != nil {
			w.WriteValueReference(p.Value)
		}
	default:
		w.failf("unsupported property %T", p)
		return
	}
	w.EndElement()
}

// WriteParameter writes any of the four parameter kinds
func (w *Writer) WriteParameter(p cim.ParameterElement) {
	switch p := p.(type) {
	case *cim.Parameter:
		w.StartElement(grammar.ParameterStart)
		w.name(grammar.AttrName, p.Name)
		w.optType(grammar.AttrType, p.Type)
		w.writeQualifiers(p.Qualifiers)
	case *cim.ParameterArray:
		w.StartElement(grammar.ParameterArrayStart)
		w.name(grammar.AttrName, p.Name)
		w.optType(grammar.AttrType, p.Type)
		w.optSize(grammar.AttrArraySize, p.ArraySize)
		w.writeQualifiers(p.Qualifiers)
	case *cim.ParameterReference:
		w.StartElement(grammar.ParameterReferenceStart)
		w.name(grammar.AttrName, p.Name)
		w.optName(grammar.AttrReferenceClass, p.ReferenceClass)
		w.writeQualifiers(p.Qualifiers)
	case *cim.ParameterRefArray:
		w.StartElement(grammar.ParameterRefArrayStart)
		w.name(grammar.AttrName, p.Name)
		w.optName(grammar.AttrReferenceClass, p.ReferenceClass)
		w.optSize(grammar.AttrArraySize, p.ArraySize)
		w.writeQualifiers(p.Qualifiers)
	default:
		w.failf("unsupported parameter %T", p)
		return
	}
	w.EndElement()
}

func (w *Writer) WriteMethod(m *cim.Method) {
	w.StartElement(grammar.MethodStart)
	w.name(grammar.AttrName, m.Name)
	w.optType(grammar.AttrType, m.Type)
	w.optName(grammar.AttrClassOrigin, m.ClassOrigin)
	w.optBool(grammar.AttrPropagated, m.Propagated)
	w.writeQualifiers(m.Qualifiers)
	for _, p := range m.Parameters {
		w.WriteParameter(p)
	}
	w.EndElement()
}

func (w *Writer) WriteClass(c *cim.Class) {
	w.StartElement(grammar.ClassStart)
	w.name(grammar.AttrName, c.Name)
	w.optName(grammar.AttrSuperClass, c.SuperClass)
	w.writeQualifiers(c.Qualifiers)
	for _, p := range c.Properties {
		w.WriteProperty(p)
	}
	for _, m := range c.Methods {
		w.WriteMethod(m)
	}
	w.EndElement()
}

func (w *Writer) WriteInstance(inst *cim.Instance) {
	w.StartElement(grammar.InstanceStart)
	w.name(grammar.AttrClassName, inst.ClassName)
	w.writeQualifiers(inst.Qualifiers)
	for _, p := range inst.Properties {
		w.WriteProperty(p)
	}
	w.EndElement()
}

// WriteNamedInstance writes a VALUE.NAMEDINSTANCE from an instance
// carrying its InstanceName.
func (w *Writer) WriteNamedInstance(inst *cim.Instance) {
	if inst.InstanceName == nil {
		w.failf("named instance of %s has no instance name", inst.ClassName)
		return
	}
	if !inst.ClassName.Equal(inst.InstanceName.ClassName) {
		w.failf("instance of %s named as %s", inst.ClassName, inst.InstanceName.ClassName)
		return
	}
	w.StartElement(grammar.ValueNamedInstanceStart)
	w.WriteInstanceName(inst.InstanceName)
	w.WriteInstance(inst)
	w.EndElement()
}

// WriteInstanceName writes an INSTANCENAME. A single binding named
// "KeyValue" holding a KeyValue, or named "ValueReference" holding a
// ValueReference, is written in the short form without KEYBINDING.
func (w *Writer) WriteInstanceName(n *cim.InstanceName) {
	w.StartElement(grammar.InstanceNameStart)
	w.name(grammar.AttrClassName, n.ClassName)
	if len(n.KeyBindings) == 1 {
		kb := n.KeyBindings[0]
		switch v := kb.Value.(type) {
		case *cim.KeyValue:
			if kb.Name.EqualString(cim.ShorthandKeyValue) {
				w.WriteKeyValue(v)
				w.EndElement()
				return
			}
		case *cim.ValueReference:
			if kb.Name.EqualString(cim.ShorthandValueReference) {
				w.WriteValueReference(v)
				w.EndElement()
				return
			}
		}
	}
	for _, kb := range n.KeyBindings {
		w.WriteKeyBinding(kb)
	}
	w.EndElement()
}

func (w *Writer) WriteKeyBinding(kb cim.KeyBinding) {
	w.StartElement(grammar.KeyBindingStart)
	w.name(grammar.AttrName, kb.Name)
	switch v := kb.Value.(type) {
	case *cim.KeyValue:
		w.WriteKeyValue(v)
	case *cim.ValueReference:
		w.WriteValueReference(v)
	default:
		w.failf("key binding %s has no value", kb.Name)
		return
	}
	w.EndElement()
}

func (w *Writer) WriteKeyValue(kv *cim.KeyValue) {
	w.StartElement(grammar.KeyValueStart)
	if kv.ValueType != "" {
		w.Attr(grammar.AttrValueType, kv.ValueType)
	}
	w.optType(grammar.AttrType, kv.Type)
	w.CharData(kv.Value)
	w.EndElement()
}

// WriteValueReference writes a VALUE.REFERENCE in the shape selected by ref.Kind
func (w *Writer) WriteValueReference(ref *cim.ValueReference) {
	w.StartElement(grammar.ValueReferenceStart)
	switch ref.Kind {
	case cim.ReferenceClassPath:
		w.WriteClassPath(ref.Namespace, ref.ClassName)
	case cim.ReferenceLocalClassPath:
		w.WriteLocalClassPath(ref.Namespace.Namespace, ref.ClassName)
	case cim.ReferenceClassName:
		w.WriteClassName(ref.ClassName)
	case cim.ReferenceInstancePath, cim.ReferenceLocalInstancePath, cim.ReferenceInstanceName:
		if ref.InstanceName == nil {
			w.failf("%s reference has no instance name", ref.Kind)
			return
		}
		switch ref.Kind {
		case cim.ReferenceInstancePath:
			w.WriteInstancePath(ref.Namespace, ref.InstanceName)
		case cim.ReferenceLocalInstancePath:
			w.WriteLocalInstancePath(ref.Namespace.Namespace, ref.InstanceName)
		default:
			w.WriteInstanceName(ref.InstanceName)
		}
	default:
		w.failf("invalid reference kind %s", ref.Kind)
		return
	}
	w.EndElement()
}

func (w *Writer) WriteClassPath(ns cim.NamespacePath, class cim.Name) {
	w.StartElement(grammar.ClassPathStart)
	w.WriteNamespacePath(ns)
	w.WriteClassName(class)
	w.EndElement()
}

func (w *Writer) WriteLocalClassPath(ns []string, class cim.Name) {
	w.StartElement(grammar.LocalClassPathStart)
	w.WriteLocalNamespacePath(ns)
	w.WriteClassName(class)
	w.EndElement()
}

func (w *Writer) WriteInstancePath(ns cim.NamespacePath, n *cim.InstanceName) {
	w.StartElement(grammar.InstancePathStart)
	w.WriteNamespacePath(ns)
	w.WriteInstanceName(n)
	w.EndElement()
}

func (w *Writer) WriteLocalInstancePath(ns []string, n *cim.InstanceName) {
	w.StartElement(grammar.LocalInstancePathStart)
	w.WriteLocalNamespacePath(ns)
	w.WriteInstanceName(n)
	w.EndElement()
}

// WriteClassNamePath writes p as a CLASSPATH
func (w *Writer) WriteClassNamePath(p *cim.ClassNamePath) {
	w.WriteClassPath(p.Namespace, p.ClassName)
}

// WriteInstanceNamePath writes p as an INSTANCEPATH
func (w *Writer) WriteInstanceNamePath(p *cim.InstanceNamePath) {
	if p.InstanceName == nil {
		w.failf("instance path has no instance name")
		return
	}
	w.WriteInstancePath(p.Namespace, p.InstanceName)
}

// WriteObjectName writes a class name or an instance name
func (w *Writer) WriteObjectName(o cim.ObjectName) {
	switch o := o.(type) {
	case cim.Name:
		w.WriteClassName(o)
	case *cim.InstanceName:
		if o == nil {
			w.failf("nil instance name")
			return
		}
		w.WriteInstanceName(o)
	default:
		w.failf("no object name")
	}
}

// StartIMethodCall opens an IMETHODCALL for the intrinsic method in namespace ns
func (w *Writer) StartIMethodCall(method string, ns []string) {
	w.StartElement(grammar.IMethodCallStart)
	w.Attr(grammar.AttrName, method)
	w.WriteLocalNamespacePath(ns)
}

// StartMethodCall opens a METHODCALL for an extrinsic method; the caller
// writes the target path next.
func (w *Writer) StartMethodCall(method string) {
	w.StartElement(grammar.MethodCallStart)
	w.Attr(grammar.AttrName, method)
}

// StartIParamValue opens an IPARAMVALUE
func (w *Writer) StartIParamValue(name string) {
	w.StartElement(grammar.IParamValueStart)
	w.Attr(grammar.AttrName, name)
}

// StartParamValue opens a PARAMVALUE, with PARAMTYPE when t is set
func (w *Writer) StartParamValue(name string, t cim.Type) {
	w.StartElement(grammar.ParamValueStart)
	w.Attr(grammar.AttrName, name)
	w.optType(grammar.AttrParamType, t)
}

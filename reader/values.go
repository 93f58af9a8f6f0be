package reader

import (
	"strings"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/grammar"
)

func (r *Reader) readValue() (cim.Value, error) {
	if _, err := r.start(grammar.ValueStart); err != nil {
		return cim.Value{}, err
	}
	text, err := r.t.ReadText()
	if err != nil {
		return cim.Value{}, err
	}
	return cim.NewValue(text), r.end(grammar.ValueStart)
}

// readValueArray returns a non-nil slice, empty for an empty VALUE.ARRAY
func (r *Reader) readValueArray() ([]string, error) {
	if _, err := r.start(grammar.ValueArrayStart); err != nil {
		return nil, err
	}
	values := []string{}
	for {
		et, err := r.peek()
		if err != nil {
			return nil, err
		}
		switch et {
		case grammar.ValueArrayEnd:
			return values, r.end(grammar.ValueArrayStart)
		case grammar.ValueStart:
			var v cim.Value
			if v, err = r.readValue(); err == nil {
				values = append(values, v.String())
			}
		case grammar.ValueNullStart:
			err = r.unimplemented(et, "null array elements are not supported")
		default:
			err = r.unexpectedIn(et, grammar.ValueArrayStart)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (r *Reader) readInstanceName() (*cim.InstanceName, error) {
	attrs, err := r.start(grammar.InstanceNameStart)
	if err != nil {
		return nil, err
	}
	n := &cim.InstanceName{}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrClassName {
			n.ClassName = cim.NewName(a.Value)
		}
	}
	if !n.ClassName.IsSet() {
		return nil, r.missing(grammar.AttrClassName, grammar.InstanceNameStart)
	}

	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	switch et {
	case grammar.KeyBindingStart:
		for et == grammar.KeyBindingStart {
			kb, err := r.readKeyBinding()
			if err != nil {
				return nil, err
			}
			n.KeyBindings = append(n.KeyBindings, kb)
			if et, err = r.peek(); err != nil {
				return nil, err
			}
		}
	case grammar.KeyValueStart:
		kv, err := r.readKeyValue()
		if err != nil {
			return nil, err
		}
		n.KeyBindings = []cim.KeyBinding{{Name: cim.NewName(cim.ShorthandKeyValue), Value: kv}}
	case grammar.ValueReferenceStart:
		ref, err := r.readValueReference()
		if err != nil {
			return nil, err
		}
		n.KeyBindings = []cim.KeyBinding{{Name: cim.NewName(cim.ShorthandValueReference), Value: ref}}
	}
	return n, r.end(grammar.InstanceNameStart)
}

func (r *Reader) readKeyBinding() (cim.KeyBinding, error) {
	kb := cim.KeyBinding{}
	attrs, err := r.start(grammar.KeyBindingStart)
	if err != nil {
		return kb, err
	}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrName {
			kb.Name = cim.NewName(a.Value)
		}
	}
	if !kb.Name.IsSet() {
		return kb, r.missing(grammar.AttrName, grammar.KeyBindingStart)
	}
	et, err := r.peek()
	if err != nil {
		return kb, err
	}
	switch et {
	case grammar.KeyValueStart:
		kb.Value, err = r.readKeyValue()
	case grammar.ValueReferenceStart:
		kb.Value, err = r.readValueReference()
	default:
		err = r.unexpectedIn(et, grammar.KeyBindingStart)
	}
	if err != nil {
		return kb, err
	}
	return kb, r.end(grammar.KeyBindingStart)
}

// readKeyValue reads a KEYVALUE. Only string key values are supported.
func (r *Reader) readKeyValue() (*cim.KeyValue, error) {
	attrs, err := r.start(grammar.KeyValueStart)
	if err != nil {
		return nil, err
	}
	kv := &cim.KeyValue{}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrValueType:
			kv.ValueType = strings.ToLower(a.Value)
			if kv.ValueType != cim.ValueTypeString {
				return nil, r.unimplemented(grammar.KeyValueStart, "non-string key values are not supported")
			}
		case grammar.AttrType:
			if kv.Type, err = r.typeAttr(grammar.KeyValueStart, a); err != nil {
				return nil, err
			}
		}
	}
	if kv.Value, err = r.t.ReadText(); err != nil {
		return nil, err
	}
	return kv, r.end(grammar.KeyValueStart)
}

func (r *Reader) readValueReference() (*cim.ValueReference, error) {
	if _, err := r.start(grammar.ValueReferenceStart); err != nil {
		return nil, err
	}
	ref := &cim.ValueReference{}
	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	switch et {
	case grammar.ClassPathStart:
		ref.Kind = cim.ReferenceClassPath
		ref.Namespace, ref.ClassName, err = r.readClassPath()
	case grammar.LocalClassPathStart:
		ref.Kind = cim.ReferenceLocalClassPath
		ref.Namespace, ref.ClassName, err = r.readLocalClassPath()
	case grammar.ClassNameStart:
		ref.Kind = cim.ReferenceClassName
		ref.ClassName, err = r.readClassName()
	case grammar.InstancePathStart:
		ref.Kind = cim.ReferenceInstancePath
		ref.Namespace, ref.InstanceName, err = r.readInstancePath()
	case grammar.LocalInstancePathStart:
		ref.Kind = cim.ReferenceLocalInstancePath
		ref.Namespace, ref.InstanceName, err = r.readLocalInstancePath()
	case grammar.InstanceNameStart:
		ref.Kind = cim.ReferenceInstanceName
		ref.InstanceName, err = r.readInstanceName()
	default:
		err = r.unexpectedIn(et, grammar.ValueReferenceStart)
	}
	if err != nil {
		return nil, err
	}
	return ref, r.end(grammar.ValueReferenceStart)
}

func (r *Reader) readNamespace() (string, error) {
	attrs, err := r.start(grammar.NamespaceStart)
	if err != nil {
		return "", err
	}
	name := cim.Name{}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrName {
			name = cim.NewName(a.Value)
		}
	}
	if !name.IsSet() {
		return "", r.missing(grammar.AttrName, grammar.NamespaceStart)
	}
	return name.String(), r.end(grammar.NamespaceStart)
}

// readLocalNamespacePath reads one or more NAMESPACE segments
func (r *Reader) readLocalNamespacePath() (cim.NamespacePath, error) {
	p := cim.NamespacePath{}
	if _, err := r.start(grammar.LocalNamespacePathStart); err != nil {
		return p, err
	}
	for {
		et, err := r.peek()
		if err != nil {
			return p, err
		}
		if et != grammar.NamespaceStart {
			if len(p.Namespace) == 0 {
				return p, r.unexpected(et, grammar.NamespaceStart)
			}
			return p, r.end(grammar.LocalNamespacePathStart)
		}
		ns, err := r.readNamespace()
		if err != nil {
			return p, err
		}
		p.Namespace = append(p.Namespace, ns)
	}
}

func (r *Reader) readNamespacePath() (cim.NamespacePath, error) {
	if _, err := r.start(grammar.NamespacePathStart); err != nil {
		return cim.NamespacePath{}, err
	}
	if _, err := r.start(grammar.HostStart); err != nil {
		return cim.NamespacePath{}, err
	}
	host, err := r.t.ReadText()
	if err == nil {
		err = r.end(grammar.HostStart)
	}
	if err != nil {
		return cim.NamespacePath{}, err
	}
	p, err := r.readLocalNamespacePath()
	if err != nil {
		return p, err
	}
	p.Host = strings.TrimSpace(host)
	return p, r.end(grammar.NamespacePathStart)
}

func (r *Reader) readClassPath() (cim.NamespacePath, cim.Name, error) {
	if _, err := r.start(grammar.ClassPathStart); err != nil {
		return cim.NamespacePath{}, cim.Name{}, err
	}
	ns, err := r.readNamespacePath()
	if err != nil {
		return ns, cim.Name{}, err
	}
	name, err := r.readClassName()
	if err != nil {
		return ns, name, err
	}
	return ns, name, r.end(grammar.ClassPathStart)
}

func (r *Reader) readLocalClassPath() (cim.NamespacePath, cim.Name, error) {
	if _, err := r.start(grammar.LocalClassPathStart); err != nil {
		return cim.NamespacePath{}, cim.Name{}, err
	}
	ns, err := r.readLocalNamespacePath()
	if err != nil {
		return ns, cim.Name{}, err
	}
	name, err := r.readClassName()
	if err != nil {
		return ns, name, err
	}
	return ns, name, r.end(grammar.LocalClassPathStart)
}

// readInstancePath also accepts a LOCALNAMESPACEPATH in place of the
// NAMESPACEPATH, as sent by some servers.
func (r *Reader) readInstancePath() (cim.NamespacePath, *cim.InstanceName, error) {
	if _, err := r.start(grammar.InstancePathStart); err != nil {
		return cim.NamespacePath{}, nil, err
	}
	et, err := r.peek()
	if err != nil {
		return cim.NamespacePath{}, nil, err
	}
	var ns cim.NamespacePath
	if et == grammar.LocalNamespacePathStart {
		ns, err = r.readLocalNamespacePath()
	} else {
		ns, err = r.readNamespacePath()
	}
	if err != nil {
		return ns, nil, err
	}
	name, err := r.readInstanceName()
	if err != nil {
		return ns, nil, err
	}
	return ns, name, r.end(grammar.InstancePathStart)
}

func (r *Reader) readLocalInstancePath() (cim.NamespacePath, *cim.InstanceName, error) {
	if _, err := r.start(grammar.LocalInstancePathStart); err != nil {
		return cim.NamespacePath{}, nil, err
	}
	ns, err := r.readLocalNamespacePath()
	if err != nil {
		return ns, nil, err
	}
	name, err := r.readInstanceName()
	if err != nil {
		return ns, nil, err
	}
	return ns, name, r.end(grammar.LocalInstancePathStart)
}

func (r *Reader) readQualifierDeclaration() (*cim.QualifierDeclaration, error) {
	attrs, err := r.start(grammar.QualifierDeclarationStart)
	if err != nil {
		return nil, err
	}
	d := &cim.QualifierDeclaration{}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			d.Name = cim.NewName(a.Value)
		case grammar.AttrType:
			d.Type, err = r.typeAttr(grammar.QualifierDeclarationStart, a)
		case grammar.AttrIsArray:
			d.IsArray, err = r.boolAttr(grammar.QualifierDeclarationStart, a)
		case grammar.AttrArraySize:
			d.ArraySize, err = r.intAttr(grammar.QualifierDeclarationStart, a)
		default:
			err = r.flavorAttr(grammar.QualifierDeclarationStart, a, &d.Flavor)
		}
		if err != nil {
			return nil, err
		}
	}
	switch {
	case !d.Name.IsSet():
		return nil, r.missing(grammar.AttrName, grammar.QualifierDeclarationStart)
	case !d.Type.IsSet():
		return nil, r.missing(grammar.AttrType, grammar.QualifierDeclarationStart)
	}

	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	if et == grammar.ScopeStart {
		if d.Scope, err = r.readScope(); err != nil {
			return nil, err
		}
		if et, err = r.peek(); err != nil {
			return nil, err
		}
	}
	switch et {
	case grammar.ValueStart:
		var v cim.Value
		if v, err = r.readValue(); err == nil {
			d.Values = []string{v.String()}
		}
	case grammar.ValueArrayStart:
		d.Values, err = r.readValueArray()
	}
	if err != nil {
		return nil, err
	}
	return d, r.end(grammar.QualifierDeclarationStart)
}

func (r *Reader) readScope() (*cim.Scope, error) {
	attrs, err := r.start(grammar.ScopeStart)
	if err != nil {
		return nil, err
	}
	s := &cim.Scope{}
	for _, a := range attrs {
		var dst *cim.Bool
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrClass:
			dst = &s.Class
		case grammar.AttrAssociation:
			dst = &s.Association
		case grammar.AttrReference:
			dst = &s.Reference
		case grammar.AttrProperty:
			dst = &s.Property
		case grammar.AttrMethod:
			dst = &s.Method
		case grammar.AttrParameter:
			dst = &s.Parameter
		case grammar.AttrIndication:
			dst = &s.Indication
		default:
			continue
		}
		if *dst, err = r.boolAttr(grammar.ScopeStart, a); err != nil {
			return nil, err
		}
	}
	return s, r.end(grammar.ScopeStart)
}

// readObjectWithPath reads a VALUE.OBJECTWITHPATH holding either a class
// or an instance with its path.
func (r *Reader) readObjectWithPath() (cim.Object, error) {
	if _, err := r.start(grammar.ValueObjectWithPathStart); err != nil {
		return nil, err
	}
	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	var obj cim.Object
	switch et {
	case grammar.ClassPathStart:
		var (
			ns  cim.NamespacePath
			cls *cim.Class
		)
		if ns, _, err = r.readClassPath(); err == nil {
			if cls, err = r.readClass(); err == nil {
				obj = &cim.ClassPath{Namespace: ns, Class: cls}
			}
		}
	case grammar.InstancePathStart:
		var (
			ns   cim.NamespacePath
			name *cim.InstanceName
			inst *cim.Instance
		)
		if ns, name, err = r.readInstancePath(); err == nil {
			if inst, err = r.readInstance(); err == nil {
				inst.InstanceName = name
				obj = &cim.InstancePath{Namespace: ns, Instance: inst}
			}
		}
	default:
		err = r.unexpectedIn(et, grammar.ValueObjectWithPathStart)
	}
	if err != nil {
		return nil, err
	}
	return obj, r.end(grammar.ValueObjectWithPathStart)
}

func (r *Reader) readObjectPath() (cim.Object, error) {
	if _, err := r.start(grammar.ObjectPathStart); err != nil {
		return nil, err
	}
	et, err := r.peek()
	if err != nil {
		return nil, err
	}
	var obj cim.Object
	switch et {
	case grammar.ClassPathStart:
		var p cim.ClassNamePath
		if p.Namespace, p.ClassName, err = r.readClassPath(); err == nil {
			obj = &p
		}
	case grammar.InstancePathStart:
		var p cim.InstanceNamePath
		if p.Namespace, p.InstanceName, err = r.readInstancePath(); err == nil {
			obj = &p
		}
	default:
		err = r.unexpectedIn(et, grammar.ObjectPathStart)
	}
	if err != nil {
		return nil, err
	}
	return obj, r.end(grammar.ObjectPathStart)
}

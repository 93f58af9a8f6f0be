package cim

import (
	"fmt"
	"strings"
)

// Binding names used by the INSTANCENAME shorthand forms, where a single
// KEYVALUE or VALUE.REFERENCE stands in for the key binding list.
const (
	ShorthandKeyValue       = "KeyValue"
	ShorthandValueReference = "ValueReference"
)

// InstanceName identifies an instance by class and key bindings.
// Binding order is preserved as decoded.
type InstanceName struct {
	ClassName   Name
	KeyBindings []KeyBinding
}

// Key returns the value bound to name
func (n *InstanceName) Key(name string) (KeyBindingValue, bool) {
	for _, kb := range n.KeyBindings {
		if kb.Name.EqualString(name) {
			return kb.Value, true
		}
	}
	return nil, false
}

// KeyBinding is a KEYBINDING
type KeyBinding struct {
	Name  Name
	Value KeyBindingValue
}

// KeyBindingValue is either *KeyValue or *ValueReference
type KeyBindingValue interface{ isKeyBindingValue() }

// Key value types
const (
	ValueTypeString  = "string"
	ValueTypeBoolean = "boolean"
	ValueTypeNumeric = "numeric"
)

// KeyValue is a KEYVALUE. An empty ValueType means "string".
type KeyValue struct {
	ValueType string
	Type      Type
	Value     string
}

func (*KeyValue) isKeyBindingValue()       {}
func (*ValueReference) isKeyBindingValue() {}

// ReferenceKind selects the shape of a ValueReference
type ReferenceKind int

const (
	ReferenceInvalid ReferenceKind = iota
	ReferenceClassPath
	ReferenceLocalClassPath
	ReferenceClassName
	ReferenceInstancePath
	ReferenceLocalInstancePath
	ReferenceInstanceName
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferenceClassPath:
		return "CLASSPATH"
	case ReferenceLocalClassPath:
		return "LOCALCLASSPATH"
	case ReferenceClassName:
		return "CLASSNAME"
	case ReferenceInstancePath:
		return "INSTANCEPATH"
	case ReferenceLocalInstancePath:
		return "LOCALINSTANCEPATH"
	case ReferenceInstanceName:
		return "INSTANCENAME"
	default:
		return fmt.Sprintf("ReferenceKind(%d)", int(k))
	}
}

// IsInstance returns true for the three instance shapes
func (k ReferenceKind) IsInstance() bool {
	return k == ReferenceInstancePath || k == ReferenceLocalInstancePath || k == ReferenceInstanceName
}

// ValueReference is a VALUE.REFERENCE. Which fields are meaningful
// depends on Kind: Namespace for the path shapes (Host only for the
// non-local ones), ClassName for class shapes and InstanceName for
// instance shapes.
type ValueReference struct {
	Kind         ReferenceKind
	Namespace    NamespacePath
	ClassName    Name
	InstanceName *InstanceName
}

// NamespacePath is a (possibly host-qualified) namespace
type NamespacePath struct {
	Host      string
	Namespace []string
}

// ParseNamespace splits a "root/cimv2" style namespace into segments.
func ParseNamespace(ns string) []string {
	var segs []string
	for _, s := range strings.Split(ns, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// LocalNamespace returns the namespace path without a host
func LocalNamespace(ns string) NamespacePath { return NamespacePath{Namespace: ParseNamespace(ns)} }

// String returns the namespace joined by "/"
func (p NamespacePath) String() string { return strings.Join(p.Namespace, "/") }

// ClassNamePath is an OBJECTPATH holding a CLASSPATH
type ClassNamePath struct {
	Namespace NamespacePath
	ClassName Name
}

// InstanceNamePath is an OBJECTPATH holding an INSTANCEPATH
type InstanceNamePath struct {
	Namespace    NamespacePath
	InstanceName *InstanceName
}

// ClassPath is a class with its location (VALUE.OBJECTWITHPATH)
type ClassPath struct {
	Namespace NamespacePath
	Class     *Class
}

// InstancePath is an instance with its location (VALUE.OBJECTWITHPATH)
type InstancePath struct {
	Namespace NamespacePath
	Instance  *Instance
}
